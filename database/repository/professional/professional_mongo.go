package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/robsonrdev/AgendaFacil-saas/database"
	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new instance of ProfessionalRepository using MongoDB.
func NewMongoProfessionalRepo() ProfessionalRepository {
	coll := database.Collection("professionals")
	repo := &MongoProfessionalRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfessionalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a professional by its unique ID.
func (r *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pro models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pro); err != nil {
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &pro, nil
}

// ListByBusiness retrieves all professionals belonging to a business.
func (r *MongoProfessionalRepo) ListByBusiness(businessID string) ([]models.Professional, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	for cursor.Next(ctx) {
		var p models.Professional
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode professional: %w", err)
		}
		professionals = append(professionals, p)
	}
	return professionals, nil
}

// CountByBusiness counts the professionals belonging to a business.
func (r *MongoProfessionalRepo) CountByBusiness(businessID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return 0, fmt.Errorf("failed to count professionals: %w", err)
	}
	return int(count), nil
}

// Create inserts a new professional document.
func (r *MongoProfessionalRepo) Create(professional *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	professional.CreatedAt = now
	professional.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, professional)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

// UpdateWithDocument applies a partial update to a professional document.
func (r *MongoProfessionalRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

// Delete removes a professional document by its ID.
func (r *MongoProfessionalRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete professional with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}
