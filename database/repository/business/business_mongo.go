package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a business by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoBusinessRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &business, nil
}

// GetByID retrieves a business by its unique ID (full document).
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a business by its owner email address.
func (r *MongoBusinessRepo) GetByEmail(email string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&business); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business with email %s: %w", email, err)
	}
	return &business, nil
}

// Create inserts a new business document.
func (r *MongoBusinessRepo) Create(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, business)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// UpdateWithDocument applies a partial update, merging fields into the document.
func (r *MongoBusinessRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update business with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// Delete removes a business document by its ID.
func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete business with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}
