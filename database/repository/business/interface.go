package businessRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// BusinessRepository defines methods for business (tenant) data access.
type BusinessRepository interface {
	// GetByID retrieves a business by its unique ID.
	GetByID(id string) (*models.Business, error)
	// GetByIDWithProjection retrieves a business by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Business, error)
	// GetByEmail retrieves a business by its owner email; (nil, nil) when absent.
	GetByEmail(email string) (*models.Business, error)
	// Create inserts a new business record.
	Create(business *models.Business) error
	// UpdateWithDocument applies a partial $set update to a business record.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a business record by its ID.
	Delete(id string) error
}
