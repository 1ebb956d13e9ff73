package serviceRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// ListByBusiness retrieves all services owned by a business.
	ListByBusiness(businessID string) ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// UpdateWithDocument applies a partial $set update to a service record.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
