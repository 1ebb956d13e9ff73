package professionalRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// ProfessionalRepository defines methods for staff profile data access.
type ProfessionalRepository interface {
	// GetByID retrieves a professional by its unique ID.
	GetByID(id string) (*models.Professional, error)
	// ListByBusiness retrieves all professionals belonging to a business.
	ListByBusiness(businessID string) ([]models.Professional, error)
	// CountByBusiness counts the professionals belonging to a business.
	CountByBusiness(businessID string) (int, error)
	// Create inserts a new professional record.
	Create(professional *models.Professional) error
	// UpdateWithDocument applies a partial $set update to a professional record.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a professional record by its ID.
	Delete(id string) error
}
