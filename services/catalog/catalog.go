// Package catalog manages a business's bookable service offerings.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	serviceRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/service"
	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// ErrNotOwned is returned when a service exists but belongs to another business.
var ErrNotOwned = errors.New("service does not belong to this business")

// ServiceInput carries the editable fields of a catalog entry.
type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

// CatalogService defines service catalog operations, all scoped to the
// owning business.
type CatalogService interface {
	List(businessID string) ([]models.Service, error)
	ListActive(businessID string) ([]models.Service, error)
	Get(businessID, serviceID string) (*models.Service, error)
	Create(businessID string, in ServiceInput) (*models.Service, error)
	Update(businessID, serviceID string, in ServiceInput) (*models.Service, error)
	SetActive(businessID, serviceID string, active bool) error
	Delete(businessID, serviceID string) error
}

// DefaultCatalogService is the production implementation of CatalogService.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

// NewCatalogService constructs the default catalog service.
func NewCatalogService(repo serviceRepo.ServiceRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo}
}

func (in ServiceInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if in.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if in.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	return nil
}

// List returns every service of the business, active or not.
func (s *DefaultCatalogService) List(businessID string) ([]models.Service, error) {
	return s.Repo.ListByBusiness(businessID)
}

// ListActive returns only the services currently offered for booking.
func (s *DefaultCatalogService) ListActive(businessID string) ([]models.Service, error) {
	all, err := s.Repo.ListByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	active := make([]models.Service, 0, len(all))
	for _, svc := range all {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return active, nil
}

// Get retrieves one service and verifies ownership.
func (s *DefaultCatalogService) Get(businessID, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.BusinessID != businessID {
		return nil, ErrNotOwned
	}
	return svc, nil
}

// Create adds a new active service to the catalog.
func (s *DefaultCatalogService) Create(businessID string, in ServiceInput) (*models.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	svc := &models.Service{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Active:      true,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// Update edits a service's fields. Existing appointments keep the service
// snapshot taken when they were booked.
func (s *DefaultCatalogService) Update(businessID, serviceID string, in ServiceInput) (*models.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.Get(businessID, serviceID); err != nil {
		return nil, err
	}

	update := bson.M{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"duration":    in.Duration,
		"updatedAt":   time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(serviceID, update); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.Repo.GetByID(serviceID)
}

// SetActive toggles whether the service is offered on the booking page.
func (s *DefaultCatalogService) SetActive(businessID, serviceID string, active bool) error {
	if _, err := s.Get(businessID, serviceID); err != nil {
		return err
	}
	update := bson.M{"active": active, "updatedAt": time.Now()}
	if err := s.Repo.UpdateWithDocument(serviceID, update); err != nil {
		return fmt.Errorf("failed to toggle service: %w", err)
	}
	return nil
}

// Delete removes the service from the catalog.
func (s *DefaultCatalogService) Delete(businessID, serviceID string) error {
	if _, err := s.Get(businessID, serviceID); err != nil {
		return err
	}
	return s.Repo.Delete(serviceID)
}
