// Package staff manages a business's professional profiles, capped by the
// subscription plan.
package staff

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	businessRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"
	professionalRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/professional"
	"github.com/robsonrdev/AgendaFacil-saas/models"
)

var (
	// ErrPlanLimitReached is returned when adding a professional would
	// exceed the plan's headcount cap.
	ErrPlanLimitReached = errors.New("professional limit reached for the current plan")
	// ErrNotOwned is returned when a professional belongs to another business.
	ErrNotOwned = errors.New("professional does not belong to this business")
)

// ProfessionalInput carries the editable fields of a staff profile.
type ProfessionalInput struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`
}

// StaffService defines professional profile operations.
type StaffService interface {
	List(businessID string) ([]models.Professional, error)
	Create(businessID string, in ProfessionalInput) (*models.Professional, error)
	Update(businessID, professionalID string, in ProfessionalInput) (*models.Professional, error)
	SetActive(businessID, professionalID string, active bool) error
	Delete(businessID, professionalID string) error
}

// DefaultStaffService is the production implementation of StaffService.
type DefaultStaffService struct {
	Repo         professionalRepo.ProfessionalRepository
	BusinessRepo businessRepo.BusinessRepository
}

// NewStaffService constructs the default staff service.
func NewStaffService(repo professionalRepo.ProfessionalRepository, bizRepo businessRepo.BusinessRepository) *DefaultStaffService {
	return &DefaultStaffService{Repo: repo, BusinessRepo: bizRepo}
}

// List returns every professional of the business.
func (s *DefaultStaffService) List(businessID string) ([]models.Professional, error) {
	return s.Repo.ListByBusiness(businessID)
}

// Create adds a professional after checking the plan's headcount cap.
// Inactive profiles count against the cap just like active ones.
func (s *DefaultStaffService) Create(businessID string, in ProfessionalInput) (*models.Professional, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("professional name is required")
	}

	biz, err := s.BusinessRepo.GetByIDWithProjection(businessID, bson.M{"plan": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to load business plan: %w", err)
	}
	count, err := s.Repo.CountByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to count professionals: %w", err)
	}

	limits := models.PlanTierOrStart(biz.Plan).Limits()
	if !limits.AllowsProfessionals(count + 1) {
		return nil, ErrPlanLimitReached
	}

	pro := &models.Professional{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        in.Name,
		Level:       in.Level,
		Description: in.Description,
		PhotoURL:    in.PhotoURL,
		Active:      true,
	}
	if err := s.Repo.Create(pro); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}
	return pro, nil
}

func (s *DefaultStaffService) owned(businessID, professionalID string) (*models.Professional, error) {
	pro, err := s.Repo.GetByID(professionalID)
	if err != nil {
		return nil, err
	}
	if pro.BusinessID != businessID {
		return nil, ErrNotOwned
	}
	return pro, nil
}

// Update edits a professional's profile fields.
func (s *DefaultStaffService) Update(businessID, professionalID string, in ProfessionalInput) (*models.Professional, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("professional name is required")
	}
	if _, err := s.owned(businessID, professionalID); err != nil {
		return nil, err
	}

	update := bson.M{
		"name":        in.Name,
		"level":       in.Level,
		"description": in.Description,
		"photoUrl":    in.PhotoURL,
		"updatedAt":   time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(professionalID, update); err != nil {
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}
	return s.Repo.GetByID(professionalID)
}

// SetActive toggles a professional's visibility on the public page.
func (s *DefaultStaffService) SetActive(businessID, professionalID string, active bool) error {
	if _, err := s.owned(businessID, professionalID); err != nil {
		return err
	}
	update := bson.M{"active": active, "updatedAt": time.Now()}
	if err := s.Repo.UpdateWithDocument(professionalID, update); err != nil {
		return fmt.Errorf("failed to toggle professional: %w", err)
	}
	return nil
}

// Delete removes a professional, freeing a slot under the plan cap.
func (s *DefaultStaffService) Delete(businessID, professionalID string) error {
	if _, err := s.owned(businessID, professionalID); err != nil {
		return err
	}
	return s.Repo.Delete(professionalID)
}
