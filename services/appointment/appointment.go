// Package appointment serves the dashboard's view of reservations.
package appointment

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/appointment"
	serviceRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/service"
	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// CreateInput is a reservation entered manually from the dashboard, for
// walk-ins and phone bookings.
type CreateInput struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"` // "2006-01-02"
	Time          string `json:"time"` // "HH:MM"
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// AppointmentService defines the owner-side reservation operations.
// Reservations are never deleted; the owner only moves their status.
type AppointmentService interface {
	ListForDay(businessID string, date time.Time) ([]models.Appointment, error)
	Create(businessID string, in CreateInput) (*models.Appointment, error)
	UpdateStatus(businessID, appointmentID string, status models.AppointmentStatus) error
	Watch(ctx context.Context, businessID string) (<-chan models.Appointment, error)
}

// DefaultAppointmentService is the production implementation of AppointmentService.
type DefaultAppointmentService struct {
	Repo        appointmentRepo.AppointmentRepository
	ServiceRepo serviceRepo.ServiceRepository
}

// NewAppointmentService constructs the default appointment service.
func NewAppointmentService(repo appointmentRepo.AppointmentRepository, svcRepo serviceRepo.ServiceRepository) *DefaultAppointmentService {
	return &DefaultAppointmentService{Repo: repo, ServiceRepo: svcRepo}
}

// ListForDay returns the business's appointments for one calendar day,
// ordered by time.
func (s *DefaultAppointmentService) ListForDay(businessID string, date time.Time) ([]models.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return s.Repo.ListByBusinessAndRange(businessID, dayStart, dayEnd)
}

// Create writes a pending reservation on behalf of the owner. The same
// service snapshot rules apply as for customer bookings.
func (s *DefaultAppointmentService) Create(businessID string, in CreateInput) (*models.Appointment, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, fmt.Errorf("customer name and phone are required")
	}

	svc, err := s.ServiceRepo.GetByID(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc.BusinessID != businessID {
		return nil, fmt.Errorf("service does not belong to this business")
	}

	when, err := utils.CombineDateTime(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	appt := models.NewAppointment(businessID, *svc, when, in.Time, in.CustomerName, in.CustomerPhone)
	if err := s.Repo.Create(&appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appt, nil
}

// UpdateStatus moves a reservation to confirmed or canceled. Any other
// target status is rejected; pending is entry-only.
func (s *DefaultAppointmentService) UpdateStatus(businessID, appointmentID string, status models.AppointmentStatus) error {
	if !models.ValidStatusUpdate(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.Repo.UpdateStatus(appointmentID, businessID, status)
}

// Watch streams the business's appointment writes for the dashboard's live
// view until ctx is canceled.
func (s *DefaultAppointmentService) Watch(ctx context.Context, businessID string) (<-chan models.Appointment, error) {
	return s.Repo.Watch(ctx, businessID)
}
