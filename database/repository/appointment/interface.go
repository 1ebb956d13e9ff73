package appointmentRepo

import (
	"context"
	"time"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// AppointmentRepository defines methods for reservation data access.
// Appointments are append-and-update only; nothing here deletes records.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// ListByBusinessAndRange retrieves a business's appointments with
	// start <= date < end, ordered by date ascending.
	ListByBusinessAndRange(businessID string, start, end time.Time) ([]models.Appointment, error)
	// ListBookedTimes returns the time-of-day strings of non-canceled
	// appointments for a business within [start, end).
	ListBookedTimes(businessID string, start, end time.Time) ([]string, error)
	// CountForRange counts a business's appointments with start <= date < end.
	CountForRange(businessID string, start, end time.Time) (int, error)
	// Create inserts a new appointment record. There is no slot lock: two
	// concurrent creates for the same slot both succeed.
	Create(appointment *models.Appointment) error
	// UpdateStatus sets the status of one of the business's appointments.
	UpdateStatus(id, businessID string, status models.AppointmentStatus) error
	// Watch streams the business's appointment writes until ctx is done.
	Watch(ctx context.Context, businessID string) (<-chan models.Appointment, error)
}
