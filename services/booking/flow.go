// Package booking implements the public booking page: business profile,
// slot availability and the step-by-step reservation flow.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/appointment"
	businessRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"
	serviceRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/service"
	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/services/business"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// LimitChecker evaluates a business's monthly appointment quota.
type LimitChecker interface {
	CheckMonthlyLimit(businessID string) (*business.LimitStatus, error)
}

// BookingFlowService drives a customer through the reservation flow:
// service, datetime, details, confirm, success. Sessions live server-side;
// each step loads the session, applies one transition and saves it back.
type BookingFlowService interface {
	// PublicProfile returns the unauthenticated view of a business.
	PublicProfile(businessID string) (*models.PublicBusinessProfile, error)
	// AvailableSlots lists the open "HH:MM" slots for a "2006-01-02" date.
	AvailableSlots(businessID, date string) ([]string, error)
	// StartSession opens a new flow at the service step, refusing when the
	// business's monthly quota is exhausted. A non-empty serviceID preselects
	// that service and opens the flow at the datetime step instead.
	StartSession(ctx context.Context, businessID, serviceID string) (models.BookingSession, error)
	// GetSession loads the current state of a flow.
	GetSession(ctx context.Context, sessionID string) (models.BookingSession, error)
	// SelectService records the chosen service.
	SelectService(ctx context.Context, sessionID, serviceID string) (models.BookingSession, error)
	// SelectSlot records the chosen date and time after revalidating
	// availability.
	SelectSlot(ctx context.Context, sessionID, date, timeOfDay string) (models.BookingSession, error)
	// SubmitDetails records the customer's name and phone.
	SubmitDetails(ctx context.Context, sessionID, name, phone string) (models.BookingSession, error)
	// Back steps the flow one state backwards.
	Back(ctx context.Context, sessionID string) (models.BookingSession, error)
	// Confirm writes the appointment and finishes the flow.
	Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
	// CancelSession discards a flow.
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingFlowService is the production implementation of BookingFlowService.
type DefaultBookingFlowService struct {
	BusinessRepo    businessRepo.BusinessRepository
	ServiceRepo     serviceRepo.ServiceRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Limits          LimitChecker
	Sessions        SessionStore

	// Now is overridable for deterministic availability in tests.
	Now func() time.Time
}

// NewBookingFlowService constructs the default booking flow service.
func NewBookingFlowService(
	bizRepo businessRepo.BusinessRepository,
	svcRepo serviceRepo.ServiceRepository,
	apptRepo appointmentRepo.AppointmentRepository,
	limits LimitChecker,
	sessions SessionStore,
) *DefaultBookingFlowService {
	return &DefaultBookingFlowService{
		BusinessRepo:    bizRepo,
		ServiceRepo:     svcRepo,
		AppointmentRepo: apptRepo,
		Limits:          limits,
		Sessions:        sessions,
	}
}

func (s *DefaultBookingFlowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// PublicProfile assembles the booking page view: profile fields, active
// services and whether the quota gate currently blocks new bookings.
func (s *DefaultBookingFlowService) PublicProfile(businessID string) (*models.PublicBusinessProfile, error) {
	biz, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	all, err := s.ServiceRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	active := make([]models.Service, 0, len(all))
	for _, svc := range all {
		if svc.Active {
			active = append(active, svc)
		}
	}

	limit, err := s.Limits.CheckMonthlyLimit(businessID)
	if err != nil {
		return nil, err
	}

	return &models.PublicBusinessProfile{
		ID:           biz.ID,
		BusinessName: biz.BusinessName,
		Phone:        biz.Phone,
		Address:      biz.Address,
		Description:  biz.Description,
		Gallery:      biz.Gallery,
		Amenities:    biz.Amenities,
		Hours:        biz.Hours,
		Plan:         limit.Plan,
		Blocked:      limit.Blocked,
		Services:     active,
	}, nil
}

// AvailableSlots computes the open slots of a business for one date.
func (s *DefaultBookingFlowService) AvailableSlots(businessID, date string) ([]string, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	biz, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	dayEnd := day.AddDate(0, 0, 1)
	booked, err := s.AppointmentRepo.ListBookedTimes(businessID, day, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked times: %w", err)
	}

	return DaySlots(*biz, day, booked, s.now()), nil
}

// StartSession opens a new flow for a business. The quota gate runs here,
// once per flow; the confirm step does not re-check it. Passing a serviceID
// skips the service step, the entry point for "book this service" links.
func (s *DefaultBookingFlowService) StartSession(ctx context.Context, businessID, serviceID string) (models.BookingSession, error) {
	limit, err := s.Limits.CheckMonthlyLimit(businessID)
	if err != nil {
		return models.BookingSession{}, err
	}
	if limit.Blocked {
		return models.BookingSession{}, ErrBookingLimitReached
	}

	session := models.BookingSession{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Step:       models.StepService,
		CreatedAt:  s.now(),
	}
	if serviceID != "" {
		svc, err := s.ServiceRepo.GetByID(serviceID)
		if err != nil {
			return models.BookingSession{}, fmt.Errorf("failed to load service: %w", err)
		}
		if svc.BusinessID != businessID || !svc.Active {
			return models.BookingSession{}, ErrServiceUnavailable
		}
		session, err = session.WithService(*svc)
		if err != nil {
			return models.BookingSession{}, err
		}
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return models.BookingSession{}, err
	}
	return session, nil
}

// GetSession loads the current state of a flow.
func (s *DefaultBookingFlowService) GetSession(ctx context.Context, sessionID string) (models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// SelectService records the chosen service after verifying that it is
// active and belongs to the session's business.
func (s *DefaultBookingFlowService) SelectService(ctx context.Context, sessionID, serviceID string) (models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return session, err
	}

	svc, err := s.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return session, fmt.Errorf("failed to load service: %w", err)
	}
	if svc.BusinessID != session.BusinessID || !svc.Active {
		return session, ErrServiceUnavailable
	}

	session, err = session.WithService(*svc)
	if err != nil {
		return session, err
	}
	return session, s.Sessions.Save(ctx, session)
}

// SelectSlot records the chosen date and time. Availability is recomputed
// here so a slot booked since the calendar was rendered is refused.
func (s *DefaultBookingFlowService) SelectSlot(ctx context.Context, sessionID, date, timeOfDay string) (models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return session, err
	}

	slots, err := s.AvailableSlots(session.BusinessID, date)
	if err != nil {
		return session, err
	}
	open := false
	for _, slot := range slots {
		if slot == timeOfDay {
			open = true
			break
		}
	}
	if !open {
		return session, ErrSlotUnavailable
	}

	session, err = session.WithSlot(date, timeOfDay)
	if err != nil {
		return session, err
	}
	return session, s.Sessions.Save(ctx, session)
}

// SubmitDetails records the customer contact fields.
func (s *DefaultBookingFlowService) SubmitDetails(ctx context.Context, sessionID, name, phone string) (models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return session, err
	}
	session, err = session.WithCustomer(name, phone)
	if err != nil {
		return session, err
	}
	return session, s.Sessions.Save(ctx, session)
}

// Back steps the flow one state backwards.
func (s *DefaultBookingFlowService) Back(ctx context.Context, sessionID string) (models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return session, err
	}
	session = session.Back()
	return session, s.Sessions.Save(ctx, session)
}

// Confirm writes the pending appointment from the session snapshot and
// moves the flow to success. There is no slot lock between the availability
// check and the insert, so two customers confirming the same slot at once
// both get an appointment; the owner resolves the clash from the dashboard.
func (s *DefaultBookingFlowService) Confirm(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	done, err := session.Confirmed()
	if err != nil {
		return nil, err
	}

	when, err := utils.CombineDateTime(session.Date, session.Time)
	if err != nil {
		return nil, err
	}

	// Load the business before the insert so a lookup failure leaves the
	// session at confirm, where the customer can retry.
	biz, err := s.BusinessRepo.GetByID(session.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	svc := models.Service{
		ID:       session.ServiceID,
		Name:     session.ServiceName,
		Price:    session.ServicePrice,
		Duration: session.ServiceDuration,
	}
	appt := models.NewAppointment(session.BusinessID, svc, when, session.Time, session.CustomerName, session.CustomerPhone)
	if err := s.AppointmentRepo.Create(&appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.Sessions.Save(ctx, done); err != nil {
		// The appointment is already written; a stale session only costs
		// the success screen.
		logger.Warn("Failed to finalize booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("Appointment booked",
		zap.String("businessID", session.BusinessID),
		zap.String("appointmentID", appt.ID),
		zap.String("date", session.Date),
		zap.String("time", session.Time),
	)
	confirmation := buildConfirmation(appt, biz, session.ServiceDuration)
	return &confirmation, nil
}

// CancelSession discards a flow.
func (s *DefaultBookingFlowService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
