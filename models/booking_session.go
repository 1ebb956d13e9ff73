package models

import (
	"errors"
	"fmt"
	"time"
)

// BookingStep is one state of the public booking flow.
type BookingStep string

const (
	StepService  BookingStep = "service"
	StepDateTime BookingStep = "datetime"
	StepDetails  BookingStep = "details"
	StepConfirm  BookingStep = "confirm"
	StepSuccess  BookingStep = "success"
)

var stepOrder = []BookingStep{StepService, StepDateTime, StepDetails, StepConfirm, StepSuccess}

// ErrInvalidTransition is returned when a step method is called out of order.
var ErrInvalidTransition = errors.New("invalid booking step transition")

// BookingSession is the state of one customer's pass through the booking
// flow. It is a value type: every transition returns the updated session,
// and the flow service persists it between requests.
type BookingSession struct {
	ID         string      `json:"id"`
	BusinessID string      `json:"businessId"`
	Step       BookingStep `json:"step"`

	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ServiceDuration int     `json:"serviceDuration"`

	Date string `json:"date"` // "2006-01-02"
	Time string `json:"time"` // "HH:MM"

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	CreatedAt time.Time `json:"createdAt"`
}

func (s BookingSession) require(step BookingStep) error {
	if s.Step != step {
		return fmt.Errorf("%w: at %q, expected %q", ErrInvalidTransition, s.Step, step)
	}
	return nil
}

// WithService records the chosen service and advances to the datetime step.
func (s BookingSession) WithService(svc Service) (BookingSession, error) {
	if err := s.require(StepService); err != nil {
		return s, err
	}
	s.ServiceID = svc.ID
	s.ServiceName = svc.Name
	s.ServicePrice = svc.Price
	s.ServiceDuration = svc.Duration
	s.Step = StepDateTime
	return s, nil
}

// WithSlot records the chosen date and time and advances to the details step.
func (s BookingSession) WithSlot(date, timeOfDay string) (BookingSession, error) {
	if err := s.require(StepDateTime); err != nil {
		return s, err
	}
	if date == "" || timeOfDay == "" {
		return s, errors.New("date and time are required")
	}
	s.Date = date
	s.Time = timeOfDay
	s.Step = StepDetails
	return s, nil
}

// WithCustomer records the customer contact fields and advances to confirm.
func (s BookingSession) WithCustomer(name, phone string) (BookingSession, error) {
	if err := s.require(StepDetails); err != nil {
		return s, err
	}
	if name == "" || phone == "" {
		return s, errors.New("customer name and phone are required")
	}
	s.CustomerName = name
	s.CustomerPhone = phone
	s.Step = StepConfirm
	return s, nil
}

// Confirmed marks the flow finished after the appointment write succeeds.
func (s BookingSession) Confirmed() (BookingSession, error) {
	if err := s.require(StepConfirm); err != nil {
		return s, err
	}
	s.Step = StepSuccess
	return s, nil
}

// Back steps the flow one state backwards. The first and final states stay
// where they are.
func (s BookingSession) Back() BookingSession {
	if s.Step == StepSuccess {
		return s
	}
	for i, step := range stepOrder {
		if step == s.Step && i > 0 {
			s.Step = stepOrder[i-1]
			break
		}
	}
	return s
}
