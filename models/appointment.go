package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of a reservation.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// ValidStatusUpdate reports whether the owner may set an appointment to s.
// Appointments are created pending and only ever confirmed or canceled;
// records are never physically deleted.
func ValidStatusUpdate(s AppointmentStatus) bool {
	return s == StatusConfirmed || s == StatusCanceled
}

// Appointment is a reservation of one slot. Service fields are denormalized
// at write time so the dashboard keeps showing what was booked even after
// the service is edited; price and duration are stored as display strings.
type Appointment struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`

	ServiceID       string `bson:"serviceId" json:"serviceId"`
	ServiceName     string `bson:"serviceName" json:"serviceName"`
	ServicePrice    string `bson:"servicePrice" json:"servicePrice"`
	ServiceDuration string `bson:"serviceDuration" json:"serviceDuration"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`

	// Date is the full reservation date-time; Time is the same time of day
	// stored separately as "HH:MM" for slot-set comparisons.
	Date time.Time `bson:"date" json:"date"`
	Time string    `bson:"time" json:"time"`

	Status    AppointmentStatus `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}

// NewAppointment builds a pending reservation, denormalizing the service
// fields into their stored display form.
func NewAppointment(businessID string, svc Service, date time.Time, timeOfDay, customerName, customerPhone string) Appointment {
	return Appointment{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServicePrice:    fmt.Sprintf("%.2f", svc.Price),
		ServiceDuration: fmt.Sprintf("%d min", svc.Duration),
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		Date:            date,
		Time:            timeOfDay,
		Status:          StatusPending,
	}
}
