package models

// BookingConfirmation is returned to the customer once an appointment is
// written. The calendar URL is a prefilled Google Calendar template link for
// the success screen; nothing is written to any calendar server-side.
type BookingConfirmation struct {
	AppointmentID     string `json:"appointmentId"`
	BusinessName      string `json:"businessName"`
	ServiceName       string `json:"serviceName"`
	ServicePrice      string `json:"servicePrice"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Status            AppointmentStatus `json:"status"`
	GoogleCalendarURL string `json:"googleCalendarUrl"`
	WhatsAppURL       string `json:"whatsAppUrl"`
}
