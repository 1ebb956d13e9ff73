package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

const calendarTimeLayout = "20060102T150405"

// buildConfirmation assembles the success-screen payload. Both links are
// client-side templates: the calendar URL prefills a Google Calendar event
// and the WhatsApp URL opens a chat with the business, nothing is sent or
// written server-side.
func buildConfirmation(appt models.Appointment, biz *models.Business, durationMinutes int) models.BookingConfirmation {
	return models.BookingConfirmation{
		AppointmentID:     appt.ID,
		BusinessName:      biz.BusinessName,
		ServiceName:       appt.ServiceName,
		ServicePrice:      appt.ServicePrice,
		Date:              appt.Date.Format("2006-01-02"),
		Time:              appt.Time,
		Status:            appt.Status,
		GoogleCalendarURL: googleCalendarURL(appt, biz, durationMinutes),
		WhatsAppURL:       whatsAppURL(appt, biz),
	}
}

func googleCalendarURL(appt models.Appointment, biz *models.Business, durationMinutes int) string {
	start := appt.Date
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", appt.ServiceName+" - "+biz.BusinessName)
	q.Set("dates", start.Format(calendarTimeLayout)+"/"+end.Format(calendarTimeLayout))
	q.Set("details", "Appointment at "+biz.BusinessName)
	if biz.Address != "" {
		q.Set("location", biz.Address)
	}
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

func whatsAppURL(appt models.Appointment, biz *models.Business) string {
	message := fmt.Sprintf("Hello! I booked %s on %s at %s under the name %s.",
		appt.ServiceName, appt.Date.Format("02/01/2006"), appt.Time, appt.CustomerName)

	q := url.Values{}
	q.Set("text", message)
	return "https://wa.me/" + phoneDigits(biz.Phone) + "?" + q.Encode()
}

// phoneDigits strips formatting so the number fits the wa.me path format.
func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
