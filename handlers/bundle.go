package handlers

import (
	businessRepoPkg "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	BusinessRepo businessRepoPkg.BusinessRepository

	// Auth endpoints
	RegisterBusinessHandler     gin.HandlerFunc
	AuthenticateBusinessHandler gin.HandlerFunc
	RevokeAuthTokenHandler      gin.HandlerFunc

	// Business settings endpoints
	GetBusinessHandler    gin.HandlerFunc
	UpdateSettingsHandler gin.HandlerFunc
	GetPlanUsageHandler   gin.HandlerFunc
	CreateCheckoutHandler gin.HandlerFunc
	StripeWebhookHandler  gin.HandlerFunc

	// Service catalog endpoints
	ListServicesHandler  gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	ToggleServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// Professional endpoints
	ListProfessionalsHandler  gin.HandlerFunc
	CreateProfessionalHandler gin.HandlerFunc
	UpdateProfessionalHandler gin.HandlerFunc
	ToggleProfessionalHandler gin.HandlerFunc
	DeleteProfessionalHandler gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler        gin.HandlerFunc
	CreateAppointmentHandler       gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	WatchAppointmentsHandler       gin.HandlerFunc

	// Public booking endpoints
	GetBusinessPageHandler gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc
	StartSessionHandler    gin.HandlerFunc
	GetSessionHandler      gin.HandlerFunc
	SelectServiceHandler   gin.HandlerFunc
	SelectSlotHandler      gin.HandlerFunc
	SubmitDetailsHandler   gin.HandlerFunc
	SessionBackHandler     gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc
}

// businessIDFrom reads the authenticated business ID set by the auth
// middleware.
func businessIDFrom(c *gin.Context) (string, bool) {
	id, ok := c.Get("businessID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		return "", false
	}
	return idStr, true
}
