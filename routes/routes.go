package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/robsonrdev/AgendaFacil-saas/handlers"
	"github.com/robsonrdev/AgendaFacil-saas/middleware"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterBusinessHandler)
		api.POST("/login", hb.AuthenticateBusinessHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		api.DELETE("/token", hb.RevokeAuthTokenHandler)
	}
}

// RegisterDashboardRoutes registers the owner-facing endpoints. Everything
// here is scoped to the authenticated business.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
	{
		api.GET("/business", hb.GetBusinessHandler)
		api.PUT("/business/settings", hb.UpdateSettingsHandler)
		api.GET("/business/plan", hb.GetPlanUsageHandler)

		api.GET("/services", hb.ListServicesHandler)
		api.POST("/services", hb.CreateServiceHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.PATCH("/services/:id/active", hb.ToggleServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)

		api.GET("/professionals", hb.ListProfessionalsHandler)
		api.POST("/professionals", hb.CreateProfessionalHandler)
		api.PUT("/professionals/:id", hb.UpdateProfessionalHandler)
		api.PATCH("/professionals/:id/active", hb.ToggleProfessionalHandler)
		api.DELETE("/professionals/:id", hb.DeleteProfessionalHandler)

		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.POST("/appointments", hb.CreateAppointmentHandler)
		api.PATCH("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)
		api.GET("/appointments/watch", hb.WatchAppointmentsHandler)

		api.POST("/billing/checkout", hb.CreateCheckoutHandler)
	}
}

// RegisterBookingRoutes registers the public booking flow. These endpoints
// are unauthenticated; customers reach them through the shared link.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/:businessID", hb.GetBusinessPageHandler)
		bookingGroup.GET("/:businessID/slots", hb.GetAvailabilityHandler)
		bookingGroup.POST("/:businessID/session", hb.StartSessionHandler)

		bookingGroup.GET("/session/:sessionID", hb.GetSessionHandler)
		bookingGroup.PUT("/session/:sessionID/service", hb.SelectServiceHandler)
		bookingGroup.PUT("/session/:sessionID/slot", hb.SelectSlotHandler)
		bookingGroup.PUT("/session/:sessionID/details", hb.SubmitDetailsHandler)
		bookingGroup.POST("/session/:sessionID/back", hb.SessionBackHandler)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
	}
}

// RegisterWebhookRoutes registers the Stripe webhook endpoint. It stays
// outside the authenticated groups; its own signature check is the auth.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/billing/webhook", hb.StripeWebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "Route not found", c.Request.Method+" "+c.Request.URL.Path)
	})

	RegisterAuthRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterHealthRoute(r)
}
