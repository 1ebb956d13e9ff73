package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"github.com/robsonrdev/AgendaFacil-saas/config"
	"github.com/robsonrdev/AgendaFacil-saas/database"
	appointmentRepoPkg "github.com/robsonrdev/AgendaFacil-saas/database/repository/appointment"
	businessRepoPkg "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"
	professionalRepoPkg "github.com/robsonrdev/AgendaFacil-saas/database/repository/professional"
	serviceRepoPkg "github.com/robsonrdev/AgendaFacil-saas/database/repository/service"
	"github.com/robsonrdev/AgendaFacil-saas/handlers"
	"github.com/robsonrdev/AgendaFacil-saas/middleware"
	"github.com/robsonrdev/AgendaFacil-saas/routes"
	appointmentSvc "github.com/robsonrdev/AgendaFacil-saas/services/appointment"
	"github.com/robsonrdev/AgendaFacil-saas/services/billing"
	"github.com/robsonrdev/AgendaFacil-saas/services/booking"
	"github.com/robsonrdev/AgendaFacil-saas/services/business"
	"github.com/robsonrdev/AgendaFacil-saas/services/catalog"
	"github.com/robsonrdev/AgendaFacil-saas/services/staff"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bizRepo := businessRepoPkg.NewMongoBusinessRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	proRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	businessService := business.NewBusinessService(bizRepo, apptRepo)
	catalogService := catalog.NewCatalogService(svcRepo)
	staffService := staff.NewStaffService(proRepo, bizRepo)
	appointmentService := appointmentSvc.NewAppointmentService(apptRepo, svcRepo)
	billingService := billing.NewBillingService(bizRepo)

	sessionStore := booking.NewRedisSessionStore(utils.GetCacheClient())
	bookingService := booking.NewBookingFlowService(bizRepo, svcRepo, apptRepo, businessService, sessionStore)

	// handlers.
	authHandler := handlers.NewAuthHandler(businessService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	staffHandler := handlers.NewStaffHandler(staffService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	billingHandler := handlers.NewBillingHandler(billingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BusinessRepo: bizRepo,

		// Auth endpoints.
		RegisterBusinessHandler:     authHandler.RegisterBusinessHandler,
		AuthenticateBusinessHandler: authHandler.AuthenticateBusinessHandler,
		RevokeAuthTokenHandler:      authHandler.RevokeAuthTokenHandler,

		// Business settings endpoints.
		GetBusinessHandler:    businessHandler.GetBusinessHandler,
		UpdateSettingsHandler: businessHandler.UpdateSettingsHandler,
		GetPlanUsageHandler:   businessHandler.GetPlanUsageHandler,
		CreateCheckoutHandler: billingHandler.CreateCheckoutHandler,
		StripeWebhookHandler:  billingHandler.StripeWebhookHandler,

		// Service catalog endpoints.
		ListServicesHandler:  catalogHandler.ListServicesHandler,
		CreateServiceHandler: catalogHandler.CreateServiceHandler,
		UpdateServiceHandler: catalogHandler.UpdateServiceHandler,
		ToggleServiceHandler: catalogHandler.ToggleServiceHandler,
		DeleteServiceHandler: catalogHandler.DeleteServiceHandler,

		// Professional endpoints.
		ListProfessionalsHandler:  staffHandler.ListProfessionalsHandler,
		CreateProfessionalHandler: staffHandler.CreateProfessionalHandler,
		UpdateProfessionalHandler: staffHandler.UpdateProfessionalHandler,
		ToggleProfessionalHandler: staffHandler.ToggleProfessionalHandler,
		DeleteProfessionalHandler: staffHandler.DeleteProfessionalHandler,

		// Appointment endpoints.
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		CreateAppointmentHandler:       appointmentHandler.CreateAppointmentHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,
		WatchAppointmentsHandler:       appointmentHandler.WatchAppointmentsHandler,

		// Public booking endpoints.
		GetBusinessPageHandler: bookingHandler.GetBusinessPageHandler,
		GetAvailabilityHandler: bookingHandler.GetAvailabilityHandler,
		StartSessionHandler:    bookingHandler.StartSessionHandler,
		GetSessionHandler:      bookingHandler.GetSessionHandler,
		SelectServiceHandler:   bookingHandler.SelectServiceHandler,
		SelectSlotHandler:      bookingHandler.SelectSlotHandler,
		SubmitDetailsHandler:   bookingHandler.SubmitDetailsHandler,
		SessionBackHandler:     bookingHandler.SessionBackHandler,
		ConfirmBookingHandler:  bookingHandler.ConfirmBookingHandler,
		CancelSessionHandler:   bookingHandler.CancelSessionHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for an interrupt signal for graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
