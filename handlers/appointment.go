package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/models"
	appointmentSvc "github.com/robsonrdev/AgendaFacil-saas/services/appointment"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// AppointmentHandler exposes the dashboard's reservation endpoints.
type AppointmentHandler struct {
	Service appointmentSvc.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler backed by the given service.
func NewAppointmentHandler(svc appointmentSvc.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ListAppointmentsHandler handles GET /api/appointments?date=2006-01-02.
// Without a date it serves today's agenda.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	appointments, err := h.Service.ListForDay(businessID, day)
	if err != nil {
		logger.Error("Failed to list appointments", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointmentHandler handles POST /api/appointments for walk-ins
// entered by the owner.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req appointmentSvc.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.Create(businessID, req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointmentStatusHandler handles PATCH /api/appointments/:id/status.
// Reservations are never deleted, only confirmed or canceled.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateStatus(businessID, c.Param("id"), req.Status); err != nil {
		logger.Error("Failed to update appointment status",
			zap.String("businessID", businessID),
			zap.String("appointmentID", c.Param("id")),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated"})
}

// WatchAppointmentsHandler handles GET /api/appointments/watch. It serves
// the business's appointment writes as server-sent events so the dashboard
// updates without polling.
func (h *AppointmentHandler) WatchAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	ctx := c.Request.Context()
	events, err := h.Service.Watch(ctx, businessID)
	if err != nil {
		logger.Error("Failed to open appointment stream", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open appointment stream"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case appt, open := <-events:
			if !open {
				return false
			}
			c.SSEvent("appointment", appt)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
