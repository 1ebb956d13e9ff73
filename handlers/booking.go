package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/services/booking"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// BookingHandler exposes the public booking page endpoints. None of these
// require authentication; every lookup is keyed by the business ID in the
// shared link.
type BookingHandler struct {
	Service booking.BookingFlowService
}

// NewBookingHandler creates a BookingHandler backed by the given service.
func NewBookingHandler(svc booking.BookingFlowService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, booking.ErrBusinessNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrBookingLimitReached):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrServiceUnavailable),
		errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Booking flow error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// GetBusinessPageHandler handles GET /api/booking/:businessID.
func (h *BookingHandler) GetBusinessPageHandler(c *gin.Context) {
	profile, err := h.Service.PublicProfile(c.Param("businessID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetAvailabilityHandler handles GET /api/booking/:businessID/slots?date=2006-01-02.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.AvailableSlots(c.Param("businessID"), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// StartSessionHandler handles POST /api/booking/:businessID/session. The
// body is optional; {"serviceId": "..."} preselects that service and skips
// the service step.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	session, err := h.Service.StartSession(c.Request.Context(), c.Param("businessID"), req.ServiceID)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSessionHandler handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectServiceHandler handles PUT /api/booking/session/:sessionID/service.
func (h *BookingHandler) SelectServiceHandler(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), req.ServiceID)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlotHandler handles PUT /api/booking/session/:sessionID/slot.
func (h *BookingHandler) SelectSlotHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.SelectSlot(c.Request.Context(), c.Param("sessionID"), req.Date, req.Time)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitDetailsHandler handles PUT /api/booking/session/:sessionID/details.
func (h *BookingHandler) SubmitDetailsHandler(c *gin.Context) {
	var req struct {
		CustomerName  string `json:"customerName" binding:"required"`
		CustomerPhone string `json:"customerPhone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.SubmitDetails(c.Request.Context(), c.Param("sessionID"), req.CustomerName, req.CustomerPhone)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SessionBackHandler handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) SessionBackHandler(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBookingHandler handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	confirmation, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// CancelSessionHandler handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session canceled"})
}
