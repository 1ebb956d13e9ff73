package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/services/staff"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// StaffHandler exposes the dashboard's professional management endpoints.
type StaffHandler struct {
	Service staff.StaffService
}

// NewStaffHandler creates a StaffHandler backed by the given service.
func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

// ListProfessionalsHandler handles GET /api/professionals.
func (h *StaffHandler) ListProfessionalsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	pros, err := h.Service.List(businessID)
	if err != nil {
		logger.Error("Failed to list professionals", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list professionals"})
		return
	}
	c.JSON(http.StatusOK, pros)
}

// CreateProfessionalHandler handles POST /api/professionals. Hitting the
// plan's headcount cap answers 403 so the dashboard can prompt an upgrade.
func (h *StaffHandler) CreateProfessionalHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req staff.ProfessionalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pro, err := h.Service.Create(businessID, req)
	if err != nil {
		if errors.Is(err, staff.ErrPlanLimitReached) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pro)
}

// UpdateProfessionalHandler handles PUT /api/professionals/:id.
func (h *StaffHandler) UpdateProfessionalHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req staff.ProfessionalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pro, err := h.Service.Update(businessID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, staff.ErrNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pro)
}

// ToggleProfessionalHandler handles PATCH /api/professionals/:id/active.
func (h *StaffHandler) ToggleProfessionalHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetActive(businessID, c.Param("id"), *req.Active); err != nil {
		if errors.Is(err, staff.ErrNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Professional updated"})
}

// DeleteProfessionalHandler handles DELETE /api/professionals/:id.
func (h *StaffHandler) DeleteProfessionalHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	if err := h.Service.Delete(businessID, c.Param("id")); err != nil {
		if errors.Is(err, staff.ErrNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Professional deleted"})
}
