package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/services/business"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// BusinessHandler exposes the dashboard's settings endpoints.
type BusinessHandler struct {
	Service business.BusinessService
}

// NewBusinessHandler creates a BusinessHandler backed by the given service.
func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// GetBusinessHandler handles GET /api/business.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	biz, err := h.Service.GetByID(businessID)
	if err != nil {
		logger.Error("Business not found", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// UpdateSettingsHandler handles PUT /api/business/settings.
func (h *BusinessHandler) UpdateSettingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req business.SettingsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	biz, err := h.Service.UpdateSettings(businessID, req)
	if err != nil {
		logger.Error("Failed to update settings", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// GetPlanUsageHandler handles GET /api/business/plan.
func (h *BusinessHandler) GetPlanUsageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	status, err := h.Service.CheckMonthlyLimit(businessID)
	if err != nil {
		logger.Error("Failed to check plan usage", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check plan usage"})
		return
	}
	c.JSON(http.StatusOK, status)
}
