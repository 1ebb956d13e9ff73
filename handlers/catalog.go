package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/services/catalog"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// CatalogHandler exposes the dashboard's service catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler backed by the given service.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	services, err := h.Service.List(businessID)
	if err != nil {
		logger.Error("Failed to list services", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler handles POST /api/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.Service.Create(businessID, req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.Service.Update(businessID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ToggleServiceHandler handles PATCH /api/services/:id/active.
func (h *CatalogHandler) ToggleServiceHandler(c *gin.Context) {
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
		if errors.Is(err, catalog.ErrNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	if err := h.Service.Delete(businessID, c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrNotOwned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
