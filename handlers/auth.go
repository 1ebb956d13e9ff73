package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/services/business"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// AuthHandler exposes account registration and login endpoints.
type AuthHandler struct {
	Service business.BusinessService
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc business.BusinessService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterBusinessHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterBusinessHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email        string `json:"email" binding:"required"`
		Password     string `json:"password" binding:"required"`
		BusinessName string `json:"businessName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Register(req.Email, req.Password, req.BusinessName)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrEmailInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, business.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register business", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register business"})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateBusinessHandler handles POST /api/auth/login.
func (h *AuthHandler) AuthenticateBusinessHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, business.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to authenticate business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeAuthTokenHandler handles DELETE /api/auth/token.
func (h *AuthHandler) RevokeAuthTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	if err := h.Service.RevokeAuthToken(businessID); err != nil {
		logger.Error("Failed to revoke token", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}
