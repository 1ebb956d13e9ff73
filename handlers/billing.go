package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/config"
	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/services/billing"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

const maxWebhookBodyBytes = 65536

// BillingHandler exposes the subscription checkout and webhook endpoints.
type BillingHandler struct {
	Service billing.BillingService
}

// NewBillingHandler creates a BillingHandler backed by the given service.
func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Service: svc}
}

// CreateCheckoutHandler handles POST /api/billing/checkout.
func (h *BillingHandler) CreateCheckoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	businessID, ok := businessIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing business ID"})
		return
	}

	var req struct {
		Tier string `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, err := models.ParsePlanTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.Service.CreateCheckoutSession(businessID, tier)
	if err != nil {
		if errors.Is(err, billing.ErrUnknownTier) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create checkout session", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// StripeWebhookHandler handles POST /api/billing/webhook. The signature is
// verified against the webhook secret before anything is trusted; a bad
// signature answers 400 and changes nothing.
func (h *BillingHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		logger.Warn("Rejected webhook with invalid signature", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event payload"})
			return
		}
		if err := h.Service.HandleCheckoutCompleted(cs); err != nil {
			logger.Error("Failed to apply checkout completion", zap.String("event", event.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply event"})
			return
		}
	default:
		// Other event types are acknowledged and ignored.
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
