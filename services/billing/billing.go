// Package billing handles Stripe subscription checkout and the webhook
// side of plan upgrades.
package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/robsonrdev/AgendaFacil-saas/config"
	businessRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"
	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// ErrUnknownTier is returned when checkout is requested for a tier that has
// no Stripe price configured.
var ErrUnknownTier = errors.New("no price configured for the requested plan")

// BillingService defines the subscription operations.
type BillingService interface {
	// CreateCheckoutSession opens a Stripe checkout for upgrading to the
	// given paid tier and returns the hosted payment URL.
	CreateCheckoutSession(businessID string, tier models.PlanTier) (string, error)
	// HandleCheckoutCompleted applies a verified checkout.session.completed
	// event, flipping the business onto the purchased plan.
	HandleCheckoutCompleted(cs stripe.CheckoutSession) error
}

// DefaultBillingService is the production implementation of BillingService.
type DefaultBillingService struct {
	BusinessRepo businessRepo.BusinessRepository
}

// NewBillingService constructs the default billing service.
func NewBillingService(bizRepo businessRepo.BusinessRepository) *DefaultBillingService {
	return &DefaultBillingService{BusinessRepo: bizRepo}
}

func priceForTier(tier models.PlanTier) (string, error) {
	switch tier {
	case models.TierPro:
		if config.AppConfig.StripePricePro != "" {
			return config.AppConfig.StripePricePro, nil
		}
	case models.TierBusiness:
		if config.AppConfig.StripePriceBusiness != "" {
			return config.AppConfig.StripePriceBusiness, nil
		}
	}
	return "", ErrUnknownTier
}

// CreateCheckoutSession opens a subscription-mode checkout. The business ID
// and target tier travel in the session metadata so the webhook can apply
// the upgrade without any extra lookup.
func (s *DefaultBillingService) CreateCheckoutSession(businessID string, tier models.PlanTier) (string, error) {
	priceID, err := priceForTier(tier)
	if err != nil {
		return "", err
	}

	biz, err := s.BusinessRepo.GetByIDWithProjection(businessID, bson.M{"email": 1})
	if err != nil {
		return "", fmt.Errorf("failed to load business: %w", err)
	}

	stripe.Key = config.AppConfig.StripeKey

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(biz.Email),
		SuccessURL:    stripe.String(config.AppConfig.PublicURL + "/dashboard/plan?checkout=success"),
		CancelURL:     stripe.String(config.AppConfig.PublicURL + "/dashboard/plan?checkout=canceled"),
	}
	params.AddMetadata("businessId", businessID)
	params.AddMetadata("tier", string(tier))

	checkout, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return checkout.URL, nil
}

// HandleCheckoutCompleted flips the business onto the purchased tier. A
// missing or unknown tier in the metadata falls back to pro, the historical
// single paid plan.
func (s *DefaultBillingService) HandleCheckoutCompleted(cs stripe.CheckoutSession) error {
	logger := utils.GetLogger()

	businessID := cs.Metadata["businessId"]
	if businessID == "" {
		return fmt.Errorf("checkout session %s has no businessId metadata", cs.ID)
	}

	tier, err := models.ParsePlanTier(cs.Metadata["tier"])
	if err != nil {
		tier = models.TierPro
	}

	update := bson.M{"plan": string(tier), "updatedAt": time.Now()}
	if err := s.BusinessRepo.UpdateWithDocument(businessID, update); err != nil {
		return fmt.Errorf("failed to apply plan upgrade: %w", err)
	}

	logger.Info("Plan upgraded",
		zap.String("businessID", businessID),
		zap.String("tier", string(tier)),
		zap.String("checkoutSession", cs.ID),
	)
	return nil
}
