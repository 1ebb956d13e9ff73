package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robsonrdev/AgendaFacil-saas/config"
	"github.com/robsonrdev/AgendaFacil-saas/models"
)

const testWebhookSecret = "whsec_test_secret"

type recordingBillingService struct {
	completed []stripe.CheckoutSession
	checkout  string
}

func (r *recordingBillingService) CreateCheckoutSession(businessID string, tier models.PlanTier) (string, error) {
	return r.checkout, nil
}

func (r *recordingBillingService) HandleCheckoutCompleted(cs stripe.CheckoutSession) error {
	r.completed = append(r.completed, cs)
	return nil
}

func webhookRouter(svc *recordingBillingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBillingHandler(svc)
	r.POST("/api/billing/webhook", h.StripeWebhookHandler)
	return r
}

func checkoutCompletedPayload() string {
	return fmt.Sprintf(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test_1",
				"object": "checkout.session",
				"metadata": {"businessId": "biz-1", "tier": "pro"}
			}
		}
	}`, stripe.APIVersion)
}

// signPayload produces a Stripe-Signature header the way Stripe signs
// webhook deliveries: HMAC-SHA256 over "<timestamp>.<body>".
func signPayload(payload, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeWebhookAppliesSignedCheckoutEvent(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret

	svc := &recordingBillingService{}
	router := webhookRouter(svc)

	payload := checkoutCompletedPayload()
	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, testWebhookSecret))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.completed, 1)
	assert.Equal(t, "biz-1", svc.completed[0].Metadata["businessId"])
	assert.Equal(t, "pro", svc.completed[0].Metadata["tier"])
}

func TestStripeWebhookRejectsBadSignature(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret

	svc := &recordingBillingService{}
	router := webhookRouter(svc)

	payload := checkoutCompletedPayload()
	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, "whsec_wrong_secret"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.completed)
}

func TestStripeWebhookRejectsMissingSignature(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret

	svc := &recordingBillingService{}
	router := webhookRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(checkoutCompletedPayload()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.completed)
}

func TestStripeWebhookIgnoresOtherEventTypes(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret

	svc := &recordingBillingService{}
	router := webhookRouter(svc)

	payload := fmt.Sprintf(`{
		"id": "evt_test_2",
		"object": "event",
		"api_version": %q,
		"type": "invoice.paid",
		"data": {"object": {"id": "in_test_1", "object": "invoice"}}
	}`, stripe.APIVersion)

	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, testWebhookSecret))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.completed)
}
