package billing

import (
	"testing"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

type recordingBusinessRepo struct {
	updatedID  string
	updatedDoc bson.M
}

func (r *recordingBusinessRepo) GetByID(id string) (*models.Business, error) {
	return &models.Business{ID: id, Email: "owner@example.com"}, nil
}

func (r *recordingBusinessRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Business, error) {
	return r.GetByID(id)
}

func (r *recordingBusinessRepo) GetByEmail(email string) (*models.Business, error) { return nil, nil }
func (r *recordingBusinessRepo) Create(b *models.Business) error                   { return nil }

func (r *recordingBusinessRepo) UpdateWithDocument(id string, doc bson.M) error {
	r.updatedID = id
	r.updatedDoc = doc
	return nil
}

func (r *recordingBusinessRepo) Delete(id string) error { return nil }

func completedSession(metadata map[string]string) stripe.CheckoutSession {
	return stripe.CheckoutSession{ID: "cs_test_1", Metadata: metadata}
}

func TestHandleCheckoutCompletedAppliesTier(t *testing.T) {
	repo := &recordingBusinessRepo{}
	svc := NewBillingService(repo)

	err := svc.HandleCheckoutCompleted(completedSession(map[string]string{
		"businessId": "biz-1",
		"tier":       "business",
	}))
	require.NoError(t, err)

	assert.Equal(t, "biz-1", repo.updatedID)
	assert.Equal(t, "business", repo.updatedDoc["plan"])
}

func TestHandleCheckoutCompletedDefaultsToPro(t *testing.T) {
	repo := &recordingBusinessRepo{}
	svc := NewBillingService(repo)

	err := svc.HandleCheckoutCompleted(completedSession(map[string]string{
		"businessId": "biz-1",
		"tier":       "gold",
	}))
	require.NoError(t, err)
	assert.Equal(t, "pro", repo.updatedDoc["plan"])
}

func TestHandleCheckoutCompletedRequiresBusinessID(t *testing.T) {
	repo := &recordingBusinessRepo{}
	svc := NewBillingService(repo)

	err := svc.HandleCheckoutCompleted(completedSession(map[string]string{"tier": "pro"}))
	assert.Error(t, err)
	assert.Empty(t, repo.updatedID)
}
