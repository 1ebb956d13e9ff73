package business

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

type stubBusinessRepo struct {
	plan string
}

func (s *stubBusinessRepo) GetByID(id string) (*models.Business, error) {
	return &models.Business{ID: id, Plan: s.plan}, nil
}

func (s *stubBusinessRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Business, error) {
	return s.GetByID(id)
}

func (s *stubBusinessRepo) GetByEmail(email string) (*models.Business, error) { return nil, nil }
func (s *stubBusinessRepo) Create(b *models.Business) error                   { return nil }
func (s *stubBusinessRepo) UpdateWithDocument(id string, doc bson.M) error    { return nil }
func (s *stubBusinessRepo) Delete(id string) error                            { return nil }

type stubAppointmentRepo struct {
	count int
}

func (s *stubAppointmentRepo) GetByID(id string) (*models.Appointment, error) { return nil, nil }

func (s *stubAppointmentRepo) ListByBusinessAndRange(businessID string, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) ListBookedTimes(businessID string, start, end time.Time) ([]string, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) CountForRange(businessID string, start, end time.Time) (int, error) {
	return s.count, nil
}

func (s *stubAppointmentRepo) Create(a *models.Appointment) error { return nil }

func (s *stubAppointmentRepo) UpdateStatus(id, businessID string, status models.AppointmentStatus) error {
	return nil
}

func (s *stubAppointmentRepo) Watch(ctx context.Context, businessID string) (<-chan models.Appointment, error) {
	ch := make(chan models.Appointment)
	close(ch)
	return ch, nil
}

func limitService(plan string, count int) *DefaultBusinessService {
	return NewBusinessService(&stubBusinessRepo{plan: plan}, &stubAppointmentRepo{count: count})
}

func TestCheckMonthlyLimitBlocksAtQuota(t *testing.T) {
	status, err := limitService("start", 30).CheckMonthlyLimit("biz-1")
	require.NoError(t, err)
	assert.True(t, status.Blocked)
	assert.Equal(t, 30, status.Current)
	assert.Equal(t, 30, status.Max)
	assert.Equal(t, models.TierStart, status.Plan)
}

func TestCheckMonthlyLimitAllowsUnderQuota(t *testing.T) {
	status, err := limitService("start", 29).CheckMonthlyLimit("biz-1")
	require.NoError(t, err)
	assert.False(t, status.Blocked)
	assert.Equal(t, 29, status.Current)
}

func TestCheckMonthlyLimitUncappedTiers(t *testing.T) {
	for _, plan := range []string{"pro", "business"} {
		status, err := limitService(plan, 10000).CheckMonthlyLimit("biz-1")
		require.NoError(t, err)
		assert.False(t, status.Blocked, "plan %s should never block", plan)
		assert.Equal(t, models.Unlimited, status.Max)
	}
}

func TestCheckMonthlyLimitUnknownPlanFallsBackToStart(t *testing.T) {
	status, err := limitService("legacy-gold", 30).CheckMonthlyLimit("biz-1")
	require.NoError(t, err)
	assert.True(t, status.Blocked)
	assert.Equal(t, models.TierStart, status.Plan)
}
