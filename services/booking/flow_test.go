package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/services/business"
)

type fakeBusinessRepo struct {
	biz models.Business
	err error
}

func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	b := f.biz
	return &b, nil
}

func (f *fakeBusinessRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Business, error) {
	return f.GetByID(id)
}

func (f *fakeBusinessRepo) GetByEmail(email string) (*models.Business, error) { return nil, nil }
func (f *fakeBusinessRepo) Create(b *models.Business) error                   { return nil }
func (f *fakeBusinessRepo) UpdateWithDocument(id string, doc bson.M) error    { return nil }
func (f *fakeBusinessRepo) Delete(id string) error                            { return nil }

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, ErrServiceUnavailable
	}
	return &svc, nil
}

func (f *fakeServiceRepo) ListByBusiness(businessID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.BusinessID == businessID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Create(s *models.Service) error                 { return nil }
func (f *fakeServiceRepo) UpdateWithDocument(id string, doc bson.M) error { return nil }
func (f *fakeServiceRepo) Delete(id string) error                         { return nil }

type fakeAppointmentRepo struct {
	mu      sync.Mutex
	created []models.Appointment
	booked  []string
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) { return nil, nil }

func (f *fakeAppointmentRepo) ListByBusinessAndRange(businessID string, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ListBookedTimes(businessID string, start, end time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.booked...), nil
}

func (f *fakeAppointmentRepo) CountForRange(businessID string, start, end time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created), nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *appt)
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatus(id, businessID string, status models.AppointmentStatus) error {
	return nil
}

func (f *fakeAppointmentRepo) Watch(ctx context.Context, businessID string) (<-chan models.Appointment, error) {
	ch := make(chan models.Appointment)
	close(ch)
	return ch, nil
}

type memSessionStore struct {
	mu sync.Mutex
	m  map[string]models.BookingSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{m: make(map[string]models.BookingSession)}
}

func (s *memSessionStore) Get(ctx context.Context, id string) (models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.m[id]
	if !ok {
		return models.BookingSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *memSessionStore) Save(ctx context.Context, session models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[session.ID] = session
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

type fakeLimits struct {
	status business.LimitStatus
}

func (f *fakeLimits) CheckMonthlyLimit(businessID string) (*business.LimitStatus, error) {
	status := f.status
	return &status, nil
}

func newTestFlow(apptRepo *fakeAppointmentRepo, limits LimitChecker) *DefaultBookingFlowService {
	biz := scheduleFixture()
	biz.BusinessName = "Studio Bela Vista"
	biz.Phone = "+55 11 99999-0000"

	svc := NewBookingFlowService(
		&fakeBusinessRepo{biz: biz},
		&fakeServiceRepo{services: map[string]models.Service{
			"svc-1": {ID: "svc-1", BusinessID: "biz-1", Name: "Haircut", Price: 80, Duration: 30, Active: true},
			"svc-2": {ID: "svc-2", BusinessID: "biz-1", Name: "Manicure", Price: 60, Duration: 30, Active: false},
		}},
		apptRepo,
		limits,
		newMemSessionStore(),
	)
	svc.Now = func() time.Time { return longAgo }
	return svc
}

func openLimits() *fakeLimits {
	return &fakeLimits{status: business.LimitStatus{Blocked: false, Current: 0, Max: 30, Plan: models.TierStart}}
}

func TestStartSessionBlockedWhenLimitReached(t *testing.T) {
	flow := newTestFlow(&fakeAppointmentRepo{}, &fakeLimits{
		status: business.LimitStatus{Blocked: true, Current: 30, Max: 30, Plan: models.TierStart},
	})

	_, err := flow.StartSession(context.Background(), "biz-1", "")
	assert.ErrorIs(t, err, ErrBookingLimitReached)
}

func TestBookingFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	apptRepo := &fakeAppointmentRepo{}
	flow := newTestFlow(apptRepo, openLimits())

	session, err := flow.StartSession(ctx, "biz-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)

	session, err = flow.SelectService(ctx, session.ID, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, session.Step)

	session, err = flow.SelectSlot(ctx, session.ID, "2025-06-02", "10:00")
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, session.Step)

	session, err = flow.SubmitDetails(ctx, session.ID, "Beatriz", "+55 11 98888-0000")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, session.Step)

	confirmation, err := flow.Confirm(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, confirmation.Status)
	assert.Equal(t, "Studio Bela Vista", confirmation.BusinessName)
	assert.Equal(t, "80.00", confirmation.ServicePrice)
	assert.Contains(t, confirmation.GoogleCalendarURL, "calendar.google.com")
	assert.Contains(t, confirmation.WhatsAppURL, "wa.me/5511999990000")

	require.Len(t, apptRepo.created, 1)
	appt := apptRepo.created[0]
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, "Haircut", appt.ServiceName)
	assert.Equal(t, "30 min", appt.ServiceDuration)
	assert.Equal(t, "10:00", appt.Time)

	final, err := flow.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSuccess, final.Step)
}

func TestSelectServiceRejectsInactiveService(t *testing.T) {
	ctx := context.Background()
	flow := newTestFlow(&fakeAppointmentRepo{}, openLimits())

	session, err := flow.StartSession(ctx, "biz-1", "")
	require.NoError(t, err)

	_, err = flow.SelectService(ctx, session.ID, "svc-2")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestSelectSlotRejectsTakenTime(t *testing.T) {
	ctx := context.Background()
	flow := newTestFlow(&fakeAppointmentRepo{booked: []string{"10:00"}}, openLimits())

	session, err := flow.StartSession(ctx, "biz-1", "")
	require.NoError(t, err)
	session, err = flow.SelectService(ctx, session.ID, "svc-1")
	require.NoError(t, err)

	_, err = flow.SelectSlot(ctx, session.ID, "2025-06-02", "10:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = flow.SelectSlot(ctx, session.ID, "2025-06-02", "10:30")
	assert.NoError(t, err)
}

// Two flows that both saw the slot as free can both confirm it. The insert
// has no slot lock; the clash surfaces on the dashboard.
func TestConcurrentConfirmsBothSucceed(t *testing.T) {
	ctx := context.Background()
	apptRepo := &fakeAppointmentRepo{}
	flow := newTestFlow(apptRepo, openLimits())

	advance := func() models.BookingSession {
		session, err := flow.StartSession(ctx, "biz-1", "")
		require.NoError(t, err)
		session, err = flow.SelectService(ctx, session.ID, "svc-1")
		require.NoError(t, err)
		session, err = flow.SelectSlot(ctx, session.ID, "2025-06-02", "10:00")
		require.NoError(t, err)
		session, err = flow.SubmitDetails(ctx, session.ID, "Customer", "+55 11 90000-0000")
		require.NoError(t, err)
		return session
	}

	first := advance()
	second := advance()

	_, err := flow.Confirm(ctx, first.ID)
	require.NoError(t, err)
	_, err = flow.Confirm(ctx, second.ID)
	require.NoError(t, err)

	assert.Len(t, apptRepo.created, 2)
}

func TestBackStepsSessionBackwards(t *testing.T) {
	ctx := context.Background()
	flow := newTestFlow(&fakeAppointmentRepo{}, openLimits())

	session, err := flow.StartSession(ctx, "biz-1", "")
	require.NoError(t, err)
	session, err = flow.SelectService(ctx, session.ID, "svc-1")
	require.NoError(t, err)

	session, err = flow.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, session.Step)
}

func TestPublicProfileFiltersInactiveServices(t *testing.T) {
	flow := newTestFlow(&fakeAppointmentRepo{}, openLimits())

	profile, err := flow.PublicProfile("biz-1")
	require.NoError(t, err)
	require.Len(t, profile.Services, 1)
	assert.Equal(t, "svc-1", profile.Services[0].ID)
	assert.False(t, profile.Blocked)
	assert.Equal(t, models.TierStart, profile.Plan)
}

func TestStartSessionWithPreselectedService(t *testing.T) {
	ctx := context.Background()
	apptRepo := &fakeAppointmentRepo{}
	flow := newTestFlow(apptRepo, openLimits())

	session, err := flow.StartSession(ctx, "biz-1", "svc-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, session.Step)
	assert.Equal(t, "svc-1", session.ServiceID)
	assert.Equal(t, "Haircut", session.ServiceName)
	assert.Equal(t, 30, session.ServiceDuration)

	// The flow continues from the datetime step without a service call.
	session, err = flow.SelectSlot(ctx, session.ID, "2025-06-02", "10:00")
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, session.Step)
}

func TestStartSessionRejectsInactivePreselectedService(t *testing.T) {
	flow := newTestFlow(&fakeAppointmentRepo{}, openLimits())

	_, err := flow.StartSession(context.Background(), "biz-1", "svc-2")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestPublicProfileMapsMissingBusiness(t *testing.T) {
	flow := newTestFlow(&fakeAppointmentRepo{}, openLimits())
	repo := flow.BusinessRepo.(*fakeBusinessRepo)
	repo.err = fmt.Errorf("failed to fetch business with id biz-404: %w", mongo.ErrNoDocuments)

	_, err := flow.PublicProfile("biz-404")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestConfirmRetriesAfterBusinessLoadFailure(t *testing.T) {
	ctx := context.Background()
	apptRepo := &fakeAppointmentRepo{}
	flow := newTestFlow(apptRepo, openLimits())

	session, err := flow.StartSession(ctx, "biz-1", "svc-1")
	require.NoError(t, err)
	session, err = flow.SelectSlot(ctx, session.ID, "2025-06-02", "10:00")
	require.NoError(t, err)
	session, err = flow.SubmitDetails(ctx, session.ID, "Beatriz", "+55 11 98888-0000")
	require.NoError(t, err)

	repo := flow.BusinessRepo.(*fakeBusinessRepo)
	repo.err = errors.New("primary unreachable")

	_, err = flow.Confirm(ctx, session.ID)
	require.Error(t, err)
	assert.Empty(t, apptRepo.created)

	stuck, err := flow.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, stuck.Step)

	repo.err = nil
	_, err = flow.Confirm(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, apptRepo.created, 1)
}
