package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appointmentRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/appointment"
	businessRepo "github.com/robsonrdev/AgendaFacil-saas/database/repository/business"
	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// DefaultBusinessService is the production implementation of BusinessService.
type DefaultBusinessService struct {
	Repo            businessRepo.BusinessRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// NewBusinessService constructs the default business service.
func NewBusinessService(repo businessRepo.BusinessRepository, apptRepo appointmentRepo.AppointmentRepository) *DefaultBusinessService {
	return &DefaultBusinessService{Repo: repo, AppointmentRepo: apptRepo}
}

// defaultSchedule is the working configuration a new business starts with.
func defaultSchedule() SettingsInput {
	return SettingsInput{
		WorkingDays:     []string{"mon", "tue", "wed", "thu", "fri", "sat"},
		OpenTime:        "09:00",
		CloseTime:       "18:00",
		LunchBreak:      true,
		LunchStart:      "12:00",
		LunchEnd:        "13:00",
		LunchDays:       []string{"mon", "tue", "wed", "thu", "fri"},
		ExtraBreak:      false,
		ExtraBreakStart: "16:00",
		ExtraBreakEnd:   "16:15",
		ExtraBreakDays:  []string{"mon", "tue", "wed", "thu", "fri"},
	}
}

// Register creates a business account with the default schedule on the start
// plan and logs it straight in.
func (s *DefaultBusinessService) Register(email, password, businessName string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || businessName == "" {
		return nil, fmt.Errorf("email and business name are required")
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	schedule := defaultSchedule()
	biz := &models.Business{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		BusinessName: businessName,

		WorkingDays: schedule.WorkingDays,
		OpenTime:    schedule.OpenTime,
		CloseTime:   schedule.CloseTime,

		LunchBreak: schedule.LunchBreak,
		LunchStart: schedule.LunchStart,
		LunchEnd:   schedule.LunchEnd,
		LunchDays:  schedule.LunchDays,

		ExtraBreak:      schedule.ExtraBreak,
		ExtraBreakStart: schedule.ExtraBreakStart,
		ExtraBreakEnd:   schedule.ExtraBreakEnd,
		ExtraBreakDays:  schedule.ExtraBreakDays,

		Hours: FormatWeeklyHours(schedule),
		Plan:  string(models.TierStart),
	}

	if err := s.Repo.Create(biz); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	logger.Info("Business registered", zap.String("businessID", biz.ID))

	return s.issueToken(biz)
}

// Authenticate verifies the email and password and issues a fresh token.
func (s *DefaultBusinessService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	biz, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up business: %w", err)
	}
	if biz == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(biz.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(biz)
}

// RevokeAuthToken clears the stored token hash and the auth cache entry so
// the current token stops validating.
func (s *DefaultBusinessService) RevokeAuthToken(businessID string) error {
	if err := s.Repo.UpdateWithDocument(businessID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if client := utils.AuthCacheClient; client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		client.Del(ctx, utils.AuthCachePrefix+businessID)
	}
	return nil
}

// GetByID retrieves the full business record.
func (s *DefaultBusinessService) GetByID(businessID string) (*models.Business, error) {
	return s.Repo.GetByID(businessID)
}

// issueToken signs a session token, persists its hash for revocation checks
// and primes the auth cache.
func (s *DefaultBusinessService) issueToken(biz *models.Business) (*AuthResponse, error) {
	token, err := utils.GenerateToken(biz.ID, biz.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	hash := utils.HashToken(token)

	if err := s.Repo.UpdateWithDocument(biz.ID, bson.M{"tokenHash": hash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	// The auth cache is a fast path only; the middleware falls back to the
	// stored hash when the client is absent.
	if client := utils.AuthCacheClient; client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		client.Set(ctx, utils.AuthCachePrefix+biz.ID, hash, utils.AuthCacheTTL)
	}

	return &AuthResponse{
		ID:           biz.ID,
		Email:        biz.Email,
		BusinessName: biz.BusinessName,
		Plan:         models.PlanTierOrStart(biz.Plan),
		Token:        token,
	}, nil
}
