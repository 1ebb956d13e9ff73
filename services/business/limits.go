package business

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// CheckMonthlyLimit counts the business's appointments in the current
// calendar month and compares them against the plan quota. Every appointment
// counts regardless of status; canceling does not free quota.
func (s *DefaultBusinessService) CheckMonthlyLimit(businessID string) (*LimitStatus, error) {
	biz, err := s.Repo.GetByIDWithProjection(businessID, bson.M{"plan": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to load business plan: %w", err)
	}

	tier := models.PlanTierOrStart(biz.Plan)
	limits := tier.Limits()
	if !limits.HasMonthlyCap() {
		return &LimitStatus{Blocked: false, Current: 0, Max: models.Unlimited, Plan: tier}, nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	count, err := s.AppointmentRepo.CountForRange(businessID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count monthly appointments: %w", err)
	}

	return &LimitStatus{
		Blocked: count >= limits.MaxMonthlyAppointments,
		Current: count,
		Max:     limits.MaxMonthlyAppointments,
		Plan:    tier,
	}, nil
}
