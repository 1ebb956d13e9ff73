package models

import "fmt"

// PlanTier is the subscription level of a business.
type PlanTier string

const (
	TierStart    PlanTier = "start"
	TierPro      PlanTier = "pro"
	TierBusiness PlanTier = "business"
)

// Unlimited marks a quota with no cap.
const Unlimited = -1

// PlanLimits is the typed limits record for a tier.
type PlanLimits struct {
	Tier                   PlanTier `json:"tier"`
	MaxProfessionals       int      `json:"maxProfessionals"`
	MaxMonthlyAppointments int      `json:"maxMonthlyAppointments"`
}

// ParsePlanTier validates a stored plan value. Unknown values are an error;
// callers that want the legacy behavior must default to TierStart themselves.
func ParsePlanTier(s string) (PlanTier, error) {
	switch PlanTier(s) {
	case TierStart, TierPro, TierBusiness:
		return PlanTier(s), nil
	}
	return "", fmt.Errorf("unknown plan tier %q", s)
}

// PlanTierOrStart resolves a stored plan value, falling back to the start
// tier when the field is empty or holds an unknown value.
func PlanTierOrStart(s string) PlanTier {
	tier, err := ParsePlanTier(s)
	if err != nil {
		return TierStart
	}
	return tier
}

// Limits returns the limits record for the tier.
func (t PlanTier) Limits() PlanLimits {
	switch t {
	case TierPro:
		return PlanLimits{Tier: TierPro, MaxProfessionals: 3, MaxMonthlyAppointments: Unlimited}
	case TierBusiness:
		return PlanLimits{Tier: TierBusiness, MaxProfessionals: Unlimited, MaxMonthlyAppointments: Unlimited}
	default:
		return PlanLimits{Tier: TierStart, MaxProfessionals: 1, MaxMonthlyAppointments: 30}
	}
}

// AllowsProfessionals reports whether a business may hold count professionals.
func (l PlanLimits) AllowsProfessionals(count int) bool {
	return l.MaxProfessionals == Unlimited || count <= l.MaxProfessionals
}

// HasMonthlyCap reports whether the tier caps monthly appointments.
func (l PlanLimits) HasMonthlyCap() bool {
	return l.MaxMonthlyAppointments != Unlimited
}
