package business

import (
	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	BusinessName string          `json:"businessName"`
	Plan         models.PlanTier `json:"plan"`
	Token        string          `json:"token"`
}

// SettingsInput carries the editable business settings from the dashboard.
type SettingsInput struct {
	BusinessName string   `json:"businessName"`
	Phone        string   `json:"phone"`
	CEP          string   `json:"cep"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Gallery      []string `json:"gallery"`
	Amenities    []string `json:"amenities"`

	WorkingDays []string `json:"workingDays"`
	OpenTime    string   `json:"openTime"`
	CloseTime   string   `json:"closeTime"`

	LunchBreak bool     `json:"lunchBreak"`
	LunchStart string   `json:"lunchStart"`
	LunchEnd   string   `json:"lunchEnd"`
	LunchDays  []string `json:"lunchDays"`

	ExtraBreak      bool     `json:"extraBreak"`
	ExtraBreakStart string   `json:"extraBreakStart"`
	ExtraBreakEnd   string   `json:"extraBreakEnd"`
	ExtraBreakDays  []string `json:"extraBreakDays"`
}

// LimitStatus reports where a business stands against its monthly
// appointment quota.
type LimitStatus struct {
	Blocked bool            `json:"blocked"`
	Current int             `json:"current"`
	Max     int             `json:"max"`
	Plan    models.PlanTier `json:"plan"`
}

// BusinessService defines tenant account, settings and plan-quota operations.
type BusinessService interface {
	// Register creates a business account and returns a fresh auth token.
	Register(email, password, businessName string) (*AuthResponse, error)
	// Authenticate verifies credentials and returns a fresh auth token.
	Authenticate(email, password string) (*AuthResponse, error)
	// RevokeAuthToken invalidates the business's current token.
	RevokeAuthToken(businessID string) error
	// GetByID retrieves the full business record for the dashboard.
	GetByID(businessID string) (*models.Business, error)
	// UpdateSettings persists the editable settings and rebuilds the
	// formatted weekly hours.
	UpdateSettings(businessID string, in SettingsInput) (*models.Business, error)
	// CheckMonthlyLimit evaluates the current calendar month against the
	// business's plan quota.
	CheckMonthlyLimit(businessID string) (*LimitStatus, error)
}
