package business

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

func containsDay(days []string, key string) bool {
	for _, d := range days {
		if d == key {
			return true
		}
	}
	return false
}

// FormatWeeklyHours materializes the display schedule from the raw settings.
// Non-working days render as "Closed"; working days render the open range
// with any break windows that apply to that day appended.
func FormatWeeklyHours(in SettingsInput) []models.DayHours {
	rows := make([]models.DayHours, 0, len(models.Week))
	for _, day := range models.Week {
		if !containsDay(in.WorkingDays, day.Key) {
			rows = append(rows, models.DayHours{Day: day.Name, Time: "Closed"})
			continue
		}

		entry := in.OpenTime + " - " + in.CloseTime
		var pauses []string
		if in.LunchBreak && containsDay(in.LunchDays, day.Key) {
			pauses = append(pauses, in.LunchStart+"-"+in.LunchEnd)
		}
		if in.ExtraBreak && containsDay(in.ExtraBreakDays, day.Key) {
			pauses = append(pauses, in.ExtraBreakStart+"-"+in.ExtraBreakEnd)
		}
		if len(pauses) > 0 {
			entry += " (Breaks: " + strings.Join(pauses, ", ") + ")"
		}
		rows = append(rows, models.DayHours{Day: day.Name, Time: entry})
	}
	return rows
}

// UpdateSettings persists the editable settings in one write, regenerating
// the formatted weekly hours alongside the raw fields.
func (s *DefaultBusinessService) UpdateSettings(businessID string, in SettingsInput) (*models.Business, error) {
	if in.BusinessName == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if in.OpenTime == "" || in.CloseTime == "" {
		return nil, fmt.Errorf("open and close times are required")
	}

	update := bson.M{
		"businessName": in.BusinessName,
		"phone":        in.Phone,
		"cep":          in.CEP,
		"address":      in.Address,
		"description":  in.Description,
		"gallery":      in.Gallery,
		"amenities":    in.Amenities,

		"workingDays": in.WorkingDays,
		"openTime":    in.OpenTime,
		"closeTime":   in.CloseTime,

		"lunchBreak": in.LunchBreak,
		"lunchStart": in.LunchStart,
		"lunchEnd":   in.LunchEnd,
		"lunchDays":  in.LunchDays,

		"extraBreak":      in.ExtraBreak,
		"extraBreakStart": in.ExtraBreakStart,
		"extraBreakEnd":   in.ExtraBreakEnd,
		"extraBreakDays":  in.ExtraBreakDays,

		"hours":     FormatWeeklyHours(in),
		"updatedAt": time.Now(),
	}

	if err := s.Repo.UpdateWithDocument(businessID, update); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return s.Repo.GetByID(businessID)
}
