package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

func weeklyInput() SettingsInput {
	return SettingsInput{
		BusinessName: "Studio Bela Vista",
		WorkingDays:  []string{"mon", "tue", "wed", "thu", "fri", "sat"},
		OpenTime:     "09:00",
		CloseTime:    "18:00",
		LunchBreak:   true,
		LunchStart:   "12:00",
		LunchEnd:     "13:00",
		LunchDays:    []string{"mon", "tue", "wed", "thu", "fri"},
	}
}

func rowFor(t *testing.T, rows []models.DayHours, day string) string {
	t.Helper()
	for _, r := range rows {
		if r.Day == day {
			return r.Time
		}
	}
	t.Fatalf("no row for %s", day)
	return ""
}

func TestFormatWeeklyHours(t *testing.T) {
	rows := FormatWeeklyHours(weeklyInput())
	require.Len(t, rows, 7)

	// Monday first, Sunday last.
	assert.Equal(t, "Monday", rows[0].Day)
	assert.Equal(t, "Sunday", rows[6].Day)

	assert.Equal(t, "09:00 - 18:00 (Breaks: 12:00-13:00)", rowFor(t, rows, "Monday"))
	assert.Equal(t, "09:00 - 18:00", rowFor(t, rows, "Saturday"))
	assert.Equal(t, "Closed", rowFor(t, rows, "Sunday"))
}

func TestFormatWeeklyHoursWithExtraBreak(t *testing.T) {
	in := weeklyInput()
	in.ExtraBreak = true
	in.ExtraBreakStart = "16:00"
	in.ExtraBreakEnd = "16:15"
	in.ExtraBreakDays = []string{"fri"}

	rows := FormatWeeklyHours(in)
	assert.Equal(t, "09:00 - 18:00 (Breaks: 12:00-13:00, 16:00-16:15)", rowFor(t, rows, "Friday"))
	assert.Equal(t, "09:00 - 18:00 (Breaks: 12:00-13:00)", rowFor(t, rows, "Thursday"))
}

func TestFormatWeeklyHoursDisabledBreaksIgnored(t *testing.T) {
	in := weeklyInput()
	in.LunchBreak = false

	rows := FormatWeeklyHours(in)
	assert.Equal(t, "09:00 - 18:00", rowFor(t, rows, "Monday"))
}
