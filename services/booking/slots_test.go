package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robsonrdev/AgendaFacil-saas/models"
)

// 2025-06-02 is a Monday, 2025-06-07 a Saturday, 2025-06-01 a Sunday.
var (
	monday   = time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	saturday = time.Date(2025, 6, 7, 0, 0, 0, 0, time.Local)
	sunday   = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

	// A "now" well before any test date so the today filter stays out of
	// the way unless a test opts in.
	longAgo = time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
)

func scheduleFixture() models.Business {
	return models.Business{
		ID:          "biz-1",
		WorkingDays: []string{"mon", "tue", "wed", "thu", "fri", "sat"},
		OpenTime:    "09:00",
		CloseTime:   "18:00",
		LunchBreak:  true,
		LunchStart:  "12:00",
		LunchEnd:    "13:00",
		LunchDays:   []string{"mon", "tue", "wed", "thu", "fri"},
	}
}

func TestDaySlotsClosedDay(t *testing.T) {
	slots := DaySlots(scheduleFixture(), sunday, nil, longAgo)
	assert.Empty(t, slots)
}

func TestDaySlotsWeekdayWithLunchAndBooking(t *testing.T) {
	slots := DaySlots(scheduleFixture(), monday, []string{"09:00"}, longAgo)

	// 09:00 is booked and the lunch hour is blocked.
	assert.NotContains(t, slots, "09:00")
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:30")

	// The slot right before the break and the one at its exclusive end
	// both survive.
	assert.Contains(t, slots, "11:30")
	assert.Contains(t, slots, "13:00")

	// The grid is half-open at closing time.
	assert.Contains(t, slots, "17:30")
	assert.NotContains(t, slots, "18:00")

	// 18 half-hour slots, minus 2 lunch slots, minus the booked one.
	assert.Len(t, slots, 15)
}

func TestDaySlotsLunchSkippedOnNonLunchDay(t *testing.T) {
	slots := DaySlots(scheduleFixture(), saturday, nil, longAgo)
	assert.Contains(t, slots, "12:00")
	assert.Contains(t, slots, "12:30")
	assert.Len(t, slots, 18)
}

func TestDaySlotsExtraBreak(t *testing.T) {
	b := scheduleFixture()
	b.ExtraBreak = true
	b.ExtraBreakStart = "15:00"
	b.ExtraBreakEnd = "16:00"
	b.ExtraBreakDays = []string{"mon"}

	slots := DaySlots(b, monday, nil, longAgo)
	assert.NotContains(t, slots, "15:00")
	assert.NotContains(t, slots, "15:30")
	assert.Contains(t, slots, "16:00")

	// A disabled window changes nothing even when its fields are set.
	b.ExtraBreak = false
	slots = DaySlots(b, monday, nil, longAgo)
	assert.Contains(t, slots, "15:00")
}

func TestDaySlotsTodayDropsPastTimes(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 10, 0, 0, time.Local)
	slots := DaySlots(scheduleFixture(), monday, nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "14:30", slots[0])
	assert.NotContains(t, slots, "14:00")

	// A different date ignores the clock entirely.
	tuesday := monday.AddDate(0, 0, 1)
	slots = DaySlots(scheduleFixture(), tuesday, nil, now)
	assert.Equal(t, "09:00", slots[0])
}

func TestDaySlotsDeterministic(t *testing.T) {
	first := DaySlots(scheduleFixture(), monday, []string{"10:00"}, longAgo)
	second := DaySlots(scheduleFixture(), monday, []string{"10:00"}, longAgo)
	assert.Equal(t, first, second)
}
