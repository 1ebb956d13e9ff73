package booking

import (
	"time"

	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// SlotIntervalMinutes is the fixed grid step of the booking calendar.
const SlotIntervalMinutes = 30

type breakWindow struct {
	enabled bool
	start   string
	end     string
	days    []string
}

func containsDay(days []string, key string) bool {
	for _, d := range days {
		if d == key {
			return true
		}
	}
	return false
}

// DaySlots computes the bookable "HH:MM" slots of a business for one date.
// Slots step every 30 minutes from the opening time up to but excluding the
// closing time. A slot is dropped when the date's weekday is not a working
// day, when the slot is already booked, when it falls inside an enabled
// break window applying to that weekday (break ends are exclusive, so a
// 12:00-13:00 lunch frees the 13:00 slot), or when the date is today and the
// slot is already in the past relative to now.
func DaySlots(b models.Business, date time.Time, booked []string, now time.Time) []string {
	slots := []string{}

	dayKey := models.DayKey(date)
	if !containsDay(b.WorkingDays, dayKey) {
		return slots
	}

	open, err := utils.ParseClock(b.OpenTime)
	if err != nil {
		return slots
	}
	closeAt, err := utils.ParseClock(b.CloseTime)
	if err != nil {
		return slots
	}

	bookedSet := make(map[string]bool, len(booked))
	for _, t := range booked {
		bookedSet[t] = true
	}

	windows := []breakWindow{
		{enabled: b.LunchBreak, start: b.LunchStart, end: b.LunchEnd, days: b.LunchDays},
		{enabled: b.ExtraBreak, start: b.ExtraBreakStart, end: b.ExtraBreakEnd, days: b.ExtraBreakDays},
	}

	sameDay := date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()

grid:
	for minute := open; minute < closeAt; minute += SlotIntervalMinutes {
		if sameDay {
			slotTime := time.Date(date.Year(), date.Month(), date.Day(), minute/60, minute%60, 0, 0, now.Location())
			if slotTime.Before(now) {
				continue
			}
		}

		label := utils.FormatClock(minute)
		if bookedSet[label] {
			continue
		}

		for _, w := range windows {
			if !w.enabled || !containsDay(w.days, dayKey) {
				continue
			}
			start, err := utils.ParseClock(w.start)
			if err != nil {
				continue
			}
			end, err := utils.ParseClock(w.end)
			if err != nil {
				continue
			}
			if minute >= start && minute < end {
				continue grid
			}
		}

		slots = append(slots, label)
	}
	return slots
}
