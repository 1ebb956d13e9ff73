package utils

import (
	"fmt"
	"time"
)

// ParseClock converts a "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CombineDateTime merges a "2006-01-02" date and a "HH:MM" time of day into
// a single local timestamp.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	minutes, err := ParseClock(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(minutes) * time.Minute), nil
}
