package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = ParseClock("9h30")
	assert.Error(t, err)
	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "17:30", FormatClock(1050))
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2025-06-02", "10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local), got)

	_, err = CombineDateTime("02/06/2025", "10:30")
	assert.Error(t, err)
	_, err = CombineDateTime("2025-06-02", "bad")
	assert.Error(t, err)
}
