package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetweenCrossesMidnight(t *testing.T) {
	lateEvening := time.Date(2026, 8, 30, 23, 50, 0, 0, time.UTC)
	earlyMorning := time.Date(2026, 8, 31, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(lateEvening, earlyMorning))
	assert.Equal(t, 0, DaysBetween(earlyMorning, earlyMorning))
}

func TestRelativeDayLabel(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), "Today"},
		{"previous day", now.AddDate(0, 0, -1), "Yesterday"},
		{"three days back", now.AddDate(0, 0, -3), "3 days ago"},
		{"future timestamp", now.Add(time.Hour), "Today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDayLabel(tt.at, now))
		})
	}
}
