package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := Now()
	assert.Zero(t, now.Nanosecond(), "Now() must truncate to whole seconds")
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.May, 19, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Monday, 19 May 2025", FormatDate(d))
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"morning", time.Date(2025, time.May, 19, 8, 5, 0, 0, time.Local), "08:05AM"},
		{"afternoon", time.Date(2025, time.May, 19, 15, 4, 0, 0, time.Local), "03:04PM"},
		{"midnight", time.Date(2025, time.May, 19, 0, 0, 0, 0, time.Local), "12:00AM"},
		{"noon", time.Date(2025, time.May, 19, 12, 0, 0, 0, time.Local), "12:00PM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatClock(tc.t))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0:00:00"},
		{"seconds only", 42 * time.Second, "0:00:42"},
		{"typical block", 4*time.Hour + 30*time.Minute, "4:30:00"},
		{"padded minutes and seconds", 9*time.Hour + 5*time.Minute + 3*time.Second, "9:05:03"},
		{"exactly one day", 24 * time.Hour, "1 day, 0:00:00"},
		{"long week", 40*time.Hour + 12*time.Minute + 7*time.Second, "1 day, 16:12:07"},
		{"several days", 50 * time.Hour, "2 days, 2:00:00"},
		{"negative", -(90 * time.Minute), "-1:30:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.d))
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Monday", WeekdayName(0, false))
	assert.Equal(t, "Mon", WeekdayName(0, true))
	assert.Equal(t, "Sunday", WeekdayName(6, false))
	assert.Equal(t, "Sun", WeekdayName(6, true))
	assert.Equal(t, "N/A", WeekdayName(7, false))
	assert.Equal(t, "N/A", WeekdayName(-1, true))
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2025, time.May, 19, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		t    time.Time
	}{
		{"monday itself", time.Date(2025, time.May, 19, 9, 30, 0, 0, time.Local)},
		{"midweek", time.Date(2025, time.May, 21, 23, 59, 59, 0, time.Local)},
		{"sunday", time.Date(2025, time.May, 25, 12, 0, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.t)
			require.True(t, monday.Equal(got), "got %v, want %v", got, monday)
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2025-05-19 is a Monday.
	for i := 0; i < DaysPerWeek; i++ {
		day := time.Date(2025, time.May, 19+i, 0, 0, 0, 0, time.Local)
		assert.Equal(t, i, WeekdayIndex(day))
	}
}
