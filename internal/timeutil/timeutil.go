// Package timeutil provides date and time helpers shared across the
// application: second-precision "now", human-friendly date and clock
// formatting, and week arithmetic. The week starts on Monday.
package timeutil

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of daily buckets in every weekly report.
const DaysPerWeek = 7

// weekdayNames is indexed Monday-first, matching the report layout.
var weekdayNames = [DaysPerWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Now returns the current local time truncated to whole seconds.
// Sub-second precision is noise for work tracking and would leak into
// stored timestamps and rendered durations.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// FormatDate renders a date in a human-friendly way, e.g.
// "Monday, 19 May 2025". Time-of-day attributes are ignored.
func FormatDate(t time.Time) string {
	return t.Format("Monday, 02 January 2006")
}

// FormatClock renders a time of day in a human-friendly way, e.g. "03:04PM".
// Date attributes are ignored.
func FormatClock(t time.Time) string {
	return t.Format("03:04PM")
}

// FormatDuration renders a duration as H:MM:SS, e.g. "4:30:00". Durations of
// a day or more gain a day-count prefix, e.g. "1 day, 16:00:00". Negative
// durations keep the same shape with a leading minus sign.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second

	clock := fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	switch {
	case days == 1:
		return fmt.Sprintf("%s1 day, %s", sign, clock)
	case days > 1:
		return fmt.Sprintf("%s%d days, %s", sign, days, clock)
	default:
		return sign + clock
	}
}

// WeekdayName converts a Monday-first weekday index (0-6) to its English
// name, optionally abbreviated to three letters. Out-of-range indexes
// return "N/A".
func WeekdayName(weekday int, abbreviate bool) string {
	if weekday < 0 || weekday >= DaysPerWeek {
		return "N/A"
	}
	name := weekdayNames[weekday]
	if abbreviate {
		return name[:3]
	}
	return name
}

// WeekdayIndex converts a time's weekday to the Monday-first index used by
// WeekdayName, so Monday is 0 and Sunday is 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysPerWeek
}

// StartOfWeek returns midnight of the Monday of the week containing t, in
// t's location.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -WeekdayIndex(t))
}
