// Package report renders the timer's daily and weekly views as terminal
// text. Styling is applied with lipgloss and degrades to plain text when
// stdout is not a terminal, so the report content is stable for piping.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vk/worktimer/internal/timer"
	"github.com/vk/worktimer/internal/timeutil"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Day renders the detailed report for one day: a dated header, one line per
// work block, and the day's total.
func Day(day time.Time, total time.Duration, blocks []timer.Block) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Time Worked on %s", timeutil.FormatDate(day))))
	b.WriteString("\n\n")

	for _, blk := range blocks {
		fmt.Fprintf(&b, "%s - %s: %s\n",
			timeutil.FormatClock(blk.Start),
			timeutil.FormatClock(blk.End),
			timeutil.FormatDuration(blk.Duration),
		)
	}

	fmt.Fprintf(&b, "\nTotal time worked: %s", timeutil.FormatDuration(total))
	return b.String()
}

// Week renders the weekly report: a header dated with the requested day,
// one line per weekday (Monday first) with that day's total, and the week's
// total.
func Week(day time.Time, total time.Duration, days []time.Duration) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Time worked through the Week of %s", timeutil.FormatDate(day))))
	b.WriteString("\n\n")

	for i, daily := range days {
		fmt.Fprintf(&b, "%s: %s\n", timeutil.WeekdayName(i, true), timeutil.FormatDuration(daily))
	}

	fmt.Fprintf(&b, "\nTotal time worked: %s", timeutil.FormatDuration(total))
	return b.String()
}

// Status renders the current clock state and today's running total.
func Status(st timer.Status) string {
	var b strings.Builder
	if st.Working {
		fmt.Fprintf(&b, "You are on the clock (since %s).\n", timeutil.FormatClock(st.Since))
	} else {
		b.WriteString("You are off the clock.\n")
	}
	fmt.Fprintf(&b, "Time worked today: %s", timeutil.FormatDuration(st.Today))
	return b.String()
}
