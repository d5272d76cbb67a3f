package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/worktimer/internal/ctxlog"
	"github.com/vk/worktimer/internal/store"
	"github.com/vk/worktimer/internal/timeutil"
)

// User-facing messages for the start/stop transitions.
const (
	MsgAlreadyWorking = "You are already on the clock."
	MsgStarted        = "You are now on the clock."
	MsgAlreadyIdle    = "You are already off the clock."
	MsgStopped        = "You are no longer on the clock."
)

// Store is the event persistence the timer depends on. *store.DB satisfies
// it; tests substitute an in-memory fake.
type Store interface {
	LogEvent(ctx context.Context, t time.Time, working bool) error
	DailyEvents(ctx context.Context, day time.Time) ([]store.Event, error)
	WeeklyEvents(ctx context.Context, day time.Time) ([][]store.Event, error)
}

// Block is one contiguous stretch of work within a day.
type Block struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Status describes the clock at a point in time.
type Status struct {
	Working bool
	// Since is the start of the current block; zero when off the clock.
	Since time.Time
	// Today is the total worked today, including the open block.
	Today time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithNow overrides the timer's clock. Tests use this to pin "now".
func WithNow(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// Timer tracks working hours as alternating start/stop events.
type Timer struct {
	store Store
	now   func() time.Time
}

// New returns a Timer backed by the given store.
func New(s Store, opts ...Option) *Timer {
	t := &Timer{store: s, now: timeutil.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start puts the user on the clock. If the latest event today is already a
// start, nothing is written. The returned message is suitable for printing
// to the user as-is.
func (t *Timer) Start(ctx context.Context) (string, error) {
	now := t.now()
	events, err := t.store.DailyEvents(ctx, now)
	if err != nil {
		return "", err
	}

	if len(events) > 0 && events[len(events)-1].Working {
		return MsgAlreadyWorking, nil
	}

	if err := t.store.LogEvent(ctx, now, true); err != nil {
		return "", fmt.Errorf("starting the clock: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Start event logged.", "at", now)
	return MsgStarted, nil
}

// Stop takes the user off the clock. If there are no events today, or the
// latest one is already a stop, nothing is written.
func (t *Timer) Stop(ctx context.Context) (string, error) {
	now := t.now()
	events, err := t.store.DailyEvents(ctx, now)
	if err != nil {
		return "", err
	}

	if len(events) == 0 || !events[len(events)-1].Working {
		return MsgAlreadyIdle, nil
	}

	if err := t.store.LogEvent(ctx, now, false); err != nil {
		return "", fmt.Errorf("stopping the clock: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Stop event logged.", "at", now)
	return MsgStopped, nil
}

// Status reports whether the user is on the clock and how much was worked
// today so far.
func (t *Timer) Status(ctx context.Context) (Status, error) {
	now := t.now()
	events, err := t.store.DailyEvents(ctx, now)
	if err != nil {
		return Status{}, err
	}

	total, _ := t.pairBlocks(events)
	st := Status{Today: total}
	if len(events) > 0 && events[len(events)-1].Working {
		st.Working = true
		st.Since = events[len(events)-1].Time
	}
	return st, nil
}

// DayBlocks returns the work blocks of day's date, paired up from its
// events, plus the day's total.
func (t *Timer) DayBlocks(ctx context.Context, day time.Time) (time.Duration, []Block, error) {
	events, err := t.store.DailyEvents(ctx, day)
	if err != nil {
		return 0, nil, err
	}
	total, blocks := t.pairBlocks(events)
	return total, blocks, nil
}

// WeekTotals returns the total worked on each day of the Monday-first week
// containing day, plus the week's total.
func (t *Timer) WeekTotals(ctx context.Context, day time.Time) (time.Duration, []time.Duration, error) {
	week, err := t.store.WeeklyEvents(ctx, day)
	if err != nil {
		return 0, nil, err
	}

	var total time.Duration
	days := make([]time.Duration, 0, len(week))
	for _, events := range week {
		daily, _ := t.pairBlocks(events)
		total += daily
		days = append(days, daily)
	}
	return total, days, nil
}

// pairBlocks folds an ordered, alternating event list into work blocks. An
// odd trailing start is closed with a synthetic stop at "now" so an open
// block counts up to the present moment; the synthetic event is never
// persisted.
func (t *Timer) pairBlocks(events []store.Event) (time.Duration, []Block) {
	if len(events)%2 != 0 {
		events = append(events[:len(events):len(events)], store.Event{Time: t.now(), Working: false})
	}

	var total time.Duration
	var blocks []Block
	for i := 0; i+1 < len(events); i += 2 {
		start := events[i].Time
		end := events[i+1].Time
		d := end.Sub(start)
		total += d
		blocks = append(blocks, Block{Start: start, End: end, Duration: d})
	}
	return total, blocks
}
