// Package store persists work events in a local SQLite database. Each event
// is a second-precision timestamp plus a flag saying whether work started or
// stopped at that moment; all higher-level structure (blocks, totals) is
// derived from the ordered event stream.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/vk/worktimer/internal/ctxlog"
	"github.com/vk/worktimer/internal/timeutil"
)

// timeLayout is the second-precision ISO-8601 form used for the timestamp
// column. Lexicographic order on this layout matches chronological order,
// which the date-prefix queries rely on.
const timeLayout = "2006-01-02T15:04:05"

// Event is one recorded start or stop of work.
type Event struct {
	Time    time.Time
	Working bool
}

// DB is the SQLite-backed event store.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, creates the schema when
// missing, and repairs any unfinished time pair left by a previous day.
func Open(ctx context.Context, path string) (*DB, error) {
	logger := ctxlog.FromContext(ctx)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}

	s := &DB{db: db}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.repairPairs(ctx, timeutil.Now()); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Event store opened.", "path", path)
	return s, nil
}

// Close releases the underlying database handle.
func (s *DB) Close() error {
	return s.db.Close()
}

// createTables creates the event table if it does not already exist.
func (s *DB) createTables(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS event(
			event_id INTEGER PRIMARY KEY,
			timestamp TEXT NOT NULL,
			working INTEGER NOT NULL
		);`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating event table: %w", err)
	}
	return nil
}

// repairPairs closes an unfinished time pair left open on a previous day.
//
// Users cannot be trusted to always log a stop event: someone logs a start
// on Monday and forgets about it, or works through the night. If the most
// recent event is a start from a previous day, a stop is inserted at
// 23:59:59 of that day. If that day was yesterday, the user may well still
// be working, so a start is also inserted at midnight today to continue the
// overnight block. Starts older than yesterday get only the synthetic stop,
// since nobody works continuously for more than a day.
func (s *DB) repairPairs(ctx context.Context, now time.Time) error {
	last, ok, err := s.lastEvent(ctx)
	if err != nil {
		return err
	}
	if !ok || !last.Working {
		return nil
	}

	lastDay := midnight(last.Time)
	today := midnight(now)
	if lastDay.Equal(today) {
		// An open pair from today is normal: the user is on the clock.
		return nil
	}

	logger := ctxlog.FromContext(ctx)
	endOfDay := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 0, lastDay.Location())
	if err := s.LogEvent(ctx, endOfDay, false); err != nil {
		return fmt.Errorf("closing unfinished pair: %w", err)
	}
	logger.Debug("Closed unfinished time pair.", "stop", endOfDay)

	if !lastDay.AddDate(0, 0, 1).Equal(today) {
		return nil
	}

	// The open start was yesterday: assume overnight work and restart the
	// clock at midnight today.
	if err := s.LogEvent(ctx, today, true); err != nil {
		return fmt.Errorf("continuing overnight pair: %w", err)
	}
	logger.Debug("Continued overnight work block.", "start", today)
	return nil
}

// LogEvent records a work event: working is true when work started at t and
// false when it stopped.
func (s *DB) LogEvent(ctx context.Context, t time.Time, working bool) error {
	const query = `INSERT INTO event (timestamp, working) VALUES (?, ?);`

	code := 0
	if working {
		code = 1
	}
	if _, err := s.db.ExecContext(ctx, query, t.Format(timeLayout), code); err != nil {
		return fmt.Errorf("logging event (%s, %d): %w", t.Format(timeLayout), code, err)
	}
	return nil
}

// DailyEvents returns all events logged on day's date, ordered by timestamp.
func (s *DB) DailyEvents(ctx context.Context, day time.Time) ([]Event, error) {
	const query = `
		SELECT timestamp, working
		FROM event
		WHERE timestamp LIKE ?
		ORDER BY timestamp;`

	// Match every timestamp on the date regardless of time of day.
	pattern := day.Format("2006-01-02") + "%"
	rows, err := s.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("querying events for %s: %w", day.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			stamp string
			code  int
		)
		if err := rows.Scan(&stamp, &code); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		t, err := time.ParseInLocation(timeLayout, stamp, day.Location())
		if err != nil {
			return nil, fmt.Errorf("decoding event timestamp %q: %w", stamp, err)
		}
		events = append(events, Event{Time: t, Working: code == 1})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading event rows: %w", err)
	}
	return events, nil
}

// WeeklyEvents returns the events of the Monday-first week containing day,
// one (possibly empty) slice per weekday.
func (s *DB) WeeklyEvents(ctx context.Context, day time.Time) ([][]Event, error) {
	start := timeutil.StartOfWeek(day)

	week := make([][]Event, 0, timeutil.DaysPerWeek)
	for i := 0; i < timeutil.DaysPerWeek; i++ {
		daily, err := s.DailyEvents(ctx, start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week = append(week, daily)
	}
	return week, nil
}

// lastEvent returns the most recent event in the store, with ok reporting
// whether any event exists.
func (s *DB) lastEvent(ctx context.Context) (Event, bool, error) {
	const query = `
		SELECT timestamp, working
		FROM event
		ORDER BY timestamp DESC
		LIMIT 1;`

	var (
		stamp string
		code  int
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&stamp, &code)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, false, nil
	}
	if err != nil {
		return Event{}, false, fmt.Errorf("querying latest event: %w", err)
	}

	t, err := time.ParseInLocation(timeLayout, stamp, time.Local)
	if err != nil {
		return Event{}, false, fmt.Errorf("decoding event timestamp %q: %w", stamp, err)
	}
	return Event{Time: t, Working: code == 1}, true, nil
}

// midnight returns t's date at 00:00:00 in t's location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
