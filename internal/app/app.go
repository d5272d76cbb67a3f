// Package app wires the application together: it owns the configured
// logger, the event store, and the timer built on top of it, and manages
// their lifecycle.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/worktimer/internal/ctxlog"
	"github.com/vk/worktimer/internal/fsutil"
	"github.com/vk/worktimer/internal/store"
	"github.com/vk/worktimer/internal/timer"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	store  *store.DB
	timer  *timer.Timer
}

// New is the constructor for the main application. It configures an
// isolated logger, makes sure the database directory exists, opens the
// event store, and returns a fully initialized App.
func New(ctx context.Context, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if err := fsutil.EnsureDir(filepath.Dir(cfg.Database)); err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening event store: %w", err)
	}
	logger.Debug("Event store ready.", "database", cfg.Database)

	return &App{
		logger: logger,
		store:  st,
		timer:  timer.New(st),
	}, nil
}

// Timer returns the application's timer.
func (a *App) Timer() *timer.Timer {
	return a.timer
}

// Logger returns the application's configured logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the event store.
func (a *App) Close() error {
	a.logger.Debug("Closing event store.")
	return a.store.Close()
}
