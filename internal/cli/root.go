package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vk/worktimer/internal/app"
	"github.com/vk/worktimer/internal/config"
	"github.com/vk/worktimer/internal/ctxlog"
	"github.com/vk/worktimer/internal/timeutil"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCmd builds the worktimer command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "worktimer",
		Short:         "Simple tracker of time spent at work",
		Long:          "WorkTimer: Simple tracker of time spent at work",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("WorkTimer v{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to the configuration file.")
	flags.String("db", "", "Path to the event database. Overrides the configuration file.")
	flags.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newStartCmd(),
		newStopCmd(),
		newStatusCmd(),
		newDayCmd(),
		newWeekCmd(),
		newDocsCmd(),
	)
	return root
}

// newApp resolves configuration (file first, then flag overrides) and
// builds a ready-to-use App. Logs go to the command's stderr; reports and
// messages stay on stdout. The returned context carries the app's logger.
func newApp(cmd *cobra.Command) (*app.App, context.Context, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if v, _ := flags.GetString("db"); v != "" {
		cfg.Database = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	appCfg, err := app.NewConfig(app.Config{
		Database:  cfg.Database,
		LogLevel:  cfg.LogLevel,
		LogFormat: cfg.LogFormat,
	})
	if err != nil {
		return nil, nil, &ExitError{Code: 2, Message: err.Error()}
	}

	a, err := app.New(cmd.Context(), cmd.ErrOrStderr(), appCfg)
	if err != nil {
		return nil, nil, err
	}
	return a, ctxlog.WithLogger(cmd.Context(), a.Logger()), nil
}

// parseDate interprets a -d/--date value. Empty means today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return timeutil.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, &ExitError{Code: 2, Message: "invalid date: format must be YYYY-MM-DD"}
	}
	return t, nil
}

// echo prints a user-facing message to the command's stdout.
func echo(cmd *cobra.Command, msg string) {
	fmt.Fprintln(cmd.OutOrStdout(), msg)
}
