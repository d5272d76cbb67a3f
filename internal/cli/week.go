package cli

import (
	"github.com/spf13/cobra"

	"github.com/vk/worktimer/internal/report"
)

// newWeekCmd builds the command that reports time worked on each day of a week.
func newWeekCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Display time worked on each day in a given week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}

			a, ctx, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			total, days, err := a.Timer().WeekTotals(ctx, day)
			if err != nil {
				return err
			}
			echo(cmd, report.Week(day, total, days))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "The date to display, in YYYY-MM-DD format (default: today)")
	return cmd
}
