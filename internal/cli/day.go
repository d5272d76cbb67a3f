package cli

import (
	"github.com/spf13/cobra"

	"github.com/vk/worktimer/internal/report"
)

// newDayCmd builds the command that reports time worked on a single day.
func newDayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Display detailed time worked on a given day",
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

			total, blocks, err := a.Timer().DayBlocks(ctx, day)
			if err != nil {
				return err
			}
			echo(cmd, report.Day(day, total, blocks))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "The date to display, in YYYY-MM-DD format (default: today)")
	return cmd
}
