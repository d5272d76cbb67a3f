package cli

import (
	"github.com/spf13/cobra"

	"github.com/vk/worktimer/internal/report"
)

// newStatusCmd builds the command that shows the current clock state.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the work timer is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			st, err := a.Timer().Status(ctx)
			if err != nil {
				return err
			}
			echo(cmd, report.Status(st))
			return nil
		},
	}
}
