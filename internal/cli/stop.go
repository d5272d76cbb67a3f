package cli

import (
	"github.com/spf13/cobra"
)

// newStopCmd builds the command that stops the work timer.
func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the work timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := a.Timer().Stop(ctx)
			if err != nil {
				return err
			}
			echo(cmd, msg)
			return nil
		},
	}
}
