package cli

import (
	"github.com/spf13/cobra"
)

// newStartCmd builds the command that starts the work timer.
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the work timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, ctx, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			msg, err := a.Timer().Start(ctx)
			if err != nil {
				return err
			}
			echo(cmd, msg)
			return nil
		},
	}
}
