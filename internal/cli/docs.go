package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/vk/worktimer/internal/fsutil"
)

// newDocsCmd builds the hidden command that generates the Markdown CLI
// reference, one page per command.
func newDocsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "docs",
		Short:  "Generate Markdown reference pages for all commands",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := fsutil.EnsureDir(dir); err != nil {
				return err
			}
			return doc.GenMarkdownTree(cmd.Root(), dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "docs", "Directory to write the generated pages into")
	return cmd
}
