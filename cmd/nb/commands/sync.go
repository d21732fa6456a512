package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the cache copies of all notebooks and scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.app.Watch(cmd.Context(), c.options(cmd))
			}
			return c.app.Sync(cmd.Context(), c.options(cmd))
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Keep syncing as notebooks change")
	return cmd
}
