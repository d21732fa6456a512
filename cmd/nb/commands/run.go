package commands

import (
	"github.com/meownoid/nb/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <notebook> [args...]",
		Short: "Convert a notebook if needed and run it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			return c.app.Run(cmd.Context(), args[0], args[1:], app.RunOptions{
				Options: c.options(cmd),
				NoCache: noCache,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the conversion cache and force reconversion")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
