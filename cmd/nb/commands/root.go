// Package commands implements the CLI commands for the nb notebook runner.
package commands

import (
	"context"
	"io"

	"github.com/meownoid/nb/internal/app"
	"github.com/meownoid/nb/internal/build"
	"github.com/meownoid/nb/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for nb.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nb <notebook> [args...]",
		Short:         "Run Jupyter notebooks from the command line",
		Long:          "nb converts notebooks to scripts, caches the result, and runs them with IPython.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("profile", "p", "", "Configuration profile to use")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Emit log output as JSON")

	// Flags after the notebook name belong to the notebook, not to nb.
	rootCmd.Flags().SetInterspersed(false)

	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			if l, ok := c.logger.(interface{ SetJSON(bool) }); ok {
				l.SetJSON(true)
			}
		}
	}

	// Bare "nb <notebook> [args...]" is shorthand for "nb run".
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return c.app.Run(cmd.Context(), args[0], args[1:], app.RunOptions{
			Options: c.options(cmd),
		})
	}

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output streams for the root command.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

// options collects the persistent flags shared by every command.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	profile, _ := cmd.Flags().GetString("profile")
	configPath, _ := cmd.Flags().GetString("config")
	return app.Options{
		ConfigPath: configPath,
		Profile:    profile,
	}
}
