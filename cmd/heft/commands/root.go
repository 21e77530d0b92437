// Package commands implements the CLI commands for the heft scheduler.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"go.heftrun.dev/heft/internal/app"
)

// CLI represents the command line interface for heft.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "heft",
		Short:         "A HEFT DAG task scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to engine options file")

	c := &CLI{app: a, rootCmd: rootCmd}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newDotCmd())
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

// SetOut redirects the root command's output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
