package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.heftrun.dev/heft/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var outputTasks string

	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: fmt.Sprintf("Schedule and execute a built-in demo graph (%s)", strings.Join(app.ScenarioNames(), ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.RunOptions{ConfigPath: configPath(cmd)}
			if outputTasks != "" {
				opts.OutputTasks = strings.Split(outputTasks, ",")
			}

			rr, err := c.app.Run(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rr.Tasks)
		},
	}

	cmd.Flags().StringVar(&outputTasks, "output-tasks", "", "comma-separated list of task names to restrict the returned result to")
	return cmd
}
