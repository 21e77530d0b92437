package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.heftrun.dev/heft/internal/app"
)

func (c *CLI) newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <scenario>",
		Short: fmt.Sprintf("Render a built-in demo graph as Graphviz DOT (%s)", strings.Join(app.ScenarioNames(), ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.app.ToDot(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
