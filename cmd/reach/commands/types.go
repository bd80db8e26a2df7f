package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types [schema...]",
		Short: "List the types reachable from the schema roots",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Types(cmd.Context(), options(cmd, args), cmd.OutOrStdout())
		},
	}
}
