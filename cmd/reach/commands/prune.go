package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune [schema...]",
		Short: "Print the schema without its unreachable types",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Prune(cmd.Context(), options(cmd, args), cmd.OutOrStdout())
		},
	}
}
