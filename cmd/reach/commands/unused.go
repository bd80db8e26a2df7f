package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/reach/internal/app"
)

func (c *CLI) newUnusedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unused [schema...]",
		Short: "List declared types that no root can reach",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fail, _ := cmd.Flags().GetBool("fail")
			return c.app.Unused(cmd.Context(), app.UnusedOptions{
				Options: options(cmd, args),
				Fail:    fail,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("fail", false, "Exit with status 1 when any type is unreachable")
	return cmd
}
