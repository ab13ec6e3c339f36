package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDependsOnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depends-on",
		Short: "Show every project that depends on a target, with the branches leading to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, _ := cmd.Flags().GetString("target")
			if target == "" {
				return reportMissingOption(cmd, "--target")
			}
			return report(cmd, c.app.DependsOn(cmd.Context(), scanPath(cmd), target, cmd.OutOrStdout()))
		},
	}
	cmd.Flags().StringP("target", "t", "", "Name of the project or package to look for")
	return cmd
}
