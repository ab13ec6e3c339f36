package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Enumerate every dependency path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return reportMissingOption(cmd, "--source")
			}
			target, _ := cmd.Flags().GetString("target")
			if target == "" {
				return reportMissingOption(cmd, "--target")
			}
			return report(cmd, c.app.Path(cmd.Context(), scanPath(cmd), source, target, cmd.OutOrStdout()))
		},
	}
	cmd.Flags().StringP("source", "s", "", "Name of the node to start from")
	cmd.Flags().StringP("target", "t", "", "Name of the node to reach")
	return cmd
}
