package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Print the dependency subtree of a single project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return reportMissingOption(cmd, "--source")
			}
			return report(cmd, c.app.Entry(cmd.Context(), scanPath(cmd), source, cmd.OutOrStdout()))
		},
	}
	cmd.Flags().StringP("source", "s", "", "Name of the project to start from")
	return cmd
}

func (c *CLI) newEntrySimpleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry-simple",
		Short: "List every transitive project and package dependency of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return reportMissingOption(cmd, "--source")
			}
			return report(cmd, c.app.EntrySimple(cmd.Context(), scanPath(cmd), source, cmd.OutOrStdout()))
		},
	}
	cmd.Flags().StringP("source", "s", "", "Name of the project to start from")
	return cmd
}
