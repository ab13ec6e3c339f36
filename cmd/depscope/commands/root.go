// Package commands implements the CLI commands for depscope.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/depscope/internal/app"
	"go.trai.ch/depscope/internal/core/domain"
)

// CLI represents the command line interface for depscope.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "depscope",
		Short:         "Explore project and package dependencies of a .NET source tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Every command scans the same folder, so the flag is persistent.
	rootCmd.PersistentFlags().StringP("path", "p", "", "Folder to scan for project files")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newEntryCmd())
	rootCmd.AddCommand(c.newEntrySimpleCmd())
	rootCmd.AddCommand(c.newDependsOnCmd())
	rootCmd.AddCommand(c.newPathCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. The command name is
// matched case-insensitively.
func (c *CLI) SetArgs(args []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		args = append([]string{strings.ToLower(args[0])}, args[1:]...)
	}
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// scanPath returns the value of the persistent path flag.
func scanPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("path")
	return path
}

// reportMissingOption reports a missing required option on the error stream
// and skips the command without failing the invocation.
func reportMissingOption(cmd *cobra.Command, option string) error {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s is required for '%s'\n", option, cmd.Name())
	return nil
}

// report prints configuration and lookup errors on the command's error
// stream and swallows them; the invocation ends but is not treated as a
// process failure. Anything else propagates to the top-level handler.
func report(cmd *cobra.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrPathRequired),
		errors.Is(err, domain.ErrFolderNotFound),
		errors.Is(err, domain.ErrNodeNotFound):
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return nil
	default:
		return err
	}
}
