// Package main is the entry point for the depscope CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/depscope/cmd/depscope/commands"
	"go.trai.ch/depscope/internal/app"
	_ "go.trai.ch/depscope/internal/wiring"
	"go.trai.ch/zerr"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

// run executes one command invocation. Diagnostics go to the error stream;
// error outcomes are not distinguished via the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Scanner and parser failures end up here; commands have already
		// handled configuration and lookup errors themselves.
		components.Logger.Error(zerr.Wrap(err, "unhandled error"))
	}
	return 0
}
