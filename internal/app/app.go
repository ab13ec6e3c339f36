// Package app implements the application layer for depscope.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/depscope/internal/query"
	"go.trai.ch/zerr"
)

// App connects the scanner collaborator to the graph queries.
type App struct {
	scanner ports.Scanner
}

// New creates a new App instance.
func New(scanner ports.Scanner) *App {
	return &App{scanner: scanner}
}

// Components groups the top-level application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Tree prints the full dependency tree of every project under path.
func (a *App) Tree(ctx context.Context, path string, out io.Writer) error {
	g, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	query.Tree(g, out)
	return nil
}

// Entry prints the dependency subtree rooted at source.
func (a *App) Entry(ctx context.Context, path, source string, out io.Writer) error {
	g, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	return query.Subtree(g, source, out)
}

// EntrySimple prints the flat transitive closure of source, partitioned
// into project and package sections.
func (a *App) EntrySimple(ctx context.Context, path, source string, out io.Writer) error {
	g, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	return query.Closure(g, source, out)
}

// DependsOn prints the filtered subtree of every project that can reach
// target.
func (a *App) DependsOn(ctx context.Context, path, target string, out io.Writer) error {
	g, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	return query.DependsOn(g, target, out)
}

// Path prints every simple dependency path from source to target.
func (a *App) Path(ctx context.Context, path, source, target string, out io.Writer) error {
	g, err := a.load(ctx, path)
	if err != nil {
		return err
	}
	return query.Paths(g, source, target, out)
}

// load validates the scan folder, runs the scanner and builds the graph.
// The folder is checked before any graph work so configuration errors
// abort early.
func (a *App) load(ctx context.Context, path string) (*domain.Graph, error) {
	if path == "" {
		return nil, domain.ErrPathRequired
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrFolderNotFound, "path", path)
	}

	records, err := a.scanner.Scan(ctx, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan projects")
	}
	return domain.Build(records), nil
}
