// Package msbuild scans a folder tree for MSBuild project files and turns
// them into the dependency records consumed by the graph builder.
package msbuild

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// projectExtensions are the build unit file extensions the scanner recognises.
var projectExtensions = map[string]bool{
	".csproj": true,
	".fsproj": true,
	".vbproj": true,
}

// builtinExcludes are directory names that are always skipped.
var builtinExcludes = []string{".git", "bin", "obj"}

// Scanner implements ports.Scanner for MSBuild project trees.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

var _ ports.Scanner = (*Scanner)(nil)

// Scan walks root for project files and returns one record per file.
// Records are ordered by file path, so the result is deterministic for a
// fixed file system state.
func (s *Scanner) Scan(ctx context.Context, root string) ([]domain.UnitRecord, error) {
	opts, err := loadOptions(root)
	if err != nil {
		return nil, err
	}

	paths, err := s.collect(root, opts.Exclude)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan folder")
	}

	// Parse concurrently, slotting results by index to keep path order.
	projects := make([]*project, len(paths))
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		eg.Go(func() error {
			p, err := parseProject(path)
			if err != nil {
				return err
			}
			projects[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return resolve(projects), nil
}

// collect gathers the project file paths under root, skipping excluded
// directories, sorted for determinism.
func (s *Scanner) collect(root string, excludes []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name(), excludes) {
				return filepath.SkipDir
			}
			return nil
		}
		if projectExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}

func skipDir(name string, excludes []string) bool {
	if slices.Contains(builtinExcludes, name) {
		return true
	}
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// resolve maps each project's file references onto identifiers. A reference
// into the scanned set uses that project's declared identifier; a reference
// outside it falls back to the referenced file's stem, which the builder
// will then silently omit unless a scanned project happens to carry that
// name.
func resolve(projects []*project) []domain.UnitRecord {
	byPath := make(map[string]string, len(projects))
	for _, p := range projects {
		byPath[p.path] = p.identifier
	}

	records := make([]domain.UnitRecord, 0, len(projects))
	for _, p := range projects {
		record := domain.UnitRecord{Identifier: p.identifier}
		for _, include := range p.projectRefs {
			target := resolveRef(p.path, include)
			if identifier, ok := byPath[target]; ok {
				record.ProjectRefs = append(record.ProjectRefs, identifier)
			} else {
				record.ProjectRefs = append(record.ProjectRefs, stem(target))
			}
		}
		record.PackageRefs = append(record.PackageRefs, p.packageRefs...)
		records = append(records, record)
	}
	return records
}
