package query

import (
	"fmt"
	"io"
	"slices"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// Closure prints the identifiers of every node transitively reachable from
// the named root, partitioned by kind into sorted, duplicate-free sections.
// The root itself is excluded from both sections.
func Closure(g *domain.Graph, root string, w io.Writer) error {
	r, ok := g.Lookup(root)
	if !ok {
		return zerr.With(domain.ErrNodeNotFound, "name", root)
	}

	// Seeding the visited set with the root keeps it out of the result and
	// stops cycles back through it.
	visited := map[string]bool{r.Name.Key(): true}
	var projects, packages []domain.Name

	var visit func(n *domain.Node)
	visit = func(n *domain.Node) {
		if visited[n.Name.Key()] {
			return
		}
		visited[n.Name.Key()] = true
		switch n.Kind {
		case domain.KindProject:
			projects = append(projects, n.Name)
		case domain.KindPackage:
			packages = append(packages, n.Name)
		}
		for _, child := range n.SortedEdges() {
			visit(child)
		}
	}
	for _, child := range r.SortedEdges() {
		visit(child)
	}

	slices.SortFunc(projects, domain.Name.Compare)
	slices.SortFunc(packages, domain.Name.Compare)

	fmt.Fprintln(w, "Projects:")
	for _, name := range projects {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "NuGet Packages:")
	for _, name := range packages {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}
