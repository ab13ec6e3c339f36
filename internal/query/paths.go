package query

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// Paths enumerates every simple path from source to target and prints one
// line per path in discovery order, node names joined with " -> ". Unlike
// the tree traversals, edges are followed in the order they were added
// during the build, not sorted.
func Paths(g *domain.Graph, source, target string, w io.Writer) error {
	src, ok := g.Lookup(source)
	if !ok {
		return zerr.With(domain.ErrNodeNotFound, "name", source)
	}
	dst, ok := g.Lookup(target)
	if !ok {
		return zerr.With(domain.ErrNodeNotFound, "name", target)
	}

	var (
		stack   []string
		visited = map[string]bool{}
		found   bool
	)
	var visit func(n *domain.Node)
	visit = func(n *domain.Node) {
		if visited[n.Name.Key()] {
			return
		}
		visited[n.Name.Key()] = true
		stack = append(stack, n.Name.String())

		if n.Name.Equal(dst.Name) {
			fmt.Fprintln(w, strings.Join(stack, " -> "))
			found = true
		} else {
			for _, child := range n.Edges() {
				visit(child)
			}
		}

		// Backtrack so the node can be reused on sibling search branches.
		stack = stack[:len(stack)-1]
		delete(visited, n.Name.Key())
	}
	visit(src)

	if !found {
		fmt.Fprintf(w, "No path found between '%s' and '%s'\n", src.Name, dst.Name)
	}
	return nil
}
