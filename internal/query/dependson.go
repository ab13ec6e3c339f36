package query

import (
	"fmt"
	"io"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// DependsOn prints, for every project that can reach the target, that
// project's subtree filtered down to the branches leading to the target.
func DependsOn(g *domain.Graph, target string, w io.Writer) error {
	t, ok := g.Lookup(target)
	if !ok {
		return zerr.With(domain.ErrNodeNotFound, "name", target)
	}
	for _, root := range g.Projects() {
		if reaches(root, t, map[string]bool{}) {
			printFiltered(w, root, t, 0, map[string]bool{})
		}
	}
	return nil
}

// reaches probes whether n can reach target via outgoing edges. The seen
// set is scoped to one probe and stops revisits; identity is canonical-key
// equality, not edge reference equality.
func reaches(n, target *domain.Node, seen map[string]bool) bool {
	if n.Name.Equal(target.Name) {
		return true
	}
	if seen[n.Name.Key()] {
		return false
	}
	seen[n.Name.Key()] = true
	for _, child := range n.Edges() {
		if reaches(child, target, seen) {
			return true
		}
	}
	return false
}

// printFiltered checks the cycle guard before emitting, so a repeated node
// on the path is pruned silently rather than printed once more. Children
// that cannot reach the target are pruned and never visited; each child is
// probed with a fresh seen set, independent of the active path guard.
func printFiltered(w io.Writer, n, target *domain.Node, depth int, onPath map[string]bool) {
	if onPath[n.Name.Key()] {
		return
	}
	onPath[n.Name.Key()] = true
	fmt.Fprintf(w, "%s%s\n", indent(depth), n.Name)
	for _, child := range n.SortedEdges() {
		if reaches(child, target, map[string]bool{}) {
			printFiltered(w, child, target, depth+1, onPath)
		}
	}
	delete(onPath, n.Name.Key())
}
