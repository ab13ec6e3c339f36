// Package query implements the read-only traversals over the dependency
// graph: tree rendering, ancestor filtering, transitive closure collection
// and simple path enumeration. Every operation uses only call-local visited
// sets and path stacks, so concurrent queries against the same graph are
// safe by construction.
package query

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// Tree renders every project node of the graph as the root of an indented
// dependency tree, roots ordered case-insensitively.
func Tree(g *domain.Graph, w io.Writer) {
	for _, root := range g.Projects() {
		printTree(w, root, 0, map[string]bool{})
	}
}

// Subtree renders the dependency tree rooted at the named node.
func Subtree(g *domain.Graph, root string, w io.Writer) error {
	n, ok := g.Lookup(root)
	if !ok {
		return zerr.With(domain.ErrNodeNotFound, "name", root)
	}
	printTree(w, n, 0, map[string]bool{})
	return nil
}

// printTree emits the node before checking the cycle guard, so the first
// repeated occurrence on a path is printed once and then truncated. The
// guard is removed on return: a node may legitimately reappear in sibling
// branches that do not form a cycle through it.
func printTree(w io.Writer, n *domain.Node, depth int, onPath map[string]bool) {
	fmt.Fprintf(w, "%s%s\n", indent(depth), n.Name)
	if onPath[n.Name.Key()] {
		return
	}
	onPath[n.Name.Key()] = true
	for _, child := range n.SortedEdges() {
		printTree(w, child, depth+1, onPath)
	}
	delete(onPath, n.Name.Key())
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
