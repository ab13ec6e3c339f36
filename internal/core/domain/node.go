package domain

import "slices"

// NodeKind discriminates the two kinds of build units in the graph.
type NodeKind string

const (
	// KindProject is a build unit discovered from the scanned source tree.
	KindProject NodeKind = "Project"
	// KindPackage is an external package dependency. The builder never adds
	// outgoing edges to a package node.
	KindPackage NodeKind = "Package"
)

// Node is a vertex of the dependency graph.
type Node struct {
	Name Name
	Kind NodeKind

	edges []*Node
}

// Edges returns the outgoing edges in the order they were added during the
// build. The slice is shared; callers must not mutate it.
func (n *Node) Edges() []*Node {
	return n.edges
}

// SortedEdges returns a copy of the outgoing edges ordered
// case-insensitively by target name.
func (n *Node) SortedEdges() []*Node {
	sorted := slices.Clone(n.edges)
	slices.SortStableFunc(sorted, func(a, b *Node) int {
		return a.Name.Compare(b.Name)
	})
	return sorted
}

func (n *Node) addEdge(to *Node) {
	n.edges = append(n.edges, to)
}
