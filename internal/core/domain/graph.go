// Package domain contains the core domain model for the project dependency graph.
package domain

import "slices"

// Graph maps case-insensitive identifiers to nodes. It is populated in a
// single build pass and treated as immutable afterwards; all queries are
// pure readers.
type Graph struct {
	nodes map[string]*Node
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Lookup returns the node for the given identifier, matched case-insensitively.
func (g *Graph) Lookup(identifier string) (*Node, bool) {
	n, ok := g.nodes[NewName(identifier).Key()]
	return n, ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Projects returns every project node ordered case-insensitively by name.
func (g *Graph) Projects() []*Node {
	var projects []*Node
	for _, n := range g.nodes {
		if n.Kind == KindProject {
			projects = append(projects, n)
		}
	}
	slices.SortFunc(projects, func(a, b *Node) int {
		return a.Name.Compare(b.Name)
	})
	return projects
}

// add inserts a node under its canonical key. The first node created for a
// key wins; later attempts return the existing node unchanged.
func (g *Graph) add(kind NodeKind, identifier string) *Node {
	name := NewName(identifier)
	if existing, ok := g.nodes[name.Key()]; ok {
		return existing
	}
	n := &Node{Name: name, Kind: kind}
	g.nodes[name.Key()] = n
	return n
}
