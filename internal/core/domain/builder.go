package domain

// Build constructs a Graph from the scanned unit records in two phases.
//
// The first pass creates a project node per record, so forward references
// to projects defined later in the input still resolve. The second pass
// adds edges: a project reference naming a project outside the scanned set
// is silently omitted, while package references create package nodes
// lazily on first use. Records whose identifiers collide case-insensitively
// collapse into the first node created, merging their edges. Cycles are
// tolerated, never rejected, and no diagnostics are produced.
func Build(records []UnitRecord) *Graph {
	g := NewGraph()

	for _, r := range records {
		g.add(KindProject, r.Identifier)
	}

	for _, r := range records {
		from, _ := g.Lookup(r.Identifier)
		for _, ref := range r.ProjectRefs {
			if to, found := g.Lookup(ref); found {
				from.addEdge(to)
			}
		}
		for _, ref := range r.PackageRefs {
			from.addEdge(g.add(KindPackage, ref))
		}
	}

	return g
}
