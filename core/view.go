package core

import "github.com/katalvlaran/roadnet/vehicle"

// EdgePredicate decides whether an edge is kept by FilteredView.
type EdgePredicate func(e Edge) bool

// FilteredView returns a new Graph with every node of g and only the edges
// for which keep returns true. The source graph is only read.
//
// Complexity: O(V+E) time and space.
func FilteredView(g *Graph, keep EdgePredicate) *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for id, bucket := range g.adjacency {
		out.ensureNode(id)
		for _, e := range bucket {
			if !keep(*e) {
				continue
			}
			cp := *e
			out.insert(&cp)
		}
	}

	return out
}

// EligibleView returns the sub-network v may travel on: every node, and
// only the roads that are undamaged or v.CanTravelOnDamaged.
func EligibleView(g *Graph, v vehicle.Vehicle) *Graph {
	return FilteredView(g, func(e Edge) bool { return e.EligibleFor(v) })
}
