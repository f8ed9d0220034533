// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only summary getters on top of the core types.

package core

// GraphStats is a snapshot of graph sizes.
type GraphStats struct {
	NodeCount    int
	EdgeCount    int
	DamagedCount int
}

// NodeCount returns the number of intersections.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of one-way roads.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Stats produces a consistent snapshot of node, edge and damaged-edge counts.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.adjacency),
		EdgeCount: g.edgeCount,
	}
	for _, bucket := range g.adjacency {
		for _, e := range bucket {
			if e.Damaged {
				stats.DamagedCount++
			}
		}
	}

	return stats
}
