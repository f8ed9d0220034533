// Package core provides the thread-safe, in-memory road network used by
// every routing engine in roadnet.
//
// The Graph G = (V,E) is a directed graph of intersections (NodeID) and
// one-way road segments (Edge):
//
//   - At most one edge per ordered pair (from, to); a second AddEdge on the
//     same pair returns ErrDuplicateEdge.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - Distance and Delay must be finite and non-negative, so every weight
//     derived from an edge is non-negative and Dijkstra stays valid.
//   - Two-way streets are modelled as two edges (see AddRoad).
//
// Each Edge carries:
//
//	Distance   length of the road segment (distance units, e.g. km)
//	Delay      traffic delay (minutes)
//	Damaged    damage flag; damaged roads cost more and may be ineligible
//	RoadClass  the vehicle class the road was labelled for (informational)
//
// and derives BaseWeight = Distance + Delay. CostFor applies the vehicle
// weight function (vehicle.Weight) to an edge.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes and adjacency. All readers take the
//	read lock, so any number of queries may run against one Graph while no
//	writer is active. The engines never mutate a Graph.
//
// Determinism:
//
//	Nodes(), Edges(), OutEdges() and EdgesTouching() return results sorted
//	by node id, so every algorithm built on them iterates in a fixed order.
//
// Errors:
//
//	ErrNodeNotFound      - a referenced node does not exist.
//	ErrEdgeNotFound      - a referenced edge does not exist.
//	ErrLoopNotAllowed    - from == to.
//	ErrDuplicateEdge     - the ordered pair already has an edge.
//	ErrNegativeDistance  - distance is negative, NaN or infinite.
//	ErrNegativeDelay     - delay is negative, NaN or infinite.
package core
