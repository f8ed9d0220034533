// Package dijkstra implements Dijkstra's single-source shortest-path search
// over a road network (core.Graph) with non-negative edge costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from one source intersection to
//     every other intersection in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - The cost of a road is pluggable: by default it is Edge.BaseWeight
//     (distance + delay); WithCost swaps in a vehicle-aware or leg-time cost.
//
// Determinism:
//
//   - The heap orders entries by (distance, node id), so among equally close
//     nodes the lowest id is finalized first.
//   - A predecessor is replaced only on strict improvement, so equal-cost
//     alternatives never overwrite the first route found.
//   - Both rules together make results identical across repeated runs.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       Source option missing.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrNodeNotFound:   source intersection absent from the graph.
//   - ErrNegativeWeight: a cost function produced a negative or NaN value.
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panics).
//   - ErrNilCost:        WithCost received nil (panics).
//
// API reference:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	path, ok := res.PathTo(4)
//
//	dist, prev, err := dijkstra.ShortestDistances(g, 0)
//
// All working state (distances, visited set, heap) lives in a per-call runner,
// so concurrent searches on the same graph never share mutable state.
package dijkstra
