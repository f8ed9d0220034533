// Package bfs provides breadth-first search over a core.Graph, used by the
// routing engines to answer "is end reachable from start at all?" before
// any weighted search runs.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → hop count from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Edge filtering via WithEdgeFilter, e.g. to skip damaged roads.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Reachable(g, from, to, opts...) short-circuits as soon as to is seen.
//
// Determinism
//
//	core.Graph.OutEdges returns roads sorted by target id and the walker
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity
//
//	Time O(V + E), space O(V).
package bfs
