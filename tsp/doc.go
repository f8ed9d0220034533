// Package tsp plans multi-stop delivery routes over a road network.
//
// Two interchangeable strategies are exposed through OptimizeRoute:
//
//   - ModeExact - enumerates every ordering of the delivery set in
//     lexicographic order and keeps the one with the lowest total time.
//     Legs are shortest leg-time routes, computed once per distinct source
//     with the dijkstra package.
//
//   - Complexity: O(n!·n) orderings plus O(n·(V+E) log V) for the leg table
//
//   - Bounded by DefaultExactLimit deliveries (see WithExactLimit)
//
//   - ModeHeuristic - nearest-neighbor tour over direct roads only,
//     closing back at the start.
//
//   - Complexity: O(n·deg)
//
//   - Approximate: no optimality guarantee
//
// Leg time converts distance to minutes at ReferenceSpeed and adds the
// road delay:
//
//	time = distance/ReferenceSpeed*60 + delay
//
// Unreachable deliveries are reported in Result.Unreachable (sorted, no
// duplicates). In exact mode a delivery set that admits no complete ordering
// yields an empty Stops slice; partial routes are never returned.
//
// All totals are rounded to 1e-9 so that equal-cost orderings compare equal
// regardless of summation order.
package tsp
