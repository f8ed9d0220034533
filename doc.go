// Package roadnet models a city road network as a weighted directed graph
// and answers two routing questions on it:
//
//   - the fastest route between two intersections for a given vehicle class,
//     where damaged roads are closed to some vehicles (package pathfind);
//   - the best order to visit a set of delivery intersections, either exactly
//     by enumerating every ordering or approximately with a nearest-neighbor
//     tour (package tsp).
//
// Layout:
//
//	core/      - Graph, Edge, NodeID and thread-safe primitives
//	vehicle/   - vehicle catalog and the road weight function
//	bfs/       - reachability with edge filters
//	dijkstra/  - single-source distance engine
//	pathfind/  - vehicle-constrained shortest path with failure diagnostics
//	tsp/       - multi-stop route optimizer
//	builder/   - demo and random road networks
//	roadfile/  - YAML road network files
//	metrics/   - Prometheus query metrics
//	navigator/ - service facade with logging and metrics
//	cmd/roadnet - command line
//
// Quick start:
//
//	g := builder.FixedDemo()
//	res, err := pathfind.FindConstrainedPath(g, "car", 0, 4)
//	// res.Nodes == [0 1 4], res.TotalTime == 43
//
//	route, err := tsp.OptimizeRoute(g, 0, []core.NodeID{4, 2}, tsp.ModeExact)
//	// route.Stops == [0 2 4]
package roadnet
