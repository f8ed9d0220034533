package tsp

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// NearestNeighbor builds a closed tour from start through every stop.
//
// Stops are start plus deliveries, or every node of g when deliveries is
// empty. From the current node the walk follows the direct road with the
// smallest leg time to an unvisited stop (ties → lowest id); shortest paths
// through other nodes are never considered. After the last stop the tour
// returns to start over a direct road.
//
// Roads are ranked by LegTime, the same cost Exact minimises, not by the
// distance + delay weight used for single paths: a 10 km road without delay
// (12 min) loses to a 0 km road with 11 min of delay.
//
// If the walk gets stuck, Stops is empty and Unreachable lists the stops not
// yet visited, or just start when only the closing road is missing.
//
// Complexity: O(n·deg) time, O(n) space.
func NearestNeighbor(g *core.Graph, start core.NodeID, deliveries []core.NodeID, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err = validateNodes(g, start); err != nil {
		return Result{}, err
	}
	if err = validateNodes(g, deliveries...); err != nil {
		return Result{}, err
	}

	stops := deliveries
	if len(stops) == 0 {
		stops = g.Nodes()
	}
	pending := make(map[core.NodeID]bool, len(stops))
	for _, id := range uniqueSorted(stops, start) {
		pending[id] = true
	}

	res := Result{Mode: ModeHeuristic, Evaluated: 1, Unreachable: []core.NodeID{}}
	if len(pending) == 0 {
		res.Stops = []core.NodeID{start}
		return res, nil
	}

	view := planningGraph(g, o)
	tour := make([]core.NodeID, 0, len(pending)+2)
	tour = append(tour, start)
	var time, dist float64

	cur := start
	for len(pending) > 0 {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("tsp: tour aborted at %d: %w", cur, err)
		}
		e, ok, err := nearest(view, cur, func(id core.NodeID) bool { return pending[id] })
		if err != nil {
			return Result{}, err
		}
		if !ok {
			res.Unreachable = sortedKeys(pending)
			return res, nil
		}
		delete(pending, e.To)
		tour = append(tour, e.To)
		time += roadTime(e)
		dist += e.Distance
		cur = e.To
	}

	back, err := view.Edge(cur, start)
	if err != nil {
		res.Unreachable = []core.NodeID{start}
		return res, nil
	}
	tour = append(tour, start)
	time += roadTime(back)
	dist += back.Distance

	res.Stops = tour
	res.TotalTime = round1e9(time)
	res.TotalDistance = round1e9(dist)

	return res, nil
}

// nearest picks the cheapest direct road from cur to a node accepted by want.
// OutEdges is sorted by target, so a strict comparison keeps the lowest id on ties.
func nearest(g *core.Graph, cur core.NodeID, want func(core.NodeID) bool) (core.Edge, bool, error) {
	edges, err := g.OutEdges(cur)
	if err != nil {
		return core.Edge{}, false, err
	}

	var (
		best     core.Edge
		bestTime float64
		found    bool
	)
	for _, e := range edges {
		if !want(e.To) {
			continue
		}
		t := roadTime(e)
		if !found || t < bestTime {
			best, bestTime, found = e, t, true
		}
	}

	return best, found, nil
}
