package tsp

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// OptimizeRoute plans a route from start through deliveries with the given mode.
//
// ModeExact dispatches to Exact, ModeHeuristic to NearestNeighbor; any other
// mode returns ErrUnknownMode.
func OptimizeRoute(g *core.Graph, start core.NodeID, deliveries []core.NodeID, mode Mode, opts ...Option) (Result, error) {
	switch mode {
	case ModeExact:
		return Exact(g, start, deliveries, opts...)
	case ModeHeuristic:
		return NearestNeighbor(g, start, deliveries, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// Baseline returns the total leg time and distance of visiting stops in the
// given order over direct roads, without reordering. ok is false if any
// consecutive pair has no direct road.
func Baseline(g *core.Graph, stops []core.NodeID) (time, dist float64, ok bool) {
	if g == nil {
		return 0, 0, false
	}
	for i := 0; i+1 < len(stops); i++ {
		e, err := g.Edge(stops[i], stops[i+1])
		if err != nil {
			return 0, 0, false
		}
		time += roadTime(e)
		dist += e.Distance
	}

	return round1e9(time), round1e9(dist), true
}
