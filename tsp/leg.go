package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
)

// ReferenceSpeed converts distance into minutes of travel: distance units per hour.
const ReferenceSpeed = 50.0

// LegTime returns the minutes needed to cover distance at ReferenceSpeed plus delay.
func LegTime(distance, delay float64) float64 {
	return distance/ReferenceSpeed*60 + delay
}

// roadTime is LegTime applied to a road.
func roadTime(e core.Edge) float64 { return LegTime(e.Distance, e.Delay) }

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// leg is the cheapest route between two stops.
type leg struct {
	time     float64
	distance float64
	ok       bool
}

// legTable holds shortest leg-time routes from every source to every target.
type legTable map[core.NodeID]map[core.NodeID]leg

// buildLegTable runs one leg-time Dijkstra per distinct source and records
// time and raw distance towards every target.
func buildLegTable(g *core.Graph, sources, targets []core.NodeID) (legTable, error) {
	table := make(legTable, len(sources))
	for _, src := range sources {
		if _, done := table[src]; done {
			continue
		}
		res, err := dijkstra.Dijkstra(g,
			dijkstra.Source(src),
			dijkstra.WithReturnPath(),
			dijkstra.WithCost(roadTime),
		)
		if err != nil {
			return nil, fmt.Errorf("tsp: leg table from %d: %w", src, err)
		}

		row := make(map[core.NodeID]leg, len(targets))
		for _, dst := range targets {
			if dst == src {
				continue
			}
			path, ok := res.PathTo(dst)
			if !ok {
				row[dst] = leg{}
				continue
			}
			dist, err := pathDistance(g, path)
			if err != nil {
				return nil, err
			}
			row[dst] = leg{time: res.Dist[dst], distance: dist, ok: true}
		}
		table[src] = row
	}

	return table, nil
}

// pathDistance sums raw road distances along path.
func pathDistance(g *core.Graph, path []core.NodeID) (float64, error) {
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		e, err := g.Edge(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("tsp: road %d→%d: %w", path[i], path[i+1], err)
		}
		sum += e.Distance
	}

	return sum, nil
}

// validateNodes checks every id exists in g.
func validateNodes(g *core.Graph, ids ...core.NodeID) error {
	for _, id := range ids {
		if !g.HasNode(id) {
			return fmt.Errorf("tsp: %w: %d", core.ErrNodeNotFound, id)
		}
	}

	return nil
}

// uniqueSorted returns ids without duplicates and without skip, ascending.
func uniqueSorted(ids []core.NodeID, skip core.NodeID) []core.NodeID {
	seen := make(map[core.NodeID]bool, len(ids))
	out := make([]core.NodeID, 0, len(ids))
	for _, id := range ids {
		if id == skip || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortedKeys returns the set members in ascending order.
func sortedKeys(set map[core.NodeID]bool) []core.NodeID {
	out := make([]core.NodeID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// planningGraph returns the view the planner should search.
func planningGraph(g *core.Graph, o Options) *core.Graph {
	if o.Vehicle == nil {
		return g
	}

	return core.EligibleView(g, *o.Vehicle)
}
