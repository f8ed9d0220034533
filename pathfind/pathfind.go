package pathfind

import (
	"fmt"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/vehicle"
)

// FindConstrainedPath looks vehicleName up in the catalog and runs Find.
func FindConstrainedPath(g *core.Graph, vehicleName string, start, end core.NodeID, opts ...Option) (Result, error) {
	v, err := vehicle.Lookup(vehicleName)
	if err != nil {
		return Result{}, fmt.Errorf("pathfind: %w", err)
	}

	return Find(g, v, start, end, opts...)
}

// Find returns the minimum-time path from start to end for v.
//
// Steps:
//  1. start == end → single-node path, time 0.
//  2. end unreachable in the full network → FailureNoPath.
//  3. end unreachable over roads v may use → FailureIneligible.
//  4. Dijkstra over the eligible view with Edge.CostFor(v).
//
// A cancelled WithContext context surfaces as an error wrapping ctx.Err().
func Find(g *core.Graph, v vehicle.Vehicle, start, end core.NodeID, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	if g == nil {
		return Result{}, ErrNilGraph
	}
	for _, id := range []core.NodeID{start, end} {
		if !g.HasNode(id) {
			return Result{}, fmt.Errorf("pathfind: %w: %d", core.ErrNodeNotFound, id)
		}
	}

	if start == end {
		return Result{Nodes: []core.NodeID{start}, Steps: []Step{}}, nil
	}

	walk := bfs.WithContext(o.ctx)
	ok, err := bfs.Reachable(g, start, end, walk)
	if err != nil {
		return Result{}, fmt.Errorf("pathfind: topology check: %w", err)
	}
	if !ok {
		return failed(FailureNoPath), nil
	}

	view := core.EligibleView(g, v)
	ok, err = bfs.Reachable(view, start, end, walk)
	if err != nil {
		return Result{}, fmt.Errorf("pathfind: eligibility check: %w", err)
	}
	if !ok {
		return failed(FailureIneligible), nil
	}

	if err = o.ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("pathfind: %w", err)
	}
	res, err := dijkstra.Dijkstra(view,
		dijkstra.Source(start),
		dijkstra.WithReturnPath(),
		dijkstra.WithCost(func(e core.Edge) float64 { return e.CostFor(v) }),
	)
	if err != nil {
		return Result{}, fmt.Errorf("pathfind: %w", err)
	}
	nodes, ok := res.PathTo(end)
	if !ok {
		// unreachable after a positive BFS only if the view changed underneath us
		return failed(FailureIneligible), nil
	}

	return assemble(view, v, nodes)
}

// assemble turns a node sequence into steps and a total time.
// A repeated (from, to) pair yields a single Step but still counts towards the total.
func assemble(g *core.Graph, v vehicle.Vehicle, nodes []core.NodeID) (Result, error) {
	out := Result{Nodes: nodes, Steps: make([]Step, 0, len(nodes)-1)}
	type pair struct{ from, to core.NodeID }
	seen := make(map[pair]bool, len(nodes))

	for i := 0; i+1 < len(nodes); i++ {
		e, err := g.Edge(nodes[i], nodes[i+1])
		if err != nil {
			return Result{}, fmt.Errorf("pathfind: rebuild step %d→%d: %w", nodes[i], nodes[i+1], err)
		}
		w := e.CostFor(v)
		out.TotalTime += w

		k := pair{e.From, e.To}
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Steps = append(out.Steps, Step{
			From:      e.From,
			To:        e.To,
			Distance:  e.Distance,
			Delay:     e.Delay,
			Damaged:   e.Damaged,
			RoadClass: e.RoadClass,
			Selected:  v.Class,
			Time:      w,
		})
	}

	return out, nil
}
