package tsp

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Exact finds the minimum-time ordering of deliveries starting at start.
//
// Contract:
//   - deliveries are de-duplicated, start is removed and the rest sorted.
//   - every ordering is evaluated in lexicographic order; Evaluated == n!.
//   - an ordering with an unreachable leg records that leg's target and is dropped.
//   - the first ordering with the lowest (rounded) total time wins.
//   - no valid ordering → empty Stops, Unreachable = every recorded target.
//   - no closing leg back to start.
//
// Errors: ErrNilGraph, core.ErrNodeNotFound, ErrTooManyDeliveries, ErrBadExactLimit,
// or the context error when WithContext is cancelled mid-search.
func Exact(g *core.Graph, start core.NodeID, deliveries []core.NodeID, opts ...Option) (Result, error) {
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

	targets := uniqueSorted(deliveries, start)
	if len(targets) > o.ExactLimit {
		return Result{}, fmt.Errorf("%w: %d > %d, use heuristic mode", ErrTooManyDeliveries, len(targets), o.ExactLimit)
	}

	res := Result{Mode: ModeExact, Unreachable: []core.NodeID{}}
	if len(targets) == 0 {
		res.Stops = []core.NodeID{start}
		res.Evaluated = 1
		return res, nil
	}

	view := planningGraph(g, o)
	table, err := buildLegTable(view, append([]core.NodeID{start}, targets...), targets)
	if err != nil {
		return Result{}, err
	}

	var (
		perm      = append([]core.NodeID(nil), targets...)
		best      []core.NodeID
		bestTime  float64
		bestDist  float64
		unreached = make(map[core.NodeID]bool)
	)
	for {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("tsp: exact search aborted after %d orderings: %w", res.Evaluated, err)
		}
		res.Evaluated++
		time, dist, bad, ok := walk(table, start, perm)
		switch {
		case !ok:
			unreached[bad] = true
		case best == nil || time < bestTime:
			best = append(best[:0], perm...)
			bestTime, bestDist = time, dist
		}
		if !nextPermutation(perm) {
			break
		}
	}

	if best == nil {
		res.Unreachable = sortedKeys(unreached)
		return res, nil
	}
	res.Stops = append([]core.NodeID{start}, best...)
	res.TotalTime = bestTime
	res.TotalDistance = bestDist

	return res, nil
}

// walk sums the legs of start→perm[0]→…→perm[n-1]. On an unreachable leg it
// returns the leg's target and ok=false.
func walk(table legTable, start core.NodeID, perm []core.NodeID) (time, dist float64, bad core.NodeID, ok bool) {
	cur := start
	for _, next := range perm {
		l := table[cur][next]
		if !l.ok {
			return 0, 0, next, false
		}
		time += l.time
		dist += l.distance
		cur = next
	}

	return round1e9(time), round1e9(dist), 0, true
}

// nextPermutation rearranges p into its lexicographic successor.
// It returns false, leaving p untouched, when p is the last permutation.
//
// Complexity: O(n).
func nextPermutation(p []core.NodeID) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
