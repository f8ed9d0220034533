package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// Dijkstra computes the cheapest cost from Options.Source to every node of g.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrNodeNotFound).
//  4. Every cost evaluated must be non-negative and not NaN (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, cfg.Source)
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]float64, len(nodes)),
		visited: make(map[core.NodeID]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.NodeID]core.NodeID, len(nodes))
	}

	r.init(nodes)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// ShortestDistances is the plain form of Dijkstra with BaseCost: distances to
// every node (+Inf if unreachable) and the predecessor map.
func ShortestDistances(g *core.Graph, source core.NodeID) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	res, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, nil, err
	}

	return res.Dist, res.Prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.NodeID]float64
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes Source=0 into the heap.
func (r *runner) init(nodes []core.NodeID) {
	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited node and relaxes its roads.
// It stops when the heap is empty or the closest entry exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor reachable over one road from u.
func (r *runner) relax(u core.NodeID) error {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get roads of %d: %w", u, err)
	}

	for _, e := range edges {
		if r.options.Filter != nil && !r.options.Filter(e) {
			continue
		}
		v := e.To
		if r.visited[v] {
			continue
		}

		w := r.options.Cost(e)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: road %d→%d cost=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict: equal-cost alternatives keep the first predecessor
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
