package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode registers an isolated intersection. Adding an existing node is a no-op.
// Complexity: O(1).
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge adds the one-way road from→to. Both endpoints are created on demand.
//
// Errors: ErrLoopNotAllowed, ErrNegativeDistance, ErrNegativeDelay,
// ErrDuplicateEdge. Validation happens before any mutation, so a failed
// call leaves the graph unchanged.
//
// Complexity: O(len(opts)).
func (g *Graph) AddEdge(from, to NodeID, distance, delay float64, opts ...EdgeOption) error {
	e, err := newEdge(from, to, distance, delay, opts)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
	}
	g.insert(e)

	return nil
}

// AddRoad adds a two-way street as the pair of edges a→b and b→a sharing the
// same attributes. Either both edges are added or neither is.
func (g *Graph) AddRoad(a, b NodeID, distance, delay float64, opts ...EdgeOption) error {
	fwd, err := newEdge(a, b, distance, delay, opts)
	if err != nil {
		return err
	}
	rev := *fwd
	rev.From, rev.To = b, a

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[a][b]; exists {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, a, b)
	}
	if _, exists := g.adjacency[b][a]; exists {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, b, a)
	}
	g.insert(fwd)
	g.insert(&rev)

	return nil
}

// newEdge validates attributes and applies options.
func newEdge(from, to NodeID, distance, delay float64, opts []EdgeOption) (*Edge, error) {
	if from == to {
		return nil, fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}
	if !finiteNonNegative(distance) {
		return nil, fmt.Errorf("%w: %d→%d distance=%v", ErrNegativeDistance, from, to, distance)
	}
	if !finiteNonNegative(delay) {
		return nil, fmt.Errorf("%w: %d→%d delay=%v", ErrNegativeDelay, from, to, delay)
	}

	e := &Edge{From: from, To: to, Distance: distance, Delay: delay}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1) // NaN fails x >= 0
}

// insert stores e. Caller holds the write lock and has checked for duplicates.
func (g *Graph) insert(e *Edge) {
	g.ensureNode(e.From)
	g.ensureNode(e.To)
	g.adjacency[e.From][e.To] = e
	g.edgeCount++
}

// HasEdge reports whether the one-way road from→to exists.
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the road from→to.
func (g *Graph) Edge(from, to NodeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return *e, nil
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// OutEdges returns copies of the roads leaving id, ordered by target.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) OutEdges(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, *e)
	}
	sortEdges(out)

	return out, nil
}

// Neighbors returns the targets of the roads leaving id, ascending.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out, nil
}

// Edges returns copies of all roads ordered by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	return g.collect(func(Edge) bool { return true })
}

// EdgesTouching returns the roads that start or end at any of ids, ordered
// by (From, To). Unknown ids are ignored.
func (g *Graph) EdgesTouching(ids ...NodeID) []Edge {
	want := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	return g.collect(func(e Edge) bool {
		_, from := want[e.From]
		_, to := want[e.To]
		return from || to
	})
}

func (g *Graph) collect(keep func(Edge) bool) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, bucket := range g.adjacency {
		for _, e := range bucket {
			if keep(*e) {
				out = append(out, *e)
			}
		}
	}
	sortEdges(out)

	return out
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}
		return es[i].To < es[j].To
	})
}
