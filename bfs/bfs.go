package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state. Nothing here outlives one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from start following roads
// accepted by the options' edge filter. The walk stops as soon as to is seen.
func Reachable(g *core.Graph, start, to core.NodeID, opts ...Option) (bool, error) {
	if g != nil && !g.HasNode(to) {
		return false, nil
	}
	found := false
	stopAt := WithOnVisit(func(id core.NodeID, _ int) error {
		if id == to {
			found = true
			return errStop
		}
		return nil
	})

	w, err := newWalker(g, start, append(append([]Option(nil), opts...), stopAt))
	if err != nil {
		return false, err
	}
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return false, err
	}

	return found, nil
}

func newWalker(g *core.Graph, start core.NodeID, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0, start, false)

	return w, nil
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			if errors.Is(err, errStop) {
				return err
			}
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.OutEdges(item.id)
	if err != nil {
		return fmt.Errorf("bfs: out edges of %d: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) || w.visited[e.To] {
			continue
		}
		w.enqueue(e.To, next, item.id, true)
	}

	return nil
}
