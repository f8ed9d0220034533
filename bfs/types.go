package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// errStop aborts the walk early without surfacing an error.
var errStop = errors.New("bfs: stop")

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. Returning an error aborts
	// BFS and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip roads by returning false.
	FilterEdge func(e core.Edge) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.NodeID, int) error { return nil },
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithEdgeFilter skips roads for which fn returns false.
func WithEdgeFilter(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the hop-shortest path from the start node to dest.
// The boolean is false if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, bool) {
	if !r.Reached(dest) {
		return nil, false
	}
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
