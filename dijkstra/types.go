package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source node does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates a negative or NaN road cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilCost indicates that WithCost was given a nil function.
	ErrNilCost = errors.New("dijkstra: cost function is nil")
)

// CostFunc returns the traversal cost of a road. It must be non-negative.
type CostFunc func(e core.Edge) float64

// EdgeFilter reports whether a road may be traversed at all.
type EdgeFilter func(e core.Edge) bool

// BaseCost is the default CostFunc: distance plus delay.
func BaseCost(e core.Edge) float64 { return e.BaseWeight() }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node (required).
// ReturnPath  – if true, Result.Prev is populated.
// Cost        – road cost; defaults to BaseCost.
// Filter      – optional road filter; nil keeps every road.
// MaxDistance – nodes farther than this are left unexplored. Default +Inf.
type Options struct {
	Source      core.NodeID
	hasSource   bool
	ReturnPath  bool
	Cost        CostFunc
	Filter      EdgeFilter
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Must be supplied.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithCost replaces the road cost function. Panics on nil.
func WithCost(fn CostFunc) Option {
	if fn == nil {
		panic(ErrNilCost.Error())
	}
	return func(o *Options) {
		o.Cost = fn
	}
}

// WithEdgeFilter skips roads for which fn returns false.
func WithEdgeFilter(fn EdgeFilter) Option {
	return func(o *Options) {
		o.Filter = fn
	}
}

// WithMaxDistance caps exploration. Panics on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with BaseCost, no filter,
// no distance cap and no predecessor map. Source is left unset.
func DefaultOptions() Options {
	return Options{
		Cost:        BaseCost,
		MaxDistance: math.Inf(1),
	}
}

// Result carries the outcome of a single-source search.
//
// Dist holds every node of the graph; unreachable nodes map to +Inf.
// Prev maps each reached node (except the source) to its predecessor and is
// nil unless WithReturnPath was supplied.
type Result struct {
	Source core.NodeID
	Dist   map[core.NodeID]float64
	Prev   map[core.NodeID]core.NodeID
}

// Reachable reports whether target has a finite distance.
func (r *Result) Reachable(target core.NodeID) bool {
	d, ok := r.Dist[target]
	return ok && !math.IsInf(d, 1)
}

// PathTo rebuilds the node sequence Source→…→target.
// Returns false if target is unreachable or the predecessor map was not requested.
func (r *Result) PathTo(target core.NodeID) ([]core.NodeID, bool) {
	if !r.Reachable(target) {
		return nil, false
	}
	if target == r.Source {
		return []core.NodeID{target}, true
	}
	if r.Prev == nil {
		return nil, false
	}

	path := []core.NodeID{target}
	for cur := target; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Dist) {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
