package pathfind

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/vehicle"
)

// ErrNilGraph is returned when a nil graph is queried.
var ErrNilGraph = errors.New("pathfind: graph is nil")

// Option configures a path query.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext aborts the reachability checks with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Failure classifies why no path was produced.
type Failure int

const (
	// FailureNone marks a successful search.
	FailureNone Failure = iota
	// FailureNoPath means start and end are disconnected in the network itself.
	FailureNoPath
	// FailureIneligible means only roads unusable by the vehicle connect them.
	FailureIneligible
)

// Reason returns the human-readable failure text, or "" on success.
func (f Failure) Reason() string {
	switch f {
	case FailureNoPath:
		return "no path connects the nodes"
	case FailureIneligible:
		return "no eligible road for this vehicle class"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNoPath:
		return "no_path"
	case FailureIneligible:
		return "ineligible"
	default:
		return "unknown"
	}
}

// Step is one road traversal on a found path.
type Step struct {
	From      core.NodeID
	To        core.NodeID
	Distance  float64
	Delay     float64
	Damaged   bool
	RoadClass vehicle.Class // class the road is labeled with
	Selected  vehicle.Class // class the query was run for
	Time      float64       // vehicle.Weight for Selected
}

// Result is the outcome of a constrained shortest-path query.
// When Nodes is empty, TotalTime is +Inf and Failure is set.
type Result struct {
	Nodes     []core.NodeID
	TotalTime float64
	Steps     []Step
	Failure   Failure
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return r.Failure == FailureNone }

func failed(f Failure) Result {
	return Result{TotalTime: math.Inf(1), Failure: f}
}
