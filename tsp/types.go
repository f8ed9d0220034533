package tsp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/vehicle"
)

// Sentinel errors for route planning.
var (
	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrTooManyDeliveries is returned when exact mode is asked for more
	// deliveries than the configured limit.
	ErrTooManyDeliveries = errors.New("tsp: too many deliveries for exact mode")

	// ErrUnknownMode is returned for a Mode outside the enum or an unparsable name.
	ErrUnknownMode = errors.New("tsp: unknown optimization mode")

	// ErrBadExactLimit is returned when WithExactLimit gets a value outside [1, MaxExactLimit].
	ErrBadExactLimit = errors.New("tsp: exact limit out of range")
)

const (
	// DefaultExactLimit is the largest delivery set ModeExact accepts by default (8! orderings).
	DefaultExactLimit = 8

	// MaxExactLimit is the hard ceiling for WithExactLimit (10! orderings).
	MaxExactLimit = 10

	roundScale = 1e9
)

// Mode selects the optimization strategy.
type Mode int

const (
	// ModeExact enumerates every delivery ordering.
	ModeExact Mode = iota
	// ModeHeuristic builds a nearest-neighbor tour.
	ModeHeuristic
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeHeuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "exact" or "heuristic" (also "nn", "nearest"), case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "":
		return ModeExact, nil
	case "heuristic", "nn", "nearest":
		return ModeHeuristic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Result is a planned route.
//
// Stops starts with the start node. A heuristic tour also ends with it.
// Unreachable is sorted and de-duplicated; beyond the start node it shares
// no element with Stops.
type Result struct {
	Stops         []core.NodeID
	TotalDistance float64
	TotalTime     float64
	Unreachable   []core.NodeID
	Evaluated     int
	Mode          Mode
}

// Complete reports whether a route was produced.
func (r Result) Complete() bool { return len(r.Stops) > 0 }

// Options tunes route planning.
type Options struct {
	// Vehicle, if set, restricts both modes to roads it may travel on.
	Vehicle *vehicle.Vehicle

	// ExactLimit caps the delivery count accepted by ModeExact.
	ExactLimit int

	// Ctx aborts planning between orderings (exact) or stops (heuristic).
	Ctx context.Context

	err error
}

// Option configures route planning via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no vehicle filter, DefaultExactLimit
// and a background context.
func DefaultOptions() Options {
	return Options{ExactLimit: DefaultExactLimit, Ctx: context.Background()}
}

// WithContext sets a context whose cancellation aborts planning with ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVehicle restricts planning to roads v can use.
func WithVehicle(v vehicle.Vehicle) Option {
	return func(o *Options) {
		o.Vehicle = &v
	}
}

// WithExactLimit sets the delivery ceiling for ModeExact (1..MaxExactLimit).
func WithExactLimit(n int) Option {
	return func(o *Options) {
		if n < 1 || n > MaxExactLimit {
			o.err = fmt.Errorf("%w: %d (max %d)", ErrBadExactLimit, n, MaxExactLimit)
			return
		}
		o.ExactLimit = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
