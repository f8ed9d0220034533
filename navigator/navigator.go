// Package navigator binds a road network to the routing engines and adds
// the operational concerns around each query: input validation, structured
// logging through the context logger, and Prometheus metrics.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/internal/common"
	"github.com/katalvlaran/roadnet/metrics"
	"github.com/katalvlaran/roadnet/pathfind"
	"github.com/katalvlaran/roadnet/tsp"
)

// ErrNilGraph is returned by New for a nil graph.
var ErrNilGraph = errors.New("navigator: graph is nil")

// Outcome labels used in logs and metrics.
const (
	OutcomeFound       = "found"
	OutcomeNoPath      = "no_path"
	OutcomeIneligible  = "ineligible"
	OutcomeComplete    = "complete"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Service answers routing queries against one road network.
type Service struct {
	graph      *core.Graph
	exactLimit int
	metrics    *metrics.Collector
}

// Option configures a Service.
type Option func(*Service)

// WithExactLimit sets the delivery ceiling for exact route planning.
func WithExactLimit(n int) Option {
	return func(s *Service) {
		s.exactLimit = n
	}
}

// WithMetrics records every query in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Service) {
		s.metrics = c
	}
}

// New returns a Service over g.
func New(g *core.Graph, opts ...Option) (*Service, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Service{graph: g, exactLimit: tsp.DefaultExactLimit}
	for _, opt := range opts {
		opt(s)
	}
	if s.exactLimit < 1 || s.exactLimit > tsp.MaxExactLimit {
		return nil, fmt.Errorf("navigator: %w: %d", tsp.ErrBadExactLimit, s.exactLimit)
	}

	return s, nil
}

// Graph returns the network the service queries.
func (s *Service) Graph() *core.Graph { return s.graph }

// FindPath returns the fastest path for vehicleName between start and end.
func (s *Service) FindPath(ctx context.Context, vehicleName string, start, end core.NodeID) (res pathfind.Result, err error) {
	logger := common.Logger(ctx).WithFields(logrus.Fields{
		"vehicle": vehicleName,
		"start":   start,
		"end":     end,
	})
	done := s.observe(logger, metrics.KindPath)
	defer func() { done(pathOutcome(res, err), err) }()

	if err = ctx.Err(); err != nil {
		return pathfind.Result{}, err
	}

	return pathfind.FindConstrainedPath(s.graph, vehicleName, start, end, pathfind.WithContext(ctx))
}

// PlanRoute orders deliveries from start with the given mode. Extra options
// (e.g. tsp.WithVehicle) are applied after the service's exact limit.
func (s *Service) PlanRoute(ctx context.Context, start core.NodeID, deliveries []core.NodeID, mode tsp.Mode, opts ...tsp.Option) (res tsp.Result, err error) {
	logger := common.Logger(ctx).WithFields(logrus.Fields{
		"start":      start,
		"deliveries": len(deliveries),
		"mode":       mode.String(),
	})
	done := s.observe(logger, metrics.KindRoute)
	defer func() {
		if err == nil && s.metrics != nil {
			s.metrics.AddOrderings(res.Evaluated)
		}
		done(routeOutcome(res, err), err)
	}()

	if err = ctx.Err(); err != nil {
		return tsp.Result{}, err
	}
	all := append([]tsp.Option{tsp.WithExactLimit(s.exactLimit), tsp.WithContext(ctx)}, opts...)

	return tsp.OptimizeRoute(s.graph, start, deliveries, mode, all...)
}

// observe starts a timer and returns the function that logs and records the query.
func (s *Service) observe(logger logrus.FieldLogger, kind string) func(outcome string, err error) {
	start := time.Now()
	logger.Debug("query started")

	return func(outcome string, err error) {
		elapsed := time.Since(start)
		if s.metrics != nil {
			s.metrics.ObserveQuery(kind, outcome, elapsed)
		}
		entry := logger.WithFields(logrus.Fields{"outcome": outcome, "elapsed": elapsed})
		if err != nil {
			entry.WithError(err).Warn("query failed")
			return
		}
		entry.Info("query finished")
	}
}

func pathOutcome(res pathfind.Result, err error) string {
	if err != nil {
		return OutcomeError
	}
	switch res.Failure {
	case pathfind.FailureNoPath:
		return OutcomeNoPath
	case pathfind.FailureIneligible:
		return OutcomeIneligible
	default:
		return OutcomeFound
	}
}

func routeOutcome(res tsp.Result, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case !res.Complete():
		return OutcomeUnreachable
	default:
		return OutcomeComplete
	}
}
