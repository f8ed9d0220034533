// Package metrics records routing query outcomes in a private Prometheus
// registry and dumps them in the text exposition format.
package metrics

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Query kinds.
const (
	KindPath  = "path"
	KindRoute = "route"
)

// Collector captures metrics for routing queries.
type Collector struct {
	registry      *prometheus.Registry
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	orderings     prometheus.Counter
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "roadnet_queries_total", Help: "Routing queries by kind and outcome"},
			[]string{"kind", "outcome"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roadnet_query_duration_seconds",
				Help:    "Routing query duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"kind"},
		),
		orderings: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "roadnet_route_orderings_total", Help: "Delivery orderings evaluated by the route optimizer"},
		),
	}

	registry.MustRegister(c.queriesTotal, c.queryDuration, c.orderings)
	return c
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveQuery records one query of the given kind and outcome.
func (c *Collector) ObserveQuery(kind, outcome string, elapsed time.Duration) {
	c.queriesTotal.WithLabelValues(kind, outcome).Inc()
	c.queryDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// AddOrderings counts orderings evaluated by one route query.
func (c *Collector) AddOrderings(n int) {
	if n > 0 {
		c.orderings.Add(float64(n))
	}
}

// WriteTo writes all metrics to w in the Prometheus text format.
func (c *Collector) WriteTo(w io.Writer) (int64, error) {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return 0, err
		}
	}

	return buf.WriteTo(w)
}

// Write writes all metrics to a Prometheus text file.
func (c *Collector) Write(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
