// Package metrics provides Prometheus metrics for engine runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/mmmkit/decomp/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "decomp"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds the run metrics on a dedicated Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	rowsEmitted *prometheus.CounterVec
}

// Default is the process-wide registry used by the CLI and MCP server.
var Default = NewRegistry()

// NewRegistry creates a registry with all run metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Engine runs by kind and result.",
		}, []string{"kind", "result"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of engine runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"kind"}),
		rowsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_emitted_total",
			Help:      "Records or comparison rows produced by engine runs.",
		}, []string{"kind"}),
	}
}

// ObserveRun records the outcome of one run.
func (r *Registry) ObserveRun(kind schema.RunKind, duration time.Duration, rows int, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.runsTotal.WithLabelValues(string(kind), result).Inc()
	r.runDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	if err == nil && rows > 0 {
		r.rowsEmitted.WithLabelValues(string(kind)).Add(float64(rows))
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
