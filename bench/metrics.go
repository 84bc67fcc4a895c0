package bench

import (
	"time"

	"github.com/katalvlaran/knapsack/solver"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector receives one call per solve and per failed verification.
// Implementations must be safe for concurrent use: parallel runs call them
// from several goroutines.
type Collector interface {
	// RecordSolve is called after every solve; err is nil on success.
	RecordSolve(algo solver.Algorithm, d time.Duration, err error)

	// RecordMismatch is called when a solution fails verification.
	RecordMismatch(algo solver.Algorithm)
}

// NoopCollector discards all metrics.
type NoopCollector struct{}

func (NoopCollector) RecordSolve(solver.Algorithm, time.Duration, error) {}
func (NoopCollector) RecordMismatch(solver.Algorithm)                     {}

// PrometheusCollector exports solve timings and outcomes:
//
//	knapsack_solve_duration_seconds{algorithm}            histogram
//	knapsack_solves_total{algorithm,outcome="ok|error"}   counter
//	knapsack_verification_failures_total{algorithm}       counter
type PrometheusCollector struct {
	duration   *prometheus.HistogramVec
	solves     *prometheus.CounterVec
	mismatches *prometheus.CounterVec
}

// NewPrometheusCollector creates the metrics and registers them with reg.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	c := &PrometheusCollector{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "knapsack",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time of a single knapsack solve.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm"}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knapsack",
			Name:      "solves_total",
			Help:      "Knapsack solves by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knapsack",
			Name:      "verification_failures_total",
			Help:      "Solutions that failed cross-validation.",
		}, []string{"algorithm"}),
	}
	for _, col := range []prometheus.Collector{c.duration, c.solves, c.mismatches} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordSolve implements Collector.
func (c *PrometheusCollector) RecordSolve(algo solver.Algorithm, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.solves.WithLabelValues(algo.String(), outcome).Inc()
	if err == nil {
		c.duration.WithLabelValues(algo.String()).Observe(d.Seconds())
	}
}

// RecordMismatch implements Collector.
func (c *PrometheusCollector) RecordMismatch(algo solver.Algorithm) {
	c.mismatches.WithLabelValues(algo.String()).Inc()
}
