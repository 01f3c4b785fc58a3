package main

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"saturation_calc/saturation"
)

// Metrics counts batch solves. Each instance owns its registry.
type Metrics struct {
	registry *prometheus.Registry

	solves     *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the batch metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		// Labels: fluid, method, outcome (ok, not_found, error)
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "satcalc",
			Subsystem: "batch",
			Name:      "solves_total",
			Help:      "Saturation solves by fluid, method and outcome",
		}, []string{"fluid", "method", "outcome"}),
		// Labels: method
		iterations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "satcalc",
			Subsystem: "batch",
			Name:      "iterations",
			Help:      "Root finder iterations of converged solves",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		}, []string{"method"}),
		// Labels: method
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "satcalc",
			Subsystem: "batch",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one saturation solve",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"method"}),
	}
}

// Observe records one solve.
func (m *Metrics) Observe(fluidName, method string, iterations int, elapsed time.Duration, err error) {
	m.solves.WithLabelValues(fluidName, method, outcome(err)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	if err == nil {
		m.iterations.WithLabelValues(method).Observe(float64(iterations))
	}
}

// WriteTextfile writes the metrics in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, saturation.ErrSaturationNotFound):
		return "not_found"
	default:
		return "error"
	}
}
