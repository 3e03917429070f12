package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solve outcomes used as the "outcome" label.
const (
	OutcomeOK             = "ok"
	OutcomeInvalid        = "invalid_parameter"
	OutcomeNonConvergence = "non_convergence"
)

// Metrics holds the solver collectors.
type Metrics struct {
	registry   *prometheus.Registry
	solves     *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	spread     *prometheus.GaugeVec
}

// New creates and registers the collectors on a fresh registry,
// including the Go runtime collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cg",
			Name:      "solves_total",
			Help:      "Equilibrium solves by distribution family and outcome.",
		}, []string{"family", "outcome"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cg",
			Name:      "solver_iterations",
			Help:      "Root finder iterations per successful solve.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}, []string{"family"}),
		spread: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cg",
			Name:      "equilibrium_spread",
			Help:      "Most recent equilibrium spread by distribution family.",
		}, []string{"family"}),
	}

	m.registry.MustRegister(
		m.solves,
		m.iterations,
		m.spread,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveSolve records a successful solve.
func (m *Metrics) ObserveSolve(family string, iterations int, spread float64) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(family, OutcomeOK).Inc()
	m.iterations.WithLabelValues(family).Observe(float64(iterations))
	m.spread.WithLabelValues(family).Set(spread)
}

// ObserveFailure records a failed solve with the given outcome.
func (m *Metrics) ObserveFailure(family, outcome string) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(family, outcome).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
