// Package repetmetrics adapts Prometheus client_golang to the
// repet.MetricsRecorder interface.
package repetmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records pipeline invocation counts, latencies, and
// degenerate-structure fallbacks as Prometheus collectors.
type Metrics struct {
	invocations          *prometheus.CounterVec
	duration             *prometheus.HistogramVec
	degenerateStructures *prometheus.CounterVec
}

// New constructs a Metrics and registers its collectors with reg. Pass
// prometheus.DefaultRegisterer for the global registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "repet",
			Name:      "pipeline_invocations_total",
			Help:      "Total number of separation pipeline invocations, by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "repet",
			Name:      "pipeline_duration_seconds",
			Help:      "Separation pipeline wall-clock duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		degenerateStructures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "repet",
			Name:      "degenerate_structure_total",
			Help:      "Count of pipeline runs that found no usable repetition structure.",
		}, []string{"method"}),
	}
	reg.MustRegister(m.invocations, m.duration, m.degenerateStructures)
	return m
}

// ObserveInvocation records a single pipeline call's outcome and
// latency.
func (m *Metrics) ObserveInvocation(method string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.invocations.WithLabelValues(method, outcome).Inc()
	m.duration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveDegenerateStructure records a run that found no usable
// repetition structure and fell back to ErrDegenerateStructure.
func (m *Metrics) ObserveDegenerateStructure(method string) {
	m.degenerateStructures.WithLabelValues(method).Inc()
}
