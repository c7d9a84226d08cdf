// Package metrics provides Prometheus instrumentation for the curve engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sample outcomes used as the "outcome" label.
const (
	OutcomeKept       = "kept"
	OutcomeDomain     = "domain"
	OutcomeOutOfRange = "out_of_range"
)

var (
	// SamplesTotal counts sampled candidates by side and outcome.
	SamplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impactcurve_samples_total",
		Help: "Sampled curve positions by outcome",
	}, []string{"side", "outcome"})

	// EmptySeriesTotal counts sides that produced no representable point.
	EmptySeriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impactcurve_empty_series_total",
		Help: "Sampled series that came back empty",
	}, []string{"side"})

	// ConfigErrorsTotal counts evaluations rejected for invalid parameters.
	ConfigErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "impactcurve_config_errors_total",
		Help: "Evaluations rejected by parameter validation",
	})

	// EvaluationDuration tracks the time to sample both sides of a curve.
	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "impactcurve_evaluation_seconds",
		Help:    "Curve evaluation latency in seconds",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
)

// RecordSamples adds one pass's candidate outcomes for a side.
func RecordSamples(side string, kept, domain, outOfRange int) {
	SamplesTotal.WithLabelValues(side, OutcomeKept).Add(float64(kept))
	SamplesTotal.WithLabelValues(side, OutcomeDomain).Add(float64(domain))
	SamplesTotal.WithLabelValues(side, OutcomeOutOfRange).Add(float64(outOfRange))
}

// Handler returns the Prometheus metrics HTTP handler for an embedding
// application to mount.
func Handler() http.Handler {
	return promhttp.Handler()
}
