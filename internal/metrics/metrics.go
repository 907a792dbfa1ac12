// Package metrics provides Prometheus instrumentation for PROPr scoring.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the scoring processor.
type Metrics struct {
	// Assessments by input kind and outcome ("ok", "missing_input")
	Assessments *prometheus.CounterVec

	// Composite score distribution
	Score prometheus.Histogram

	// Per-domain utility distribution
	DomainUtility *prometheus.HistogramVec

	// Scoring latency
	Latency prometheus.Histogram
}

// utilityBuckets span the model's range, which dips below the dead anchor.
var utilityBuckets = []float64{-0.2, 0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}

// New creates the scoring metrics and registers them with reg.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Assessments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Total scoring assessments by input kind and outcome",
		}, []string{"kind", "outcome"}),

		Score: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Distribution of composite PROPr scores",
			Buckets:   utilityBuckets,
		}),

		DomainUtility: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "domain_utility",
			Help:      "Distribution of per-domain utilities",
			Buckets:   utilityBuckets,
		}, []string{"domain"}),

		Latency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score_duration_seconds",
			Help:      "Duration of a single scoring assessment",
			Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.001},
		}),
	}
}

// IncrementAssessment records an assessment outcome.
func (m *Metrics) IncrementAssessment(kind, outcome string) {
	if m != nil {
		m.Assessments.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveScore records a composite score.
func (m *Metrics) ObserveScore(score float64) {
	if m != nil {
		m.Score.Observe(score)
	}
}

// ObserveDomainUtility records one per-domain utility.
func (m *Metrics) ObserveDomainUtility(domain string, utility float64) {
	if m != nil {
		m.DomainUtility.WithLabelValues(domain).Observe(utility)
	}
}

// ObserveLatency records the duration of one assessment.
func (m *Metrics) ObserveLatency(d time.Duration) {
	if m != nil {
		m.Latency.Observe(d.Seconds())
	}
}
