// Package metrics exposes Prometheus collectors for assessment scoring.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics reports scoring activity.
type Metrics struct {
	analyses       *prometheus.CounterVec
	compositeScore *prometheus.HistogramVec
	duration       prometheus.Histogram
	rejected       *prometheus.CounterVec
}

// New registers the collectors with reg. A nil reg uses the default
// registerer. Registration errors panic, as promauto does.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orgassess",
			Subsystem: "scoring",
			Name:      "analyses_total",
			Help:      "Completed comprehensive analyses.",
		}, []string{"tier", "healthcare"}),
		compositeScore: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "orgassess",
			Subsystem: "scoring",
			Name:      "composite_score",
			Help:      "Distribution of composite scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 9),
		}, []string{"organization_type"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "orgassess",
			Subsystem: "scoring",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent running the index suite.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orgassess",
			Subsystem: "assessments",
			Name:      "rejected_total",
			Help:      "Submissions refused before scoring.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.analyses, m.compositeScore, m.duration, m.rejected)
	return m
}

// ObserveAnalysis records one finished suite run.
func (m *Metrics) ObserveAnalysis(tier, organizationType string, healthcare bool, score int, took time.Duration) {
	if m == nil {
		return
	}
	hc := "false"
	if healthcare {
		hc = "true"
	}
	m.analyses.WithLabelValues(tier, hc).Inc()
	m.compositeScore.WithLabelValues(organizationType).Observe(float64(score))
	m.duration.Observe(took.Seconds())
}

// Rejected records a refused submission.
func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
