package concierge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage labels for the duration histogram.
const (
	StageClassify = "classify"
	StageSearch   = "search"
	StageAnswer   = "answer"
	StageTotal    = "total"
)

// Metrics exposes per-stage latency and request outcome counters.
type Metrics struct {
	StageDuration *prometheus.HistogramVec
	Requests      *prometheus.CounterVec
}

// NewMetrics registers the concierge metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "concierge_stage_duration_seconds",
				Help:    "Duration of each concierge pipeline stage",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concierge_requests_total",
				Help: "Concierge requests by outcome",
			},
			[]string{"status"},
		),
	}
}

// observeStage records a stage duration; safe on a nil receiver so the
// pipeline works without metrics wired (CLI, tests).
func (m *Metrics) observeStage(stage string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// CountRequest increments the outcome counter; nil-safe.
func (m *Metrics) CountRequest(status string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(status).Inc()
}
