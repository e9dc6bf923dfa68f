package dispatch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcomes used as the "outcome" label.
const (
	OutcomeMatched      = "matched"
	OutcomeNotFound     = "not_found"
	OutcomeNoController = "no_controller"
	OutcomeError        = "error"
)

// Metrics provide dispatch level metrics. A nil *Metrics records nothing.
type Metrics struct {
	Dispatched *prometheus.CounterVec
	FindTime   prometheus.Histogram
}

// NewMetrics creates a new metrics instance. Register its Collectors with a
// prometheus registry before serving.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "dispatched_total",
			Help:      "Dispatched requests by route and outcome.",
		}, []string{"route", "outcome"}),
		FindTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "find_seconds",
			Help:      "Time spent finding the route of a request.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}

// Collectors returns all prometheus metrics as collectors for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{
		m.Dispatched,
		m.FindTime,
	}
}

func (m *Metrics) dispatched(route, outcome string) {
	if m == nil {
		return
	}
	m.Dispatched.WithLabelValues(route, outcome).Inc()
}

func (m *Metrics) observe(d time.Duration) {
	if m == nil {
		return
	}
	m.FindTime.Observe(d.Seconds())
}
