// Package metrics exposes Prometheus instruments for authentication attempts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "codeauth"

// Metrics holds the attempt instruments.
type Metrics struct {
	Attempts *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New creates the instruments and registers them with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Authentication attempts by provider, lifecycle event and outcome.",
		}, []string{"provider", "event", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "auth_attempt_duration_seconds",
			Help:      "Time spent resolving an identity, including provider round-trips.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "event"}),
	}

	if reg != nil {
		reg.MustRegister(m.Attempts, m.Duration)
	}
	return m
}

// Observe records one finished attempt.
func (m *Metrics) Observe(provider, event, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(provider, event, outcome).Inc()
	m.Duration.WithLabelValues(provider, event).Observe(d.Seconds())
}
