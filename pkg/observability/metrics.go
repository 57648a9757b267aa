// Package observability exposes Prometheus metrics for machine execution.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"tapeline/pkg/domain"
)

// Metrics holds the execution collectors. Obtain one with NewMetrics and
// attach it to an engine via Hooks.
type Metrics struct {
	steps          *prometheus.CounterVec
	runs           *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tapeline",
			Name:      "steps_total",
			Help:      "Transitions executed, by step outcome.",
		}, []string{"status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tapeline",
			Name:      "runs_total",
			Help:      "Completed runs, by terminal status.",
		}, []string{"status"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tapeline",
			Name:      "active_sessions",
			Help:      "Sessions currently open.",
		}),
	}
	reg.MustRegister(m.steps, m.runs, m.activeSessions)
	return m
}

// Hooks adapts the metrics into lifecycle hooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, ev *domain.StepEvent) {
			m.steps.WithLabelValues(ev.Status.String()).Inc()
		},
		OnTerminal: func(_ context.Context, ev *domain.StepEvent) {
			m.runs.WithLabelValues(ev.Status.String()).Inc()
		},
	}
}

// SessionOpened increments the active session gauge.
func (m *Metrics) SessionOpened() { m.activeSessions.Inc() }

// SessionClosed decrements the active session gauge.
func (m *Metrics) SessionClosed() { m.activeSessions.Dec() }

// StepCounter returns the step counter for one status label.
func (m *Metrics) StepCounter(status domain.Status) prometheus.Counter {
	return m.steps.WithLabelValues(status.String())
}

// RunCounter returns the run counter for one status label.
func (m *Metrics) RunCounter(status domain.Status) prometheus.Counter {
	return m.runs.WithLabelValues(status.String())
}

// ActiveSessions returns the open-session gauge.
func (m *Metrics) ActiveSessions() prometheus.Gauge { return m.activeSessions }
