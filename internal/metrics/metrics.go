// Package metrics exposes Prometheus counters for served questions and
// handled interactions.
package metrics

import (
	"net/http"

	"truth-or-dare/internal/game"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "truthordare"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	registry          *prometheus.Registry
	questionsServed   *prometheus.CounterVec
	selectionFallback prometheus.Counter
	selectionAttempts prometheus.Histogram
	interactions      *prometheus.CounterVec
	malformedCursors  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		questionsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_served_total",
			Help:      "Questions served, by type and rating.",
		}, []string{"type", "rating"}),
		selectionFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_fallbacks_total",
			Help:      "Selections that exhausted their attempts and served the placeholder.",
		}),
		selectionAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "selection_attempts",
			Help:      "Store round trips per selection.",
			Buckets:   []float64{1, 2, 3, 4, 5},
		}),
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Handled triggers, by kind.",
		}, []string{"kind"}),
		malformedCursors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_cursors_total",
			Help:      "Navigation ids that failed to decode.",
		}),
	}
	m.registry.MustRegister(
		m.questionsServed,
		m.selectionFallback,
		m.selectionAttempts,
		m.interactions,
		m.malformedCursors,
	)
	return m
}

func (m *Metrics) ObserveSelection(question game.Question, attempts int) {
	if m == nil {
		return
	}
	m.selectionAttempts.Observe(float64(attempts))
	if question.IsSentinel() {
		m.selectionFallback.Inc()
		return
	}
	m.questionsServed.WithLabelValues(string(question.Type), string(question.Rating)).Inc()
}

func (m *Metrics) Interaction(kind string) {
	if m == nil {
		return
	}
	m.interactions.WithLabelValues(kind).Inc()
}

func (m *Metrics) MalformedCursor() {
	if m == nil {
		return
	}
	m.malformedCursors.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
