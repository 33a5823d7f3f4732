package mcpsrv

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects gallery tool usage. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	toolCalls       *prometheus.CounterVec
	favoriteToggles *prometheus.CounterVec
	visibleItems    prometheus.Histogram
	liveSessions    prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	toolCalls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bites_tool_calls_total",
			Help: "MCP tool calls by tool and outcome",
		},
		[]string{"tool", "outcome"},
	)

	favoriteToggles := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bites_favorite_toggles_total",
			Help: "Favorite toggles by resulting state",
		},
		[]string{"state"},
	)

	visibleItems := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bites_visible_items",
			Help:    "Number of items visible after filtering",
			Buckets: prometheus.LinearBuckets(0, 4, 8),
		},
	)

	liveSessions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bites_live_sessions",
			Help: "Gallery sessions currently held by the server",
		},
	)

	registry.MustRegister(toolCalls, favoriteToggles, visibleItems, liveSessions)

	return &Metrics{
		registry:        registry,
		toolCalls:       toolCalls,
		favoriteToggles: favoriteToggles,
		visibleItems:    visibleItems,
		liveSessions:    liveSessions,
	}
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) toolCall(tool string, isError bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if isError {
		outcome = "error"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

func (m *Metrics) favoriteToggled(liked bool) {
	if m == nil {
		return
	}
	state := "unliked"
	if liked {
		state = "liked"
	}
	m.favoriteToggles.WithLabelValues(state).Inc()
}

func (m *Metrics) observeVisible(n int) {
	if m == nil {
		return
	}
	m.visibleItems.Observe(float64(n))
}

func (m *Metrics) setSessions(n int) {
	if m == nil {
		return
	}
	m.liveSessions.Set(float64(n))
}
