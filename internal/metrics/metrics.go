// Package metrics exposes Prometheus counters for the gate, panel renders
// and identity provider calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered by the application
type Metrics struct {
	registry *prometheus.Registry

	GateOutcomes    *prometheus.CounterVec
	PanelRenders    *prometheus.CounterVec
	AuthCalls       *prometheus.CounterVec
	RateRejects     *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	SocketConnected prometheus.Gauge
}

// New creates the collectors on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		GateOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modex",
			Name:      "gate_outcomes_total",
			Help:      "Auth gate decisions by outcome.",
		}, []string{"outcome"}),
		PanelRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modex",
			Name:      "panel_renders_total",
			Help:      "Rendered panels by name.",
		}, []string{"panel"}),
		AuthCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modex",
			Name:      "auth_calls_total",
			Help:      "Identity provider calls by operation and result.",
		}, []string{"op", "result"}),
		RateRejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modex",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by a rate limiter, by scope.",
		}, []string{"scope"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "modex",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "modex",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		SocketConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "modex",
			Name:      "session_sockets",
			Help:      "Open session state websockets.",
		}),
	}
	reg.MustRegister(
		m.GateOutcomes, m.PanelRenders, m.AuthCalls, m.RateRejects,
		m.HTTPRequests, m.HTTPDuration, m.SocketConnected,
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// AuthResult records a provider call; it satisfies auth.Observer
func (m *Metrics) AuthResult(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.AuthCalls.WithLabelValues(op, result).Inc()
}

// RateLimited counts a rejected request; it satisfies middleware.RejectObserver
func (m *Metrics) RateLimited(scope string) {
	m.RateRejects.WithLabelValues(scope).Inc()
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method string, code int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
