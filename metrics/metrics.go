// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Authorization decision outcomes.
const (
	OutcomeAllowed         = "allowed"
	OutcomeDenied          = "denied"
	OutcomeUnauthenticated = "unauthenticated"
)

// Metrics groups the collectors of the API.
type Metrics struct {
	AuthorizationDecisions *prometheus.CounterVec
	RequestDuration        *prometheus.HistogramVec
	registry               *prometheus.Registry
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		AuthorizationDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_authorization_decisions_total",
			Help: "Authorization guard decisions by permission and outcome.",
		}, []string{"permission", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		registry: reg,
	}
}

// RecordDecision counts one guard decision.
func (m *Metrics) RecordDecision(permission, outcome string) {
	if m == nil {
		return
	}
	m.AuthorizationDecisions.WithLabelValues(permission, outcome).Inc()
}

// ObserveRequest records the latency of one handled request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
