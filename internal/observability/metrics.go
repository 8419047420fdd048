// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the blog API.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DurationBuckets are histogram buckets for API latencies, 5ms to 10s.
var DurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics owns the registry and every collector the server exports.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts HTTP requests by method, route pattern and status class.
	RequestsTotal *prometheus.CounterVec
	// RequestDuration records HTTP request duration in seconds by method and route pattern.
	RequestDuration *prometheus.HistogramVec
	// InFlight is the number of requests being served.
	InFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them, together with the
// Go runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_requests_total",
				Help: "Total requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blog_request_duration_seconds",
				Help:    "Request duration",
				Buckets: DurationBuckets,
			},
			[]string{"method", "route"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "blog_requests_in_flight",
				Help: "Requests being served",
			},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.InFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
// Compression is left to the HTTP middleware chain.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry, DisableCompression: true})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
