// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	ObservationsCreated *prometheus.CounterVec
	ObservationsUpdated prometheus.Counter
	ObservationsDeleted prometheus.Counter
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on a private registry,
// so several instances can coexist (tests build many routers).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ObservationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "boswachter_observations_created_total",
			Help: "Total number of observations submitted, by species",
		}, []string{"species"}),
		ObservationsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "boswachter_observations_updated_total",
			Help: "Total number of observations changed through PATCH",
		}),
		ObservationsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "boswachter_observations_deleted_total",
			Help: "Total number of observations deleted",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "boswachter_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// IncrementObservationsCreated counts one stored observation
func (m *Metrics) IncrementObservationsCreated(species string) {
	m.ObservationsCreated.WithLabelValues(species).Inc()
}

// ObserveRequest records the latency of one handled request
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
