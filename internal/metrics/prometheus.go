// Package metrics exposes the dashboard's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fundsmart/internal/cache"
)

const namespace = "fundsmart"

// Recorder records HTTP, cache, theme and security metrics.
type Recorder struct {
	gatherer prometheus.Gatherer

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        *prometheus.GaugeVec
	responseSize    *prometheus.HistogramVec
	cacheEvents     *prometheus.CounterVec
	themeChanges    *prometheus.CounterVec
	suspicious      *prometheus.CounterVec
	pagesRendered   *prometheus.CounterVec
	rateLimited     prometheus.Counter
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method", "class"},
		),
		inFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests",
			},
			[]string{"route", "method"},
		),
		responseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   []float64{200, 500, 1_000, 2_000, 5_000, 10_000, 50_000, 100_000},
			},
			[]string{"route", "method", "class"},
		),
		cacheEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_cache_events_total",
				Help:      "Page view-model cache hits, misses and evictions",
			},
			[]string{"event"},
		),
		themeChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "theme_changes_total",
				Help:      "Applied theme preference changes",
			},
			[]string{"theme"},
		),
		suspicious: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suspicious_requests_total",
				Help:      "Requests flagged by the security detector",
			},
			[]string{"reason"},
		),
		pagesRendered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pages_rendered_total",
				Help:      "Dashboard pages rendered by content set",
			},
			[]string{"content"},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_requests_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

func (r *Recorder) RecordCacheEvent(ev cache.Event) {
	r.cacheEvents.WithLabelValues(string(ev)).Inc()
}

// CacheObserver adapts the recorder to cache.Observer.
func (r *Recorder) CacheObserver() cache.Observer {
	return r.RecordCacheEvent
}

func (r *Recorder) RecordThemeChange(theme string) {
	r.themeChanges.WithLabelValues(theme).Inc()
}

func (r *Recorder) RecordSuspicious(reason string) {
	r.suspicious.WithLabelValues(reason).Inc()
}

func (r *Recorder) RecordPageRendered(content string) {
	r.pagesRendered.WithLabelValues(content).Inc()
}

func (r *Recorder) RecordRateLimited() {
	r.rateLimited.Inc()
}
