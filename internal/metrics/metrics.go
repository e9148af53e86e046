// Package metrics holds the site's Prometheus collectors on a private
// registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "site"

// Export results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Collector records request, cache and export metrics.
type Collector struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	cacheEvents   *prometheus.CounterVec
	exports       *prometheus.CounterVec
	exportLatency prometheus.Histogram
}

// New registers the collectors, plus the Go and process collectors, on a
// fresh registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: "page_cache_events_total", Help: "Page cache hits and misses."},
			[]string{"event"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: "exports_total", Help: "Static exports."},
			[]string{"result"},
		),
		exportLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace, Name: "export_duration_seconds",
			Help:    "Static export duration seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	c.registry.MustRegister(
		c.requests, c.latency, c.cacheEvents, c.exports, c.exportLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry exposes the registry for tests and extra collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveRequest implements middlewares.Observer.
func (c *Collector) ObserveRequest(route, method string, status int, d time.Duration) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(route, method).Observe(d.Seconds())
}

// ObserveCache counts a page cache event: hit or miss.
func (c *Collector) ObserveCache(event string) {
	c.cacheEvents.WithLabelValues(event).Inc()
}

// ObserveExport records one export run.
func (c *Collector) ObserveExport(err error, d time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	c.exports.WithLabelValues(result).Inc()
	c.exportLatency.Observe(d.Seconds())
}
