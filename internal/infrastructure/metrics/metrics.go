// Package metrics holds the Prometheus collectors exposed on /metrics.
//
// Every recorder is nil-safe so components can run without metrics in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_backoffice"

type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	httpRequests *prometheus.CounterVec   // By method, route and status
	httpDuration *prometheus.HistogramVec // By method and route

	// Upload queue
	uploadsQueued   prometheus.Counter
	uploadsResult   *prometheus.CounterVec // By result: success, retry, failed
	uploadsPending  prometheus.Gauge
	uploadsDuration prometheus.Histogram

	// Cache
	cacheLookups *prometheus.CounterVec // By result: hit, miss, error

	// Email
	emailsSent *prometheus.CounterVec // By kind and result
}

// New creates the collectors on a dedicated registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		uploadsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upload_queue",
			Name:      "queued_total",
			Help:      "Total number of uploads accepted by the background queue",
		}),

		uploadsResult: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upload_queue",
			Name:      "attempts_total",
			Help:      "Upload attempts by result",
		}, []string{"result"}), // result: success, retry, failed

		uploadsPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "upload_queue",
			Name:      "pending",
			Help:      "Uploads currently waiting in the queue",
		}),

		uploadsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upload_queue",
			Name:      "upload_duration_seconds",
			Help:      "Duration of a single upload attempt in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
		}),

		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Cache lookups by result",
		}, []string{"result"}),

		emailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "emails_total",
			Help:      "Emails handed to the SMTP server by kind and result",
		}, []string{"kind", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.uploadsQueued,
		m.uploadsResult,
		m.uploadsPending,
		m.uploadsDuration,
		m.cacheLookups,
		m.emailsSent,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) RecordUploadQueued(pending int) {
	if m == nil {
		return
	}
	m.uploadsQueued.Inc()
	m.uploadsPending.Set(float64(pending))
}

// RecordUploadAttempt records one drain attempt. result is success, retry or failed.
func (m *Metrics) RecordUploadAttempt(result string, d time.Duration, pending int) {
	if m == nil {
		return
	}
	m.uploadsResult.WithLabelValues(result).Inc()
	m.uploadsDuration.Observe(d.Seconds())
	m.uploadsPending.Set(float64(pending))
}

func (m *Metrics) RecordCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordEmail(kind string, sent bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !sent {
		result = "failed"
	}
	m.emailsSent.WithLabelValues(kind, result).Inc()
}
