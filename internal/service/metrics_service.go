package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the gateway and
// the distribution engine.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	distributionsTotal *prometheus.CounterVec
	dispatchDuration   prometheus.Histogram
	courseCallsTotal   *prometheus.CounterVec
	courseCallDuration prometheus.Histogram
	snapshotCacheHits  prometheus.Counter
	snapshotCacheMiss  prometheus.Counter
}

// NewMetricsService registers the core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	distributionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distributions_total",
		Help: "Completed distribution operations by aggregate status",
	}, []string{"status"})

	dispatchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "distribution_dispatch_seconds",
		Help:    "Wall time of a full fan-out over all target courses",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	courseCallsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distribution_course_calls_total",
		Help: "Per-course platform create calls by outcome",
	}, []string{"outcome"})

	courseCallDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "distribution_course_call_seconds",
		Help:    "Latency of individual per-course platform create calls",
		Buckets: prometheus.DefBuckets,
	})

	snapshotCacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_cache_hits_total",
		Help: "Course snapshot cache hits",
	})

	snapshotCacheMiss := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_cache_misses_total",
		Help: "Course snapshot cache misses",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, distributionsTotal, dispatchDuration, courseCallsTotal, courseCallDuration, snapshotCacheHits, snapshotCacheMiss, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:           registry,
		handler:            handler,
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		distributionsTotal: distributionsTotal,
		dispatchDuration:   dispatchDuration,
		courseCallsTotal:   courseCallsTotal,
		courseCallDuration: courseCallDuration,
		snapshotCacheHits:  snapshotCacheHits,
		snapshotCacheMiss:  snapshotCacheMiss,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveDistribution records one completed distribution operation.
func (m *MetricsService) ObserveDistribution(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.distributionsTotal.WithLabelValues(status).Inc()
	m.dispatchDuration.Observe(duration.Seconds())
}

// ObserveCourseCall records one per-course platform create call.
func (m *MetricsService) ObserveCourseCall(success bool, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.courseCallsTotal.WithLabelValues(outcome).Inc()
	m.courseCallDuration.Observe(duration.Seconds())
}

// RecordSnapshotCache records a snapshot cache lookup.
func (m *MetricsService) RecordSnapshotCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.snapshotCacheHits.Inc()
	} else {
		m.snapshotCacheMiss.Inc()
	}
}
