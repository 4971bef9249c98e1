package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	// HTTPRateLimited counts requests rejected by the rate limiter.
	HTTPRateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
	)

	OptimizeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "schedule_optimize_duration_seconds", Help: "Route optimization latency in seconds.", Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}},
		[]string{"strategy"},
	)
	OptimizedJobs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "schedule_optimize_jobs", Help: "Number of jobs per optimization.", Buckets: []float64{0, 1, 5, 10, 20, 50, 100}},
		[]string{"strategy"},
	)
	// ScheduleCacheLookups counts cache lookups by result (hit, miss, error).
	ScheduleCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "schedule_cache_lookups_total", Help: "Schedule cache lookups by result."},
		[]string{"result"},
	)
)

// RegisterDefault registers all collectors on Registry once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(HTTPRateLimited)
		Registry.MustRegister(OptimizeDuration)
		Registry.MustRegister(OptimizedJobs)
		Registry.MustRegister(ScheduleCacheLookups)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
