package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses path IDs to keep label cardinality bounded.
// /api/v1/customers/01ABC/balance -> /api/v1/customers/:id/balance
func normalizePath(path string) string {
	const customersPrefix = "/api/v1/customers/"
	if strings.HasPrefix(path, customersPrefix) && len(path) > len(customersPrefix) {
		rest := path[len(customersPrefix):]
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			return customersPrefix + ":id" + rest[idx:]
		}
		return customersPrefix + ":id"
	}

	const transactionsPrefix = "/api/v1/transactions/"
	if strings.HasPrefix(path, transactionsPrefix) && len(path) > len(transactionsPrefix) {
		rest := path[len(transactionsPrefix):]
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			return transactionsPrefix + ":id" + rest[idx:]
		}
		return transactionsPrefix + ":id"
	}

	return path
}
