// Package metrics holds the Prometheus collectors for the campus service.
// Collectors register with the default registry at init and are exposed on
// /metrics by the HTTP router.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_http_requests_total",
			Help: "Total number of HTTP requests by route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campus_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// Account Metrics
	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campus_accounts_created_total",
			Help: "Total number of accounts created",
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_login_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	// Content Metrics
	QueriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campus_queries_created_total",
			Help: "Total number of queries posted",
		},
	)

	QueriesDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_queries_deleted_total",
			Help: "Total number of queries deleted",
		},
		[]string{"reason"}, // "owner", "retention"
	)

	CommentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campus_comments_created_total",
			Help: "Total number of comments posted",
		},
	)

	CommentsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campus_comments_rejected_total",
			Help: "Total number of comments rejected as toxic",
		},
	)

	// Moderation Metrics
	ModerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_moderation_requests_total",
			Help: "Total number of toxicity checks by outcome",
		},
		[]string{"outcome"}, // "clean", "toxic", "error", "skipped", "throttled", "open_circuit"
	)

	ModerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campus_moderation_duration_seconds",
			Help:    "Duration of toxicity API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campus_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Retention Metrics
	RetentionSweeps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_retention_sweeps_total",
			Help: "Total number of retention sweeps by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	RetentionLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campus_retention_last_success_timestamp",
			Help: "Unix timestamp of the last successful retention sweep",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campus_app_info",
			Help: "Application version and build information",
		},
		[]string{"version"},
	)
)

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordModeration records the outcome of a toxicity check.
func RecordModeration(outcome string, duration time.Duration) {
	ModerationRequests.WithLabelValues(outcome).Inc()
	if duration > 0 {
		ModerationDuration.Observe(duration.Seconds())
	}
}

// RecordRetentionSweep records a sweep and how many queries it removed.
func RecordRetentionSweep(deleted int, err error) {
	if err != nil {
		RetentionSweeps.WithLabelValues("failure").Inc()
		return
	}
	RetentionSweeps.WithLabelValues("success").Inc()
	QueriesDeleted.WithLabelValues("retention").Add(float64(deleted))
	RetentionLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordLogin records a login attempt.
func RecordLogin(ok bool) {
	if ok {
		LoginAttempts.WithLabelValues("success").Inc()
		return
	}
	LoginAttempts.WithLabelValues("failure").Inc()
}

// Middleware records request counts and latency per route pattern. It must
// sit directly around the ServeMux so the matched pattern is visible once the
// mux returns.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		RecordHTTPRequest(r.Method, route, rw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
