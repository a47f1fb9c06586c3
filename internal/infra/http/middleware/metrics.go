package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
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
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	slipsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slips_rendered_total",
			Help: "Total number of salary slips rendered",
		},
		[]string{"format", "status"},
	)

	slipEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slip_emails_total",
			Help: "Total number of salary slip emails attempted",
		},
		[]string{"status"},
	)

	workbookImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workbook_imports_total",
			Help: "Total number of workbook uploads",
		},
		[]string{"status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Metrics labels by route pattern so /export/pdf/1 and /export/pdf/2 share a series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				path = p
			}
		}

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func RecordSlipRendered(format, status string) {
	slipsRendered.WithLabelValues(format, status).Inc()
}

func RecordSlipEmail(status string) {
	slipEmails.WithLabelValues(status).Inc()
}

func RecordWorkbookImport(status string) {
	workbookImports.WithLabelValues(status).Inc()
}
