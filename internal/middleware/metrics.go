package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

var buckets = metrics.ExponentialBuckets(1e-3, 5, 6)

// Metrics records a request counter and a latency histogram per route
// pattern, method and status into set. It must wrap the ServeMux directly
// so that r.Pattern is filled in when the handler returns.
func Metrics(set *metrics.Set) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			pattern := r.Pattern
			if pattern == "" {
				pattern = "unmatched"
			}
			labels := fmt.Sprintf(`{method=%q,path=%q,status="%d"}`, r.Method, pattern, wrapped.statusCode)
			set.GetOrCreatePrometheusHistogramExt(`http_request_duration_seconds`+labels, buckets).UpdateDuration(start)
			set.GetOrCreateCounter(`http_requests_total` + labels).Inc()
		})
	}
}

// MetricsHandler exposes set together with the process metrics in the
// Prometheus text format.
func MetricsHandler(set *metrics.Set) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		set.WritePrometheus(w)
		metrics.WriteProcessMetrics(w)
	}
}
