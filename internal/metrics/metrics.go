// Package metrics exposes the daemon's Prometheus instrumentation.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astrokit_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astrokit_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	eopSamples = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "astrokit_eop_samples",
			Help: "Number of samples in the loaded EOP series.",
		},
	)

	eopDatasetAgeSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "astrokit_eop_dataset_age_seconds",
			Help: "Age of the loaded EOP dataset in seconds.",
		},
	)

	gridSamplesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astrokit_grid_samples_total",
			Help: "Grid rotation samples evaluated, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(eopSamples)
	prometheus.MustRegister(eopDatasetAgeSeconds)
	prometheus.MustRegister(gridSamplesTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetEOPSamples records the size of the loaded EOP series.
func SetEOPSamples(n int) {
	eopSamples.Set(float64(n))
}

// SetEOPDatasetAge records the age of the loaded EOP dataset.
func SetEOPDatasetAge(seconds float64) {
	eopDatasetAgeSeconds.Set(seconds)
}

// AddGridSamples records grid sampling outcomes.
func AddGridSamples(ok, failed int) {
	gridSamplesTotal.WithLabelValues("ok").Add(float64(ok))
	gridSamplesTotal.WithLabelValues("error").Add(float64(failed))
}

// knownRoutes are the label values requests may carry; anything else
// collapses to "other" to keep the label cardinality bounded against
// scanner traffic.
var knownRoutes = map[string]bool{
	"/healthz":              true,
	"/readyz":               true,
	"/metrics":              true,
	"/api/v1/time/convert":  true,
	"/api/v1/frames/rotate": true,
	"/api/v1/frames/grid":   true,
}

// normalizeRoute maps a request path onto a bounded label set.
func normalizeRoute(path string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if knownRoutes[path] || path == "/" {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
