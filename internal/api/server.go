// Package api serves the daemon's HTTP surface: time-scale conversion,
// frame rotations, and batch grid sampling over the loaded EOP dataset.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/star/astrokit/eop"
	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/internal/auth"
	"github.com/star/astrokit/internal/gridder"
	"github.com/star/astrokit/internal/health"
	"github.com/star/astrokit/internal/httputil"
	"github.com/star/astrokit/internal/metrics"
	"github.com/star/astrokit/timescales"
)

// Config carries the server's non-dependency settings.
type Config struct {
	Addr       string
	System     frames.ReferenceSystem
	TrustProxy bool
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger

	system frames.ReferenceSystem
	store  *eop.Store
	leaps  timescales.LeapSecondSource
	pool   *gridder.Pool
}

// NewServer creates a configured HTTP server.
func NewServer(cfg Config, logger *slog.Logger, authCfg auth.Config, store *eop.Store, leaps timescales.LeapSecondSource, pool *gridder.Pool) *Server {
	s := &Server{
		logger: logger,
		system: cfg.System,
		store:  store,
		leaps:  leaps,
		pool:   pool,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz(func() bool {
		return store.Get() != nil
	}))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("POST /api/v1/time/convert", s.convertTimeHandler)
	mux.HandleFunc("POST /api/v1/frames/rotate", s.rotateHandler)
	mux.HandleFunc("POST /api/v1/frames/grid", s.gridHandler)

	// Middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = loggingMiddleware(logger, cfg.TrustProxy)(handler)
	handler = metrics.Middleware(handler)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// provider builds a frame provider over whatever EOP dataset is loaded.
// Without a dataset Earth-frame requests fail with a missing-EOP error;
// body-fixed frames still work.
func (s *Server) provider() *frames.Provider {
	var series *eop.Series
	if ds := s.store.Get(); ds != nil {
		series = ds.Series
	}
	return frames.NewProvider(s.system, series)
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", httputil.ClientIP(r, trustProxy),
			)
		})
	}
}
