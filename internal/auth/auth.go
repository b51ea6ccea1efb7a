// Package auth gates the expensive API endpoints behind a bearer token.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Config switches token enforcement on and carries the expected token.
type Config struct {
	Enabled bool
	Token   string
}

// open lists the routes that never require a token: the operational
// probes, and the read-only time conversions which are cheap enough to
// leave public. The frame endpoints honor the token because grid
// sampling is CPU-bound.
func open(path string) bool {
	switch path {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/api/v1/time/")
}

// bearerToken extracts the token from an Authorization header, or ""
// when the header is absent or not a Bearer scheme.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return header[len(prefix):]
}

// Middleware enforces bearer auth on protected routes when enabled.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	expected := []byte(cfg.Token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || open(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			token := bearerToken(r)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
