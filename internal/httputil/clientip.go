// Package httputil holds small HTTP helpers shared by the daemon's
// middleware.
package httputil

import (
	"net"
	"net/http"
	"strings"
)

// forwardHeaders are consulted in order when the peer is a trusted proxy.
var forwardHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// ClientIP resolves the client address of a request. With trustProxy set
// the forwarding headers win over RemoteAddr; the first syntactically
// valid IP is taken, so header garbage cannot leak into log fields. Only
// set trustProxy when a trusted reverse proxy terminates the connection.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, name := range forwardHeaders {
			if ip := firstValidIP(r.Header.Get(name)); ip != "" {
				return ip
			}
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// firstValidIP scans a comma separated header value left to right. The
// leftmost entry of X-Forwarded-For is the originating client.
func firstValidIP(value string) string {
	for _, part := range strings.Split(value, ",") {
		candidate := strings.TrimSpace(part)
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}
	return ""
}
