package api

import (
	"net"
	"net/http"
	"strings"

	"github.com/newsdeskapp/newsdesk-server/internal/http/response"
)

// rateLimitByIP limits requests per client IP on the credential endpoints.
// A nil limiter disables the check.
func (s *Server) rateLimitByIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.loginLimiter != nil {
			ip := getClientIP(r)
			if !s.loginLimiter.Allow(ip) {
				s.logger.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				response.TooManyRequests(w, "too many requests, please try again later", s.logger)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// getClientIP extracts the client IP, preferring proxy headers over the
// connection address.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return strings.TrimSpace(xrip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
