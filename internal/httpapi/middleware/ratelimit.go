package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// Allower decides whether a client may hit a route right now.
type Allower interface {
	Allow(ip, route string) bool
}

// RateLimit rejects requests over the per-client, per-route budget with a
// 429. Buckets are keyed on the resolved client IP and the request path, so
// exhausting one check does not lock a client out of the others.
func RateLimit(l Allower, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if !l.Allow(ip, r.URL.Path) {
				log.Warn("rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path))
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
