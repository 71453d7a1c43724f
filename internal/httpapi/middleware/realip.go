package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the real client address behind the frontend proxy:
// first X-Forwarded-For hop, then X-Real-IP, then CF-Connecting-IP, then
// the socket peer as last resort. Keying rate limits on the socket address
// would throttle every user behind the shared proxy IP at once.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		if net.ParseIP(real) != nil {
			return real
		}
	}

	if cf := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); cf != "" {
		if net.ParseIP(cf) != nil {
			return cf
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
