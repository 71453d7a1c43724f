package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RequireProxySecret enforces the frontend proxy contract: in release mode
// every request must carry X-Internal-Proxy: true plus the shared secret in
// either X-API-Secret or an Authorization bearer token. Debug mode skips the
// check so local curl works without the proxy in front.
func RequireProxySecret(secret string, debug bool, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if debug {
				next.ServeHTTP(w, r)
				return
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if secret == "" {
				log.Error("api secret key not configured")
				writeError(w, http.StatusInternalServerError, "Server configuration error")
				return
			}

			if r.Header.Get("X-Internal-Proxy") != "true" {
				log.Warn("request without proxy header",
					zap.String("ip", ClientIP(r)),
					zap.String("path", r.URL.Path))
				writeError(w, http.StatusForbidden, "Direct API access not allowed")
				return
			}

			provided := r.Header.Get("X-API-Secret")
			if provided == "" {
				if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
					provided = strings.TrimPrefix(auth, "Bearer ")
				}
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				log.Warn("request with invalid api secret",
					zap.String("ip", ClientIP(r)),
					zap.String("path", r.URL.Path))
				writeError(w, http.StatusForbidden, "Invalid API credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":false,"error":"` + msg + `"}`))
}
