package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"netcheck/internal/cache"
	"netcheck/internal/config"
	"netcheck/internal/httpapi/middleware"
	"netcheck/internal/probe"
	"netcheck/internal/ratelimit"
)

type Server struct {
	logger  *zap.Logger
	checker probe.Checker
	cache   *cache.Store
	limiter *ratelimit.Limiter
	cfg     config.Config
}

func NewServer(l *zap.Logger, c probe.Checker, store *cache.Store, lim *ratelimit.Limiter, cfg config.Config) *Server {
	return &Server{logger: l, checker: c, cache: store, limiter: lim, cfg: cfg}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Secret", "X-Internal-Proxy"},
	}))

	// Liveness stays outside the proxy contract so orchestration probes
	// can reach it directly.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireProxySecret(s.cfg.SecretKey, s.cfg.IsDebug(), s.logger))

		r.Get("/", s.handleIndex)

		r.Route("/checks", func(r chi.Router) {
			r.Use(middleware.RateLimit(s.limiter, s.logger))

			r.Get("/ssl", s.handleSSL)
			r.Get("/http3", s.handleHTTP3)
			r.Get("/dns", s.handleDNS)
			r.Get("/ip", s.handleIP)
			r.Get("/my-ip", s.handleMyIP)
			r.Get("/web-settings", s.handleWebSettings)
			r.Get("/hsts", s.handleHSTS)
			r.Get("/email-config", s.handleEmailConfig)
			r.Get("/blocklist", s.handleBlocklist)
			r.Get("/robots-txt", s.handleRobots)
			r.Get("/sitemap", s.handleSitemap)
			r.Get("/og-image", s.handleOGImage)
			r.Get("/html-proxy", s.handleHTMLProxy)
			r.Get("/whois", s.handleWhois)
			r.Get("/comprehensive", s.handleComprehensive)
		})
	})

	return r
}

// handleIndex lists the available checks so the frontend can discover the
// surface without hardcoding it.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]any{
		"service": "netcheck",
		"endpoints": []string{
			"/checks/ssl?domain=",
			"/checks/http3?domain=",
			"/checks/dns?domain=",
			"/checks/ip?ip=",
			"/checks/my-ip",
			"/checks/web-settings?domain=",
			"/checks/hsts?domain=",
			"/checks/email-config?domain=",
			"/checks/blocklist?domain=",
			"/checks/robots-txt?domain=",
			"/checks/sitemap?domain=",
			"/checks/og-image?url=",
			"/checks/html-proxy?url=",
			"/checks/whois?domain=",
			"/checks/comprehensive?domain=",
		},
	})
}
