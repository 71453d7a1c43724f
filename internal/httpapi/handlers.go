package httpapi

import (
	"net/http"

	"netcheck/internal/cache"
	"netcheck/internal/httpapi/middleware"
)

// serveCheck runs a check through the response cache. The key is derived
// from the route plus its parameters, so distinct inputs never collide and
// repeated parameters always hit. Routes without a TTL entry are computed
// fresh on every call; failed checks are cached like successes, since the
// report carries the error as data.
func (s *Server) serveCheck(w http.ResponseWriter, route string, params map[string]string, compute func() any) {
	key := cache.Key(route, params)
	if v, ok := s.cache.Get(key); ok {
		respondOK(w, v)
		return
	}

	data := compute()
	if ttl, ok := routeTTL[route]; ok {
		s.cache.Set(key, data, ttl)
	}
	respondOK(w, data)
}

// domainParam extracts the required ?domain= parameter, writing a 400 and
// returning false when it is missing.
func domainParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		respondError(w, http.StatusBadRequest, "Domain parameter is required")
		return "", false
	}
	return domain, true
}

func (s *Server) handleSSL(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/ssl", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckCertificate(domain)
	})
}

func (s *Server) handleHTTP3(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/http3", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckHTTP3(domain)
	})
}

func (s *Server) handleDNS(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/dns", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckDNS(domain)
	})
}

func (s *Server) handleIP(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("ip")
	if input == "" {
		input = r.URL.Query().Get("domain")
	}
	if input == "" {
		respondError(w, http.StatusBadRequest, "IP or domain parameter is required")
		return
	}
	s.serveCheck(w, "/checks/ip", map[string]string{"input": input}, func() any {
		return s.checker.CheckIP(input)
	})
}

// handleMyIP geolocates the caller's own address, as seen through the proxy
// headers. The lookup is cached per client for a short window.
func (s *Server) handleMyIP(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)
	if ip == "" {
		respondError(w, http.StatusBadRequest, "Could not determine client IP")
		return
	}
	s.serveCheck(w, "/checks/my-ip", map[string]string{"ip": ip}, func() any {
		report := s.checker.CheckIP(ip)
		report.Input = "Your IP: " + ip
		return report
	})
}

func (s *Server) handleWebSettings(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/web-settings", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckWebSettings(domain)
	})
}

// handleHSTS reuses the web-settings probe but returns only the parsed
// Strict-Transport-Security policy. Served live, never cached.
func (s *Server) handleHSTS(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	report := s.checker.CheckWebSettings(domain)
	respondOK(w, map[string]any{
		"domain": report.Domain,
		"hsts":   report.HSTS,
	})
}

func (s *Server) handleEmailConfig(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/email-config", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckEmailAuth(domain)
	})
}

func (s *Server) handleBlocklist(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/blocklist", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckBlocklist(domain)
	})
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/robots-txt", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckRobots(domain)
	})
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/sitemap", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckSitemap(domain)
	})
}

func (s *Server) handleOGImage(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		target = r.URL.Query().Get("domain")
	}
	if target == "" {
		respondError(w, http.StatusBadRequest, "URL or domain parameter is required")
		return
	}
	s.serveCheck(w, "/checks/og-image", map[string]string{"url": target}, func() any {
		return s.checker.CheckOpenGraph(target)
	})
}

// handleHTMLProxy fetches a page server-side so the frontend can inspect
// markup without tripping browser CORS rules. Never cached; pages are large
// and change constantly.
func (s *Server) handleHTMLProxy(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		target = r.URL.Query().Get("domain")
	}
	if target == "" {
		respondError(w, http.StatusBadRequest, "URL or domain parameter is required")
		return
	}
	respondOK(w, s.checker.FetchHTML(target))
}

func (s *Server) handleWhois(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	s.serveCheck(w, "/checks/whois", map[string]string{"domain": domain}, func() any {
		return s.checker.CheckWhois(domain)
	})
}

// handleComprehensive fans out every checker at once and joins the results.
// Uncached: the aggregate embeds per-run timing data.
func (s *Server) handleComprehensive(w http.ResponseWriter, r *http.Request) {
	domain, ok := domainParam(w, r)
	if !ok {
		return
	}
	respondOK(w, s.checker.CheckComprehensive(domain))
}
