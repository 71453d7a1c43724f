package httpapi

import "time"

// routeTTL lists how long each check result stays fresh in the cache.
// Routes absent here are never cached: HSTS and the HTML proxy serve live
// data, and the comprehensive report is too large and too client-specific
// to be worth holding.
var routeTTL = map[string]time.Duration{
	"/checks/ssl":          5 * time.Minute,
	"/checks/http3":        2 * time.Minute,
	"/checks/dns":          2 * time.Minute,
	"/checks/ip":           1 * time.Minute,
	"/checks/my-ip":        30 * time.Second,
	"/checks/web-settings": 1 * time.Minute,
	"/checks/email-config": 10 * time.Minute,
	"/checks/blocklist":    10 * time.Minute,
	"/checks/robots-txt":   10 * time.Minute,
	"/checks/sitemap":      10 * time.Minute,
	"/checks/og-image":     10 * time.Minute,
	"/checks/whois":        10 * time.Minute,
}

// RouteLimits returns the per-route requests-per-minute overrides. Checks
// that fan out to many remote servers, or that chain several probes, get a
// tighter budget than the global default.
func RouteLimits() map[string]int {
	return map[string]int{
		"/checks/comprehensive": 6,
		"/checks/blocklist":     10,
		"/checks/robots-txt":    10,
		"/checks/sitemap":       10,
		"/checks/whois":         10,
		"/checks/og-image":      15,
		"/checks/web-settings":  20,
	}
}
