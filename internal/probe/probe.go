// Package probe implements the per-protocol checkers. Each checker is a
// function of its input string plus ambient network access; results come
// back as report values with errors embedded, so a caller can always
// aggregate one result per check.
package probe

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"github.com/quic-go/quic-go/http3"
)

const userAgent = "netcheck/1.0"

// Checker is the handler-facing surface of the prober. It exists so the
// HTTP layer can be tested against fakes.
type Checker interface {
	CheckCertificate(domain string) CertificateReport
	CheckHTTP3(domain string) TransportSupportReport
	CheckDNS(domain string) NameResolutionReport
	CheckIP(input string) AddressReport
	CheckWebSettings(domain string) TransportSettingsReport
	CheckEmailAuth(domain string) EmailAuthReport
	CheckBlocklist(domain string) BlocklistReport
	CheckRobots(domain string) RobotsReport
	CheckSitemap(domain string) SitemapReport
	CheckOpenGraph(url string) OpenGraphReport
	FetchHTML(url string) HTMLReport
	CheckWhois(domain string) WhoisReport
	CheckCertificateAndSettings(domain string) CombinedReport
	CheckComprehensive(domain string) AggregateReport
}

// Geolocator resolves location data for an IP. No provider is wired in by
// default; the engine ships with a placeholder implementation.
type Geolocator interface {
	Locate(ip string) GeoResult
}

type GeoResult struct {
	Country      string
	Region       string
	City         string
	ISP          string
	Organization string
	Timezone     string
}

type noopGeolocator struct{}

func (noopGeolocator) Locate(string) GeoResult {
	return GeoResult{
		Country:      "Unknown",
		Region:       "Unknown",
		City:         "Unknown",
		ISP:          "Unknown",
		Organization: "Unknown",
		Timezone:     "Unknown",
	}
}

// Prober holds the shared HTTP clients and the geolocation source. Fields
// are exported so tests can substitute clients bound to local servers.
type Prober struct {
	HTTPClient *http.Client // general client (15s)
	H3Client   *http.Client // QUIC-backed client (10s)
	HTMLClient *http.Client // long-timeout client for the HTML proxy (30s)
	Geo        Geolocator
}

var _ Checker = (*Prober)(nil)

func New() *Prober {
	return &Prober{
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{},
			},
		},
		H3Client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http3.RoundTripper{
				TLSClientConfig: &tls.Config{},
			},
		},
		HTMLClient: &http.Client{Timeout: 30 * time.Second},
		Geo:        noopGeolocator{},
	}
}

// normalizeDomain strips scheme and path from an input, leaving the bare
// host (with port, if one was given).
func normalizeDomain(input string) string {
	d := strings.TrimPrefix(input, "https://")
	d = strings.TrimPrefix(d, "http://")
	return strings.Split(d, "/")[0]
}

// ensureScheme prefixes https:// when the input has no scheme.
func ensureScheme(input string) string {
	if strings.HasPrefix(input, "https://") || strings.HasPrefix(input, "http://") {
		return input
	}
	return "https://" + input
}
