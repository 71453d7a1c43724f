package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"

	"netcheck/internal/cache"
	"netcheck/internal/config"
	"netcheck/internal/probe"
	"netcheck/internal/ratelimit"
)

// ---- test helpers ----

// fakeChecker counts invocations per check so tests can prove the cache
// short-circuits repeat requests.
type fakeChecker struct {
	mu     sync.Mutex
	calls  map[string]int
	lastIP string
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{calls: map[string]int{}}
}

func (f *fakeChecker) bump(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeChecker) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeChecker) CheckCertificate(domain string) probe.CertificateReport {
	f.bump("ssl")
	return probe.CertificateReport{Domain: domain, Valid: true, Issuer: "Test CA"}
}

func (f *fakeChecker) CheckHTTP3(domain string) probe.TransportSupportReport {
	f.bump("http3")
	return probe.TransportSupportReport{Domain: domain, Supported: true}
}

func (f *fakeChecker) CheckDNS(domain string) probe.NameResolutionReport {
	f.bump("dns")
	return probe.NameResolutionReport{Domain: domain, IPv4: []string{"192.0.2.1"}}
}

func (f *fakeChecker) CheckIP(input string) probe.AddressReport {
	f.bump("ip")
	f.mu.Lock()
	f.lastIP = input
	f.mu.Unlock()
	return probe.AddressReport{Input: input, IP: input, Country: "Unknown"}
}

func (f *fakeChecker) CheckWebSettings(domain string) probe.TransportSettingsReport {
	f.bump("websettings")
	return probe.TransportSettingsReport{
		Domain:     domain,
		StatusCode: 200,
		HSTS:       probe.HSTSPolicy{Enabled: true, MaxAge: 31536000},
	}
}

func (f *fakeChecker) CheckEmailAuth(domain string) probe.EmailAuthReport {
	f.bump("email")
	return probe.EmailAuthReport{Domain: domain}
}

func (f *fakeChecker) CheckBlocklist(domain string) probe.BlocklistReport {
	f.bump("blocklist")
	return probe.BlocklistReport{Domain: domain}
}

func (f *fakeChecker) CheckRobots(domain string) probe.RobotsReport {
	f.bump("robots")
	return probe.RobotsReport{Domain: domain, Exists: true}
}

func (f *fakeChecker) CheckSitemap(domain string) probe.SitemapReport {
	f.bump("sitemap")
	return probe.SitemapReport{Domain: domain}
}

func (f *fakeChecker) CheckOpenGraph(url string) probe.OpenGraphReport {
	f.bump("og")
	return probe.OpenGraphReport{URL: url}
}

func (f *fakeChecker) FetchHTML(url string) probe.HTMLReport {
	f.bump("html")
	return probe.HTMLReport{URL: url, HTML: "<html></html>"}
}

func (f *fakeChecker) CheckWhois(domain string) probe.WhoisReport {
	f.bump("whois")
	return probe.WhoisReport{Domain: domain}
}

func (f *fakeChecker) CheckCertificateAndSettings(domain string) probe.CombinedReport {
	f.bump("combined")
	return probe.CombinedReport{}
}

func (f *fakeChecker) CheckComprehensive(domain string) probe.AggregateReport {
	f.bump("comprehensive")
	return probe.AggregateReport{"domain": domain}
}

var _ probe.Checker = (*fakeChecker)(nil)

func setupServer(t *testing.T, chk probe.Checker, cfg config.Config, rpm int) *httptest.Server {
	t.Helper()
	srv := NewServer(zap.NewNop(), chk, cache.New(), ratelimit.New(rpm, nil), cfg)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func debugConfig() config.Config {
	return config.Config{Mode: config.ModeDebug, DefaultRPM: 0}
}

func get(t *testing.T, url string, headers map[string]string) (int, []byte) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

// ---- tests ----

func TestMissingDomainIs400(t *testing.T) {
	ts := setupServer(t, newFakeChecker(), debugConfig(), 0)

	status, body := get(t, ts.URL+"/checks/ssl", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", status)
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error != "Domain parameter is required" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestEnvelopeShape(t *testing.T) {
	ts := setupServer(t, newFakeChecker(), debugConfig(), 0)

	status, body := get(t, ts.URL+"/checks/ssl?domain=example.com", nil)
	if status != http.StatusOK {
		t.Fatalf("want 200, got %d", status)
	}
	var env struct {
		Success bool                   `json:"success"`
		Data    probe.CertificateReport `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Data.Domain != "example.com" || env.Data.Issuer != "Test CA" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestCacheShortCircuitsRepeatCalls(t *testing.T) {
	chk := newFakeChecker()
	ts := setupServer(t, chk, debugConfig(), 0)

	_, first := get(t, ts.URL+"/checks/ssl?domain=example.com", nil)
	_, second := get(t, ts.URL+"/checks/ssl?domain=example.com", nil)

	if string(first) != string(second) {
		t.Fatalf("cached response differs:\n%s\n%s", first, second)
	}
	if got := chk.count("ssl"); got != 1 {
		t.Fatalf("checker invoked %d times, want 1", got)
	}

	// Different parameters must not hit the same entry.
	get(t, ts.URL+"/checks/ssl?domain=other.com", nil)
	if got := chk.count("ssl"); got != 2 {
		t.Fatalf("checker invoked %d times after second domain, want 2", got)
	}
}

func TestUncachedRoutesAlwaysRecompute(t *testing.T) {
	chk := newFakeChecker()
	ts := setupServer(t, chk, debugConfig(), 0)

	get(t, ts.URL+"/checks/hsts?domain=example.com", nil)
	get(t, ts.URL+"/checks/hsts?domain=example.com", nil)
	if got := chk.count("websettings"); got != 2 {
		t.Fatalf("hsts invoked checker %d times, want 2", got)
	}

	get(t, ts.URL+"/checks/comprehensive?domain=example.com", nil)
	get(t, ts.URL+"/checks/comprehensive?domain=example.com", nil)
	if got := chk.count("comprehensive"); got != 2 {
		t.Fatalf("comprehensive invoked checker %d times, want 2", got)
	}
}

func TestRateLimitReturns429(t *testing.T) {
	ts := setupServer(t, newFakeChecker(), debugConfig(), 2)

	for i := 0; i < 2; i++ {
		if status, _ := get(t, ts.URL+"/checks/dns?domain=example.com", nil); status != http.StatusOK {
			t.Fatalf("request %d: want 200, got %d", i+1, status)
		}
	}
	status, body := get(t, ts.URL+"/checks/dns?domain=example.com", nil)
	if status != http.StatusTooManyRequests {
		t.Fatalf("want 429, got %d", status)
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error != "Too many requests" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	// Another route has its own bucket.
	if status, _ := get(t, ts.URL+"/checks/ssl?domain=example.com", nil); status != http.StatusOK {
		t.Fatalf("other route should be unaffected, got %d", status)
	}
}

func TestReleaseModeRequiresProxyAndSecret(t *testing.T) {
	cfg := config.Config{Mode: config.ModeRelease, SecretKey: "s3cret"}
	ts := setupServer(t, newFakeChecker(), cfg, 0)

	if status, _ := get(t, ts.URL+"/checks/ssl?domain=example.com", nil); status != http.StatusForbidden {
		t.Fatalf("no headers: want 403, got %d", status)
	}

	status, _ := get(t, ts.URL+"/checks/ssl?domain=example.com", map[string]string{
		"X-Internal-Proxy": "true",
	})
	if status != http.StatusForbidden {
		t.Fatalf("proxy header only: want 403, got %d", status)
	}

	status, _ = get(t, ts.URL+"/checks/ssl?domain=example.com", map[string]string{
		"X-Internal-Proxy": "true",
		"X-API-Secret":     "wrong",
	})
	if status != http.StatusForbidden {
		t.Fatalf("bad secret: want 403, got %d", status)
	}

	status, _ = get(t, ts.URL+"/checks/ssl?domain=example.com", map[string]string{
		"X-Internal-Proxy": "true",
		"X-API-Secret":     "s3cret",
	})
	if status != http.StatusOK {
		t.Fatalf("valid secret header: want 200, got %d", status)
	}

	status, _ = get(t, ts.URL+"/checks/dns?domain=example.com", map[string]string{
		"X-Internal-Proxy": "true",
		"Authorization":    "Bearer s3cret",
	})
	if status != http.StatusOK {
		t.Fatalf("valid bearer token: want 200, got %d", status)
	}
}

func TestReleaseModeWithoutConfiguredSecretIs500(t *testing.T) {
	cfg := config.Config{Mode: config.ModeRelease}
	ts := setupServer(t, newFakeChecker(), cfg, 0)

	status, _ := get(t, ts.URL+"/checks/ssl?domain=example.com", map[string]string{
		"X-Internal-Proxy": "true",
		"X-API-Secret":     "anything",
	})
	if status != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", status)
	}
}

func TestHealthBypassesAuth(t *testing.T) {
	cfg := config.Config{Mode: config.ModeRelease, SecretKey: "s3cret"}
	ts := setupServer(t, newFakeChecker(), cfg, 0)

	status, _ := get(t, ts.URL+"/health", nil)
	if status != http.StatusOK {
		t.Fatalf("want 200, got %d", status)
	}
}

func TestMyIPUsesForwardedAddress(t *testing.T) {
	chk := newFakeChecker()
	ts := setupServer(t, chk, debugConfig(), 0)

	status, body := get(t, ts.URL+"/checks/my-ip", map[string]string{
		"X-Forwarded-For": "203.0.113.9, 10.0.0.1",
	})
	if status != http.StatusOK {
		t.Fatalf("want 200, got %d", status)
	}

	var env struct {
		Data probe.AddressReport `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Input != "Your IP: 203.0.113.9" {
		t.Fatalf("unexpected input field: %q", env.Data.Input)
	}
	chk.mu.Lock()
	last := chk.lastIP
	chk.mu.Unlock()
	if last != "203.0.113.9" {
		t.Fatalf("checker saw %q, want first forwarded hop", last)
	}
}
