package probe

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckCertificateAndSettings_OneRoundTrip(t *testing.T) {
	var hits int
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Server", "combined-test")
		w.Header().Set("Strict-Transport-Security", "max-age=300; preload")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	p := New()
	p.HTTPClient = ts.Client()

	result := p.CheckCertificateAndSettings(ts.URL)

	if hits != 1 {
		t.Fatalf("combined check must make exactly one request, got %d", hits)
	}
	if result.WebSettings.Error != "" || result.SSL.Error != "" {
		t.Fatalf("unexpected errors: %q / %q", result.WebSettings.Error, result.SSL.Error)
	}
	if result.WebSettings.StatusCode != 200 || result.WebSettings.Server != "combined-test" {
		t.Fatalf("settings not filled: %+v", result.WebSettings)
	}
	if !result.WebSettings.HSTS.Enabled || result.WebSettings.HSTS.MaxAge != 300 {
		t.Fatalf("hsts not parsed: %+v", result.WebSettings.HSTS)
	}
	if !result.SSL.Valid || result.SSL.SerialNumber == "" {
		t.Fatalf("certificate not derived from the connection: %+v", result.SSL)
	}
	if result.SSL.Domain == "" || result.SSL.Domain != result.WebSettings.Domain {
		t.Fatalf("both reports must name the same host: %q vs %q",
			result.SSL.Domain, result.WebSettings.Domain)
	}
}

func TestCheckCertificateAndSettings_ConnectionFailure(t *testing.T) {
	p := New()
	result := p.CheckCertificateAndSettings("https://127.0.0.1:1")

	if result.SSL.Error == "" || result.WebSettings.Error == "" {
		t.Fatalf("both reports must carry the connection error")
	}
	if result.SSL.Error != result.WebSettings.Error {
		t.Fatalf("errors should match: %q vs %q", result.SSL.Error, result.WebSettings.Error)
	}
	if result.SSL.Domain != "127.0.0.1:1" {
		t.Fatalf("identifying field lost on failure: %q", result.SSL.Domain)
	}
}

func TestCheckCertificateAndSettings_NoTLS(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	p := New()
	result := p.CheckCertificateAndSettings(ts.URL)

	if result.WebSettings.Error != "" {
		t.Fatalf("header report must still succeed over plain HTTP: %q", result.WebSettings.Error)
	}
	if result.SSL.Error != "No TLS certificate found" {
		t.Fatalf("certificate report should flag the missing TLS session: %q", result.SSL.Error)
	}
}
