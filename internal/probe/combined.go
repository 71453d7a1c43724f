package probe

import (
	"fmt"
	"net/http"
	"time"
)

// CheckCertificateAndSettings derives both the certificate report and the
// header report from a single HEAD round trip, so the comprehensive check
// doesn't open two connections to the same host.
func (p *Prober) CheckCertificateAndSettings(domain string) CombinedReport {
	var result CombinedReport

	target := ensureScheme(domain)
	host := normalizeDomain(target)
	result.SSL.Domain = host
	result.WebSettings.Domain = host

	start := time.Now()
	req, err := http.NewRequest(http.MethodHead, target, nil)
	if err != nil {
		result.WebSettings.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.SSL.Error = result.WebSettings.Error
		return result
	}

	resp, err := p.HTTPClient.Do(req)
	result.WebSettings.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		// One connection, one error, both reports carry it.
		result.WebSettings.Error = fmt.Sprintf("Failed to connect: %v", err)
		result.SSL.Error = result.WebSettings.Error
		return result
	}
	defer resp.Body.Close()

	fillSettings(&result.WebSettings, resp)

	if resp.TLS != nil && len(resp.TLS.PeerCertificates) > 0 {
		fillCertificate(&result.SSL, resp.TLS.PeerCertificates[0])
	} else {
		result.SSL.Error = "No TLS certificate found"
	}

	return result
}
