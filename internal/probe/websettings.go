package probe

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CheckWebSettings issues a GET, measuring wall-clock latency around the
// call, and extracts the response's header surface plus the HSTS policy.
func (p *Prober) CheckWebSettings(domain string) TransportSettingsReport {
	report := TransportSettingsReport{Domain: domain}

	target := ensureScheme(domain)

	start := time.Now()
	resp, err := p.HTTPClient.Get(target)
	report.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		report.Error = fmt.Sprintf("Failed to connect: %v", err)
		return report
	}
	defer resp.Body.Close()

	fillSettings(&report, resp)
	return report
}

// fillSettings populates a settings report from an HTTP response; shared
// with the combined certificate+settings check.
func fillSettings(report *TransportSettingsReport, resp *http.Response) {
	report.StatusCode = resp.StatusCode
	report.Server = resp.Header.Get("Server")
	report.ContentType = resp.Header.Get("Content-Type")
	report.LastModified = resp.Header.Get("Last-Modified")
	report.ETag = resp.Header.Get("ETag")
	report.ContentLength = resp.ContentLength

	// Redirect target only applies to 3xx responses.
	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		report.RedirectURL = resp.Header.Get("Location")
	}

	report.HSTS = ParseHSTS(resp.Header.Get("Strict-Transport-Security"))

	report.Headers = make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		report.Headers[key] = strings.Join(values, ", ")
	}
}

var hstsMaxAge = regexp.MustCompile(`max-age=(\d+)`)

// ParseHSTS parses a Strict-Transport-Security header value. An empty
// header yields a disabled policy with an explanatory detail.
func ParseHSTS(header string) HSTSPolicy {
	policy := HSTSPolicy{}

	if header == "" {
		policy.Details = "HSTS header not present"
		return policy
	}

	policy.Enabled = true
	policy.Directive = header

	if m := hstsMaxAge.FindStringSubmatch(header); len(m) > 1 {
		if maxAge, err := strconv.Atoi(m[1]); err == nil {
			policy.MaxAge = maxAge
		}
	}

	lower := strings.ToLower(header)
	policy.IncludeSubDomains = strings.Contains(lower, "includesubdomains")
	policy.Preload = strings.Contains(lower, "preload")

	details := []string{fmt.Sprintf("Max-Age: %d seconds", policy.MaxAge)}
	if policy.IncludeSubDomains {
		details = append(details, "Includes SubDomains: Yes")
	} else {
		details = append(details, "Includes SubDomains: No")
	}
	if policy.Preload {
		details = append(details, "Preload: Yes")
	}
	policy.Details = strings.Join(details, ", ")

	return policy
}
