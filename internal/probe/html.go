package probe

import (
	"fmt"
	"io"
	"strings"
)

// FetchHTML retrieves a URL's raw HTML on the long-timeout client,
// HTTPS-first with an HTTP fallback, and reports the URL actually used.
func (p *Prober) FetchHTML(url string) HTMLReport {
	targetURL := ensureScheme(url)
	report := HTMLReport{URL: targetURL}

	resp, err := p.HTMLClient.Get(targetURL)
	if err != nil {
		if strings.HasPrefix(targetURL, "https://") {
			targetURL = strings.Replace(targetURL, "https://", "http://", 1)
			resp, err = p.HTMLClient.Get(targetURL)
			report.URL = targetURL
		}
		if err != nil {
			report.Error = fmt.Sprintf("Failed to fetch: %v", err)
			return report
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		report.Error = fmt.Sprintf("Failed to read response: %v", err)
		return report
	}

	report.HTML = string(body)
	report.Status = resp.StatusCode
	return report
}
