package probe

import (
	"fmt"
	"io"
	"strings"
)

// CheckRobots fetches https://<domain>/robots.txt, retrying over plain
// HTTP on failure, and parses the rule lines.
func (p *Prober) CheckRobots(domain string) RobotsReport {
	report := RobotsReport{Domain: domain}

	host := normalizeDomain(domain)

	resp, err := p.HTTPClient.Get(fmt.Sprintf("https://%s/robots.txt", host))
	if err != nil {
		resp, err = p.HTTPClient.Get(fmt.Sprintf("http://%s/robots.txt", host))
		if err != nil {
			report.Exists = false
			report.Status = "Not Found"
			report.Error = fmt.Sprintf("Failed to fetch robots.txt: %v", err)
			return report
		}
	}
	defer resp.Body.Close()

	report.Exists = true
	report.Status = fmt.Sprintf("HTTP %d", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		report.Error = fmt.Sprintf("Failed to read response: %v", err)
		return report
	}

	parseRobots(&report, string(body))
	return report
}

// parseRobots fills the rule fields from robots.txt content. Field names
// match case-insensitively; user-agent lines set the context for the
// disallow/allow lines that follow.
func parseRobots(report *RobotsReport, content string) {
	report.Content = content
	report.Lines = strings.Split(content, "\n")

	currentAgent := "*"
	for _, line := range report.Lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])

		switch field {
		case "user-agent":
			currentAgent = value
			report.UserAgents = append(report.UserAgents, value)
		case "disallow":
			if value != "" {
				report.Disallowed = append(report.Disallowed, fmt.Sprintf("%s: %s", currentAgent, value))
			}
		case "allow":
			if value != "" {
				report.Allowed = append(report.Allowed, fmt.Sprintf("%s: %s", currentAgent, value))
			}
		case "sitemap":
			report.Sitemaps = append(report.Sitemaps, value)
		case "crawl-delay":
			// last one wins
			if value != "" {
				report.CrawlDelay = value
			}
		}
	}
}
