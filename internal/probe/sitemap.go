package probe

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
)

// sitemapPaths are the well-known locations tried in order, HTTPS before
// HTTP for each.
var sitemapPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap-index.xml",
	"/sitemaps.xml",
}

const sitemapSampleLimit = 10

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapIndex struct {
	XMLName  xml.Name `xml:"sitemapindex"`
	Sitemaps []struct {
		Loc     string `xml:"loc"`
		LastMod string `xml:"lastmod"`
	} `xml:"sitemap"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	URLs    []sitemapURL `xml:"url"`
}

// CheckSitemap locates a sitemap at the common paths and classifies it as
// an index (listing other sitemaps) or a leaf urlset (sampling up to 10
// page URLs).
func (p *Prober) CheckSitemap(domain string) SitemapReport {
	report := SitemapReport{Domain: domain}

	host := normalizeDomain(domain)

	var resp *http.Response
	var lastErr error
	for _, path := range sitemapPaths {
		for _, scheme := range []string{"https", "http"} {
			candidate := fmt.Sprintf("%s://%s%s", scheme, host, path)
			r, err := p.HTTPClient.Get(candidate)
			if err != nil {
				lastErr = err
				continue
			}
			if r.StatusCode == http.StatusOK {
				resp = r
				report.SitemapURL = candidate
				break
			}
			r.Body.Close()
		}
		if report.SitemapURL != "" {
			break
		}
	}

	if report.SitemapURL == "" {
		report.Exists = false
		report.Status = "Not Found"
		if lastErr != nil {
			report.Error = fmt.Sprintf("Failed to find sitemap: %v", lastErr)
		} else {
			report.Error = "No sitemap found at common locations"
		}
		return report
	}
	defer resp.Body.Close()

	report.Exists = true
	report.Status = fmt.Sprintf("HTTP %d", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		report.Error = fmt.Sprintf("Failed to read response: %v", err)
		return report
	}

	parseSitemap(&report, body)
	return report
}

// parseSitemap tries the index schema first, then the leaf urlset. A 200
// body matching neither still reports existence with a parse-error detail.
func parseSitemap(report *SitemapReport, body []byte) {
	var index sitemapIndex
	if err := xml.Unmarshal(body, &index); err == nil && len(index.Sitemaps) > 0 {
		report.IsSitemapIndex = true
		report.URLCount = len(index.Sitemaps)
		for _, s := range index.Sitemaps {
			report.SubSitemaps = append(report.SubSitemaps, s.Loc)
		}
		return
	}

	var set urlSet
	if err := xml.Unmarshal(body, &set); err == nil && len(set.URLs) > 0 {
		report.IsSitemapIndex = false
		report.URLCount = len(set.URLs)

		samples := len(set.URLs)
		if samples > sitemapSampleLimit {
			samples = sitemapSampleLimit
		}
		for i := 0; i < samples; i++ {
			report.SampleURLs = append(report.SampleURLs, set.URLs[i].Loc)
			if set.URLs[i].LastMod != "" {
				report.LastModified = append(report.LastModified, set.URLs[i].LastMod)
			}
		}
		return
	}

	report.Error = "Sitemap found but could not parse XML structure"
}
