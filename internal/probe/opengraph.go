package probe

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// Bounded regex scans over well-known tag shapes; a tolerant HTML
// tokenizer is overkill for meta tags this narrow.
var (
	ogTagPattern      = regexp.MustCompile(`(?i)<meta\s+(?:property|name)=["'](og:[^"']+)["']\s+content=["']([^"']+)["']`)
	twitterTagPattern = regexp.MustCompile(`(?i)<meta\s+(?:property|name)=["'](twitter:[^"']+)["']\s+content=["']([^"']+)["']`)
	titlePattern      = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)
	metaDescPattern   = regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["']([^"']+)["']`)
	imageSrcPattern   = regexp.MustCompile(`(?i)<link\s+rel=["']image_src["']\s+href=["']([^"']+)["']`)
)

// CheckOpenGraph fetches the target page and extracts Open Graph, Twitter
// Card, and standard meta tags. When an image URL is found it is fetched
// once to confirm accessibility; an unreachable image does not invalidate
// the rest of the report.
func (p *Prober) CheckOpenGraph(url string) OpenGraphReport {
	report := OpenGraphReport{URL: url}

	targetURL := ensureScheme(url)
	report.Domain = normalizeDomain(targetURL)

	resp, err := p.HTTPClient.Get(targetURL)
	if err != nil {
		if strings.HasPrefix(targetURL, "https://") {
			targetURL = strings.Replace(targetURL, "https://", "http://", 1)
			resp, err = p.HTTPClient.Get(targetURL)
		}
		if err != nil {
			report.Error = fmt.Sprintf("Failed to fetch URL: %v", err)
			return report
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		report.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
		return report
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		report.Error = fmt.Sprintf("Failed to read response: %v", err)
		return report
	}

	extractOpenGraph(&report, string(body))

	if report.Found && report.ImageURL != "" {
		p.probeImage(&report, resolveImageURL(report.ImageURL, report.Domain, targetURL))
	}

	return report
}

// extractOpenGraph fills the tag fields from raw HTML. Image precedence:
// og:image, then twitter:image, then a rel="image_src" link.
func extractOpenGraph(report *OpenGraphReport, html string) {
	report.AllMetaTags = make(map[string]string)
	report.AllTwitterTags = make(map[string]string)

	for _, match := range ogTagPattern.FindAllStringSubmatch(html, -1) {
		name := strings.ToLower(match[1])
		value := match[2]
		report.AllMetaTags[name] = value

		switch name {
		case "og:title":
			report.OGTitle = value
		case "og:description":
			report.OGDescription = value
		case "og:type":
			report.OGType = value
		case "og:url":
			report.OGURL = value
		case "og:site_name":
			report.OGSiteName = value
		case "og:locale":
			report.OGLocale = value
		case "og:image":
			report.ImageURL = value
			report.Found = true
		case "og:image:url":
			report.ImageURLAlt = value
		case "og:image:secure_url":
			report.ImageSecure = value
		case "og:image:width":
			report.ImageWidth = value
		case "og:image:height":
			report.ImageHeight = value
		case "og:image:type":
			report.ImageType = value
		}
	}

	for _, match := range twitterTagPattern.FindAllStringSubmatch(html, -1) {
		name := strings.ToLower(match[1])
		value := match[2]
		report.AllTwitterTags[name] = value

		switch name {
		case "twitter:card":
			report.TwitterCard = value
		case "twitter:site":
			report.TwitterSite = value
		case "twitter:creator":
			report.TwitterCreator = value
		case "twitter:title":
			report.TwitterTitle = value
		case "twitter:description":
			report.TwitterDescription = value
		case "twitter:image":
			if !report.Found {
				report.ImageURL = value
				report.Found = true
			}
			report.TwitterImage = value
		case "twitter:image:alt":
			report.TwitterImageAlt = value
		}
	}

	if m := titlePattern.FindStringSubmatch(html); len(m) > 1 {
		report.MetaTitle = strings.TrimSpace(m[1])
	}
	if m := metaDescPattern.FindStringSubmatch(html); len(m) > 1 {
		report.MetaDescription = m[1]
	}

	if !report.Found {
		if m := imageSrcPattern.FindStringSubmatch(html); len(m) > 1 {
			report.ImageURL = m[1]
			report.Found = true
		}
	}
}

// resolveImageURL makes a scraped image URL absolute against the page it
// came from: protocol-relative, absolute-path, or bare relative.
func resolveImageURL(imageURL, domain, pageURL string) string {
	switch {
	case strings.HasPrefix(imageURL, "//"):
		return "https:" + imageURL
	case strings.HasPrefix(imageURL, "/"):
		return fmt.Sprintf("https://%s%s", domain, imageURL)
	case strings.HasPrefix(imageURL, "http://"), strings.HasPrefix(imageURL, "https://"):
		return imageURL
	case strings.HasSuffix(pageURL, "/"):
		return pageURL + imageURL
	default:
		return pageURL + "/" + imageURL
	}
}

func (p *Prober) probeImage(report *OpenGraphReport, imageURL string) {
	resp, err := p.HTTPClient.Get(imageURL)
	if err != nil && strings.HasPrefix(imageURL, "https://") {
		resp, err = p.HTTPClient.Get(strings.Replace(imageURL, "https://", "http://", 1))
	}
	if err != nil || resp == nil {
		report.Accessible = false
		if err != nil {
			report.Error = fmt.Sprintf("Image not accessible: %v", err)
		} else {
			report.Error = "Image not accessible"
		}
		return
	}
	defer resp.Body.Close()

	report.Accessible = true
	report.Status = resp.StatusCode
	report.ContentType = resp.Header.Get("Content-Type")
	report.Size = resp.ContentLength
}
