package probe

import (
	"fmt"
	"net"
	"strings"
)

// dkimSelectors are the common selector subdomains probed under _domainkey.
var dkimSelectors = []string{"default", "dkim", "key1", "selector1", "s1", "s2"}

// CheckEmailAuth runs the four independent TXT-record sub-checks. Each
// sub-check's lookup failure is recorded as "not configured" on that
// sub-report alone.
func (p *Prober) CheckEmailAuth(domain string) EmailAuthReport {
	report := EmailAuthReport{Domain: domain}

	host := normalizeDomain(domain)

	report.SPF = p.checkSPF(host)
	report.DKIM = p.checkDKIM(host)
	report.DMARC = p.checkDMARC(host)
	report.BIMI = p.checkBIMI(host)

	return report
}

func (p *Prober) checkSPF(domain string) SPFReport {
	records, err := net.LookupTXT(domain)
	if err != nil {
		return SPFReport{Error: fmt.Sprintf("Failed to lookup TXT records: %v", err)}
	}
	return parseSPF(records)
}

func parseSPF(records []string) SPFReport {
	report := SPFReport{}
	for _, txt := range records {
		if strings.HasPrefix(strings.ToLower(txt), "v=spf1") {
			report.Configured = true
			report.Record = txt
			report.Valid = true
			report.Details = "SPF record found and configured"
			break
		}
	}
	if !report.Configured {
		report.Details = "No SPF record found"
	}
	return report
}

func (p *Prober) checkDKIM(domain string) DKIMReport {
	report := DKIMReport{}
	for _, selector := range dkimSelectors {
		records, err := net.LookupTXT(selector + "._domainkey." + domain)
		if err != nil {
			continue
		}
		for _, txt := range records {
			if strings.HasPrefix(strings.ToLower(txt), "v=dkim1") {
				report.Selectors = append(report.Selectors, selector)
			}
		}
	}
	if len(report.Selectors) > 0 {
		report.Configured = true
		report.Valid = true
		report.Details = fmt.Sprintf("DKIM records found for selectors: %v", report.Selectors)
	} else {
		report.Details = "No DKIM records found for common selectors"
	}
	return report
}

func (p *Prober) checkDMARC(domain string) DMARCReport {
	records, err := net.LookupTXT("_dmarc." + domain)
	if err != nil {
		return DMARCReport{
			Error:   fmt.Sprintf("Failed to lookup DMARC record: %v", err),
			Details: "No DMARC record found",
		}
	}
	return parseDMARC(records)
}

func parseDMARC(records []string) DMARCReport {
	report := DMARCReport{}
	for _, txt := range records {
		if !strings.HasPrefix(strings.ToLower(txt), "v=dmarc1") {
			continue
		}
		report.Configured = true
		report.Record = txt
		report.Valid = true

		switch {
		case strings.Contains(txt, "p=none"):
			report.Policy = "none"
		case strings.Contains(txt, "p=quarantine"):
			report.Policy = "quarantine"
		case strings.Contains(txt, "p=reject"):
			report.Policy = "reject"
		}

		report.Details = fmt.Sprintf("DMARC record found with policy: %s", report.Policy)
		break
	}
	if !report.Configured {
		report.Details = "No DMARC record found"
	}
	return report
}

func (p *Prober) checkBIMI(domain string) BIMIReport {
	records, err := net.LookupTXT("default._bimi." + domain)
	if err != nil {
		return BIMIReport{Details: "No BIMI record found"}
	}
	return parseBIMI(records)
}

func parseBIMI(records []string) BIMIReport {
	report := BIMIReport{}
	for _, txt := range records {
		if !strings.HasPrefix(strings.ToLower(txt), "v=bimi1") {
			continue
		}
		report.Configured = true
		report.Record = txt
		report.Valid = true

		// Logo URL comes from the l= parameter, up to the next ;
		if parts := strings.SplitN(txt, "l=", 2); len(parts) > 1 {
			report.LogoURL = strings.TrimSpace(strings.Split(parts[1], ";")[0])
		}

		report.Details = "BIMI record found"
		if report.LogoURL != "" {
			report.Details = fmt.Sprintf("BIMI record found with logo: %s", report.LogoURL)
		}
		break
	}
	if !report.Configured {
		report.Details = "No BIMI record found"
	}
	return report
}
