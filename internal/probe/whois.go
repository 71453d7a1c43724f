package probe

import (
	"fmt"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// CheckWhois fetches and parses registration data for a domain. Lookup or
// parse failures land in the report's error field like every other check.
func (p *Prober) CheckWhois(domain string) WhoisReport {
	report := WhoisReport{Domain: domain}

	host := normalizeDomain(domain)

	raw, err := whois.Whois(host)
	if err != nil {
		report.Error = fmt.Sprintf("WHOIS lookup failed: %v", err)
		return report
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		report.Error = fmt.Sprintf("WHOIS parse failed: %v", err)
		return report
	}

	if parsed.Registrar != nil {
		report.Registrar = parsed.Registrar.Name
	}
	if parsed.Registrant != nil {
		if parsed.Registrant.Organization != "" {
			report.Registrant = parsed.Registrant.Organization
		} else {
			report.Registrant = parsed.Registrant.Name
		}
	}
	if parsed.Domain != nil {
		report.CreatedDate = parsed.Domain.CreatedDate
		report.UpdatedDate = parsed.Domain.UpdatedDate
		report.ExpirationDate = parsed.Domain.ExpirationDate
		report.NameServers = parsed.Domain.NameServers
		report.Status = parsed.Domain.Status
		if parsed.Domain.ExpirationDateInTime != nil {
			report.DaysUntilExpiry = int(time.Until(*parsed.Domain.ExpirationDateInTime).Hours() / 24)
		}
	}

	return report
}
