package probe

import (
	"fmt"
	"net"
)

// CheckIP reports on an IP literal directly, or resolves a hostname and
// selects the first IPv4 result as the primary address.
func (p *Prober) CheckIP(input string) AddressReport {
	report := AddressReport{Input: input}

	host := normalizeDomain(input)

	if net.ParseIP(host) != nil {
		report.IsDomain = false
		report.IP = host
		p.locate(&report)
		return report
	}

	report.IsDomain = true
	ips, err := net.LookupIP(host)
	if err != nil {
		report.Error = fmt.Sprintf("Failed to resolve domain: %v", err)
		return report
	}

	for _, ip := range ips {
		if ip.To4() != nil {
			report.ResolvedIPs = append(report.ResolvedIPs, ip.String())
		}
	}

	if len(report.ResolvedIPs) == 0 {
		report.Error = "No IP addresses found for domain"
		return report
	}

	report.IP = report.ResolvedIPs[0]
	p.locate(&report)
	return report
}

func (p *Prober) locate(report *AddressReport) {
	geo := p.Geo
	if geo == nil {
		geo = noopGeolocator{}
	}
	loc := geo.Locate(report.IP)
	report.Country = loc.Country
	report.Region = loc.Region
	report.City = loc.City
	report.ISP = loc.ISP
	report.Organization = loc.Organization
	report.Timezone = loc.Timezone
}
