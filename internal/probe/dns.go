package probe

import (
	"fmt"
	"net"
)

// CheckDNS resolves A/AAAA in one combined lookup and CNAME, MX, TXT, NS
// independently. A failure on one record type leaves that field empty
// without aborting the others.
func (p *Prober) CheckDNS(domain string) NameResolutionReport {
	report := NameResolutionReport{Domain: domain}

	host := normalizeDomain(domain)

	if ips, err := net.LookupIP(host); err == nil {
		for _, ip := range ips {
			if ip.To4() != nil {
				report.IPv4 = append(report.IPv4, ip.String())
			} else {
				report.IPv6 = append(report.IPv6, ip.String())
			}
		}
	}

	if cname, err := net.LookupCNAME(host); err == nil && cname != host+"." {
		report.CNAME = append(report.CNAME, cname)
	}

	if mxs, err := net.LookupMX(host); err == nil {
		for _, mx := range mxs {
			report.MX = append(report.MX, fmt.Sprintf("%s (priority: %d)", mx.Host, mx.Pref))
		}
	}

	if txts, err := net.LookupTXT(host); err == nil {
		report.TXT = txts
	}

	if nss, err := net.LookupNS(host); err == nil {
		for _, ns := range nss {
			report.NS = append(report.NS, ns.Host)
		}
	}

	return report
}
