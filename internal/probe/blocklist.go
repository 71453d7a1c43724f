package probe

import (
	"net"
	"slices"
	"time"

	"github.com/miekg/dns"
)

// resolverEntry is one public DNS resolver to probe.
type resolverEntry struct {
	Name string
	IP   string
}

// blocklistResolvers are filtering resolvers whose answer (or refusal)
// indicates whether a domain sits on their blocklist.
var blocklistResolvers = []resolverEntry{
	{Name: "AdGuard", IP: "176.103.130.130"},
	{Name: "AdGuard Family", IP: "176.103.130.132"},
	{Name: "CleanBrowsing Adult", IP: "185.228.168.10"},
	{Name: "CleanBrowsing Family", IP: "185.228.168.168"},
	{Name: "CleanBrowsing Security", IP: "185.228.168.9"},
	{Name: "CloudFlare", IP: "1.1.1.1"},
	{Name: "CloudFlare Family", IP: "1.1.1.3"},
	{Name: "Comodo Secure", IP: "8.26.56.26"},
	{Name: "Google DNS", IP: "8.8.8.8"},
	{Name: "Neustar Family", IP: "156.154.70.3"},
	{Name: "Neustar Protection", IP: "156.154.70.2"},
	{Name: "Norton Family", IP: "199.85.126.20"},
	{Name: "OpenDNS", IP: "208.67.222.222"},
	{Name: "OpenDNS Family", IP: "208.67.222.123"},
	{Name: "Quad9", IP: "9.9.9.9"},
	{Name: "Yandex Family", IP: "77.88.8.7"},
	{Name: "Yandex Safe", IP: "77.88.8.88"},
}

// knownBlockIPs are sinkhole / block-page addresses filtering resolvers
// return instead of the real records.
var knownBlockIPs = []string{
	"146.112.61.106", // OpenDNS
	"185.228.168.10", // CleanBrowsing
	"8.26.56.26",     // Comodo
	"208.69.38.170",  // OpenDNS
	"208.69.39.170",  // OpenDNS
	"208.67.222.222", // OpenDNS
	"208.67.222.123", // OpenDNS FamilyShield
	"199.85.126.10",  // Norton
	"199.85.126.20",  // Norton Family
	"156.154.70.22",  // Neustar
	"77.88.8.7",      // Yandex
}

// CheckBlocklist resolves the domain through each resolver in the table.
// A domain counts as blocked when resolution fails outright or any
// returned address is a known sinkhole IP. One resolver's failure never
// affects the others' results.
func (p *Prober) CheckBlocklist(domain string) BlocklistReport {
	report := BlocklistReport{Domain: domain}

	host := normalizeDomain(domain)

	results := make([]BlocklistServerResult, 0, len(blocklistResolvers))
	for _, server := range blocklistResolvers {
		results = append(results, BlocklistServerResult{
			Server:    server.Name,
			ServerIP:  server.IP,
			IsBlocked: blockedByResolver(host, server.IP),
		})
	}

	report.Results = results
	return report
}

func blockedByResolver(domain, serverIP string) bool {
	client := &dns.Client{Timeout: 5 * time.Second}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	msg.RecursionDesired = true

	in, _, err := client.Exchange(msg, net.JoinHostPort(serverIP, "53"))
	if err != nil || in.Rcode != dns.RcodeSuccess {
		// Refusal or NXDOMAIN from a filtering resolver means blocked.
		return true
	}

	var answered bool
	for _, rr := range in.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		answered = true
		if slices.Contains(knownBlockIPs, a.A.String()) {
			return true
		}
	}

	return !answered
}
