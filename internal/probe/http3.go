package probe

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/quic-go/quic-go"
)

// CheckHTTP3 issues a request over the QUIC transport. If the request
// fails outright it falls back to a raw QUIC handshake probe, which
// distinguishes "server doesn't speak HTTP/3" from a request that failed
// for unrelated reasons.
func (p *Prober) CheckHTTP3(domain string) TransportSupportReport {
	report := TransportSupportReport{Domain: domain}

	target := ensureScheme(domain)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		report.Error = fmt.Sprintf("Failed to create request: %v", err)
		return report
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.H3Client.Do(req)
	if err != nil {
		host := normalizeDomain(target)

		conn, err := quic.DialAddr(context.Background(), host+":443", &tls.Config{
			ServerName: host,
			NextProtos: []string{"h3"},
		}, &quic.Config{
			HandshakeIdleTimeout: 5 * time.Second,
		})
		if err == nil {
			conn.CloseWithError(0, "probe")
			report.Supported = true
			report.Protocol = "HTTP/3"
			report.Details = "QUIC connection successful"
		} else {
			report.Supported = false
			report.Details = fmt.Sprintf("HTTP/3 not supported: %v", err)
		}
		return report
	}
	defer resp.Body.Close()

	report.Status = resp.StatusCode
	report.Protocol = resp.Proto
	if resp.ProtoMajor == 3 {
		report.Supported = true
		report.Details = fmt.Sprintf("HTTP/3 supported! Status: %d", resp.StatusCode)
	} else {
		report.Details = fmt.Sprintf("HTTP/3 not supported. Protocol: %s", resp.Proto)
	}
	return report
}
