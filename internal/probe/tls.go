package probe

import (
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"
)

// CheckCertificate opens a direct TLS connection on :443 with SNI set to
// the bare hostname and reports the leaf certificate. A handshake failure
// populates only the error field.
func (p *Prober) CheckCertificate(domain string) CertificateReport {
	report := CertificateReport{Domain: domain}

	host := normalizeDomain(domain)

	conn, err := tls.Dial("tcp", host+":443", &tls.Config{ServerName: host})
	if err != nil {
		report.Error = fmt.Sprintf("Failed to connect: %v", err)
		return report
	}
	defer conn.Close()

	fillCertificate(&report, conn.ConnectionState().PeerCertificates[0])
	return report
}

func fillCertificate(report *CertificateReport, cert *x509.Certificate) {
	report.Valid = true
	report.Issuer = cert.Issuer.String()
	report.Subject = cert.Subject.String()
	report.NotBefore = cert.NotBefore
	report.NotAfter = cert.NotAfter
	report.DaysUntilExpiry = int(time.Until(cert.NotAfter).Hours() / 24)
	report.SerialNumber = cert.SerialNumber.String()
	report.SignatureAlg = cert.SignatureAlgorithm.String()
	report.PublicKeyAlg = cert.PublicKeyAlgorithm.String()

	// Key size is algorithm-aware: exponent-modulus keys have a bit
	// length, anything else reports 0.
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		report.KeySize = pub.N.BitLen()
	default:
		report.KeySize = 0
	}
}
