package probe

import "time"

// Every report carries its identifying field even on total failure, and
// signals failure only through Error. Checkers never return a Go error for
// remote-side problems; "unreachable" is a diagnostic answer, not a fault.

// CertificateReport describes the leaf TLS certificate presented on :443.
type CertificateReport struct {
	Domain          string    `json:"domain"`
	Valid           bool      `json:"valid"`
	Issuer          string    `json:"issuer"`
	Subject         string    `json:"subject"`
	NotBefore       time.Time `json:"not_before"`
	NotAfter        time.Time `json:"not_after"`
	DaysUntilExpiry int       `json:"days_until_expiry"`
	SerialNumber    string    `json:"serial_number"`
	SignatureAlg    string    `json:"signature_algorithm"`
	PublicKeyAlg    string    `json:"public_key_algorithm"`
	KeySize         int       `json:"key_size"`
	Error           string    `json:"error,omitempty"`
}

// TransportSupportReport describes HTTP/3 support detection.
type TransportSupportReport struct {
	Domain    string `json:"domain"`
	Supported bool   `json:"supported"`
	Protocol  string `json:"protocol"`
	Status    int    `json:"status"`
	Details   string `json:"details"`
	Error     string `json:"error,omitempty"`
}

// NameResolutionReport holds per-record-type DNS lookups. A failure on one
// record type leaves that slice empty without touching the others.
type NameResolutionReport struct {
	Domain string   `json:"domain"`
	IPv4   []string `json:"ipv4"`
	IPv6   []string `json:"ipv6"`
	CNAME  []string `json:"cname"`
	MX     []string `json:"mx"`
	TXT    []string `json:"txt"`
	NS     []string `json:"ns"`
	Error  string   `json:"error,omitempty"`
}

// AddressReport describes an IP literal or a resolved hostname.
// Geolocation fields come from the configured Geolocator.
type AddressReport struct {
	Input        string   `json:"input"`
	IsDomain     bool     `json:"is_domain"`
	ResolvedIPs  []string `json:"resolved_ips,omitempty"`
	IP           string   `json:"ip,omitempty"`
	Country      string   `json:"country"`
	Region       string   `json:"region"`
	City         string   `json:"city"`
	ISP          string   `json:"isp"`
	Organization string   `json:"organization"`
	Timezone     string   `json:"timezone"`
	Error        string   `json:"error,omitempty"`
}

// HSTSPolicy is the parsed Strict-Transport-Security header.
type HSTSPolicy struct {
	Enabled           bool   `json:"enabled"`
	MaxAge            int    `json:"max_age"`
	IncludeSubDomains bool   `json:"include_subdomains"`
	Preload           bool   `json:"preload"`
	Directive         string `json:"directive"`
	Details           string `json:"details"`
}

// TransportSettingsReport captures the HTTP response surface of a host.
type TransportSettingsReport struct {
	Domain        string            `json:"domain"`
	StatusCode    int               `json:"status_code"`
	Headers       map[string]string `json:"headers"`
	Server        string            `json:"server"`
	ContentType   string            `json:"content_type"`
	ContentLength int64             `json:"content_length"`
	LastModified  string            `json:"last_modified"`
	ETag          string            `json:"etag"`
	RedirectURL   string            `json:"redirect_url,omitempty"`
	HSTS          HSTSPolicy        `json:"hsts"`
	ResponseTime  int64             `json:"response_time_ms"`
	Error         string            `json:"error,omitempty"`
}

// EmailAuthReport bundles the four DNS-TXT-based sender authentication
// sub-checks. A sub-check's lookup failure means "not configured", never a
// fatal error on the parent.
type EmailAuthReport struct {
	Domain string      `json:"domain"`
	SPF    SPFReport   `json:"spf"`
	DKIM   DKIMReport  `json:"dkim"`
	DMARC  DMARCReport `json:"dmarc"`
	BIMI   BIMIReport  `json:"bimi"`
	Error  string      `json:"error,omitempty"`
}

type SPFReport struct {
	Configured bool   `json:"configured"`
	Record     string `json:"record,omitempty"`
	Valid      bool   `json:"valid"`
	Details    string `json:"details,omitempty"`
	Error      string `json:"error,omitempty"`
}

type DKIMReport struct {
	Configured bool     `json:"configured"`
	Selectors  []string `json:"selectors"`
	Valid      bool     `json:"valid"`
	Details    string   `json:"details,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type DMARCReport struct {
	Configured bool   `json:"configured"`
	Record     string `json:"record,omitempty"`
	Policy     string `json:"policy,omitempty"` // none, quarantine, reject
	Valid      bool   `json:"valid"`
	Details    string `json:"details,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BIMIReport struct {
	Configured bool   `json:"configured"`
	Record     string `json:"record,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
	Valid      bool   `json:"valid"`
	Details    string `json:"details,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BlocklistServerResult is one resolver's verdict on a domain.
type BlocklistServerResult struct {
	Server    string `json:"server"`
	ServerIP  string `json:"server_ip"`
	IsBlocked bool   `json:"is_blocked"`
}

type BlocklistReport struct {
	Domain  string                  `json:"domain"`
	Results []BlocklistServerResult `json:"results"`
	Error   string                  `json:"error,omitempty"`
}

type RobotsReport struct {
	Domain     string   `json:"domain"`
	Exists     bool     `json:"exists"`
	Status     string   `json:"status"`
	Content    string   `json:"content"`
	Lines      []string `json:"lines"`
	UserAgents []string `json:"user_agents"`
	Disallowed []string `json:"disallowed"`
	Allowed    []string `json:"allowed"`
	Sitemaps   []string `json:"sitemaps"`
	CrawlDelay string   `json:"crawl_delay"`
	Error      string   `json:"error,omitempty"`
}

type SitemapReport struct {
	Domain         string   `json:"domain"`
	SitemapURL     string   `json:"sitemap_url"`
	Exists         bool     `json:"exists"`
	Status         string   `json:"status"`
	IsSitemapIndex bool     `json:"is_sitemap_index"`
	URLCount       int      `json:"url_count"`
	SubSitemaps    []string `json:"sub_sitemaps,omitempty"`
	SampleURLs     []string `json:"sample_urls,omitempty"`
	LastModified   []string `json:"last_modified,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// OpenGraphReport holds Open Graph / Twitter Card metadata scraped from a
// page, plus an accessibility probe of the selected preview image.
type OpenGraphReport struct {
	URL    string `json:"url"`
	Domain string `json:"domain"`
	Found  bool   `json:"found"`

	ImageURL    string `json:"image_url,omitempty"`
	ImageURLAlt string `json:"image_url_alt,omitempty"`
	ImageSecure string `json:"image_secure,omitempty"`
	ImageWidth  string `json:"image_width,omitempty"`
	ImageHeight string `json:"image_height,omitempty"`
	ImageType   string `json:"image_type,omitempty"`
	Accessible  bool   `json:"accessible"`
	Status      int    `json:"status,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`

	OGTitle       string `json:"og_title,omitempty"`
	OGDescription string `json:"og_description,omitempty"`
	OGType        string `json:"og_type,omitempty"`
	OGURL         string `json:"og_url,omitempty"`
	OGSiteName    string `json:"og_site_name,omitempty"`
	OGLocale      string `json:"og_locale,omitempty"`

	TwitterCard        string `json:"twitter_card,omitempty"`
	TwitterSite        string `json:"twitter_site,omitempty"`
	TwitterCreator     string `json:"twitter_creator,omitempty"`
	TwitterTitle       string `json:"twitter_title,omitempty"`
	TwitterDescription string `json:"twitter_description,omitempty"`
	TwitterImage       string `json:"twitter_image,omitempty"`
	TwitterImageAlt    string `json:"twitter_image_alt,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`

	AllMetaTags    map[string]string `json:"all_meta_tags,omitempty"`
	AllTwitterTags map[string]string `json:"all_twitter_tags,omitempty"`

	Error string `json:"error,omitempty"`
}

// HTMLReport is the raw HTML proxy fetch result.
type HTMLReport struct {
	URL    string `json:"url"`
	HTML   string `json:"html"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// WhoisReport summarizes registration data for a domain.
type WhoisReport struct {
	Domain          string   `json:"domain"`
	Registrar       string   `json:"registrar,omitempty"`
	Registrant      string   `json:"registrant,omitempty"`
	CreatedDate     string   `json:"created_date,omitempty"`
	UpdatedDate     string   `json:"updated_date,omitempty"`
	ExpirationDate  string   `json:"expiration_date,omitempty"`
	DaysUntilExpiry int      `json:"days_until_expiry,omitempty"`
	NameServers     []string `json:"name_servers,omitempty"`
	Status          []string `json:"status,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// CombinedReport holds the two reports derived from one TLS+HTTP round trip.
type CombinedReport struct {
	SSL         CertificateReport
	WebSettings TransportSettingsReport
}

// AggregateReport maps check names to their reports, plus a "_meta" block
// with per-check and total elapsed milliseconds.
type AggregateReport map[string]any
