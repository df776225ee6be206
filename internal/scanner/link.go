package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"

	"github.com/vigyantra/docscan/internal/config"
	"github.com/vigyantra/docscan/internal/model"
)

// vulnTypeSuspiciousURL is the finding type for every link scanner finding.
const vulnTypeSuspiciousURL = "suspicious_url"

// LinkScanner classifies every URL found in the document.
//
// Classification is a fast-path list check first, then a network probe
// for unknown domains:
//  1. Suspicious-list domains are flagged high severity.
//  2. Shortener domains are flagged medium severity.
//  3. Raw IP-literal hosts are flagged medium severity.
//  4. Safe-list domains are accepted without probing.
//  5. Everything else gets a HEAD probe; unreachable URLs and error
//     statuses are flagged low severity.
//
// Design decision: Probes run concurrently with a bounded worker count
// and write into a pre-allocated results slice indexed by URL position.
// No shared accumulator means no mutex, and findings keep document order
// regardless of probe completion order.
type LinkScanner struct {
	// lists are the domain reputation lists.
	lists config.Lists

	// httpClient performs liveness probes.
	httpClient *http.Client

	// probeTimeout bounds each individual probe.
	probeTimeout time.Duration

	// probeConcurrency bounds the number of in-flight probes.
	probeConcurrency int

	// userAgent is sent with every probe request.
	userAgent string

	// logger for structured logging.
	logger *slog.Logger
}

// LinkOption configures a LinkScanner.
type LinkOption func(*LinkScanner)

// WithLists replaces the default domain reputation lists.
func WithLists(lists config.Lists) LinkOption {
	return func(s *LinkScanner) {
		s.lists = lists
	}
}

// WithHTTPClient sets a custom HTTP client for probes.
func WithHTTPClient(client *http.Client) LinkOption {
	return func(s *LinkScanner) {
		s.httpClient = client
	}
}

// WithProbeTimeout sets the per-probe timeout.
func WithProbeTimeout(timeout time.Duration) LinkOption {
	return func(s *LinkScanner) {
		s.probeTimeout = timeout
	}
}

// WithProbeConcurrency sets the maximum number of concurrent probes.
func WithProbeConcurrency(n int) LinkOption {
	return func(s *LinkScanner) {
		s.probeConcurrency = n
	}
}

// WithUserAgent sets the User-Agent header sent with probe requests.
func WithUserAgent(userAgent string) LinkOption {
	return func(s *LinkScanner) {
		s.userAgent = userAgent
	}
}

// WithLinkLogger sets a custom logger.
func WithLinkLogger(logger *slog.Logger) LinkOption {
	return func(s *LinkScanner) {
		s.logger = logger
	}
}

// NewLinkScanner creates a LinkScanner with the built-in lists and
// default probe settings.
func NewLinkScanner(opts ...LinkOption) *LinkScanner {
	s := &LinkScanner{
		lists:            config.DefaultLists(),
		probeTimeout:     config.DefaultProbeTimeout,
		probeConcurrency: config.DefaultProbeConcurrency,
		userAgent:        config.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.probeTimeout}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Name returns the scanner name.
func (s *LinkScanner) Name() string {
	return "link"
}

// Scan classifies every URL in the document. List-based classification
// runs serially; only unknown domains are probed over the network.
func (s *LinkScanner) Scan(ctx context.Context, target *Target) (*Result, error) {
	var urls []string
	if target.Document != nil {
		urls = target.Document.ExtractedData.URLs
	}

	summary := &model.URLSummary{
		TotalURLs:    len(urls),
		AnalyzedURLs: urls,
	}

	if len(urls) == 0 {
		return &Result{
			Vulnerabilities: make([]model.Vulnerability, 0),
			URLSummary:      summary,
		}, nil
	}

	// One slot per URL. A nil slot means the URL was clean or still
	// needs a probe.
	findings := make([]*model.Vulnerability, len(urls))
	var probeIdx []int

	for i, rawURL := range urls {
		finding, needsProbe := s.classify(rawURL)
		if finding != nil {
			findings[i] = finding
			continue
		}
		if needsProbe {
			probeIdx = append(probeIdx, i)
		}
	}

	if len(probeIdx) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.probeConcurrency)

		for _, i := range probeIdx {
			g.Go(func() error {
				findings[i] = s.probe(gctx, urls[i])
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	vulns := make([]model.Vulnerability, 0, len(urls))
	for _, f := range findings {
		if f != nil {
			vulns = append(vulns, *f)
		}
	}
	summary.SuspiciousURLs = len(vulns)

	s.logger.Debug("link scan complete",
		"total_urls", summary.TotalURLs,
		"suspicious_urls", summary.SuspiciousURLs,
		"probed", len(probeIdx),
	)

	return &Result{
		Vulnerabilities: vulns,
		URLSummary:      summary,
	}, nil
}

// classify runs the fast-path list checks for one URL. It returns either
// a finding, or needsProbe=true for URLs no list covers.
func (s *LinkScanner) classify(rawURL string) (*model.Vulnerability, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return linkFinding(rawURL, model.SeverityLow,
			"URL could not be parsed",
			"Remove or correct the malformed link."), false
	}

	host := strings.ToLower(u.Hostname())
	domain := registeredDomain(host)

	if entry, ok := matchesList(domain, s.lists.SuspiciousDomains); ok {
		return linkFinding(rawURL, model.SeverityHigh,
			fmt.Sprintf("domain %s is on the suspicious domain list (%s)", domain, entry),
			"Remove this link. The domain is associated with malicious content."), false
	}

	if entry, ok := matchesList(domain, s.lists.ShortenerDomains); ok {
		return linkFinding(rawURL, model.SeverityMedium,
			fmt.Sprintf("domain %s is a URL shortener (%s); the true destination is hidden", domain, entry),
			"Replace the shortened link with the full destination URL."), false
	}

	if net.ParseIP(host) != nil {
		return linkFinding(rawURL, model.SeverityMedium,
			fmt.Sprintf("URL uses a raw IP address (%s) instead of a domain name", host),
			"Links to raw IP addresses are a common phishing technique. Use a named host."), false
	}

	if _, ok := matchesList(domain, s.lists.SafeDomains); ok {
		return nil, false
	}

	return nil, true
}

// probe performs a HEAD request against an unknown URL. Unreachable
// URLs and error statuses produce low severity findings; a probe never
// fails the scan.
func (s *LinkScanner) probe(ctx context.Context, rawURL string) *model.Vulnerability {
	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		return linkFinding(rawURL, model.SeverityLow,
			"URL could not be requested",
			"Remove or correct the malformed link.")
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return linkFinding(rawURL, model.SeverityLow,
			"URL did not respond to a liveness probe",
			"Verify the link is still valid before sharing the document.")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return linkFinding(rawURL, model.SeverityLow,
			fmt.Sprintf("URL responded with HTTP status %d", resp.StatusCode),
			"Verify the link is still valid before sharing the document.")
	}

	return nil
}

// linkFinding builds one link scanner finding.
func linkFinding(rawURL string, severity model.Severity, details, recommendation string) *model.Vulnerability {
	return &model.Vulnerability{
		Type:           vulnTypeSuspiciousURL,
		Severity:       severity,
		Description:    "Potentially malicious URL detected: " + rawURL,
		Details:        details,
		Recommendation: recommendation,
	}
}

// registeredDomain reduces a hostname to its registered domain
// (eTLD+1), so subdomain variants match the same list entries. Hosts
// without a public suffix, including IP literals, pass through as is.
func registeredDomain(host string) string {
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// matchesList reports whether the domain matches any list entry, and
// which entry matched.
func matchesList(domain string, list []string) (string, bool) {
	for _, entry := range list {
		if strings.Contains(domain, entry) {
			return entry, true
		}
	}
	return "", false
}
