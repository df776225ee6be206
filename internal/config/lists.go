package config

import (
	"regexp"

	"github.com/vigyantra/docscan/internal/model"
)

// Lists holds the domain reputation lists used for fast-path URL
// classification before falling back to a network probe.
// The lists are matched by substring against the registered domain of
// each URL, so an entry like "bit.ly" also covers subdomains.
type Lists struct {
	// SuspiciousDomains are domains known to host malicious or phishing
	// content. Any URL on one of these is flagged high severity.
	SuspiciousDomains []string `yaml:"suspicious_domains"`

	// ShortenerDomains are URL shortening services. Shortened links hide
	// the true destination and are flagged medium severity.
	ShortenerDomains []string `yaml:"shortener_domains"`

	// SafeDomains are well-known domains considered trustworthy. URLs on
	// these domains are never probed and never flagged.
	SafeDomains []string `yaml:"safe_domains"`
}

// DefaultLists returns the built-in domain reputation lists.
// These are deliberately small curated sets, not threat intelligence
// feeds; the YAML lists file can extend them per deployment.
func DefaultLists() Lists {
	return Lists{
		SuspiciousDomains: []string{
			"malware-test.com",
			"phishing-test.com",
			"short.link",
		},
		ShortenerDomains: []string{
			"bit.ly",
			"tinyurl.com",
			"t.co",
			"goo.gl",
			"short.link",
			"ow.ly",
			"is.gd",
		},
		SafeDomains: []string{
			"linkedin.com",
			"github.com",
			"google.com",
			"stackoverflow.com",
			"medium.com",
			"gitlab.com",
		},
	}
}

// Merge returns a copy of l extended with the entries from other.
// Duplicates are preserved; matching is substring-based so duplicates
// only cost a few extra comparisons.
func (l Lists) Merge(other Lists) Lists {
	merged := Lists{
		SuspiciousDomains: append(append([]string{}, l.SuspiciousDomains...), other.SuspiciousDomains...),
		ShortenerDomains:  append(append([]string{}, l.ShortenerDomains...), other.ShortenerDomains...),
		SafeDomains:       append(append([]string{}, l.SafeDomains...), other.SafeDomains...),
	}
	return merged
}

// PrivacyPattern describes one personal-information category: the
// pattern that detects it, its risk level, and the remediation guidance
// reported with matches.
type PrivacyPattern struct {
	// Category is the machine-readable category key (e.g. "ssn").
	Category string

	// Pattern matches occurrences of this category in document text.
	Pattern *regexp.Regexp

	// RiskLevel is the per-category risk level.
	RiskLevel model.Severity

	// Recommendation is the remediation guidance for this category.
	Recommendation string
}

// DefaultPrivacyPatterns returns the built-in privacy pattern catalogue.
//
// The patterns are heuristic and non-exclusive: a phone number embedded
// in an address string may be counted under both categories. That is
// accepted behavior, not a defect; the scanner is best-effort.
func DefaultPrivacyPatterns() []PrivacyPattern {
	return []PrivacyPattern{
		{
			Category:       "ssn",
			Pattern:        regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			RiskLevel:      model.SeverityHigh,
			Recommendation: "CRITICAL: Remove Social Security Number immediately. Never include SSN in documents shared externally.",
		},
		{
			Category:       "credit_card",
			Pattern:        regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
			RiskLevel:      model.SeverityHigh,
			Recommendation: "CRITICAL: Remove credit card information immediately. This should never appear in a shared document.",
		},
		{
			Category:       "date_of_birth",
			Pattern:        regexp.MustCompile(`\b(?:\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|\d{4}[/\-]\d{1,2}[/\-]\d{1,2})\b`),
			RiskLevel:      model.SeverityMedium,
			Recommendation: "Remove date of birth. This information can enable identity theft and age discrimination.",
		},
		{
			Category:       "address",
			Pattern:        regexp.MustCompile(`\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr)`),
			RiskLevel:      model.SeverityMedium,
			Recommendation: "Consider including only city and state. A full home address may not be necessary.",
		},
		{
			Category:       "phone",
			Pattern:        regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
			RiskLevel:      model.SeverityLow,
			Recommendation: "Include only necessary contact information. Consider a dedicated professional phone number.",
		},
		{
			Category:       "email",
			Pattern:        regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
			RiskLevel:      model.SeverityLow,
			Recommendation: "Consider using a professional email address only. Avoid personal email addresses.",
		},
	}
}
