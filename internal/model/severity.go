package model

import "encoding/json"

// Severity represents the risk level of a finding or of a whole document.
// The same scale is used for vulnerabilities, privacy issues, and the
// aggregated risk level so that results compare cleanly across scanners.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// the lowercase wire representation, and JSON marshalling round-trips the
// string form so API consumers see "high" rather than an opaque integer.
type Severity int

const (
	// SeverityNone indicates no risk was found.
	// A document with zero matches in every category is rated none.
	SeverityNone Severity = iota

	// SeverityLow indicates minor issues with limited impact.
	// Examples: contact email addresses, phone numbers, unverifiable URLs.
	SeverityLow

	// SeverityMedium indicates moderate issues that warrant attention.
	// Examples: street addresses, dates of birth, URL shorteners,
	// IP-literal links.
	SeverityMedium

	// SeverityHigh indicates serious exposures.
	// Examples: social security numbers, credit card numbers, links to
	// known malicious domains, embedded executable signatures.
	SeverityHigh
)

// String returns the lowercase wire representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a wire string back into a Severity.
// Unknown strings map to SeverityNone so that hand-edited list files
// cannot inject out-of-range values.
func ParseSeverity(s string) Severity {
	switch s {
	case "low":
		return SeverityLow
	case "medium":
		return SeverityMedium
	case "high":
		return SeverityHigh
	default:
		return SeverityNone
	}
}

// MarshalJSON serializes the severity as its lowercase string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the lowercase string form of a severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseSeverity(str)
	return nil
}
