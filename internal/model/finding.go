package model

// Vulnerability represents a single suspicious finding produced by the
// link scanner or the heuristic scanner. Instances are never mutated
// after creation, and each one is attributable to exactly one scanner.
type Vulnerability struct {
	// Type is the finding category label (e.g. "suspicious_url",
	// "embedded_executable").
	Type string `json:"type"`

	// Severity is the risk level of this finding.
	Severity Severity `json:"severity"`

	// Description is a short human-readable summary.
	Description string `json:"description"`

	// Details explains why the finding was flagged (e.g. the matched
	// domain list or probe outcome).
	Details string `json:"details,omitempty"`

	// Recommendation provides guidance on how to address the finding.
	Recommendation string `json:"recommendation,omitempty"`
}

// PrivacyIssue represents one matched personal-information category
// produced by the privacy scanner. Categories with zero matches are
// never emitted.
type PrivacyIssue struct {
	// Type is the category key: email, phone, ssn, credit_card,
	// address, or date_of_birth.
	Type string `json:"type"`

	// Count is the number of matches for this category.
	Count int `json:"count"`

	// RiskLevel is the per-category risk level.
	RiskLevel Severity `json:"risk_level"`

	// Examples contains up to the first three raw matched strings.
	Examples []string `json:"examples"`

	// Recommendation provides category-specific remediation guidance.
	Recommendation string `json:"recommendation,omitempty"`
}
