package scanner

import (
	"context"

	"github.com/vigyantra/docscan/internal/model"
)

// Scanner examines an extracted document for one class of risk.
// Implementations must be safe for concurrent use; the pipeline may run
// several scans through one instance at a time.
type Scanner interface {
	// Name returns the scanner name used in logs and scan errors.
	Name() string

	// Scan examines the target and returns findings. A nil-error return
	// with zero findings means the scanner ran and found nothing.
	Scan(ctx context.Context, target *Target) (*Result, error)
}

// Target is the immutable input shared by every scanner.
type Target struct {
	// Content is the raw uploaded file content. Used by scanners that
	// inspect bytes the text extraction discards.
	Content []byte

	// Document is the extraction output.
	Document *model.ExtractedDocument
}

// Result is the output of a single scanner. Only the fields a scanner
// produces are populated; the pipeline merges results into the scan.
type Result struct {
	// Vulnerabilities are suspicious findings (link and heuristic scanners).
	Vulnerabilities []model.Vulnerability

	// PrivacyIssues are matched personal-information categories
	// (privacy scanner only).
	PrivacyIssues []model.PrivacyIssue

	// PrivacyRisk is the overall privacy risk level (privacy scanner only).
	PrivacyRisk model.Severity

	// URLSummary describes the URLs examined (link scanner only).
	URLSummary *model.URLSummary
}
