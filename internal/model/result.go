package model

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// PreviewLength is the maximum number of runes included in the text
// preview of a scan summary. Longer text is truncated with a trailing
// ellipsis marker.
const PreviewLength = 500

// ScanResult is the complete result of one scan. It is the sole output
// artifact of the pipeline: transient, owned by the request that produced
// it, and never persisted.
//
// Design decision: We use a single struct that the pipeline steps fill in
// sequence rather than returning intermediate values between steps. This
// mirrors how the pipeline accumulates state and keeps serialization
// trivial. Fields that only carry state between steps (raw content, the
// extracted document, per-scanner finding slices) are excluded from JSON.
type ScanResult struct {
	// === Identity ===

	// ScanID is a globally unique identifier for this scan.
	ScanID string `json:"scan_id"`

	// Filename is the original uploaded filename. It is reported verbatim
	// and never parsed for format detection.
	Filename string `json:"filename"`

	// FileSize is the uploaded file size in bytes.
	FileSize int64 `json:"file_size"`

	// ContentType is the declared media type of the upload.
	ContentType string `json:"content_type"`

	// Digest is the SHA3-256 digest of the file content, hex encoded.
	Digest string `json:"digest"`

	// ScanDate is when the scan was performed (UTC).
	ScanDate time.Time `json:"scan_date"`

	// === Findings ===

	// Risk is the aggregated risk assessment.
	Risk *RiskAssessment `json:"risk,omitempty"`

	// Vulnerabilities is the unioned list of link and heuristic findings.
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`

	// PrivacyIssues is the list of privacy scanner findings.
	PrivacyIssues []PrivacyIssue `json:"privacy_issues"`

	// PrivacyRisk is the overall privacy risk level reported by the
	// privacy scanner (none when no category matched).
	PrivacyRisk Severity `json:"privacy_risk"`

	// URLSummary describes all URLs the link scanner examined.
	URLSummary *URLSummary `json:"url_summary,omitempty"`

	// Summary is the condensed result block for quick review.
	Summary *Summary `json:"summary,omitempty"`

	// ScanErrors lists non-fatal scanner failures. A failed scanner
	// contributes zero findings but does not abort the scan.
	ScanErrors []string `json:"scan_errors,omitempty"`

	// === Pipeline State (not serialized) ===

	// Content is the raw uploaded file content.
	Content []byte `json:"-"`

	// Document is the extraction output consumed by the scanners.
	Document *ExtractedDocument `json:"-"`

	// MalwareFindings holds the heuristic scanner output before merging.
	MalwareFindings []Vulnerability `json:"-"`

	// LinkFindings holds the link scanner output before merging.
	LinkFindings []Vulnerability `json:"-"`
}

// URLSummary describes the URLs examined by the link scanner.
type URLSummary struct {
	// TotalURLs is the number of URL-shaped substrings found.
	TotalURLs int `json:"total_urls"`

	// SuspiciousURLs is the number classified as suspicious.
	SuspiciousURLs int `json:"suspicious_urls"`

	// AnalyzedURLs lists every URL found, in document order.
	AnalyzedURLs []string `json:"analyzed_urls,omitempty"`
}

// Summary is the condensed result block included in the scan response.
type Summary struct {
	// TotalIssues is the number of vulnerabilities across all scanners.
	TotalIssues int `json:"total_issues"`

	// CriticalIssues is the number of high severity vulnerabilities.
	CriticalIssues int `json:"critical_issues"`

	// PrivacyRisk is the overall privacy risk level.
	PrivacyRisk Severity `json:"privacy_risk"`

	// PrivacyCategories is the number of personal-information categories
	// that matched at least once.
	PrivacyCategories int `json:"privacy_categories"`

	// HighRiskCategories is the number of matched categories rated high.
	HighRiskCategories int `json:"high_risk_categories"`

	// PrivacyExposures is the total occurrence count across all matched
	// categories.
	PrivacyExposures int `json:"privacy_exposures"`

	// TextPreview is the extracted text truncated to PreviewLength runes,
	// with a trailing ellipsis marker when truncated.
	TextPreview string `json:"text_preview"`
}

// NewScanResult creates a ScanResult for the given upload.
// The scan identifier and content digest are computed immediately so that
// every log line about this scan can carry them.
func NewScanResult(filename, contentType string, content []byte) *ScanResult {
	now := time.Now().UTC()
	digest := sha3.Sum256(content)

	return &ScanResult{
		ScanID:          NewScanID(now),
		Filename:        filename,
		FileSize:        int64(len(content)),
		ContentType:     contentType,
		Digest:          hex.EncodeToString(digest[:]),
		ScanDate:        now,
		Content:         content,
		Vulnerabilities: make([]Vulnerability, 0),
		PrivacyIssues:   make([]PrivacyIssue, 0),
	}
}

// NewScanID generates a unique scan identifier: a UTC timestamp plus a
// short random hash suffix. The suffix is the first 8 hex characters of
// the SHA3-256 digest of a random UUID; collision probability across
// concurrent scans in the same second is negligible.
func NewScanID(now time.Time) string {
	sum := sha3.Sum256([]byte(uuid.NewString()))
	return "docscan_" + now.UTC().Format("20060102_150405") + "_" + hex.EncodeToString(sum[:4])
}

// MergeFindings combines the per-scanner vulnerability lists into the
// public Vulnerabilities slice. The heuristic scanner's findings come
// first, matching the order the scanners run.
func (r *ScanResult) MergeFindings() {
	merged := make([]Vulnerability, 0, len(r.MalwareFindings)+len(r.LinkFindings))
	merged = append(merged, r.MalwareFindings...)
	merged = append(merged, r.LinkFindings...)
	r.Vulnerabilities = merged
}

// CriticalCount returns the number of high severity vulnerabilities.
func (r *ScanResult) CriticalCount() int {
	count := 0
	for _, v := range r.Vulnerabilities {
		if v.Severity == SeverityHigh {
			count++
		}
	}
	return count
}

// AddScanError records a non-fatal scanner failure.
func (r *ScanResult) AddScanError(msg string) {
	r.ScanErrors = append(r.ScanErrors, msg)
}

// BuildSummary populates the Summary block from the current findings.
// It is called once, after aggregation.
func (r *ScanResult) BuildSummary() {
	text := ""
	if r.Document != nil {
		text = r.Document.Text
	}

	highRisk := 0
	exposures := 0
	for _, issue := range r.PrivacyIssues {
		if issue.RiskLevel == SeverityHigh {
			highRisk++
		}
		exposures += issue.Count
	}

	r.Summary = &Summary{
		TotalIssues:        len(r.Vulnerabilities),
		CriticalIssues:     r.CriticalCount(),
		PrivacyRisk:        r.PrivacyRisk,
		PrivacyCategories:  len(r.PrivacyIssues),
		HighRiskCategories: highRisk,
		PrivacyExposures:   exposures,
		TextPreview:        TruncatePreview(text, PreviewLength),
	}
}

// TruncatePreview shortens text to at most limit runes, appending an
// ellipsis marker when truncation occurred.
func TruncatePreview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
