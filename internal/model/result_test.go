package model

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

// TestNewScanResult tests that basic fields are populated on creation.
func TestNewScanResult(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	r := NewScanResult("resume.pdf", "application/pdf", content)

	if r.Filename != "resume.pdf" {
		t.Errorf("got filename %q, expected %q", r.Filename, "resume.pdf")
	}
	if r.ContentType != "application/pdf" {
		t.Errorf("got content type %q, expected %q", r.ContentType, "application/pdf")
	}
	if r.FileSize != int64(len(content)) {
		t.Errorf("got file size %d, expected %d", r.FileSize, len(content))
	}
	if len(r.Digest) != 64 {
		t.Errorf("expected 64 hex character digest, got %d characters", len(r.Digest))
	}
	if r.ScanID == "" {
		t.Error("expected non-empty scan ID")
	}

	// Same content must produce the same digest.
	other := NewScanResult("copy.pdf", "application/pdf", content)
	if other.Digest != r.Digest {
		t.Error("expected identical digests for identical content")
	}
	if other.ScanID == r.ScanID {
		t.Error("expected distinct scan IDs for distinct scans")
	}
}

// TestNewScanID tests the scan identifier format.
func TestNewScanID(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewScanID(now)

	pattern := regexp.MustCompile(`^docscan_20250314_092653_[0-9a-f]{8}$`)
	if !pattern.MatchString(id) {
		t.Errorf("scan ID %q does not match expected format", id)
	}

	// Suffixes must differ across calls.
	if NewScanID(now) == NewScanID(now) {
		t.Error("expected distinct suffixes for repeated calls")
	}
}

// TestTruncatePreview tests preview truncation with the ellipsis marker.
func TestTruncatePreview(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long text truncated", "hello world", 5, "hello..."},
		{"empty text", "", 5, ""},
		{"multibyte runes counted not bytes", "日本語テキスト", 3, "日本語..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncatePreview(tc.text, tc.limit); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestMergeFindings tests that per-scanner findings merge in scanner order.
func TestMergeFindings(t *testing.T) {
	t.Parallel()

	r := NewScanResult("a.pdf", "application/pdf", []byte("x"))
	r.MalwareFindings = []Vulnerability{
		{Type: "embedded_executable", Severity: SeverityHigh},
	}
	r.LinkFindings = []Vulnerability{
		{Type: "suspicious_url", Severity: SeverityMedium},
		{Type: "suspicious_url", Severity: SeverityLow},
	}

	r.MergeFindings()

	if len(r.Vulnerabilities) != 3 {
		t.Fatalf("got %d vulnerabilities, expected 3", len(r.Vulnerabilities))
	}
	if r.Vulnerabilities[0].Type != "embedded_executable" {
		t.Error("expected heuristic findings first")
	}
	if r.CriticalCount() != 1 {
		t.Errorf("got %d critical findings, expected 1", r.CriticalCount())
	}
}

// TestBuildSummary tests the summary block construction.
func TestBuildSummary(t *testing.T) {
	t.Parallel()

	t.Run("includes counts and preview", func(t *testing.T) {
		t.Parallel()

		r := NewScanResult("a.pdf", "application/pdf", []byte("x"))
		r.Document = &ExtractedDocument{Text: strings.Repeat("a", PreviewLength+10)}
		r.Vulnerabilities = []Vulnerability{
			{Severity: SeverityHigh},
			{Severity: SeverityLow},
		}
		r.PrivacyRisk = SeverityMedium

		r.BuildSummary()

		if r.Summary.TotalIssues != 2 {
			t.Errorf("got %d total issues, expected 2", r.Summary.TotalIssues)
		}
		if r.Summary.CriticalIssues != 1 {
			t.Errorf("got %d critical issues, expected 1", r.Summary.CriticalIssues)
		}
		if r.Summary.PrivacyRisk != SeverityMedium {
			t.Errorf("got privacy risk %v, expected medium", r.Summary.PrivacyRisk)
		}
		if !strings.HasSuffix(r.Summary.TextPreview, "...") {
			t.Error("expected truncated preview to end with ellipsis marker")
		}
		if len([]rune(r.Summary.TextPreview)) != PreviewLength+3 {
			t.Errorf("got preview length %d, expected %d", len([]rune(r.Summary.TextPreview)), PreviewLength+3)
		}
	})

	t.Run("summarizes privacy issues", func(t *testing.T) {
		t.Parallel()

		r := NewScanResult("a.pdf", "application/pdf", []byte("x"))
		r.PrivacyIssues = []PrivacyIssue{
			{Type: "ssn", Count: 1, RiskLevel: SeverityHigh},
			{Type: "credit_card", Count: 2, RiskLevel: SeverityHigh},
			{Type: "email", Count: 4, RiskLevel: SeverityLow},
		}
		r.PrivacyRisk = SeverityHigh

		r.BuildSummary()

		if r.Summary.PrivacyCategories != 3 {
			t.Errorf("got %d privacy categories, expected 3", r.Summary.PrivacyCategories)
		}
		if r.Summary.HighRiskCategories != 2 {
			t.Errorf("got %d high risk categories, expected 2", r.Summary.HighRiskCategories)
		}
		if r.Summary.PrivacyExposures != 7 {
			t.Errorf("got %d privacy exposures, expected 7", r.Summary.PrivacyExposures)
		}
	})

	t.Run("tolerates missing document", func(t *testing.T) {
		t.Parallel()

		r := NewScanResult("a.pdf", "application/pdf", []byte("x"))
		r.BuildSummary()

		if r.Summary.TextPreview != "" {
			t.Errorf("got preview %q, expected empty", r.Summary.TextPreview)
		}
		if r.Summary.PrivacyCategories != 0 || r.Summary.PrivacyExposures != 0 {
			t.Errorf("got privacy summary %+v, expected zero counts", r.Summary)
		}
	})
}
