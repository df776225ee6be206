package scanner

import (
	"context"
	"testing"

	"github.com/vigyantra/docscan/internal/model"
)

// targetWithText builds a scan target around extracted text.
func targetWithText(text string) *Target {
	return &Target{
		Document: &model.ExtractedDocument{Text: text},
	}
}

// TestPrivacyScannerCategories tests detection across categories.
func TestPrivacyScannerCategories(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		text         string
		wantType     string
		wantCount    int
		wantRisk     model.Severity
		wantExamples int
	}{
		{
			name:         "ssn",
			text:         "SSN: 123-45-6789",
			wantType:     "ssn",
			wantCount:    1,
			wantRisk:     model.SeverityHigh,
			wantExamples: 1,
		},
		{
			name:         "credit card",
			text:         "card 4111 1111 1111 1111 on file",
			wantType:     "credit_card",
			wantCount:    1,
			wantRisk:     model.SeverityHigh,
			wantExamples: 1,
		},
		{
			name:         "date of birth",
			text:         "DOB: 01/15/1990",
			wantType:     "date_of_birth",
			wantCount:    1,
			wantRisk:     model.SeverityMedium,
			wantExamples: 1,
		},
		{
			name:         "address",
			text:         "Lives at 42 Elm Street since 2019",
			wantType:     "address",
			wantCount:    1,
			wantRisk:     model.SeverityMedium,
			wantExamples: 1,
		},
		{
			name:         "example cap",
			text:         "a@x.example b@x.example c@x.example d@x.example",
			wantType:     "email",
			wantCount:    4,
			wantRisk:     model.SeverityLow,
			wantExamples: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewPrivacyScanner().Scan(context.Background(), targetWithText(tc.text))
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}

			var issue *model.PrivacyIssue
			for i := range result.PrivacyIssues {
				if result.PrivacyIssues[i].Type == tc.wantType {
					issue = &result.PrivacyIssues[i]
					break
				}
			}
			if issue == nil {
				t.Fatalf("category %q not reported; issues: %+v", tc.wantType, result.PrivacyIssues)
			}

			if issue.Count != tc.wantCount {
				t.Errorf("Count = %d, want %d", issue.Count, tc.wantCount)
			}
			if issue.RiskLevel != tc.wantRisk {
				t.Errorf("RiskLevel = %v, want %v", issue.RiskLevel, tc.wantRisk)
			}
			if len(issue.Examples) != tc.wantExamples {
				t.Errorf("Examples = %v, want %d entries", issue.Examples, tc.wantExamples)
			}
			if issue.Recommendation == "" {
				t.Error("Recommendation is empty")
			}
		})
	}
}

// TestPrivacyScannerOverallRisk tests that the overall risk is the
// highest matched category level.
func TestPrivacyScannerOverallRisk(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want model.Severity
	}{
		{"nothing matched", "plain prose", model.SeverityNone},
		{"low only", "mail me at a@b.example", model.SeverityLow},
		{"medium dominates low", "a@b.example born 01/15/1990", model.SeverityMedium},
		{"high dominates all", "a@b.example ssn 123-45-6789", model.SeverityHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewPrivacyScanner().Scan(context.Background(), targetWithText(tc.text))
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if result.PrivacyRisk != tc.want {
				t.Errorf("PrivacyRisk = %v, want %v", result.PrivacyRisk, tc.want)
			}
		})
	}
}

// TestPrivacyScannerCleanDocument tests the clean-document shape.
func TestPrivacyScannerCleanDocument(t *testing.T) {
	t.Parallel()

	result, err := NewPrivacyScanner().Scan(context.Background(), targetWithText("nothing personal here"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if result.PrivacyIssues == nil || len(result.PrivacyIssues) != 0 {
		t.Errorf("PrivacyIssues = %v, want empty non-nil slice", result.PrivacyIssues)
	}
	if result.PrivacyRisk != model.SeverityNone {
		t.Errorf("PrivacyRisk = %v, want none", result.PrivacyRisk)
	}
}

// TestPrivacyScannerNilDocument tests that a missing document scans clean.
func TestPrivacyScannerNilDocument(t *testing.T) {
	t.Parallel()

	result, err := NewPrivacyScanner().Scan(context.Background(), &Target{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.PrivacyIssues) != 0 {
		t.Errorf("PrivacyIssues = %v, want empty", result.PrivacyIssues)
	}
}

// TestPrivacyScannerCanceledContext tests cancellation.
func TestPrivacyScannerCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewPrivacyScanner().Scan(ctx, targetWithText("text")); err == nil {
		t.Error("expected error for canceled context")
	}
}
