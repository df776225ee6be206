package model

import (
	"encoding/json"
	"testing"
)

// TestSeverityString tests the String method of Severity.
func TestSeverityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		expected string
	}{
		{SeverityNone, "none"},
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{Severity(999), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.severity.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.severity.String(), tc.expected)
			}
		})
	}
}

// TestParseSeverity tests round-tripping and the unknown-string fallback.
func TestParseSeverity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected Severity
	}{
		{"none", SeverityNone},
		{"low", SeverityLow},
		{"medium", SeverityMedium},
		{"high", SeverityHigh},
		{"critical", SeverityNone},
		{"", SeverityNone},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseSeverity(tc.input); got != tc.expected {
				t.Errorf("ParseSeverity(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

// TestSeverityOrdering tests that severity levels are ordered correctly.
// None < Low < Medium < High
func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	if SeverityNone >= SeverityLow {
		t.Error("expected SeverityNone < SeverityLow")
	}
	if SeverityLow >= SeverityMedium {
		t.Error("expected SeverityLow < SeverityMedium")
	}
	if SeverityMedium >= SeverityHigh {
		t.Error("expected SeverityMedium < SeverityHigh")
	}
}

// TestSeverityJSON tests JSON marshalling round-trips the string form.
func TestSeverityJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(SeverityHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"high"` {
		t.Errorf("got %s, expected %q", data, `"high"`)
	}

	var s Severity
	if err := json.Unmarshal([]byte(`"medium"`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != SeverityMedium {
		t.Errorf("got %v, expected SeverityMedium", s)
	}
}
