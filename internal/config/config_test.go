package config

import (
	"errors"
	"testing"
	"time"
)

// TestNewConfig tests that defaults are applied.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("got probe timeout %v, expected 5s", cfg.ProbeTimeout)
	}
	if cfg.ProbeConcurrency != DefaultProbeConcurrency {
		t.Errorf("got probe concurrency %d, expected %d", cfg.ProbeConcurrency, DefaultProbeConcurrency)
	}
	if cfg.MaxUploadSize != DefaultMaxUploadSize {
		t.Errorf("got max upload size %d, expected %d", cfg.MaxUploadSize, DefaultMaxUploadSize)
	}
	if len(cfg.Lists.SafeDomains) == 0 {
		t.Error("expected built-in safe domain list")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestConfigValidate tests validation sentinel errors.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "zero probe timeout",
			mutate:   func(c *Config) { c.ProbeTimeout = 0 },
			expected: ErrInvalidProbeTimeout,
		},
		{
			name:     "negative probe concurrency",
			mutate:   func(c *Config) { c.ProbeConcurrency = -1 },
			expected: ErrInvalidProbeConcurrency,
		},
		{
			name:     "zero max upload size",
			mutate:   func(c *Config) { c.MaxUploadSize = 0 },
			expected: ErrInvalidMaxUploadSize,
		},
		{
			name:     "zero batch size",
			mutate:   func(c *Config) { c.BatchSize = 0 },
			expected: ErrInvalidBatchSize,
		},
		{
			name:     "conflicting report formats",
			mutate:   func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			expected: ErrConflictingReportFormats,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tc.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tc.expected) {
				t.Errorf("got %v, expected %v", err, tc.expected)
			}
		})
	}
}

// TestListsMerge tests that overrides extend the built-in lists.
func TestListsMerge(t *testing.T) {
	t.Parallel()

	base := DefaultLists()
	merged := base.Merge(Lists{
		SuspiciousDomains: []string{"evil.example"},
		SafeDomains:       []string{"intranet.example"},
	})

	if len(merged.SuspiciousDomains) != len(base.SuspiciousDomains)+1 {
		t.Errorf("got %d suspicious domains, expected %d",
			len(merged.SuspiciousDomains), len(base.SuspiciousDomains)+1)
	}
	if merged.SuspiciousDomains[len(merged.SuspiciousDomains)-1] != "evil.example" {
		t.Error("expected appended suspicious domain")
	}
	if len(merged.ShortenerDomains) != len(base.ShortenerDomains) {
		t.Error("shortener list should be unchanged")
	}

	// The original must not be mutated.
	if len(base.SafeDomains) == len(merged.SafeDomains) {
		t.Error("expected merged safe list to be longer than base")
	}
}

// TestDefaultPrivacyPatterns tests the catalogue shape.
func TestDefaultPrivacyPatterns(t *testing.T) {
	t.Parallel()

	patterns := DefaultPrivacyPatterns()
	if len(patterns) != 6 {
		t.Fatalf("got %d patterns, expected 6", len(patterns))
	}

	seen := make(map[string]bool)
	for _, p := range patterns {
		if p.Pattern == nil {
			t.Errorf("category %s has nil pattern", p.Category)
		}
		if p.Recommendation == "" {
			t.Errorf("category %s has no recommendation", p.Category)
		}
		if seen[p.Category] {
			t.Errorf("duplicate category %s", p.Category)
		}
		seen[p.Category] = true
	}

	for _, want := range []string{"ssn", "credit_card", "date_of_birth", "address", "phone", "email"} {
		if !seen[want] {
			t.Errorf("missing category %s", want)
		}
	}
}
