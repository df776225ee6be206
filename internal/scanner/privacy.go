package scanner

import (
	"context"
	"log/slog"

	"github.com/vigyantra/docscan/internal/config"
	"github.com/vigyantra/docscan/internal/model"
)

// PrivacyScanner detects personal information categories in extracted
// document text. Each matched category produces one PrivacyIssue with a
// match count and a capped list of example matches.
//
// Design decision: Categories are scanned independently and overlapping
// matches are not reconciled. A phone number inside an address line
// counts under both categories. Reconciliation would need a priority
// order between categories that has no principled answer, and double
// counting errs on the side of flagging.
type PrivacyScanner struct {
	// patterns is the category catalogue.
	patterns []config.PrivacyPattern

	// exampleLimit caps the number of example matches per category.
	exampleLimit int

	// logger for structured logging.
	logger *slog.Logger
}

// PrivacyOption configures a PrivacyScanner.
type PrivacyOption func(*PrivacyScanner)

// WithPrivacyPatterns replaces the default pattern catalogue.
func WithPrivacyPatterns(patterns []config.PrivacyPattern) PrivacyOption {
	return func(s *PrivacyScanner) {
		s.patterns = patterns
	}
}

// WithExampleLimit sets the maximum number of example matches reported
// per category.
func WithExampleLimit(limit int) PrivacyOption {
	return func(s *PrivacyScanner) {
		s.exampleLimit = limit
	}
}

// WithPrivacyLogger sets a custom logger.
func WithPrivacyLogger(logger *slog.Logger) PrivacyOption {
	return func(s *PrivacyScanner) {
		s.logger = logger
	}
}

// NewPrivacyScanner creates a PrivacyScanner with the default pattern
// catalogue.
func NewPrivacyScanner(opts ...PrivacyOption) *PrivacyScanner {
	s := &PrivacyScanner{
		patterns:     config.DefaultPrivacyPatterns(),
		exampleLimit: config.DefaultExampleLimit,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Name returns the scanner name.
func (s *PrivacyScanner) Name() string {
	return "privacy"
}

// Scan matches every category pattern against the document text.
// The overall privacy risk is the highest risk level among matched
// categories, or none when nothing matched.
func (s *PrivacyScanner) Scan(ctx context.Context, target *Target) (*Result, error) {
	issues := make([]model.PrivacyIssue, 0)
	overall := model.SeverityNone

	text := ""
	if target.Document != nil {
		text = target.Document.Text
	}

	for _, p := range s.patterns {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		matches := p.Pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}

		examples := matches
		if len(examples) > s.exampleLimit {
			examples = examples[:s.exampleLimit]
		}

		issues = append(issues, model.PrivacyIssue{
			Type:           p.Category,
			Count:          len(matches),
			RiskLevel:      p.RiskLevel,
			Examples:       append([]string{}, examples...),
			Recommendation: p.Recommendation,
		})

		if p.RiskLevel > overall {
			overall = p.RiskLevel
		}

		s.logger.Debug("privacy category matched",
			"category", p.Category,
			"count", len(matches),
			"risk_level", p.RiskLevel,
		)
	}

	return &Result{
		PrivacyIssues: issues,
		PrivacyRisk:   overall,
	}, nil
}
