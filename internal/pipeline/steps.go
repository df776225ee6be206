package pipeline

import (
	"context"

	"github.com/vigyantra/docscan/internal/extract"
	"github.com/vigyantra/docscan/internal/model"
	"github.com/vigyantra/docscan/internal/risk"
	"github.com/vigyantra/docscan/internal/scanner"
)

// ExtractStep converts the raw upload into an extracted document.
// This is the only critical step: without text, no scanner can run.
type ExtractStep struct {
	extractor *extract.Extractor
}

// NewExtractStep creates an ExtractStep.
func NewExtractStep(extractor *extract.Extractor) *ExtractStep {
	return &ExtractStep{extractor: extractor}
}

// Name returns the step name.
func (s *ExtractStep) Name() string { return "extract" }

// Do extracts text, metadata, and statistics from the upload.
func (s *ExtractStep) Do(ctx context.Context, result *model.ScanResult) error {
	doc, err := s.extractor.Extract(ctx, result.Content, result.ContentType)
	if err != nil {
		return err
	}
	result.Document = doc
	return nil
}

// scanStep wraps one scanner as a pipeline step. Scanner failures are
// recorded on the result and never fail the pipeline; a broken scanner
// costs its findings, not the scan.
type scanStep struct {
	scanner scanner.Scanner
	apply   func(result *model.ScanResult, scanResult *scanner.Result)
}

// Name returns the wrapped scanner's name.
func (s *scanStep) Name() string { return s.scanner.Name() }

// Do runs the scanner and merges its result.
func (s *scanStep) Do(ctx context.Context, result *model.ScanResult) error {
	target := &scanner.Target{
		Content:  result.Content,
		Document: result.Document,
	}

	scanResult, err := s.scanner.Scan(ctx, target)
	if err != nil {
		result.AddScanError(s.scanner.Name() + ": " + err.Error())
		return nil
	}

	s.apply(result, scanResult)
	return nil
}

// NewPrivacyScanStep wraps the privacy scanner as a pipeline step.
func NewPrivacyScanStep(s scanner.Scanner) Step {
	return &scanStep{
		scanner: s,
		apply: func(result *model.ScanResult, scanResult *scanner.Result) {
			result.PrivacyIssues = scanResult.PrivacyIssues
			result.PrivacyRisk = scanResult.PrivacyRisk
		},
	}
}

// NewLinkScanStep wraps the link scanner as a pipeline step.
func NewLinkScanStep(s scanner.Scanner) Step {
	return &scanStep{
		scanner: s,
		apply: func(result *model.ScanResult, scanResult *scanner.Result) {
			result.LinkFindings = scanResult.Vulnerabilities
			result.URLSummary = scanResult.URLSummary
		},
	}
}

// NewMalwareScanStep wraps the heuristic scanner as a pipeline step.
func NewMalwareScanStep(s scanner.Scanner) Step {
	return &scanStep{
		scanner: s,
		apply: func(result *model.ScanResult, scanResult *scanner.Result) {
			result.MalwareFindings = scanResult.Vulnerabilities
		},
	}
}

// AggregateStep merges per-scanner findings, computes the risk
// assessment, and builds the summary block. It runs last and never fails.
type AggregateStep struct{}

// NewAggregateStep creates an AggregateStep.
func NewAggregateStep() *AggregateStep {
	return &AggregateStep{}
}

// Name returns the step name.
func (s *AggregateStep) Name() string { return "aggregate" }

// Do finalizes the scan result.
func (s *AggregateStep) Do(_ context.Context, result *model.ScanResult) error {
	result.MergeFindings()
	result.Risk = risk.Assess(
		len(result.MalwareFindings),
		len(result.PrivacyIssues),
		len(result.LinkFindings),
	)
	result.BuildSummary()
	return nil
}
