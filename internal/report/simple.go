package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vigyantra/docscan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the scan result in human-readable format.
func (w *SimpleWriter) Write(result *model.ScanResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeRisk(&sb, result)
	w.writeVulnerabilities(&sb, result)
	w.writePrivacyIssues(&sb, result)
	w.writeScanErrors(&sb, result)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.ScanResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      DOCUMENT SCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Filename:     %s\n", result.Filename)
	fmt.Fprintf(sb, "Scan ID:      %s\n", result.ScanID)
	fmt.Fprintf(sb, "Content Type: %s\n", result.ContentType)
	fmt.Fprintf(sb, "File Size:    %d bytes\n", result.FileSize)
	fmt.Fprintf(sb, "Scan Date:    %s\n", result.ScanDate.Format("2006-01-02 15:04:05 MST"))

	if w.verbose {
		fmt.Fprintf(sb, "Digest:       %s\n", result.Digest)
	}

	if len(result.ScanErrors) > 0 {
		sb.WriteString("Status:       Completed with scanner errors\n")
	} else {
		sb.WriteString("Status:       Complete\n")
	}

	sb.WriteString("\n")
}

// writeRisk writes the risk assessment section.
func (w *SimpleWriter) writeRisk(sb *strings.Builder, result *model.ScanResult) {
	if result.Risk == nil {
		return
	}

	sb.WriteString("RISK ASSESSMENT\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	fmt.Fprintf(sb, "Risk Level: %s\n", strings.ToUpper(result.Risk.Level.String()))
	fmt.Fprintf(sb, "Risk Score: %d / 100\n", result.Risk.Score)
	fmt.Fprintf(sb, "  Malware:  %d\n", result.Risk.Breakdown.Malware)
	fmt.Fprintf(sb, "  Privacy:  %d\n", result.Risk.Breakdown.Privacy)
	fmt.Fprintf(sb, "  Links:    %d\n", result.Risk.Breakdown.Links)
	sb.WriteString("\n")
}

// writeVulnerabilities writes the vulnerability findings section.
func (w *SimpleWriter) writeVulnerabilities(sb *strings.Builder, result *model.ScanResult) {
	if len(result.Vulnerabilities) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString("VULNERABILITIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if len(result.Vulnerabilities) == 0 {
		sb.WriteString("None detected.\n\n")
		return
	}

	for i, v := range result.Vulnerabilities {
		fmt.Fprintf(sb, "%d. [%s] %s\n", i+1, strings.ToUpper(v.Severity.String()), v.Description)
		if v.Details != "" {
			fmt.Fprintf(sb, "   Details: %s\n", v.Details)
		}
		if w.verbose && v.Recommendation != "" {
			fmt.Fprintf(sb, "   Recommendation: %s\n", v.Recommendation)
		}
	}
	sb.WriteString("\n")
}

// writePrivacyIssues writes the privacy findings section.
// Example matches are never included in terminal output; counts and
// categories are enough to act on.
func (w *SimpleWriter) writePrivacyIssues(sb *strings.Builder, result *model.ScanResult) {
	if len(result.PrivacyIssues) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString("PRIVACY ISSUES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	if len(result.PrivacyIssues) == 0 {
		sb.WriteString("None detected.\n\n")
		return
	}

	fmt.Fprintf(sb, "Overall privacy risk: %s\n\n", strings.ToUpper(result.PrivacyRisk.String()))
	for _, issue := range result.PrivacyIssues {
		fmt.Fprintf(sb, "- %s: %d occurrence(s), risk %s\n",
			categoryLabel(issue.Type), issue.Count, issue.RiskLevel.String())
		if w.verbose && issue.Recommendation != "" {
			fmt.Fprintf(sb, "  %s\n", issue.Recommendation)
		}
	}
	sb.WriteString("\n")
}

// writeScanErrors writes non-fatal scanner failures.
func (w *SimpleWriter) writeScanErrors(sb *strings.Builder, result *model.ScanResult) {
	if len(result.ScanErrors) == 0 {
		return
	}

	sb.WriteString("SCAN ERRORS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	for _, msg := range result.ScanErrors {
		fmt.Fprintf(sb, "- %s\n", msg)
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
