package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/vigyantra/docscan/internal/model"
)

// MarkdownWriter outputs scan results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the scan result in Markdown format.
func (w *MarkdownWriter) Write(result *model.ScanResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeRisk(md, result)
	w.writeVulnerabilities(md, result)
	w.writePrivacyIssues(md, result)
	w.writeURLSummary(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.ScanResult) {
	md.H1("Document Scan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Filename", "`" + result.Filename + "`"},
			{"Scan ID", "`" + result.ScanID + "`"},
			{"Content Type", result.ContentType},
			{"File Size", strconv.FormatInt(result.FileSize, 10) + " bytes"},
			{"Digest", "`" + result.Digest + "`"},
			{"Scan Date", result.ScanDate.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.statusText(result)},
		},
	})
	md.PlainText("")
}

// statusText returns the status text based on the result state.
func (w *MarkdownWriter) statusText(result *model.ScanResult) string {
	if len(result.ScanErrors) > 0 {
		return "⚠️ Completed with scanner errors"
	}
	return "✅ Complete"
}

// writeRisk writes the risk assessment section.
func (w *MarkdownWriter) writeRisk(md *markdown.Markdown, result *model.ScanResult) {
	md.H2("Risk Assessment")
	md.PlainText("")

	if result.Risk == nil {
		md.PlainText("No risk assessment available.")
		md.PlainText("")
		return
	}

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score"},
		Rows: [][]string{
			{"Malware Heuristics", strconv.Itoa(result.Risk.Breakdown.Malware)},
			{"Privacy Exposure", strconv.Itoa(result.Risk.Breakdown.Privacy)},
			{"Suspicious Links", strconv.Itoa(result.Risk.Breakdown.Links)},
			{"**Total**", "**" + strconv.Itoa(result.Risk.Score) + " / 100**"},
		},
	})
	md.PlainText("")

	if result.Risk.Score > 0 {
		w.writePieChart(md, result)
	}

	w.writeAlert(md, result)
}

// writePieChart writes a mermaid pie chart of the score breakdown.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *model.ScanResult) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Risk Score Breakdown"),
		piechart.WithShowData(true),
	)

	if result.Risk.Breakdown.Malware > 0 {
		chart.LabelAndIntValue("Malware", uint64(result.Risk.Breakdown.Malware))
	}
	if result.Risk.Breakdown.Privacy > 0 {
		chart.LabelAndIntValue("Privacy", uint64(result.Risk.Breakdown.Privacy))
	}
	if result.Risk.Breakdown.Links > 0 {
		chart.LabelAndIntValue("Links", uint64(result.Risk.Breakdown.Links))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert appropriate for the risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.ScanResult) {
	switch result.Risk.Level {
	case model.SeverityHigh:
		md.Cautionf(
			"High risk document (score %d). Do not distribute without remediation.",
			result.Risk.Score,
		)
	case model.SeverityMedium:
		md.Warningf(
			"Medium risk document (score %d). Review the findings below before sharing.",
			result.Risk.Score,
		)
	default:
		if len(result.Vulnerabilities) > 0 || len(result.PrivacyIssues) > 0 {
			md.Note("Low risk, but some findings were recorded. Review them below.")
		} else {
			md.Tip("No significant issues detected.")
		}
	}
	md.PlainText("")
}

// writeVulnerabilities writes all vulnerability findings grouped by
// severity.
func (w *MarkdownWriter) writeVulnerabilities(md *markdown.Markdown, result *model.ScanResult) {
	md.H2("Vulnerabilities")
	md.PlainText("")

	if len(result.Vulnerabilities) == 0 {
		md.PlainText("No vulnerabilities detected.")
		md.PlainText("")
		return
	}

	severities := []struct {
		level  model.Severity
		header string
	}{
		{model.SeverityHigh, "### 🔴 High"},
		{model.SeverityMedium, "### 🟡 Medium"},
		{model.SeverityLow, "### 🔵 Low"},
	}

	for _, sev := range severities {
		var findings []model.Vulnerability
		for _, v := range result.Vulnerabilities {
			if v.Severity == sev.level {
				findings = append(findings, v)
			}
		}
		if len(findings) == 0 {
			continue
		}

		md.PlainText(sev.header)
		md.PlainText("")
		w.writeVulnerabilityTable(md, findings)
	}
}

// writeVulnerabilityTable writes a table of findings with details.
func (w *MarkdownWriter) writeVulnerabilityTable(md *markdown.Markdown, findings []model.Vulnerability) {
	rows := make([][]string, len(findings))
	for i, f := range findings {
		details := f.Details
		if details == "" {
			details = "-"
		}
		rec := f.Recommendation
		if rec == "" {
			rec = "-"
		}

		rows[i] = []string{
			categoryLabel(f.Type),
			truncateString(f.Description, 60),
			truncateString(details, 50),
			truncateString(rec, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Type", "Description", "Details", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePrivacyIssues writes the privacy findings section.
// Example matches are intentionally omitted: a report file must not
// republish the personal data it warns about.
func (w *MarkdownWriter) writePrivacyIssues(md *markdown.Markdown, result *model.ScanResult) {
	md.H2("Privacy Issues")
	md.PlainText("")

	if len(result.PrivacyIssues) == 0 {
		md.PlainText("No personal information detected.")
		md.PlainText("")
		return
	}

	md.PlainTextf("Overall privacy risk: **%s**", result.PrivacyRisk.String())
	md.PlainText("")

	rows := make([][]string, len(result.PrivacyIssues))
	for i, issue := range result.PrivacyIssues {
		rows[i] = []string{
			categoryLabel(issue.Type),
			strconv.Itoa(issue.Count),
			issue.RiskLevel.String(),
			truncateString(issue.Recommendation, 70),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Count", "Risk", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeURLSummary writes the URL analysis section.
func (w *MarkdownWriter) writeURLSummary(md *markdown.Markdown, result *model.ScanResult) {
	if result.URLSummary == nil || result.URLSummary.TotalURLs == 0 {
		return
	}

	md.H2("URL Analysis")
	md.PlainText("")
	md.PlainTextf("%d URL(s) analyzed, %d flagged.",
		result.URLSummary.TotalURLs, result.URLSummary.SuspiciousURLs)
	md.PlainText("")
	md.BulletList(result.URLSummary.AnalyzedURLs...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by docscan*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
