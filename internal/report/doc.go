// Package report renders scan results for humans and tools.
// Three formats are provided: compact or indented JSON for integration,
// Markdown for sharing, and plain text for the terminal. All formats
// render the same ScanResult; no writer recomputes findings.
package report
