// Package model defines the core data structures used throughout docscan.
//
// This package contains the following main types:
//   - ExtractedDocument: Text, metadata, and statistics extracted from a document
//   - Vulnerability: A single suspicious finding from the link or heuristic scanner
//   - PrivacyIssue: A single personal-information exposure from the privacy scanner
//   - RiskAssessment: The aggregated, bounded risk score and level
//   - ScanResult: The complete result of one scan, returned to the caller
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (extract, scanner, pipeline, report, server)
// need to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// for the HTTP scan response.
package model
