// Package pipeline orchestrates a document scan as an ordered sequence
// of steps sharing one accumulating ScanResult: extraction, the three
// scanners, then risk aggregation.
//
// Extraction is the only critical step; a scanner failure is recorded on
// the result and the remaining steps still run. BatchProcessor runs the
// same pipeline over many uploads with bounded concurrency.
package pipeline
