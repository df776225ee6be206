// Package scanner contains the three scanners that examine an extracted
// document: the privacy scanner (personal information categories), the
// link scanner (domain reputation and liveness probes), and the heuristic
// scanner (embedded executables, active document content, obfuscation).
//
// Scanners are independent: each consumes the same immutable Target and
// produces its own Result. A scanner failure is isolated by the pipeline
// and never aborts a scan, so scanners report genuinely exceptional
// conditions as errors and everything else as findings.
package scanner
