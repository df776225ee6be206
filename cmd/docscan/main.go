// Package main provides the entry point for the docscan CLI.
//
// docscan analyzes uploaded documents (PDF and Word) for embedded
// personal information, suspicious links, and malware heuristics,
// producing a bounded risk score per document.
//
// Usage:
//
//	docscan scan <file> [<file>...]
//	docscan serve
//
// See --help for all available options.
package main

// main is the entry point for docscan.
func main() {
	Execute()
}
