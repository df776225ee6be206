package scanner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dsoprea/go-exif/v3"

	"github.com/vigyantra/docscan/internal/model"
)

// Finding types produced by the heuristic scanner.
const (
	vulnTypeEmbeddedExecutable = "embedded_executable"
	vulnTypeActiveContent      = "active_content"
	vulnTypeMacro              = "macro_content"
	vulnTypeObfuscation        = "obfuscated_content"
	vulnTypeLocationMetadata   = "embedded_location_metadata"
)

// executableMagics are file signatures of executable formats that have
// no business inside a document upload.
var executableMagics = []struct {
	magic []byte
	name  string
}{
	{[]byte{0x4D, 0x5A}, "Windows executable (MZ)"},
	{[]byte{0x7F, 0x45, 0x4C, 0x46}, "ELF executable"},
	{[]byte{0xCA, 0xFE, 0xBA, 0xBE}, "Mach-O universal binary"},
}

// pdfActionMarkers are PDF name objects that trigger code execution or
// payload delivery when the document is opened.
var pdfActionMarkers = []struct {
	marker []byte
	label  string
}{
	{[]byte("/JavaScript"), "JavaScript action"},
	{[]byte("/JS"), "JavaScript action (abbreviated)"},
	{[]byte("/OpenAction"), "automatic open action"},
	{[]byte("/Launch"), "external program launch"},
	{[]byte("/EmbeddedFile"), "embedded file attachment"},
}

// macroMarker is the OOXML part name that holds VBA macros.
var macroMarker = []byte("vbaProject.bin")

// obfuscationPatterns detect script obfuscation techniques commonly used
// to hide payloads in document content. Kept ordered so findings are
// deterministic.
var obfuscationPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	// Dynamic code evaluation
	{"eval_call", regexp.MustCompile(`(?i)\beval\s*\(`)},

	// Legacy escape decoding
	{"unescape_call", regexp.MustCompile(`(?i)\bunescape\s*\(`)},

	// Character-code string assembly
	{"char_code_assembly", regexp.MustCompile(`String\.fromCharCode`)},

	// Long base64 blobs
	{"base64_blob", regexp.MustCompile(`[A-Za-z0-9+/]{120,}={0,2}`)},
}

// HeuristicScanner inspects the raw uploaded bytes for signals that a
// document carries executable or hidden content. There is no signature
// database and no sandbox; everything here is a static heuristic.
//
// Design decision: The scanner never returns an error for content it
// cannot interpret. A benign document must always scan clean, and a
// malformed region of the file simply contributes no findings.
type HeuristicScanner struct {
	// logger for structured logging.
	logger *slog.Logger
}

// HeuristicOption configures a HeuristicScanner.
type HeuristicOption func(*HeuristicScanner)

// WithHeuristicLogger sets a custom logger.
func WithHeuristicLogger(logger *slog.Logger) HeuristicOption {
	return func(s *HeuristicScanner) {
		s.logger = logger
	}
}

// NewHeuristicScanner creates a HeuristicScanner.
func NewHeuristicScanner(opts ...HeuristicOption) *HeuristicScanner {
	s := &HeuristicScanner{}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Name returns the scanner name.
func (s *HeuristicScanner) Name() string {
	return "heuristic"
}

// Scan runs every heuristic check against the raw content.
func (s *HeuristicScanner) Scan(ctx context.Context, target *Target) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	findings := make([]model.Vulnerability, 0)
	findings = append(findings, s.checkExecutableMagic(target.Content)...)
	findings = append(findings, s.checkPDFActions(target.Content)...)
	findings = append(findings, s.checkMacros(target.Content)...)
	findings = append(findings, s.checkObfuscation(target.Content)...)
	findings = append(findings, s.checkLocationMetadata(target.Content)...)

	s.logger.Debug("heuristic scan complete", "findings", len(findings))

	return &Result{Vulnerabilities: findings}, nil
}

// checkExecutableMagic flags content starting with an executable file
// signature.
func (s *HeuristicScanner) checkExecutableMagic(content []byte) []model.Vulnerability {
	var findings []model.Vulnerability
	for _, m := range executableMagics {
		if bytes.HasPrefix(content, m.magic) {
			findings = append(findings, model.Vulnerability{
				Type:           vulnTypeEmbeddedExecutable,
				Severity:       model.SeverityHigh,
				Description:    "File content begins with an executable signature",
				Details:        fmt.Sprintf("signature matches %s", m.name),
				Recommendation: "Do not open this file. The upload is an executable disguised as a document.",
			})
		}
	}
	return findings
}

// checkPDFActions flags PDF action markers that execute code or deliver
// payloads on open.
func (s *HeuristicScanner) checkPDFActions(content []byte) []model.Vulnerability {
	var findings []model.Vulnerability
	hasJavaScript := bytes.Contains(content, []byte("/JavaScript"))
	for _, m := range pdfActionMarkers {
		// /JS is a substring of /JavaScript; report only one of the two.
		if string(m.marker) == "/JS" && hasJavaScript {
			continue
		}
		if bytes.Contains(content, m.marker) {
			findings = append(findings, model.Vulnerability{
				Type:           vulnTypeActiveContent,
				Severity:       model.SeverityHigh,
				Description:    fmt.Sprintf("Document contains a PDF %s", m.label),
				Details:        fmt.Sprintf("marker %s present in document structure", m.marker),
				Recommendation: "Open only in a sandboxed viewer with scripting disabled, or regenerate the document from a trusted source.",
			})
		}
	}
	return findings
}

// checkMacros flags OOXML packages that carry a VBA macro project.
func (s *HeuristicScanner) checkMacros(content []byte) []model.Vulnerability {
	if !bytes.Contains(content, macroMarker) {
		return nil
	}
	return []model.Vulnerability{{
		Type:           vulnTypeMacro,
		Severity:       model.SeverityHigh,
		Description:    "Document contains an embedded VBA macro project",
		Details:        "package carries a vbaProject.bin part",
		Recommendation: "Macros execute code on open. Request a macro-free copy of the document.",
	}}
}

// checkObfuscation flags script obfuscation techniques in the raw bytes.
func (s *HeuristicScanner) checkObfuscation(content []byte) []model.Vulnerability {
	var findings []model.Vulnerability
	for _, p := range obfuscationPatterns {
		if p.pattern.Match(content) {
			findings = append(findings, model.Vulnerability{
				Type:           vulnTypeObfuscation,
				Severity:       model.SeverityMedium,
				Description:    "Document contains content matching a script obfuscation pattern",
				Details:        fmt.Sprintf("pattern %s matched", p.name),
				Recommendation: "Inspect the document source. Obfuscated script content is rarely legitimate in a document.",
			})
		}
	}
	return findings
}

// checkLocationMetadata flags GPS coordinates in embedded image EXIF
// data. The EXIF library panics on some malformed blobs; the recover
// keeps a damaged image from aborting the scan.
func (s *HeuristicScanner) checkLocationMetadata(content []byte) (findings []model.Vulnerability) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("exif extraction panicked", "panic", r)
			findings = nil
		}
	}()

	rawExif, err := exif.SearchAndExtractExif(content)
	if err != nil {
		return nil
	}

	tags, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil
	}

	for _, tag := range tags {
		if tag.TagName == "GPSLatitude" || tag.TagName == "GPSLongitude" {
			return []model.Vulnerability{{
				Type:           vulnTypeLocationMetadata,
				Severity:       model.SeverityMedium,
				Description:    "An embedded image carries GPS coordinates in its metadata",
				Details:        "EXIF GPS tags present in embedded image data",
				Recommendation: "Strip image metadata before sharing. Embedded coordinates can reveal a home address.",
			}}
		}
	}

	return nil
}
