package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen to keep a single scan's latency close to one
// probe timeout while staying gentle on remote servers.
const (
	// DefaultProbeTimeout bounds each URL reachability probe. Five seconds
	// matches typical HEAD-request latency budgets: long enough for slow
	// sites, short enough that an unreachable host doesn't stall the scan.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultProbeConcurrency is the number of URL probes allowed in
	// flight at once within a single scan. Documents rarely contain more
	// than a handful of links; eight keeps total link-scan latency near
	// the single-probe timeout without bursting connections.
	DefaultProbeConcurrency = 8

	// DefaultMaxUploadSize limits uploaded document size. 10MB covers
	// virtually all resumes and reports while preventing memory
	// exhaustion from oversized uploads.
	DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB

	// DefaultBatchSize is the number of concurrent document scans when the
	// CLI processes multiple files. Scans are mostly CPU-bound apart from
	// link probing, so a small number is sufficient.
	DefaultBatchSize = 4

	// DefaultScanTimeout bounds one end-to-end scan, including all link
	// probes. Generous relative to the probe timeout because extraction
	// of large PDFs can take a few seconds on its own.
	DefaultScanTimeout = 60 * time.Second

	// DefaultServeAddr is the listen address for the HTTP service.
	DefaultServeAddr = ":8080"

	// DefaultUserAgent identifies docscan in outbound probe requests.
	// A descriptive User-Agent lets operators identify scanner traffic.
	DefaultUserAgent = "docscan/1.0 (+https://github.com/vigyantra/docscan)"

	// DefaultExampleLimit is the number of raw matches reported per
	// privacy category.
	DefaultExampleLimit = 3

	// AppName is the application name used for XDG directory paths.
	AppName = "docscan"
)

// Config holds all configuration options for docscan.
// This struct is populated from CLI flags (or server environment) and
// passed through the application via dependency injection rather than
// global state.
type Config struct {
	// ProbeTimeout is the timeout applied independently to each URL
	// reachability probe.
	ProbeTimeout time.Duration

	// ProbeConcurrency is the maximum number of concurrent URL probes
	// within one scan.
	ProbeConcurrency int

	// MaxUploadSize is the maximum accepted document size in bytes.
	MaxUploadSize int64

	// ScanTimeout bounds one end-to-end scan.
	ScanTimeout time.Duration

	// BatchSize is the number of concurrent scans when processing
	// multiple files from the CLI.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only info and above are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file instead of stdout. Directories are
	// created automatically if they don't exist.
	ReportFile string

	// ListsFilePath is the path to the optional YAML file extending the
	// domain reputation lists. If empty, the tool searches for .docscan
	// in the current directory and then in the user's home directory.
	ListsFilePath string

	// Lists holds the domain reputation lists used by the link scanner.
	Lists Lists

	// ServeAddr is the listen address for the serve command.
	ServeAddr string

	// UserAgent is the User-Agent header sent with probe requests.
	UserAgent string

	// Targets is the list of file paths to scan (CLI mode).
	Targets []string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
func NewConfig() *Config {
	return &Config{
		ProbeTimeout:     DefaultProbeTimeout,
		ProbeConcurrency: DefaultProbeConcurrency,
		MaxUploadSize:    DefaultMaxUploadSize,
		ScanTimeout:      DefaultScanTimeout,
		BatchSize:        DefaultBatchSize,
		ServeAddr:        DefaultServeAddr,
		UserAgent:        DefaultUserAgent,
		Lists:            DefaultLists(),
	}
}

// Validate checks the configuration for invalid values.
// It returns a sentinel error describing the first problem found.
func (c *Config) Validate() error {
	if c.ProbeTimeout <= 0 {
		return ErrInvalidProbeTimeout
	}
	if c.ProbeConcurrency <= 0 {
		return ErrInvalidProbeConcurrency
	}
	if c.MaxUploadSize <= 0 {
		return ErrInvalidMaxUploadSize
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// DefaultReportDir returns the default directory for report files,
// following the XDG base directory specification
// (~/.local/share/docscan on Linux).
func DefaultReportDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
