package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoTarget is returned when the scan command receives no file paths.
	ErrNoTarget = errors.New("no target specified: provide at least one document path")

	// ErrInvalidProbeTimeout is returned when the probe timeout is not positive.
	// A timeout of zero or negative would fail every reachability probe.
	ErrInvalidProbeTimeout = errors.New("invalid probe timeout: must be positive")

	// ErrInvalidProbeConcurrency is returned when the probe concurrency is
	// not positive. Zero concurrency would deadlock the link scanner.
	ErrInvalidProbeConcurrency = errors.New("invalid probe concurrency: must be positive")

	// ErrInvalidMaxUploadSize is returned when the upload size limit is not
	// positive.
	ErrInvalidMaxUploadSize = errors.New("invalid max upload size: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent scans, effectively
	// stopping the scanning process.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
