package extract

import "errors"

// Extraction errors.
// Both are terminal for the scan that hit them: neither is retried.
// Callers distinguish them with errors.Is to map onto the right HTTP
// status at the boundary.
var (
	// ErrUnsupportedFormat is returned when the declared media type is
	// not one of the recognized PDF or word-processor types.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtractionFailed is returned when every extraction strategy for
	// a recognized format has been exhausted.
	ErrExtractionFailed = errors.New("document extraction failed")
)
