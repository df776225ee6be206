package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vigyantra/docscan/internal/model"
)

// Recognized media types. The declared media type of an upload decides
// the extraction path; the filename is never consulted.
const (
	// MediaTypePDF is the PDF media type.
	MediaTypePDF = "application/pdf"

	// MediaTypeLegacyWord is the legacy Microsoft Word media type.
	// Uploads declared with this type are routed through the OOXML
	// extractor; genuinely pre-OOXML binaries fail the extraction chain.
	MediaTypeLegacyWord = "application/msword"

	// MediaTypeWordXML is the OOXML word-processing media type.
	MediaTypeWordXML = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// SupportedMediaType reports whether the declared media type is one of
// the recognized document formats.
func SupportedMediaType(mediaType string) bool {
	switch mediaType {
	case MediaTypePDF, MediaTypeLegacyWord, MediaTypeWordXML:
		return true
	default:
		return false
	}
}

// Extractor converts raw document bytes into an ExtractedDocument.
// An Extractor is stateless apart from its compiled patterns and
// strategy chain; one instance is safe for concurrent scans.
type Extractor struct {
	// pdfStrategies is the ordered PDF extraction chain. Strategies are
	// tried in sequence; the first success wins.
	pdfStrategies []pdfStrategy

	// patterns are the compiled content-analysis patterns.
	patterns contentPatterns

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger for the extractor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor with the default strategy chain.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		pdfStrategies: []pdfStrategy{
			&textLayerStrategy{},
			&rawStreamStrategy{},
		},
		patterns: newContentPatterns(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Extract converts the given document bytes into an ExtractedDocument.
// It fails with ErrUnsupportedFormat for unrecognized media types and
// ErrExtractionFailed when every strategy for a recognized format has
// been exhausted. Metadata is best-effort: missing fields are empty,
// never an error.
func (e *Extractor) Extract(ctx context.Context, content []byte, mediaType string) (*model.ExtractedDocument, error) {
	var (
		text string
		meta model.Metadata
		err  error
	)

	switch mediaType {
	case MediaTypePDF:
		text, meta, err = e.extractPDF(ctx, content)
	case MediaTypeLegacyWord, MediaTypeWordXML:
		text, meta, err = extractWord(content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, mediaType)
	}
	if err != nil {
		return nil, err
	}

	return e.analyze(text, meta), nil
}

// extractPDF runs the PDF strategy chain. Each strategy is tried in
// order; only the failure of the final strategy surfaces.
func (e *Extractor) extractPDF(ctx context.Context, content []byte) (string, model.Metadata, error) {
	var lastErr error

	for _, strategy := range e.pdfStrategies {
		select {
		case <-ctx.Done():
			return "", model.Metadata{}, ctx.Err()
		default:
		}

		text, meta, err := runStrategy(strategy, content)
		if err != nil {
			e.logger.Debug("pdf extraction strategy failed",
				"strategy", strategy.Name(),
				"error", err,
			)
			lastErr = err
			continue
		}

		e.logger.Debug("pdf extraction strategy succeeded",
			"strategy", strategy.Name(),
			"characters", len(text),
		)
		return text, meta, nil
	}

	return "", model.Metadata{}, fmt.Errorf("%w: %v", ErrExtractionFailed, lastErr)
}

// runStrategy invokes one strategy with panic containment. The PDF
// parser panics on some malformed cross-reference tables; a panic in one
// strategy must not prevent the fallback from running.
func runStrategy(s pdfStrategy, content []byte) (text string, meta model.Metadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s strategy panicked: %v", s.Name(), r)
		}
	}()
	return s.Extract(content)
}

// pdfStrategy is one member of the ordered PDF extraction chain.
type pdfStrategy interface {
	// Name returns the strategy name for logging.
	Name() string

	// Extract attempts to pull text and metadata out of the document.
	// An empty text result is treated as failure by returning an error.
	Extract(content []byte) (string, model.Metadata, error)
}
