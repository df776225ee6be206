package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vigyantra/docscan/internal/model"
)

// Upload is one document queued for batch scanning.
type Upload struct {
	// Filename is the original filename, reported verbatim.
	Filename string

	// ContentType is the declared media type.
	ContentType string

	// Content is the raw file content.
	Content []byte
}

// BatchProcessor handles concurrent scanning of multiple uploads.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-scan execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each scan.
	// We use a factory to ensure each scan gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent scans.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed scan results.
	// Access is synchronized via mutex.
	results []*model.ScanResult
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent scans.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each scan to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak
// between scans and allows for per-scan customization if needed.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
		results:         make([]*model.ScanResult, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch scans multiple uploads concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each upload gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all results collected, in upload order, even for documents
// whose scan failed. The error return indicates cancellation.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, uploads []Upload) ([]*model.ScanResult, error) {
	bp.logger.Info("starting batch processing",
		"total_uploads", len(uploads),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*model.ScanResult, len(uploads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, upload := range uploads {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("scanning document",
				"filename", upload.Filename,
				"index", i+1,
				"total", len(uploads),
			)

			result := model.NewScanResult(upload.Filename, upload.ContentType, upload.Content)

			pipeline := bp.pipelineFactory()
			err := pipeline.Execute(ctx, result)

			// Store result regardless of error
			// The result carries the error information if the scan failed
			bp.mu.Lock()
			bp.results[i] = result
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("scan failed",
					"filename", upload.Filename,
					"scan_id", result.ScanID,
					"error", err,
				)
				// Don't return the error to the errgroup - other scans
				// should continue. The error is recorded on the result.
				return nil
			}

			bp.logger.Info("scan completed",
				"filename", upload.Filename,
				"scan_id", result.ScanID,
			)

			return nil
		})
	}

	err := g.Wait()

	elapsed := time.Since(startTime)
	bp.logger.Info("batch processing complete",
		"total_uploads", len(uploads),
		"elapsed", elapsed,
	)

	return bp.results, err
}

// ProcessBatchWithCallback scans multiple uploads and calls a callback
// for each completed scan. This is useful for streaming results.
//
// The callback receives the result and the index of the upload in the
// original slice. The callback is called from the goroutine that
// completed the scan, so it must be safe for concurrent use if it
// accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	uploads []Upload,
	callback func(result *model.ScanResult, index int),
) error {
	bp.logger.Info("starting batch processing with callback",
		"total_uploads", len(uploads),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, upload := range uploads {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := model.NewScanResult(upload.Filename, upload.ContentType, upload.Content)
			pipeline := bp.pipelineFactory()
			_ = pipeline.Execute(ctx, result) //nolint:errcheck // Error is stored on the result

			callback(result, i)

			return nil
		})
	}

	return g.Wait()
}
