package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vigyantra/docscan/internal/config"
	"github.com/vigyantra/docscan/internal/extract"
	"github.com/vigyantra/docscan/internal/log"
	"github.com/vigyantra/docscan/internal/model"
	"github.com/vigyantra/docscan/internal/pipeline"
	"github.com/vigyantra/docscan/internal/report"
	"github.com/vigyantra/docscan/internal/scanner"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file> [<file>...]",
		Short: "Scan one or more documents",
		Long: `Scan PDF or Word documents for security and privacy risks.

Each document is extracted, analyzed by the malware, privacy, and link
scanners, and scored. Multiple files are scanned concurrently.

Examples:
  # Scan a single document
  docscan scan resume.pdf

  # Scan several documents with a JSON report written to a file
  docscan scan -j -o reports/batch.json uploads/*.docx

  # Extend the domain reputation lists from a custom file
  docscan scan -c ./company.docscan contract.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}

	cmd.Flags().BoolP("json", "j", false, "Output report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false, "Output report in Markdown format")
	cmd.Flags().StringP("output", "o", "", "Write report to file instead of stdout")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize, "Number of concurrent scans")
	cmd.Flags().Duration("probe-timeout", config.DefaultProbeTimeout, "Timeout for each URL liveness probe")
	cmd.Flags().StringP("config", "c", "", "Path to domain lists file (default: .docscan in cwd or home)")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	setupLogger(cfg)

	// Cancel on SIGINT/SIGTERM so in-flight probes stop promptly.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	writer, closer, err := reportWriter(cfg)
	if err != nil {
		return err
	}
	defer closer()

	if len(cfg.Targets) == 1 {
		return runSingleScan(ctx, cfg, cfg.Targets[0], writer)
	}
	return runBatchScan(ctx, cfg, writer)
}

// buildConfig assembles the configuration from command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if len(args) == 0 {
		return nil, config.ErrNoTarget
	}

	cfg := config.NewConfig()
	cfg.Targets = args

	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, fmt.Errorf("failed to get json flag: %w", err)
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, fmt.Errorf("failed to get markdown flag: %w", err)
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, fmt.Errorf("failed to get output flag: %w", err)
	}
	if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
		return nil, fmt.Errorf("failed to get batch flag: %w", err)
	}
	if cfg.ProbeTimeout, err = cmd.Flags().GetDuration("probe-timeout"); err != nil {
		return nil, fmt.Errorf("failed to get probe-timeout flag: %w", err)
	}
	if cfg.ListsFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	if err := loadLists(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getVerboseFlag reads the persistent verbose flag defined on the root
// command. It returns false when the command has no parent, which
// happens when a subcommand is constructed standalone.
func getVerboseFlag(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("verbose")
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup("verbose")
	}
	if flag == nil {
		return false
	}
	return flag.Value.String() == "true"
}

// loadLists resolves and applies the optional domain lists file.
// An explicitly specified path that does not exist is an error; the
// implicit search locations are allowed to be absent.
func loadLists(cfg *config.Config) error {
	found := config.FindListsFile(cfg.ListsFilePath)
	if found == "" {
		if cfg.ListsFilePath != "" {
			return fmt.Errorf("%w: %s", config.ErrListsFileNotFound, cfg.ListsFilePath)
		}
		return nil
	}

	f, err := config.LoadListsFile(found)
	if err != nil {
		return fmt.Errorf("failed to load lists file %s: %w", found, err)
	}

	cfg.Lists = config.DefaultLists().Merge(f.Lists)
	return nil
}

// setupLogger configures the default structured logger.
// All log output goes to stderr so stdout stays clean for reports, and
// every record passes through the redacting handler so extracted
// personal data never reaches the log stream.
func setupLogger(cfg *config.Config) {
	slog.SetDefault(log.NewRedactingLogger(os.Stderr, cfg.Verbose))
}

// newScanPipeline builds the standard five-step scan pipeline with the
// configured scanners.
func newScanPipeline(cfg *config.Config) func() *pipeline.Pipeline {
	return func() *pipeline.Pipeline {
		p := pipeline.New()
		p.AddSteps(
			pipeline.NewExtractStep(extract.New()),
			pipeline.NewMalwareScanStep(scanner.NewHeuristicScanner()),
			pipeline.NewPrivacyScanStep(scanner.NewPrivacyScanner()),
			pipeline.NewLinkScanStep(scanner.NewLinkScanner(
				scanner.WithLists(cfg.Lists),
				scanner.WithProbeTimeout(cfg.ProbeTimeout),
				scanner.WithProbeConcurrency(cfg.ProbeConcurrency),
				scanner.WithUserAgent(cfg.UserAgent),
			)),
			pipeline.NewAggregateStep(),
		)
		return p
	}
}

// runSingleScan scans one file and writes its report.
func runSingleScan(ctx context.Context, cfg *config.Config, path string, writer report.Writer) error {
	upload, err := readUpload(path)
	if err != nil {
		return err
	}

	result := model.NewScanResult(upload.Filename, upload.ContentType, upload.Content)
	if err := newScanPipeline(cfg)().Execute(ctx, result); err != nil {
		return fmt.Errorf("scan of %s failed: %w", path, err)
	}

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// runBatchScan scans all target files concurrently, streaming each
// report as its scan finishes.
func runBatchScan(ctx context.Context, cfg *config.Config, writer report.Writer) error {
	uploads := make([]pipeline.Upload, 0, len(cfg.Targets))
	for _, path := range cfg.Targets {
		upload, err := readUpload(path)
		if err != nil {
			return err
		}
		uploads = append(uploads, upload)
	}

	processor := pipeline.NewBatchProcessor(
		newScanPipeline(cfg),
		pipeline.WithConcurrency(cfg.BatchSize),
	)

	// The callback runs from multiple scan goroutines; serialize writes
	// so reports don't interleave.
	var mu sync.Mutex
	var failed int
	err := processor.ProcessBatchWithCallback(ctx, uploads, func(result *model.ScanResult, _ int) {
		mu.Lock()
		defer mu.Unlock()

		if result.Risk == nil {
			failed++
			slog.Error("scan failed", "filename", result.Filename, "errors", strings.Join(result.ScanErrors, "; "))
		}
		if _, err := writer.Write(result); err != nil {
			slog.Error("failed to write report", "filename", result.Filename, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("batch scan failed: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scans failed", failed, len(uploads))
	}
	return nil
}

// readUpload reads a target file and determines its media type from the
// file extension.
func readUpload(path string) (pipeline.Upload, error) {
	mediaType, err := mediaTypeForPath(path)
	if err != nil {
		return pipeline.Upload{}, err
	}

	content, err := os.ReadFile(path) //nolint:gosec // User-provided scan target is intentional
	if err != nil {
		return pipeline.Upload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return pipeline.Upload{
		Filename:    filepath.Base(path),
		ContentType: mediaType,
		Content:     content,
	}, nil
}

// mediaTypeForPath maps a file extension to the document media type.
func mediaTypeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.MediaTypePDF, nil
	case ".doc":
		return extract.MediaTypeLegacyWord, nil
	case ".docx":
		return extract.MediaTypeWordXML, nil
	default:
		return "", fmt.Errorf("%w: unrecognized extension on %s", extract.ErrUnsupportedFormat, path)
	}
}

// reportWriter builds the report writer selected by the configuration.
// The returned closer must be called after all reports are written.
func reportWriter(cfg *config.Config) (report.Writer, func(), error) {
	out, closer, err := reportOutput(cfg)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint()), closer, nil
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out), closer, nil
	default:
		return report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose)), closer, nil
	}
}

// reportOutput resolves the report destination. Stdout is used unless a
// report file is configured, in which case parent directories are
// created and the file is opened with owner-only permissions because
// reports describe personal data exposure.
func reportOutput(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open report file: %w", err)
	}

	closer := func() {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			slog.Error("failed to close report file", "path", cfg.ReportFile, "error", err)
		}
	}
	return f, closer, nil
}
