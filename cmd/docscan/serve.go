package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vigyantra/docscan/internal/config"
	"github.com/vigyantra/docscan/internal/server"
)

// Environment variable names read by the serve command.
// Flags take precedence over the environment.
const (
	envServeAddr     = "DOCSCAN_ADDR"
	envMaxUploadSize = "DOCSCAN_MAX_UPLOAD_SIZE"
	envScanTimeout   = "DOCSCAN_SCAN_TIMEOUT"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the document scanning HTTP service",
		Long: `Run an HTTP service that scans uploaded documents.

Endpoints:
  POST /scan      Scan a multipart document upload ('file' form field)
  GET  /healthz   Liveness check
  GET  /metrics   Prometheus metrics

Configuration is read from flags, then from the environment (a .env
file in the working directory is loaded if present):
  DOCSCAN_ADDR              Listen address (default ` + config.DefaultServeAddr + `)
  DOCSCAN_MAX_UPLOAD_SIZE   Maximum upload size in bytes
  DOCSCAN_SCAN_TIMEOUT      Per-scan timeout (Go duration, e.g. 30s)`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringP("addr", "a", "", "Listen address (overrides DOCSCAN_ADDR)")

	return cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, _ []string) error {
	// A missing .env file is not an error; the environment may be set
	// directly by the process manager.
	_ = godotenv.Load()

	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, newScanPipeline(cfg), server.WithServerLogger(slog.Default()))
	return srv.Run(ctx)
}

// buildServeConfig assembles the service configuration from flags and
// the environment.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.Verbose = getVerboseFlag(cmd)

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return nil, fmt.Errorf("failed to get addr flag: %w", err)
	}
	switch {
	case addr != "":
		cfg.ServeAddr = addr
	case os.Getenv(envServeAddr) != "":
		cfg.ServeAddr = os.Getenv(envServeAddr)
	}

	if v := os.Getenv(envMaxUploadSize); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envMaxUploadSize, err)
		}
		cfg.MaxUploadSize = size
	}

	if v := os.Getenv(envScanTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envScanTimeout, err)
		}
		cfg.ScanTimeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
