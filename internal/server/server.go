package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vigyantra/docscan/internal/config"
	"github.com/vigyantra/docscan/internal/pipeline"
)

// Server exposes the scan pipeline over HTTP.
//
// Design decision: The server holds a pipeline factory rather than a
// pipeline instance. Every request gets a fresh pipeline, so request
// state can never leak between concurrent scans, mirroring how batch
// processing isolates scans from each other.
type Server struct {
	// cfg holds the validated service configuration.
	cfg *config.Config

	// newPipeline creates a fresh pipeline for each scan request.
	newPipeline func() *pipeline.Pipeline

	// metrics is the Prometheus instrumentation.
	metrics *Metrics

	// logger for structured logging.
	logger *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets a custom logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics sets custom metrics instrumentation.
func WithMetrics(m *Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// New creates a Server around the given configuration and pipeline
// factory.
func New(cfg *config.Config, newPipeline func() *pipeline.Pipeline, opts ...ServerOption) *Server {
	s := &Server{
		cfg:         cfg,
		newPipeline: newPipeline,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Handler returns the complete HTTP handler with all routes and
// middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /scan", s.handleScan)
	mux.Handle("GET /metrics", s.metrics.Handler())

	return s.withCORS(s.withRequestLog(mux))
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully. In-flight scans get a grace period to finish.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ServeAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.ServeAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ScanTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// withCORS allows browser clients on any origin to call the API.
// The service carries no credentials or cookies, so a wildcard origin
// does not widen what an attacker could already do with curl.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRequestLog logs one line per request.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start),
		)
	})
}
