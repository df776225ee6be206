package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/vigyantra/docscan/internal/extract"
	"github.com/vigyantra/docscan/internal/model"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// indexResponse describes the service for a GET on the root path.
type indexResponse struct {
	Service   string   `json:"service"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// handleIndex describes the service.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, indexResponse{
		Service:   "docscan",
		Status:    "ok",
		Endpoints: []string{"POST /scan", "GET /healthz", "GET /metrics"},
	})
}

// healthzResponse reports liveness and the available scanners.
type healthzResponse struct {
	Status    string    `json:"status"`
	Scanners  []string  `json:"scanners"`
	Timestamp time.Time `json:"timestamp"`
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthzResponse{
		Status:    "healthy",
		Scanners:  []string{"malware", "privacy", "link"},
		Timestamp: time.Now().UTC(),
	})
}

// handleScan accepts a multipart document upload, runs the scan
// pipeline, and returns the full scan result.
//
// Design decision: Error responses for server-side failures carry a
// generic message. Extraction internals (parser errors, file offsets)
// can leak details about the scanning stack, and the uploader cannot
// act on them anyway.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.failScan(w, http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
			return
		}
		s.failScan(w, http.StatusBadRequest, "multipart form field 'file' is required")
		return
	}
	defer file.Close()

	mediaType := header.Header.Get("Content-Type")
	if !extract.SupportedMediaType(mediaType) {
		s.failScan(w, http.StatusBadRequest, "unsupported document format: "+mediaType)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.failScan(w, http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
			return
		}
		s.failScan(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	s.metrics.UploadBytes.Observe(float64(len(content)))

	ctx := r.Context()
	cancel := func() {}
	if s.cfg.ScanTimeout > 0 {
		ctx, cancel = context.WithTimeout(r.Context(), s.cfg.ScanTimeout)
	}
	defer cancel()

	result := model.NewScanResult(header.Filename, mediaType, content)

	s.logger.Info("scan started",
		"scan_id", result.ScanID,
		"filename", result.Filename,
		"content_type", mediaType,
		"file_size", result.FileSize,
	)

	if err := s.newPipeline().Execute(ctx, result); err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat):
			s.failScan(w, http.StatusBadRequest, "unsupported document format")
		case errors.Is(err, extract.ErrExtractionFailed):
			s.failScan(w, http.StatusUnprocessableEntity, "document could not be parsed")
		default:
			s.logger.Error("scan failed",
				"scan_id", result.ScanID,
				"error", err,
			)
			s.failScan(w, http.StatusInternalServerError, "scan failed")
		}
		return
	}

	riskLevel := "none"
	if result.Risk != nil {
		riskLevel = result.Risk.Level.String()
	}
	s.metrics.ScansTotal.WithLabelValues("ok", riskLevel).Inc()
	s.metrics.ScanDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("scan completed",
		"scan_id", result.ScanID,
		"risk_level", riskLevel,
		"elapsed", time.Since(start),
	)

	s.writeJSON(w, http.StatusOK, result)
}

// failScan writes an error response and records the outcome metric.
func (s *Server) failScan(w http.ResponseWriter, status int, msg string) {
	outcome := "client_error"
	if status >= http.StatusInternalServerError {
		outcome = "server_error"
	}
	s.metrics.ScansTotal.WithLabelValues(outcome, "none").Inc()

	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeJSON writes a JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}
