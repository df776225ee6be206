package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the scan service.
// A dedicated registry keeps the /metrics output limited to what this
// service exports.
type Metrics struct {
	registry *prometheus.Registry

	// ScansTotal counts completed scans by outcome ("ok", "client_error",
	// "server_error") and risk level ("low", "medium", "high", "none").
	ScansTotal *prometheus.CounterVec

	// ScanDuration observes end-to-end scan latency in seconds.
	ScanDuration prometheus.Histogram

	// UploadBytes observes uploaded file sizes.
	UploadBytes prometheus.Histogram
}

// NewMetrics creates and registers the scan service metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ScansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docscan",
			Name:      "scans_total",
			Help:      "Completed scans by outcome and risk level.",
		}, []string{"outcome", "risk_level"}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "docscan",
			Name:      "scan_duration_seconds",
			Help:      "End-to-end scan latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		UploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "docscan",
			Name:      "upload_bytes",
			Help:      "Uploaded file sizes in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
	}

	m.registry.MustRegister(m.ScansTotal, m.ScanDuration, m.UploadBytes)

	return m
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
