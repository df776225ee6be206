// Package server exposes the scan pipeline over HTTP. One endpoint
// accepts multipart document uploads and returns the full scan result
// as JSON; health and metrics endpoints support operation behind a load
// balancer. Scan results exist only in the response, never on disk.
package server
