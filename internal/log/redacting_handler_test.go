package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestRedactingHandlerKeys tests redaction by attribute key.
func TestRedactingHandlerKeys(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"ssn key", "ssn", "123-45-6789"},
		{"example key", "example", "john@doe.example"},
		{"credit card key", "credit_card", "4111 1111 1111 1111"},
		{"authorization header", "authorization", "Bearer abc"},
		{"password keyword", "db_password", "hunter2"},
		{"token keyword", "probe_token", "xyz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test", tc.key, tc.value)

			out := buf.String()
			if strings.Contains(out, tc.value) {
				t.Errorf("output contains raw value %q: %s", tc.value, out)
			}
			if !strings.Contains(out, MaskValue) {
				t.Errorf("output missing mask: %s", out)
			}
		})
	}
}

// TestRedactingHandlerValues tests redaction by value pattern regardless
// of key name.
func TestRedactingHandlerValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value string
	}{
		{"ssn shaped value", "123-45-6789"},
		{"card shaped value", "4111-1111-1111-1111"},
		{"email value", "jane@corp.example"},
		{"bearer token", "Bearer eyJhbGciOi"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test", "detail", tc.value)

			if strings.Contains(buf.String(), tc.value) {
				t.Errorf("output contains raw value %q: %s", tc.value, buf.String())
			}
		})
	}
}

// TestRedactingHandlerPassthrough tests that harmless attributes survive.
func TestRedactingHandlerPassthrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("scan complete", "filename", "resume.pdf", "score", 40)

	out := buf.String()
	if !strings.Contains(out, "resume.pdf") {
		t.Errorf("harmless attribute was redacted: %s", out)
	}
	if !strings.Contains(out, "score=40") {
		t.Errorf("numeric attribute was altered: %s", out)
	}
}

// TestRedactingHandlerGroups tests recursive redaction inside groups.
func TestRedactingHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("match", slog.Group("privacy",
		slog.String("category", "ssn"),
		slog.String("example", "123-45-6789"),
	))

	out := buf.String()
	if strings.Contains(out, "123-45-6789") {
		t.Errorf("group attribute leaked: %s", out)
	}
	if !strings.Contains(out, "category=ssn") {
		t.Errorf("harmless group attribute was redacted: %s", out)
	}
}

// TestNewRedactingLogger tests the level switch.
func TestNewRedactingLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewRedactingLogger(&buf, false)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output present without verbose: %s", buf.String())
	}

	verbose := NewRedactingLogger(&buf, true)
	verbose.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug output missing in verbose mode")
	}
}
