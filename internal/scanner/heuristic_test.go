package scanner

import (
	"context"
	"strings"
	"testing"

	"github.com/vigyantra/docscan/internal/model"
)

// findByType returns the findings with the given type.
func findByType(findings []model.Vulnerability, vulnType string) []model.Vulnerability {
	var out []model.Vulnerability
	for _, f := range findings {
		if f.Type == vulnType {
			out = append(out, f)
		}
	}
	return out
}

// TestHeuristicScannerExecutableMagic tests executable signature detection.
func TestHeuristicScannerExecutableMagic(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content []byte
		want    int
	}{
		{"windows executable", []byte{0x4D, 0x5A, 0x90, 0x00}, 1},
		{"elf executable", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02}, 1},
		{"magic not at offset zero", append([]byte("prefix"), 0x4D, 0x5A), 0},
		{"plain document", []byte("%PDF-1.4 plain content"), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewHeuristicScanner().Scan(context.Background(), &Target{Content: tc.content})
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}

			got := findByType(result.Vulnerabilities, vulnTypeEmbeddedExecutable)
			if len(got) != tc.want {
				t.Errorf("executable findings = %+v, want %d", got, tc.want)
			}
			for _, f := range got {
				if f.Severity != model.SeverityHigh {
					t.Errorf("Severity = %v, want high", f.Severity)
				}
			}
		})
	}
}

// TestHeuristicScannerPDFActions tests PDF action marker detection.
func TestHeuristicScannerPDFActions(t *testing.T) {
	t.Parallel()

	t.Run("javascript action reported once", func(t *testing.T) {
		t.Parallel()

		content := []byte("%PDF-1.4 << /OpenAction << /S /JavaScript /JS (app.alert(1)) >> >>")
		result, err := NewHeuristicScanner().Scan(context.Background(), &Target{Content: content})
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		active := findByType(result.Vulnerabilities, vulnTypeActiveContent)
		// /JavaScript and /OpenAction, but not /JS on top of /JavaScript.
		if len(active) != 2 {
			t.Errorf("active content findings = %+v, want 2", active)
		}
	})

	t.Run("launch action", func(t *testing.T) {
		t.Parallel()

		content := []byte("%PDF-1.4 << /Type /Action /S /Launch >>")
		result, err := NewHeuristicScanner().Scan(context.Background(), &Target{Content: content})
		if err != nil {
			t.Fatalf("Scan: %v", err)
		}

		if len(findByType(result.Vulnerabilities, vulnTypeActiveContent)) != 1 {
			t.Errorf("findings = %+v, want 1 active content finding", result.Vulnerabilities)
		}
	})
}

// TestHeuristicScannerMacros tests VBA macro detection.
func TestHeuristicScannerMacros(t *testing.T) {
	t.Parallel()

	content := []byte("PK\x03\x04 word/vbaProject.bin payload")
	result, err := NewHeuristicScanner().Scan(context.Background(), &Target{Content: content})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	macros := findByType(result.Vulnerabilities, vulnTypeMacro)
	if len(macros) != 1 {
		t.Fatalf("macro findings = %+v, want 1", macros)
	}
	if macros[0].Severity != model.SeverityHigh {
		t.Errorf("Severity = %v, want high", macros[0].Severity)
	}
}

// TestHeuristicScannerObfuscation tests obfuscation pattern detection.
func TestHeuristicScannerObfuscation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		want    int
	}{
		{"eval call", "var x = eval(payload)", 1},
		{"unescape call", "unescape('%41%42')", 1},
		{"char code assembly", "String.fromCharCode(104,105)", 1},
		{"base64 blob", "data:" + strings.Repeat("QUJD", 40), 1},
		{"evaluation in prose", "performance evaluation criteria", 0},
		{"short base64", "dGVzdA==", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewHeuristicScanner().Scan(context.Background(), &Target{Content: []byte(tc.content)})
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}

			got := findByType(result.Vulnerabilities, vulnTypeObfuscation)
			if len(got) != tc.want {
				t.Errorf("obfuscation findings = %+v, want %d", got, tc.want)
			}
		})
	}
}

// TestHeuristicScannerBenignContent tests that ordinary documents scan
// clean and never error.
func TestHeuristicScannerBenignContent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content []byte
	}{
		{"empty content", nil},
		{"plain text", []byte("An ordinary resume with work history.")},
		{"binary noise", []byte{0x00, 0x01, 0xFF, 0xFE, 0x42}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewHeuristicScanner().Scan(context.Background(), &Target{Content: tc.content})
			if err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if len(result.Vulnerabilities) != 0 {
				t.Errorf("findings = %+v, want none", result.Vulnerabilities)
			}
		})
	}
}
