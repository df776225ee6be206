// Package log provides secure logging functionality with automatic
// redaction of personal data, built on top of the standard slog package.
//
// docscan handles documents that routinely contain personal information:
// the scanners log match counts, probe targets, and failure details, and a
// careless attribute could leak a matched SSN or email address into log
// files that outlive the scan. The RedactingHandler masks such values
// before they reach the underlying handler.
//
// # Redaction
//
// The RedactingHandler sanitizes log output two ways:
//   - By key: attributes whose key names personal or secret data
//     (ssn, email, credit_card, password, token, ...)
//   - By value: string values matching personal-data patterns
//     (SSN shapes, card numbers, email addresses, bearer tokens)
//
// Even in verbose mode, redacted values stay masked so debug logs can be
// shared safely.
//
// # Usage
//
//	logger := log.NewRedactingLogger(os.Stderr, true) // verbose=true
//	logger.Info("privacy match",
//	    "category", "ssn",
//	    "example", "123-45-6789", // logged as "***REDACTED***"
//	)
//	slog.SetDefault(logger)
package log
