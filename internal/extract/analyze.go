package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vigyantra/docscan/internal/model"
)

// contentPatterns holds the compiled patterns for structured data
// embedded in document text.
type contentPatterns struct {
	email *regexp.Regexp
	phone *regexp.Regexp
	url   *regexp.Regexp
}

// newContentPatterns compiles the content-analysis patterns.
func newContentPatterns() contentPatterns {
	return contentPatterns{
		email: regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
		phone: regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		url:   regexp.MustCompile(`https?://(?:[a-zA-Z0-9]|[$-_@.&+]|[!*(),]|%[0-9a-fA-F]{2})+`),
	}
}

// analyze runs the shared post-extraction analysis: structured data
// extraction and text statistics. Matches are kept in document order
// with duplicates preserved as found, so a URL mentioned three times is
// examined and counted three times downstream. The returned document
// always carries non-nil slices so JSON output shows empty arrays
// rather than null.
func (e *Extractor) analyze(text string, meta model.Metadata) *model.ExtractedDocument {
	return &model.ExtractedDocument{
		Text:     text,
		Metadata: meta,
		ExtractedData: model.ExtractedData{
			Emails:       allMatches(e.patterns.email, text),
			PhoneNumbers: allMatches(e.patterns.phone, text),
			URLs:         allMatches(e.patterns.url, text),
		},
		Statistics: Statistics(text),
	}
}

// Statistics computes the text statistics.
// Characters are counted in runes, words by whitespace splitting, and
// lines by newline segmentation. Text ending in a newline therefore
// counts a trailing empty line, matching the segmentation convention
// used throughout the scanners.
func Statistics(text string) model.Statistics {
	return model.Statistics{
		CharacterCount: utf8.RuneCountInString(text),
		WordCount:      len(strings.Fields(text)),
		LineCount:      len(strings.Split(text, "\n")),
	}
}

// allMatches returns every match of the pattern in document order.
// The result is never nil.
func allMatches(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
