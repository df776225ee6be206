// Package extract converts uploaded binary documents into normalized
// text, metadata, and statistics.
//
// Two format families are supported:
//   - PDF: extracted through an ordered chain of strategies. The primary
//     strategy reads the text layer page by page; a raw content-stream
//     fallback handles documents the primary parser rejects. Only the
//     failure of the final strategy surfaces to the caller.
//   - Word processor (OOXML): paragraphs concatenated in document order,
//     one newline per paragraph, with metadata from the core properties.
//
// After text is obtained by either path, a shared analysis step extracts
// embedded emails, phone numbers, and URLs, and computes character, word,
// and line counts.
//
// Extraction is deterministic: the same bytes always produce the same
// ExtractedDocument.
package extract
