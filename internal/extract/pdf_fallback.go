package extract

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/vigyantra/docscan/internal/model"
)

// rawStreamStrategy pulls text out of PDF content streams directly,
// without building the document object graph. It decompresses each
// Flate-encoded stream and collects the arguments of the Tj and TJ
// text-showing operators.
//
// This is the last resort for documents whose cross-reference table the
// primary parser rejects. The recovered text loses layout and ordering
// guarantees but is sufficient for pattern scanning.
type rawStreamStrategy struct{}

var (
	// tjPattern matches a literal string followed by the Tj operator.
	tjPattern = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`)

	// tjArrayPattern matches the array argument of the TJ operator.
	tjArrayPattern = regexp.MustCompile(`\[((?:\\.|[^\\\]])*)\]\s*TJ`)

	// literalPattern matches one literal string inside a TJ array.
	literalPattern = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

// Name returns the strategy name.
func (s *rawStreamStrategy) Name() string { return "raw_stream" }

// Extract scans every stream object for text-showing operators.
// Metadata is not recoverable on this path.
func (s *rawStreamStrategy) Extract(content []byte) (string, model.Metadata, error) {
	var sb strings.Builder

	for _, stream := range contentStreams(content) {
		for _, m := range tjPattern.FindAllSubmatch(stream, -1) {
			sb.WriteString(decodeLiteral(string(m[1])))
			sb.WriteString(" ")
		}
		for _, m := range tjArrayPattern.FindAllSubmatch(stream, -1) {
			for _, lit := range literalPattern.FindAllSubmatch(m[1], -1) {
				sb.WriteString(decodeLiteral(string(lit[1])))
			}
			sb.WriteString(" ")
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", model.Metadata{}, fmt.Errorf("no text operators found in content streams")
	}

	return text, model.Metadata{}, nil
}

// contentStreams returns the payload of every stream object, inflated
// where Flate compression is detected. Streams that fail to decompress
// are scanned raw.
func contentStreams(content []byte) [][]byte {
	var streams [][]byte

	rest := content
	for {
		start := bytes.Index(rest, []byte("stream"))
		if start < 0 {
			break
		}
		data := rest[start+len("stream"):]

		// The stream keyword is followed by CRLF or LF before the payload.
		data = bytes.TrimPrefix(data, []byte("\r"))
		data = bytes.TrimPrefix(data, []byte("\n"))

		end := bytes.Index(data, []byte("endstream"))
		if end < 0 {
			break
		}

		streams = append(streams, inflate(data[:end]))
		rest = data[end+len("endstream"):]
	}

	return streams
}

// inflate decompresses a Flate-encoded stream, returning the raw bytes
// when the payload is not zlib data.
func inflate(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer r.Close()

	inflated, err := io.ReadAll(r)
	if err != nil {
		return data
	}
	return inflated
}

// decodeLiteral resolves escape sequences inside a PDF literal string.
// Octal escapes are dropped; they almost always encode glyphs outside
// the patterns this scanner looks for.
func decodeLiteral(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '(', ')', '\\':
			sb.WriteByte(s[i])
		case '0', '1', '2', '3', '4', '5', '6', '7':
			for i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7' {
				i++
			}
		}
	}
	return sb.String()
}
