package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/vigyantra/docscan/internal/model"
)

// textLayerStrategy extracts the PDF text layer page by page.
//
// Design decision: Pages that fail to parse are skipped rather than
// failing the whole document. A resume with one damaged page still
// carries plenty of scannable text, and the raw-stream fallback exists
// for documents where the parser cannot open the file at all.
type textLayerStrategy struct{}

// Name returns the strategy name.
func (s *textLayerStrategy) Name() string { return "text_layer" }

// Extract reads the text layer of every page and the document
// information dictionary.
func (s *textLayerStrategy) Extract(content []byte) (string, model.Metadata, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", model.Metadata{}, fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", model.Metadata{}, fmt.Errorf("no text layer found")
	}

	return text, pdfMetadata(reader), nil
}

// pdfMetadata reads the document information dictionary. Every field is
// best-effort; a document without an Info dictionary yields the zero
// Metadata.
func pdfMetadata(reader *pdf.Reader) model.Metadata {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return model.Metadata{}
	}

	return model.Metadata{
		Title:            infoString(info, "Title"),
		Author:           infoString(info, "Author"),
		Creator:          infoString(info, "Creator"),
		Producer:         infoString(info, "Producer"),
		CreationDate:     infoString(info, "CreationDate"),
		ModificationDate: infoString(info, "ModDate"),
	}
}

// infoString reads one string entry from the information dictionary.
func infoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.IsNull() {
		return ""
	}
	return v.Text()
}
