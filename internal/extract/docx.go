package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/vigyantra/docscan/internal/model"
)

const (
	// wordDocumentPath is the main document part of an OOXML package.
	wordDocumentPath = "word/document.xml"

	// corePropertiesPath holds the package metadata.
	corePropertiesPath = "docProps/core.xml"
)

// coreProperties mirrors the Dublin Core subset of docProps/core.xml
// that maps onto document metadata.
type coreProperties struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Creator        string   `xml:"creator"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

// extractWord extracts text and metadata from an OOXML word-processing
// package. Paragraphs are concatenated in document order, one newline
// per paragraph, so paragraph boundaries survive as line boundaries.
func extractWord(content []byte) (string, model.Metadata, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", model.Metadata{}, fmt.Errorf("%w: not an OOXML package: %v", ErrExtractionFailed, err)
	}

	var (
		text string
		meta model.Metadata
	)

	found := false
	for _, f := range zr.File {
		switch f.Name {
		case wordDocumentPath:
			rc, err := f.Open()
			if err != nil {
				return "", model.Metadata{}, fmt.Errorf("%w: open %s: %v", ErrExtractionFailed, f.Name, err)
			}
			text, err = wordText(rc)
			rc.Close()
			if err != nil {
				return "", model.Metadata{}, fmt.Errorf("%w: parse %s: %v", ErrExtractionFailed, f.Name, err)
			}
			found = true
		case corePropertiesPath:
			rc, err := f.Open()
			if err != nil {
				continue
			}
			meta = wordMetadata(rc)
			rc.Close()
		}
	}

	if !found {
		return "", model.Metadata{}, fmt.Errorf("%w: package has no %s", ErrExtractionFailed, wordDocumentPath)
	}

	return text, meta, nil
}

// wordText walks the document XML token stream collecting the character
// data of every text run, emitting a newline at each paragraph end.
//
// Design decision: A token walk instead of a full document model keeps
// memory proportional to the largest text run rather than the whole
// document, and tolerates the vendor-specific elements OOXML producers
// sprinkle through the markup.
func wordText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		sb        strings.Builder
		inTextRun bool
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

// wordMetadata decodes the core properties part. The creator fills both
// the author and creator fields since OOXML carries a single originator.
// Decode failures yield empty metadata; metadata is never fatal.
func wordMetadata(r io.Reader) model.Metadata {
	var props coreProperties
	if err := xml.NewDecoder(r).Decode(&props); err != nil {
		return model.Metadata{}
	}

	return model.Metadata{
		Title:            props.Title,
		Author:           props.Creator,
		Creator:          props.Creator,
		LastModifiedBy:   props.LastModifiedBy,
		CreationDate:     props.Created,
		ModificationDate: props.Modified,
	}
}
