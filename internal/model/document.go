package model

// ExtractedDocument holds the normalized content of an uploaded document.
// It is created once per scan by the extractor and is immutable afterwards;
// all scanners read from the same instance.
type ExtractedDocument struct {
	// Text is the full extracted text, reconstructed page by page (PDF)
	// or paragraph by paragraph (word processor), newline-joined.
	Text string `json:"text"`

	// Metadata contains document properties. Fields absent in the source
	// document are empty strings, never an error.
	Metadata Metadata `json:"metadata"`

	// ExtractedData contains pattern-matched contact data found in the text.
	// Duplicates are preserved as found.
	ExtractedData ExtractedData `json:"extracted_data"`

	// Statistics contains basic text statistics.
	Statistics Statistics `json:"statistics"`
}

// Metadata contains document properties pulled from the PDF info dictionary
// or the OOXML core properties. All fields are best-effort and may be empty.
type Metadata struct {
	// Title is the document title.
	Title string `json:"title"`

	// Author is the document author.
	Author string `json:"author"`

	// Creator is the creating application or user.
	Creator string `json:"creator"`

	// Producer is the PDF producer library, if any.
	Producer string `json:"producer,omitempty"`

	// LastModifiedBy is the last editor recorded in OOXML core properties.
	LastModifiedBy string `json:"last_modified_by,omitempty"`

	// CreationDate is the creation timestamp as recorded in the source.
	// Kept as the raw source string because PDF and OOXML use different
	// date encodings and the value is informational only.
	CreationDate string `json:"creation_date"`

	// ModificationDate is the last-modification timestamp from the source.
	ModificationDate string `json:"modification_date"`
}

// ExtractedData contains raw pattern matches found in the document text.
type ExtractedData struct {
	// Emails are email-shaped substrings, as matched.
	Emails []string `json:"emails"`

	// PhoneNumbers are phone-number-shaped substrings, as matched.
	PhoneNumbers []string `json:"phone_numbers"`

	// URLs are URL-shaped substrings, as matched.
	URLs []string `json:"urls"`
}

// Statistics contains basic text statistics.
//
// Conventions (tested explicitly, see extract package):
//   - CharacterCount is the number of Unicode code points.
//   - WordCount tokenizes on any run of whitespace.
//   - LineCount is the number of newline-separated segments, including a
//     trailing empty segment when the text ends with a newline.
type Statistics struct {
	// CharacterCount is the number of runes in the text.
	CharacterCount int `json:"character_count"`

	// WordCount is the number of whitespace-delimited tokens.
	WordCount int `json:"word_count"`

	// LineCount is the number of newline-separated segments.
	LineCount int `json:"line_count"`
}
