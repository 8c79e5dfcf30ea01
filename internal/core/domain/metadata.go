package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Metadata is the canonical record produced for one document.
// Every field is always present: absent values are empty strings,
// empty slices, or zero, never omitted keys.
type Metadata struct {
	// Filename is the base name of the processed file.
	Filename string `json:"filename"`

	// Filetype is the lowercased extension including the leading dot.
	Filetype string `json:"filetype"`

	// Title is the heuristic title, possibly ellipsis-truncated.
	Title string `json:"title"`

	// WordCount is the whitespace-delimited token count of the raw text.
	WordCount int `json:"word_count"`

	// ReadingTimeMin is WordCount/wpm rounded to 2 decimals.
	ReadingTimeMin Minutes `json:"reading_time_min"`

	// Keywords holds up to N distinct terms in vocabulary order.
	Keywords []string `json:"keywords"`

	// Summary is the extractive summary, empty when the text has no sentences.
	Summary string `json:"summary"`

	// Entities holds (text, label) pairs, one per mention, in document order.
	Entities []Entity `json:"entities"`

	// Sections holds distinct heading strings in first-occurrence order.
	Sections []string `json:"sections"`

	// Author is the embedded author field, empty when absent.
	Author string `json:"author"`

	// CreatedAt is the embedded creation timestamp, normalised to
	// RFC 3339 when parseable, verbatim otherwise, empty when absent.
	CreatedAt string `json:"created_at"`

	// Language is an ISO 639-1 code or the literal "unknown".
	Language string `json:"language"`
}

// Minutes is a duration in minutes. Integral values serialise with a
// trailing decimal (2.0, not 2) to keep the downloadable record's
// number format stable.
type Minutes float64

// MarshalJSON forces a decimal point on integral values.
func (m Minutes) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(m), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

// Entity is a recognised named-entity mention.
type Entity struct {
	Text  string
	Label string
}

// MarshalJSON serialises the entity as a two-element array [text, label]
// for compatibility with the downloadable JSON report.
func (e Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Text, e.Label})
}

// UnmarshalJSON parses the two-element array form.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	e.Text = pair[0]
	e.Label = pair[1]
	return nil
}

// EmbeddedMetadata holds author and creation-date fields read from the
// document container itself, as opposed to analysis-derived fields.
// Both default to the empty string when absent or unparseable.
type EmbeddedMetadata struct {
	Author    string
	CreatedAt string
}
