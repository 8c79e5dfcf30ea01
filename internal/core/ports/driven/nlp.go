package driven

import "github.com/Raunakgup/auto-metadata-gen/internal/core/domain"

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// Detect returns a single best-guess ISO 639-1 code, or the literal
	// "unknown" when the input is empty or too ambiguous. It never
	// returns an error.
	Detect(text string) string
}

// Analyser provides the statistical and model-backed text analysis used
// by the aggregator: keywords, extractive summary, and named entities.
type Analyser interface {
	// Keywords returns up to topN distinct terms in vocabulary order.
	Keywords(text string, topN int) []string

	// Summary returns an extractive summary of up to numSentences
	// sentences, joined by single spaces in original document order.
	// Empty when the text has no sentences.
	Summary(text string, numSentences int) string

	// Entities returns recognised mentions in document order.
	// Duplicate mentions are retained.
	Entities(text string) []domain.Entity
}
