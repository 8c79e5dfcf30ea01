package nlp

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
)

// LanguageUnknown is returned when no language can be determined.
const LanguageUnknown = "unknown"

// Ensure Detector implements the interface.
var _ driven.LanguageDetector = (*Detector)(nil)

// Detector guesses a text's language using trigram statistics.
type Detector struct{}

// NewDetector creates a language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns a single best-guess ISO 639-1 code, or "unknown" for
// empty or unclassifiable input. It never returns an error.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return LanguageUnknown
	}

	info := whatlanggo.Detect(text)
	code := whatlanggo.LangToStringShort(info.Lang)
	if code == "" {
		return LanguageUnknown
	}
	return code
}
