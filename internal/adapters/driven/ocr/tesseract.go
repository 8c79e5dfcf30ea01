// Package ocr recognises text in page images using the Tesseract
// engine via gosseract.
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
)

// DefaultLanguage is the Tesseract language pack used when none is
// configured.
const DefaultLanguage = "eng"

// Ensure Tesseract implements the interface.
var _ driven.OCREngine = (*Tesseract)(nil)

// Tesseract runs OCR against a local Tesseract installation.
type Tesseract struct {
	language string
}

// New creates an OCR engine using the default language pack.
func New() *Tesseract {
	return NewWithLanguage(DefaultLanguage)
}

// NewWithLanguage creates an OCR engine for a specific language pack.
func NewWithLanguage(language string) *Tesseract {
	if language == "" {
		language = DefaultLanguage
	}
	return &Tesseract{language: language}
}

// Recognise returns the text found in an encoded page image.
// The pipeline is single-threaded, so a short-lived client per call
// keeps the adapter free of shared native state.
func (t *Tesseract) Recognise(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("setting language %q: %w", t.language, err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("loading image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognising text: %w", err)
	}
	return text, nil
}
