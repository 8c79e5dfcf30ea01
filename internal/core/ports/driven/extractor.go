package driven

import (
	"context"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
)

// Extractor produces text and embedded metadata for one document format.
// Each extractor handles specific file extensions (e.g. ".pdf", ".docx").
type Extractor interface {
	// Extensions returns the lowercased extensions this extractor handles,
	// including the leading dot.
	Extensions() []string

	// Extract returns the full text content of the document in source
	// order. Reader or OCR failures are reported wrapped in
	// domain.ErrExtraction.
	Extract(ctx context.Context, path string) (string, error)

	// Metadata returns the embedded author and creation-date fields.
	// It never fails: any field that cannot be read degrades to the
	// empty string.
	Metadata(ctx context.Context, path string) domain.EmbeddedMetadata
}

// ExtractorRegistry resolves the extractor responsible for a file path.
type ExtractorRegistry interface {
	// ForPath returns the extractor for the path's extension, or
	// domain.ErrUnsupportedFormat when no extractor handles it.
	ForPath(path string) (Extractor, error)
}

// Rasteriser renders PDF pages to images for the OCR fallback path.
type Rasteriser interface {
	// Pages renders every page at the given DPI and returns one encoded
	// PNG per page, in page order.
	Pages(ctx context.Context, path string, dpi float64) ([][]byte, error)
}

// OCREngine recognises text in a rendered page image.
type OCREngine interface {
	// Recognise returns the text found in an encoded page image.
	Recognise(ctx context.Context, image []byte) (string, error)
}
