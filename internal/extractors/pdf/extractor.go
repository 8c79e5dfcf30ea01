// Package pdf extracts text and embedded metadata from PDF documents.
//
// Native text extraction uses ledongthuc/pdf (pure Go, no CGO). When a
// document yields almost no native text — scanned or image-only PDFs —
// the extractor falls back to rasterising every page and running OCR.
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

const (
	// DefaultOCRTriggerChars is the native-text length (in runes) below
	// which the extractor discards the native text and OCRs every page
	// instead. This is a tunable heuristic, not a hard boundary.
	DefaultOCRTriggerChars = 100

	// DefaultOCRDPI is the rasterisation resolution for the OCR path.
	DefaultOCRDPI = 300
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct {
	raster driven.Rasteriser
	ocr    driven.OCREngine

	// TriggerChars is the OCR fallback threshold in runes.
	TriggerChars int

	// DPI is the rasterisation resolution for the OCR path.
	DPI float64
}

// New creates a PDF extractor. The rasteriser and OCR engine are used
// only on the fallback path; passing nil disables OCR, in which case
// low-text documents return their sparse native text.
func New(raster driven.Rasteriser, ocr driven.OCREngine) *Extractor {
	return &Extractor{
		raster:       raster,
		ocr:          ocr,
		TriggerChars: DefaultOCRTriggerChars,
		DPI:          DefaultOCRDPI,
	}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract concatenates per-page native text in page order. If the
// result is shorter than TriggerChars it is discarded and every page is
// rasterised and OCRed instead. A text-bearing PDF with sparse text
// (e.g. a mostly blank title page) therefore triggers full-document
// OCR; that is an accepted trade-off of the threshold heuristic.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	native, err := e.extractNative(path)
	if err != nil {
		return "", err
	}

	if len([]rune(native)) >= e.TriggerChars || e.raster == nil || e.ocr == nil {
		return native, nil
	}

	logger.Info("native text below %d chars, falling back to OCR: %s", e.TriggerChars, path)
	return e.extractOCR(ctx, path)
}

// extractNative pulls the text layer out of every page.
func (e *Extractor) extractNative(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", domain.ErrExtraction, path, err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable pages contribute an empty slot, keeping
			// page order intact for the remaining pages.
			logger.Warn("page %d unreadable: %v", i, err)
			text = ""
		}
		pages = append(pages, text)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// extractOCR rasterises every page and recognises text per page.
func (e *Extractor) extractOCR(ctx context.Context, path string) (string, error) {
	images, err := e.raster.Pages(ctx, path, e.DPI)
	if err != nil {
		return "", fmt.Errorf("%w: rasterising %s: %v", domain.ErrExtraction, path, err)
	}

	start := time.Now()
	pages := make([]string, 0, len(images))
	for i, img := range images {
		text, err := e.ocr.Recognise(ctx, img)
		if err != nil {
			return "", fmt.Errorf("%w: ocr on page %d: %v", domain.ErrExtraction, i+1, err)
		}
		pages = append(pages, text)
	}
	logger.Debug("ocr of %d pages took %s", len(images), time.Since(start))

	return strings.Join(pages, "\n"), nil
}

// Metadata reads author and creation date from the document Info
// dictionary. Missing or unreadable fields degrade to empty strings.
func (e *Extractor) Metadata(_ context.Context, path string) domain.EmbeddedMetadata {
	var meta domain.EmbeddedMetadata

	f, reader, err := pdf.Open(path)
	if err != nil {
		return meta
	}
	defer f.Close()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}

	// Text decodes PDFDocEncoded and UTF-16BE text strings; RawString
	// would leak the BOM and NUL bytes of non-Latin metadata.
	if v := info.Key("Author"); v.Kind() == pdf.String {
		meta.Author = v.Text()
	}
	if v := info.Key("CreationDate"); v.Kind() == pdf.String {
		meta.CreatedAt = normaliseDate(v.Text())
	}
	return meta
}

// normaliseDate converts a PDF date string to RFC 3339. PDF dates use
// the convention "D:YYYYMMDDHHMMSS..."; the prefix is stripped and the
// first 14 characters parsed. Unparseable values are kept verbatim
// (without the D: prefix).
func normaliseDate(raw string) string {
	s := strings.TrimPrefix(raw, "D:")
	if len(s) >= 14 {
		if t, err := time.Parse("20060102150405", s[:14]); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return s
}
