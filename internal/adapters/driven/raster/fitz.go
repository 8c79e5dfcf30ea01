// Package raster renders PDF pages to images for the OCR fallback
// path, using MuPDF via go-fitz.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	fitz "github.com/gen2brain/go-fitz"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.Rasteriser = (*Renderer)(nil)

// Renderer rasterises PDF pages with MuPDF.
type Renderer struct{}

// New creates a new page renderer.
func New() *Renderer {
	return &Renderer{}
}

// Pages renders every page of the document at the given DPI and
// returns one encoded PNG per page, in page order.
func (r *Renderer) Pages(ctx context.Context, path string, dpi float64) ([][]byte, error) {
	if pages, hasImages, err := preflight(path); err != nil {
		logger.Warn("pdf preflight failed for %s: %v", path, err)
	} else {
		logger.Debug("rasterising %s: %d pages, image streams: %v", path, pages, hasImages)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer doc.Close()

	images := make([][]byte, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.ImageDPI(n, dpi)
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", n+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding page %d: %w", n+1, err)
		}
		images = append(images, buf.Bytes())
	}

	return images, nil
}
