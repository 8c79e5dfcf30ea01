package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".txt"}
}

// Extract reads the file as UTF-8. Bytes that do not decode are dropped
// rather than failing the read.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", domain.ErrExtraction, path, err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// Metadata returns empty fields: plain text files carry no embedded
// author or creation date.
func (e *Extractor) Metadata(_ context.Context, _ string) domain.EmbeddedMetadata {
	return domain.EmbeddedMetadata{}
}
