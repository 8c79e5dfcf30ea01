package driving

import (
	"context"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
)

// GenerateOptions tunes one metadata generation call.
// Zero values fall back to the documented defaults.
type GenerateOptions struct {
	// SummarySentences is the number of sentences in the extractive
	// summary. Default 3.
	SummarySentences int

	// KeywordCount is the maximum number of keywords. Default 10.
	KeywordCount int

	// WordsPerMinute is the reading speed used for the reading time
	// estimate. Default 200.
	WordsPerMinute int
}

// MetadataService generates the full metadata record for a document.
type MetadataService interface {
	// Generate runs the extraction pipeline on the file at path.
	// It fails fast: a hard failure in any stage aborts the whole call
	// and no partial record is returned.
	Generate(ctx context.Context, path string, opts GenerateOptions) (*domain.Metadata, error)
}

// ReportService provides access to stored reports.
type ReportService interface {
	// List returns all stored reports, newest first.
	List(ctx context.Context) ([]domain.Report, error)

	// Get retrieves a stored report by ID.
	Get(ctx context.Context, id string) (*domain.Report, error)
}
