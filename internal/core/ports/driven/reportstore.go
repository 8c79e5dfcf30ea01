package driven

import (
	"context"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
)

// ReportStore persists generated metadata reports.
type ReportStore interface {
	// Save stores a report. Reports are immutable; saving an existing
	// ID is an error.
	Save(ctx context.Context, report domain.Report) error

	// Get retrieves a report by ID. Returns domain.ErrNotFound when
	// no such report exists.
	Get(ctx context.Context, id string) (*domain.Report, error)

	// List returns all reports, newest first.
	List(ctx context.Context) ([]domain.Report, error)
}
