package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
)

// fakeMetadataService returns a canned record for any path.
type fakeMetadataService struct {
	meta *domain.Metadata
	err  error

	lastPath string
	lastOpts driving.GenerateOptions
}

func (f *fakeMetadataService) Generate(_ context.Context, path string, opts driving.GenerateOptions) (*domain.Metadata, error) {
	f.lastPath = path
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.meta, nil
}

// fakeReportService serves a fixed report list.
type fakeReportService struct {
	reports []domain.Report
}

func (f *fakeReportService) List(context.Context) ([]domain.Report, error) {
	return f.reports, nil
}

func (f *fakeReportService) Get(_ context.Context, id string) (*domain.Report, error) {
	for i := range f.reports {
		if f.reports[i].ID == id {
			return &f.reports[i], nil
		}
	}
	return nil, fmt.Errorf("%w: report %s", domain.ErrNotFound, id)
}

func testMetadata() *domain.Metadata {
	return &domain.Metadata{
		Filename:       "doc.txt",
		Filetype:       ".txt",
		Title:          "Test Document",
		WordCount:      400,
		ReadingTimeMin: 2.0,
		Keywords:       []string{"metadata", "test"},
		Summary:        "A test document.",
		Entities:       []domain.Entity{},
		Sections:       []string{},
		Language:       "en",
	}
}

// setupTestServices swaps in fake services and returns a cleanup that
// restores the originals.
func setupTestServices() func() {
	originalMetadata := metadataService
	originalReports := reportService

	metadataService = &fakeMetadataService{meta: testMetadata()}
	reportService = &fakeReportService{
		reports: []domain.Report{
			{
				ID:        "report-1",
				Filename:  "doc.txt",
				Metadata:  *testMetadata(),
				CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
			},
		},
	}

	return func() {
		metadataService = originalMetadata
		reportService = originalReports
	}
}
