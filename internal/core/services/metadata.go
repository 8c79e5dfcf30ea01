package services

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
	"github.com/Raunakgup/auto-metadata-gen/internal/nlp"
)

// Defaults for GenerateOptions zero values.
const (
	DefaultSummarySentences = 3
	DefaultKeywordCount     = 10
	DefaultWordsPerMinute   = 200
)

// Ensure MetadataService implements the interface.
var _ driving.MetadataService = (*MetadataService)(nil)

// MetadataService runs the extraction pipeline and assembles the final
// metadata record.
type MetadataService struct {
	registry driven.ExtractorRegistry
	detector driven.LanguageDetector
	analyser driven.Analyser
	reports  driven.ReportStore

	defaults driving.GenerateOptions
}

// NewMetadataService creates a new metadata service. The report store
// is optional; when nil, generated records are not persisted.
func NewMetadataService(
	registry driven.ExtractorRegistry,
	detector driven.LanguageDetector,
	analyser driven.Analyser,
	reports driven.ReportStore,
) *MetadataService {
	return &MetadataService{
		registry: registry,
		detector: detector,
		analyser: analyser,
		reports:  reports,
	}
}

// Generate runs the full pipeline on the file at path. It fails fast:
// an unsupported extension or an extraction failure aborts the whole
// call and no partial record is returned. Soft failures (language
// detection, embedded metadata) degrade to defaults instead.
func (s *MetadataService) Generate(ctx context.Context, path string, opts driving.GenerateOptions) (*domain.Metadata, error) {
	s.applyDefaults(&opts)

	extractor, err := s.registry.ForPath(path)
	if err != nil {
		return nil, err
	}

	logger.Section("extract")
	embedded := extractor.Metadata(ctx, path)

	raw, err := extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("extracted %d bytes of text from %s", len(raw), path)

	language := s.detector.Detect(raw)

	filename := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(filename))

	logger.Section("analyse")
	title := nlp.DetectTitle(raw, nlp.DefaultTitleMaxWords)
	keywords := s.analyser.Keywords(raw, opts.KeywordCount)
	summary := s.analyser.Summary(raw, opts.SummarySentences)
	entities := s.analyser.Entities(raw)
	sections := nlp.ExtractSections(raw, nlp.DefaultHeadingMaxLen)

	wordCount := len(strings.Fields(raw))
	readingTime := domain.Minutes(round2(float64(wordCount) / float64(opts.WordsPerMinute)))

	meta := &domain.Metadata{
		Filename:       filename,
		Filetype:       ext,
		Title:          title,
		WordCount:      wordCount,
		ReadingTimeMin: readingTime,
		Keywords:       keywords,
		Summary:        summary,
		Entities:       entities,
		Sections:       sections,
		Author:         embedded.Author,
		CreatedAt:      embedded.CreatedAt,
		Language:       language,
	}

	s.saveReport(ctx, meta)
	return meta, nil
}

// saveReport persists the record when a store is configured. Storage
// is additive to the pipeline: a save failure is logged, not surfaced.
func (s *MetadataService) saveReport(ctx context.Context, meta *domain.Metadata) {
	if s.reports == nil {
		return
	}
	report := domain.Report{
		ID:        uuid.New().String(),
		Filename:  meta.Filename,
		Metadata:  *meta,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reports.Save(ctx, report); err != nil {
		logger.Warn("saving report for %s: %v", meta.Filename, err)
	}
}

// SetDefaults overrides the built-in option defaults, typically from
// the config file. Zero fields keep the built-in values.
func (s *MetadataService) SetDefaults(defaults driving.GenerateOptions) {
	s.defaults = defaults
}

// applyDefaults fills zero option values from the configured defaults,
// then from the documented built-ins.
func (s *MetadataService) applyDefaults(opts *driving.GenerateOptions) {
	if opts.SummarySentences <= 0 {
		opts.SummarySentences = s.defaults.SummarySentences
	}
	if opts.SummarySentences <= 0 {
		opts.SummarySentences = DefaultSummarySentences
	}
	if opts.KeywordCount <= 0 {
		opts.KeywordCount = s.defaults.KeywordCount
	}
	if opts.KeywordCount <= 0 {
		opts.KeywordCount = DefaultKeywordCount
	}
	if opts.WordsPerMinute <= 0 {
		opts.WordsPerMinute = s.defaults.WordsPerMinute
	}
	if opts.WordsPerMinute <= 0 {
		opts.WordsPerMinute = DefaultWordsPerMinute
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService provides read access to stored reports.
type ReportService struct {
	store driven.ReportStore
}

// NewReportService creates a new report service.
func NewReportService(store driven.ReportStore) *ReportService {
	return &ReportService{store: store}
}

// List returns all stored reports, newest first.
func (s *ReportService) List(ctx context.Context) ([]domain.Report, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: report store not configured", domain.ErrNotFound)
	}
	return s.store.List(ctx)
}

// Get retrieves a stored report by ID.
func (s *ReportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: report store not configured", domain.ErrNotFound)
	}
	return s.store.Get(ctx, id)
}
