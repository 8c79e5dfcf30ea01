// Command metagen extracts structured metadata from documents.
package main

import (
	"fmt"
	"os"

	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driven/config/file"
	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driven/ocr"
	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driven/raster"
	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driven/storage/sqlite"
	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driving/cli"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/services"
	"github.com/Raunakgup/auto-metadata-gen/internal/extractors"
	"github.com/Raunakgup/auto-metadata-gen/internal/extractors/docx"
	"github.com/Raunakgup/auto-metadata-gen/internal/extractors/pdf"
	"github.com/Raunakgup/auto-metadata-gen/internal/extractors/plaintext"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
	"github.com/Raunakgup/auto-metadata-gen/internal/nlp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// PDF extraction with OCR fallback for scanned documents.
	pdfExtractor := pdf.New(raster.New(), ocr.NewWithLanguage(cfg.GetString(file.KeyOCRLanguage)))
	pdfExtractor.TriggerChars = cfg.IntOr(file.KeyOCRTriggerChars, pdf.DefaultOCRTriggerChars)

	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(docx.New())
	registry.Register(pdfExtractor)

	// Report history is best-effort: without a working store the
	// pipeline still runs, only the history commands are unavailable.
	store, err := sqlite.NewStore(cfg.GetString(file.KeyDataDir))
	if err != nil {
		logger.Warn("report store unavailable: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	metadataService := services.NewMetadataService(
		registry,
		nlp.NewDetector(),
		nlp.DefaultEngine(),
		reportStore(store),
	)
	metadataService.SetDefaults(driving.GenerateOptions{
		SummarySentences: cfg.GetInt(file.KeySummarySentences),
		KeywordCount:     cfg.GetInt(file.KeyKeywordCount),
		WordsPerMinute:   cfg.GetInt(file.KeyWordsPerMinute),
	})

	cli.SetServices(metadataService, services.NewReportService(reportStore(store)))
	return cli.Execute()
}

// reportStore avoids handing a typed-nil *sqlite.Store to an interface
// parameter, which would defeat the nil checks in the services.
func reportStore(store *sqlite.Store) driven.ReportStore {
	if store == nil {
		return nil
	}
	return store
}
