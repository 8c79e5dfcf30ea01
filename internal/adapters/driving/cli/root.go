// Package cli implements the metagen command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by the entrypoint before Execute.
var (
	metadataService driving.MetadataService
	reportService   driving.ReportService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "metagen",
	Short: "Generate structured metadata from documents",
	Long: `Metagen extracts structured metadata from PDF, DOCX, and plain
text documents: title, keywords, summary, named entities, sections,
language, reading time, and embedded author/creation-date fields.
Scanned PDFs are recovered through OCR.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
}

// SetServices wires the core services into the CLI commands.
func SetServices(metadata driving.MetadataService, reports driving.ReportService) {
	metadataService = metadata
	reportService = reports
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
