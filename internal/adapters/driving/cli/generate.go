package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate metadata for a document",
	Long: `Runs the extraction pipeline on a PDF, DOCX, or TXT file and
prints the metadata record as indented JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

// Flags for the generate command.
var (
	generateKeywords  int
	generateSentences int
	generateWPM       int
	generateOut       string
)

func init() {
	generateCmd.Flags().IntVar(&generateKeywords, "keywords", 0, "Maximum number of keywords (default 10)")
	generateCmd.Flags().IntVar(&generateSentences, "sentences", 0, "Number of summary sentences (default 3)")
	generateCmd.Flags().IntVar(&generateWPM, "wpm", 0, "Reading speed in words per minute (default 200)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write the JSON record to a file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if metadataService == nil {
		return errors.New("metadata service not configured")
	}

	path := args[0]
	ctx := context.Background()

	meta, err := metadataService.Generate(ctx, path, driving.GenerateOptions{
		KeywordCount:     generateKeywords,
		SummarySentences: generateSentences,
		WordsPerMinute:   generateWPM,
	})
	if err != nil {
		return fmt.Errorf("failed to generate metadata: %w", err)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if generateOut == "" {
		cmd.Println(string(data))
		return nil
	}

	out := generateOut
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		// Directory target: name the file after the document.
		stem := strings.TrimSuffix(meta.Filename, filepath.Ext(meta.Filename))
		out = filepath.Join(out, stem+"_metadata.json")
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	cmd.Printf("Metadata written to %s\n", out)
	return nil
}
