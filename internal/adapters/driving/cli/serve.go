package cli

import (
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Raunakgup/auto-metadata-gen/internal/adapters/driving/httpapi"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload API over HTTP",
	Long: `Starts an HTTP server accepting document uploads on
POST /api/metadata (multipart field "document") and returning the
metadata record as JSON.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if metadataService == nil {
		return errors.New("metadata service not configured")
	}

	server := httpapi.New(metadataService, "")

	// No write timeout: OCR of a large scanned document legitimately
	// holds the response open.
	httpServer := &http.Server{
		Addr:              serveAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	cmd.Printf("Listening on %s\n", serveAddr)
	logger.Info("upload endpoint: POST %s/api/metadata", serveAddr)
	return httpServer.ListenAndServe()
}
