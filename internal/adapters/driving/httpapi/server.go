// Package httpapi exposes the pipeline over HTTP: a client uploads a
// document and receives the metadata record as JSON. This is the
// machine-facing replacement for an interactive upload page; rendering
// is left entirely to the client.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driving"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

// maxUploadBytes caps the multipart form size.
const maxUploadBytes = 64 << 20 // 64 MiB

// formField is the multipart field holding the uploaded document.
const formField = "document"

// Server handles document uploads.
type Server struct {
	metadata driving.MetadataService
	tmpDir   string
}

// New creates an upload server. Uploads are spooled to tmpDir for the
// duration of one request; if tmpDir is empty the OS temp directory is
// used.
func New(metadata driving.MetadataService, tmpDir string) *Server {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &Server{
		metadata: metadata,
		tmpDir:   tmpDir,
	}
}

// Handler returns the HTTP handler for the upload API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/metadata", s.handleUpload)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleUpload spools the uploaded document to a temporary file, runs
// the pipeline, and returns the record as JSON. The temporary file is
// removed unconditionally afterwards; removal failures are ignored.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile(formField)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing %q form field", formField))
		return
	}
	defer file.Close()

	// The extension drives format dispatch, so it is preserved while
	// the rest of the name is replaced to keep the path unguessable.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	tmpPath := filepath.Join(s.tmpDir, uuid.New().String()+ext)

	if err := spool(file, tmpPath); err != nil {
		logger.Warn("spooling upload: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(tmpPath) //nolint:errcheck // best-effort cleanup

	meta, err := s.metadata.Generate(r.Context(), tmpPath, driving.GenerateOptions{})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFormat):
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, domain.ErrExtraction):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			logger.Warn("generate failed for %s: %v", header.Filename, err)
			writeError(w, http.StatusInternalServerError, "metadata generation failed")
		}
		return
	}

	// Report the record under the uploaded name, not the spool name.
	meta.Filename = header.Filename

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(meta); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}

// spool copies the upload to path.
func spool(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
