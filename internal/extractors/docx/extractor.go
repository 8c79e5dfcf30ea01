package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX (word-processor) documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".docx"}
}

// Extract returns all paragraph texts in document order, separated by
// newlines. Empty paragraphs are kept so that downstream block
// heuristics see the original paragraph breaks.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", domain.ErrExtraction, path, err)
	}
	defer reader.Close()

	content, err := readArchiveFile(&reader.Reader, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("%w: reading document body: %v", domain.ErrExtraction, err)
	}

	text, err := parseDocumentXML(content)
	if err != nil {
		return "", fmt.Errorf("%w: parsing document body: %v", domain.ErrExtraction, err)
	}
	return text, nil
}

// Metadata reads author and creation date from docProps/core.xml.
// Missing or unreadable fields degrade to empty strings.
func (e *Extractor) Metadata(_ context.Context, path string) domain.EmbeddedMetadata {
	var meta domain.EmbeddedMetadata

	reader, err := zip.OpenReader(path)
	if err != nil {
		return meta
	}
	defer reader.Close()

	content, err := readArchiveFile(&reader.Reader, "docProps/core.xml")
	if err != nil || content == nil {
		return meta
	}

	var core coreXML
	if err := xml.Unmarshal(content, &core); err != nil {
		return meta
	}

	meta.Author = strings.TrimSpace(core.Creator)
	meta.CreatedAt = normaliseTimestamp(strings.TrimSpace(core.Created))
	return meta
}

// readArchiveFile returns the contents of the named file within the
// archive, or nil when the file is absent.
func readArchiveFile(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts paragraph texts joined by newlines.
func parseDocumentXML(content []byte) (string, error) {
	if content == nil {
		return "", nil
	}

	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", err
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, t := range r.Text {
				result.WriteString(t.Content)
			}
		}
	}
	return result.String(), nil
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Creator string `xml:"creator"`
	Created string `xml:"created"`
}

// normaliseTimestamp converts a core-properties timestamp to RFC 3339.
// DOCX stores W3CDTF strings; anything unparseable is kept verbatim.
func normaliseTimestamp(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return raw
}
