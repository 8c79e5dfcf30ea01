package docx

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
)

// writeDocx builds a minimal DOCX archive on disk. Each entry of
// paragraphs becomes one <w:p>; empty strings become empty paragraphs.
func writeDocx(t *testing.T, paragraphs []string, creator, created string) string {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			body.WriteString("<w:p/>")
			continue
		}
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body>
</w:document>`, body.String())

	core := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<cp:coreProperties
 xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
 xmlns:dc="http://purl.org/dc/elements/1.1/"
 xmlns:dcterms="http://purl.org/dc/terms/">
<dc:creator>%s</dc:creator>
<dcterms:created>%s</dcterms:created>
</cp:coreProperties>`, creator, created)

	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"word/document.xml":  document,
		"docProps/core.xml":  core,
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExtract(t *testing.T) {
	extractor := New()

	path := writeDocx(t, []string{"Report Title", "", "Body paragraph."}, "", "")

	text, err := extractor.Extract(context.Background(), path)
	require.NoError(t, err)

	// Empty paragraphs survive as blank lines so the title block
	// heuristic still sees the break after the heading.
	assert.Equal(t, "Report Title\n\nBody paragraph.", text)
}

func TestExtractRunsConcatenated(t *testing.T) {
	extractor := New()

	// Two runs inside one paragraph join without separators.
	document := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p></w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(document))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	text, err := extractor.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestExtractNotAZip(t *testing.T) {
	extractor := New()

	path := filepath.Join(t.TempDir(), "fake.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := extractor.Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestMetadata(t *testing.T) {
	extractor := New()

	tests := []struct {
		name            string
		created         string
		expectedCreated string
	}{
		{
			name:            "rfc3339 timestamp",
			created:         "2024-03-01T09:30:00Z",
			expectedCreated: "2024-03-01T09:30:00Z",
		},
		{
			name:            "timestamp without zone",
			created:         "2024-03-01T09:30:00",
			expectedCreated: "2024-03-01T09:30:00Z",
		},
		{
			name:            "date only",
			created:         "2024-03-01",
			expectedCreated: "2024-03-01T00:00:00Z",
		},
		{
			name:            "unparseable kept verbatim",
			created:         "first of March",
			expectedCreated: "first of March",
		},
		{
			name:            "empty",
			created:         "",
			expectedCreated: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDocx(t, []string{"body"}, "A. Author", tt.created)

			meta := extractor.Metadata(context.Background(), path)
			assert.Equal(t, "A. Author", meta.Author)
			assert.Equal(t, tt.expectedCreated, meta.CreatedAt)
		})
	}
}

func TestMetadataDegradesToEmpty(t *testing.T) {
	extractor := New()

	// Unreadable file: metadata is best-effort and never errors.
	meta := extractor.Metadata(context.Background(), filepath.Join(t.TempDir(), "absent.docx"))
	assert.Equal(t, domain.EmbeddedMetadata{}, meta)
}
