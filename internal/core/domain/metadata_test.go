package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataJSONKeys(t *testing.T) {
	meta := Metadata{
		Filename: "report.pdf",
		Filetype: ".pdf",
		Keywords: []string{},
		Entities: []Entity{},
		Sections: []string{},
		Language: "unknown",
	}

	data, err := json.Marshal(meta)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	expectedKeys := []string{
		"filename", "filetype", "title", "word_count", "reading_time_min",
		"keywords", "summary", "entities", "sections", "author",
		"created_at", "language",
	}
	require.Len(t, decoded, len(expectedKeys))
	for _, key := range expectedKeys {
		assert.Contains(t, decoded, key)
	}

	// Empty collections serialise as [], not null.
	assert.Equal(t, []any{}, decoded["keywords"])
	assert.Equal(t, []any{}, decoded["entities"])
	assert.Equal(t, []any{}, decoded["sections"])
}

func TestEntitySerialisesAsPair(t *testing.T) {
	data, err := json.Marshal(Entity{Text: "Ada Lovelace", Label: "PERSON"})
	require.NoError(t, err)
	assert.JSONEq(t, `["Ada Lovelace","PERSON"]`, string(data))
}

func TestMetadataRoundTrip(t *testing.T) {
	original := Metadata{
		Filename:       "paper.docx",
		Filetype:       ".docx",
		Title:          "A Study of Things…",
		WordCount:      400,
		ReadingTimeMin: 2.0,
		Keywords:       []string{"analysis", "data", "study"},
		Summary:        "First sentence. Second sentence.",
		Entities: []Entity{
			{Text: "Ada Lovelace", Label: "PERSON"},
			{Text: "London", Label: "GPE"},
			{Text: "Ada Lovelace", Label: "PERSON"}, // duplicate mention kept
		},
		Sections:  []string{"Introduction", "1. Methods", "Conclusion"},
		Author:    "A. Author",
		CreatedAt: "2024-03-01T09:30:00Z",
		Language:  "en",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestReadingTimeSerialisesAsFloat(t *testing.T) {
	data, err := json.Marshal(Metadata{
		ReadingTimeMin: 2.0,
		Keywords:       []string{},
		Entities:       []Entity{},
		Sections:       []string{},
	})
	require.NoError(t, err)
	// Integral reading times keep a decimal point.
	assert.Contains(t, string(data), `"reading_time_min":2.0`)
}

func TestMinutesMarshal(t *testing.T) {
	tests := []struct {
		name     string
		value    Minutes
		expected string
	}{
		{name: "integral gets decimal", value: 2, expected: "2.0"},
		{name: "zero gets decimal", value: 0, expected: "0.0"},
		{name: "fraction unchanged", value: 1.67, expected: "1.67"},
		{name: "two decimals kept", value: 0.03, expected: "0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))

			var decoded Minutes
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.value, decoded)
		})
	}
}
