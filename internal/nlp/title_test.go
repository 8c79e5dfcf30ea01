package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "single line",
			text:     "Annual Report 2024\n\nBody text follows.",
			expected: "Annual Report 2024",
		},
		{
			name:     "multi line block joined with spaces",
			text:     "A Study of\nDocument Pipelines\n\nAbstract here.",
			expected: "A Study of Document Pipelines",
		},
		{
			name:     "leading blank line yields empty title",
			text:     "\nReal Heading\n\nBody.",
			expected: "",
		},
		{
			name:     "whitespace-only first line counts as blank",
			text:     "   \nReal Heading",
			expected: "",
		},
		{
			name:     "lines are stripped before joining",
			text:     "  Indented Title  \n  Second Line  \n\nBody.",
			expected: "Indented Title Second Line",
		},
		{
			name:     "empty input",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectTitle(tt.text, DefaultTitleMaxWords))
		})
	}
}

func TestDetectTitleTruncation(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ") + "\n\nBody."

	title := DetectTitle(text, DefaultTitleMaxWords)

	assert.True(t, strings.HasSuffix(title, "…"), "truncated title must end with ellipsis")
	trimmed := strings.TrimSuffix(title, "…")
	assert.Len(t, strings.Fields(trimmed), DefaultTitleMaxWords)
}

func TestDetectTitleExactBudgetNotTruncated(t *testing.T) {
	words := make([]string, DefaultTitleMaxWords)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	title := DetectTitle(text, DefaultTitleMaxWords)

	assert.False(t, strings.Contains(title, "…"))
	assert.Len(t, strings.Fields(title), DefaultTitleMaxWords)
}
