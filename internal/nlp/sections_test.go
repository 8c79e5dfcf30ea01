package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSections(t *testing.T) {
	text := strings.Join([]string{
		"INTRODUCTION",
		"1. First Section",
		"Some paragraph.",
		"CONCLUSION",
	}, "\n")

	sections := ExtractSections(text, DefaultHeadingMaxLen)

	assert.Equal(t, []string{"Introduction", "1. First Section", "Conclusion"}, sections)
}

func TestExtractSectionsRules(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "all caps with digits and hyphens",
			text:     "PART 2 - RESULTS",
			expected: []string{"Part 2 - Results"},
		},
		{
			name:     "numbered without space after dot",
			text:     "2.Results",
			expected: []string{"2.Results"},
		},
		{
			name:     "numbered heading kept verbatim",
			text:     "3. mixed Case heading",
			expected: []string{"3. mixed Case heading"},
		},
		{
			name:     "digits only is not a heading",
			text:     "2024",
			expected: []string{},
		},
		{
			name:     "lowercase line is not a heading",
			text:     "introduction",
			expected: []string{},
		},
		{
			name:     "overlong line is skipped",
			text:     strings.Repeat("A", DefaultHeadingMaxLen+1),
			expected: []string{},
		},
		{
			name:     "line at the length limit is kept",
			text:     strings.Repeat("A", DefaultHeadingMaxLen),
			expected: []string{"A" + strings.Repeat("a", DefaultHeadingMaxLen-1)},
		},
		{
			name:     "surrounding whitespace is stripped first",
			text:     "   OVERVIEW   ",
			expected: []string{"Overview"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSections(tt.text, DefaultHeadingMaxLen))
		})
	}
}

func TestExtractSectionsDeduplicates(t *testing.T) {
	text := "METHODS\nbody\nMETHODS\nbody\n1. Setup\n1. Setup"

	sections := ExtractSections(text, DefaultHeadingMaxLen)

	assert.Equal(t, []string{"Methods", "1. Setup"}, sections)
}

func TestExtractSectionsNeverNil(t *testing.T) {
	assert.NotNil(t, ExtractSections("no headings here", DefaultHeadingMaxLen))
}
