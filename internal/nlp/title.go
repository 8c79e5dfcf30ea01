package nlp

import "strings"

// DefaultTitleMaxWords is the word budget for the heuristic title.
const DefaultTitleMaxWords = 20

// Ellipsis is appended to truncated titles, with no space before it.
const ellipsis = "…"

// DetectTitle derives a candidate title from the first contiguous block
// of non-blank lines: lines are stripped and accumulated until the
// first blank line (or end of text), then joined with single spaces.
// A candidate longer than maxWords words is cut to the first maxWords
// words plus a single ellipsis character.
//
// When the very first line is blank the block is empty and the title
// is the empty string; that is accepted behaviour, not an error.
func DetectTitle(text string, maxWords int) string {
	var block []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			break
		}
		block = append(block, stripped)
	}
	candidate := strings.Join(block, " ")

	words := strings.Fields(candidate)
	if len(words) > maxWords {
		return strings.Join(words[:maxWords], " ") + ellipsis
	}
	return candidate
}
