package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultHeadingMaxLen is the maximum line length (in runes) considered
// for the heading heuristic.
const DefaultHeadingMaxLen = 60

var (
	// allCapsRe matches lines of uppercase letters, digits, spaces,
	// and hyphens only.
	allCapsRe = regexp.MustCompile(`^[A-Z0-9 \-]+$`)

	// numberedRe matches numbered headings like "1. Introduction".
	numberedRe = regexp.MustCompile(`^\d+\. ?[A-Za-z].*`)
)

// ExtractSections scans the text line by line for heading-like
// patterns and returns them deduplicated, preserving first-occurrence
// order. All-caps headings are emitted in title case; numbered
// headings are emitted verbatim. Blank lines and lines longer than
// maxLen runes are skipped.
func ExtractSections(text string, maxLen int) []string {
	var sections []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || len([]rune(stripped)) > maxLen {
			continue
		}
		switch {
		case allCapsRe.MatchString(stripped) && containsLetter(stripped):
			sections = append(sections, titleCase(stripped))
		case numberedRe.MatchString(stripped):
			sections = append(sections, stripped)
		}
	}

	seen := make(map[string]struct{}, len(sections))
	unique := make([]string, 0, len(sections))
	for _, sec := range sections {
		if _, ok := seen[sec]; ok {
			continue
		}
		seen[sec] = struct{}{}
		unique = append(unique, sec)
	}
	return unique
}

// containsLetter reports whether the string has at least one letter.
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// titleCase capitalises the first letter of every alphabetic run and
// lowercases the rest, leaving non-letters untouched.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
