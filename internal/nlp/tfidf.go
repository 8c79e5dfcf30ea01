package nlp

import (
	"math"
	"regexp"
	"strings"
)

// wordRe matches unigram tokens: runs of two or more word characters.
// Single-character tokens carry no signal and are discarded, matching
// common term-weighting defaults.
var wordRe = regexp.MustCompile(`\b\w\w+\b`)

// wsRe collapses whitespace runs.
var wsRe = regexp.MustCompile(`\s+`)

// CleanText normalises whitespace: all runs collapse to a single space
// and surrounding whitespace is trimmed.
func CleanText(text string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(text, " "))
}

// tokenize lowercases the text and returns its unigram tokens with
// stop words removed.
func tokenize(text string) []string {
	matches := wordRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if isStopWord(m) {
			continue
		}
		tokens = append(tokens, m)
	}
	return tokens
}

// termCounts returns raw term frequencies for a token sequence.
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int)
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// tfidfScores computes one score per document: the sum of the
// document's l2-normalised TF-IDF weights. The corpus defines the
// vocabulary and document frequencies; idf uses the smoothed form
// ln((1+n)/(1+df)) + 1 so that terms present in every document still
// carry weight.
func tfidfScores(docs [][]string) []float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range doc {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, f := range df {
		idf[term] = math.Log((1+n)/(1+float64(f))) + 1
	}

	scores := make([]float64, len(docs))
	for i, doc := range docs {
		counts := termCounts(doc)

		var norm float64
		for term, c := range counts {
			w := float64(c) * idf[term]
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)

		var sum float64
		for term, c := range counts {
			sum += float64(c) * idf[term] / norm
		}
		scores[i] = sum
	}
	return scores
}
