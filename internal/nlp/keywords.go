package nlp

import "sort"

// ExtractKeywords returns up to topN distinct terms from the text,
// chosen by term frequency over the single-document corpus with stop
// words excluded.
//
// The returned slice is ordered by vocabulary term (lexically), not by
// descending weight. This mirrors the behaviour of limiting a
// vectorizer's vocabulary and then reading its feature names back; it
// is the documented output contract, so callers must not assume
// relevance ordering.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	counts := termCounts(tokenize(CleanText(text)))
	if len(counts) == 0 {
		return []string{}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	// Keep the topN most frequent terms, ties broken lexically.
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > topN {
		terms = terms[:topN]
	}

	// Vocabulary order, not weight order.
	sort.Strings(terms)
	return terms
}
