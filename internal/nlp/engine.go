package nlp

import (
	"sort"
	"strings"
	"sync"

	prose "github.com/jdkato/prose/v2"

	"github.com/Raunakgup/auto-metadata-gen/internal/core/domain"
	"github.com/Raunakgup/auto-metadata-gen/internal/core/ports/driven"
	"github.com/Raunakgup/auto-metadata-gen/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.Analyser = (*Engine)(nil)

// Engine provides sentence segmentation, named-entity recognition, and
// the statistical extractors built on top of them.
//
// The underlying language model is expensive to initialise, so there is
// one shared Engine per process, created lazily and used read-only
// afterwards. Every document is parsed against the same model handle;
// the model is never reloaded per document.
type Engine struct {
	model *prose.Model
}

var (
	engineOnce    sync.Once
	defaultEngine *Engine
)

// DefaultEngine returns the shared process-wide engine, loading the
// language model on first call.
func DefaultEngine() *Engine {
	engineOnce.Do(func() {
		// ModelFromData decodes the tagger and NER data here, once,
		// instead of on the first user request.
		defaultEngine = &Engine{model: prose.ModelFromData("en")}
	})
	return defaultEngine
}

// Keywords returns up to topN distinct terms in vocabulary order.
func (e *Engine) Keywords(text string, topN int) []string {
	return ExtractKeywords(text, topN)
}

// Summary builds an extractive summary: sentences are scored by the
// sum of their term weights (TF-IDF with sentences as the corpus, stop
// words excluded) and the numSentences highest-scoring sentences are
// returned joined by single spaces in original document order.
//
// Texts with at most numSentences sentences are returned whole; texts
// with no sentences yield the empty string.
func (e *Engine) Summary(text string, numSentences int) string {
	sentences := e.sentences(CleanText(text))
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= numSentences {
		return strings.Join(sentences, " ")
	}

	docs := make([][]string, len(sentences))
	for i, s := range sentences {
		docs[i] = tokenize(s)
	}
	scores := tfidfScores(docs)

	idxs := make([]int, len(sentences))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		return scores[idxs[i]] > scores[idxs[j]]
	})
	selected := idxs[:numSentences]

	// Restore original document order before joining.
	sort.Ints(selected)

	picked := make([]string, 0, len(selected))
	for _, i := range selected {
		picked = append(picked, sentences[i])
	}
	return strings.Join(picked, " ")
}

// Entities returns recognised named-entity mentions in document order.
// Each mention is reported, so duplicates are expected.
func (e *Engine) Entities(text string) []domain.Entity {
	doc, err := prose.NewDocument(CleanText(text), prose.UsingModel(e.model))
	if err != nil {
		logger.Warn("entity recognition failed: %v", err)
		return []domain.Entity{}
	}

	ents := doc.Entities()
	result := make([]domain.Entity, 0, len(ents))
	for _, ent := range ents {
		result = append(result, domain.Entity{Text: ent.Text, Label: ent.Label})
	}
	return result
}

// sentences segments cleaned text and drops empty sentences.
func (e *Engine) sentences(cleaned string) []string {
	if cleaned == "" {
		return nil
	}

	doc, err := prose.NewDocument(cleaned,
		prose.UsingModel(e.model),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		logger.Warn("sentence segmentation failed: %v", err)
		return nil
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		text := strings.TrimSpace(s.Text)
		if text != "" {
			sentences = append(sentences, text)
		}
	}
	return sentences
}
