// Package similarity scores two normalized texts on a [0,1] scale:
// token-embedding nearest-neighbor averaging when a word2vec model is
// loaded, Jaccard overlap otherwise.
package similarity

import (
	"log/slog"
	"strings"

	"github.com/praktiki/certverify/internal/embedding"
)

// maxTokens caps each side of the embedding comparison; certificates are
// short and anything past this is boilerplate. The Jaccard fallback is a
// set operation and runs uncapped.
const maxTokens = 200

type Scorer struct {
	model  *embedding.Model // nil disables the embedding path
	logger *slog.Logger
}

func NewScorer(model *embedding.Model, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{model: model, logger: logger}
}

// HasModel reports whether the embedding path is active.
func (s *Scorer) HasModel() bool { return s.model != nil }

// Score returns a similarity in [0,1]; 0 when either text is empty.
func (s *Scorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	tokensA := tokenize(a)
	tokensB := tokenize(b)

	if s.model != nil {
		return s.embeddingScore(capTokens(tokensA), capTokens(tokensB))
	}
	return jaccard(tokensA, tokensB)
}

// embeddingScore averages, over the in-vocabulary tokens of side A, the
// best cosine similarity against side B's in-vocabulary token set, then
// rescales the [-1,1] average to [0,1].
func (s *Scorer) embeddingScore(tokensA, tokensB []string) float64 {
	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		if s.model.Contains(t) {
			setB[t] = struct{}{}
		}
	}

	var sum float64
	var matched int
	for _, t := range tokensA {
		if !s.model.Contains(t) {
			continue
		}
		best := 0.0
		for u := range setB {
			if sim := s.model.Similarity(t, u); sim > best {
				best = sim
			}
		}
		sum += best
		matched++
	}

	if matched == 0 {
		return 0
	}
	avg := sum / float64(matched)
	scaled := (avg + 1) / 2
	if scaled < 0 {
		return 0
	}
	if scaled > 1 {
		return 1
	}
	return scaled
}

// jaccard is the lexical fallback: |A∩B| / |A∪B| over token sets.
func jaccard(tokensA, tokensB []string) float64 {
	setA := toSet(tokensA)
	setB := toSet(tokensB)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

// tokenize lowercases, splits on whitespace, and drops one-character
// tokens.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

func capTokens(tokens []string) []string {
	if len(tokens) > maxTokens {
		return tokens[:maxTokens]
	}
	return tokens
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
