// Package textnorm cleans extracted certificate text for similarity
// scoring: whitespace and punctuation noise go, domain-significant
// tokens stay.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reSpaces  = regexp.MustCompile(`\s+`)
	reNonWord = regexp.MustCompile(`[^\w\s\-/,:.']`)
)

// Normalizer removes character noise and low-information stop words.
// The zero value keeps every token (empty stop-word set).
type Normalizer struct {
	stops map[string]struct{}
	keep  map[string]struct{}
}

// New returns a Normalizer with the standard English stop-word set and
// the built-in important-terms allow-list.
func New() *Normalizer {
	return &Normalizer{stops: englishStopWords, keep: importantTerms}
}

// NewWithoutStopWords returns a Normalizer that only cleans characters
// and whitespace, retaining every token.
func NewWithoutStopWords() *Normalizer {
	return &Normalizer{keep: importantTerms}
}

// Clean collapses whitespace, strips characters outside a conservative
// whitelist, and drops stop-word tokens unless they are domain keywords.
// Idempotent: Clean(Clean(t)) == Clean(t).
func (n *Normalizer) Clean(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimSpace(reSpaces.ReplaceAllString(text, " "))
	text = reNonWord.ReplaceAllString(text, " ")
	text = strings.TrimSpace(reSpaces.ReplaceAllString(text, " "))

	words := make([]string, 0, 64)
	for _, w := range strings.Split(text, " ") {
		if w == "" {
			continue
		}
		lw := strings.ToLower(w)
		if _, keep := n.keep[lw]; keep {
			words = append(words, w)
			continue
		}
		if _, stop := n.stops[lw]; !stop {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}
