// Package nlp provides the optional named-entity fallback used by field
// extraction. A nil Recognizer simply disables the fallback strategies;
// it is never an error condition.
package nlp

// Entity is a labeled span found in text.
type Entity struct {
	Text  string
	Label string // "PERSON", "ORG", "GPE", ...
}

// Recognizer finds named entities in text.
type Recognizer interface {
	Entities(text string) ([]Entity, error)
}
