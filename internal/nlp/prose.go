package nlp

import (
	"log/slog"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer tags entities with the prose statistical model. The
// model is baked into the library and loaded on first use; instances are
// read-only and safe for concurrent callers.
type ProseRecognizer struct {
	logger *slog.Logger
}

func NewProseRecognizer(logger *slog.Logger) *ProseRecognizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProseRecognizer{logger: logger}
}

func (r *ProseRecognizer) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(true),
	)
	if err != nil {
		return nil, err
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
