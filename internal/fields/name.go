package fields

import (
	"regexp"
	"strings"
)

// Certificate phraseology: "presented to X for...", "this is to certify
// that X has...". The captured span must look like a full name (two or
// more words).
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:presented to:?|awarded to:?)\s*([A-Za-z][A-Za-z\-.' ]{3,80}?)\s*(?:for|on|having|who|,|\.|\n)`),
	regexp.MustCompile(`(?i)(?:this is to certify that|this certifies that)\s*(?:mr\.|ms\.|mrs\.|dr\.)?\s*([A-Za-z][A-Za-z\-.' ]{3,80}?)\s*(?:has|who|,|\.)`),
}

// nameFromCapitalizedRunRe is the last-resort heuristic: a run of two to
// four consecutive capitalized words.
var nameFromCapitalizedRunRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\b`)

func nameFromPhraseology(text string) string {
	for _, p := range namePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(strings.Fields(candidate)) >= 2 {
			return candidate
		}
	}
	return ""
}

func (x *Extractor) nameFromNER(text string) string {
	if x.ner == nil {
		return ""
	}
	ents, err := x.ner.Entities(text)
	if err != nil {
		x.logger.Debug("ner failed", "error", err)
		return ""
	}
	for _, e := range ents {
		if e.Label != "PERSON" {
			continue
		}
		if name := strings.TrimSpace(e.Text); len(strings.Fields(name)) >= 2 {
			return name
		}
	}
	return ""
}

func nameFromCapitalizedRun(text string) string {
	m := nameFromCapitalizedRunRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
