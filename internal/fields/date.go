package fields

import (
	"regexp"
	"sort"
	"strings"

	"github.com/araddon/dateparse"
)

const monthWords = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sept?(?:ember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

// Date-like span shapes found on certificates. Each hit is validated
// with the date parser before it counts.
var dateSpanPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthWords + `)\.?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:` + monthWords + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
}

var (
	reDateKeywords  = regexp.MustCompile(`(?i)date of certification|date of cert|issued dated|issued date|date:|date `)
	reOrdinalSuffix = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)
	reNumericDate   = regexp.MustCompile(`(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)
)

// contextWindow is how far back from a date span we look for wording
// like "date of certification" or "issued date".
const contextWindow = 120

type dateSpan struct {
	text  string
	start int
}

// extractDate finds all date-like spans, prefers one preceded by date
// keywords, and otherwise takes the last one; certificates put the
// issue date near the end. Ordinal suffixes are stripped.
func (x *Extractor) extractDate(text string) string {
	spans := findDateSpans(text)
	if len(spans) == 0 {
		// plain numeric date as a last resort
		if m := reNumericDate.FindStringSubmatch(text); m != nil {
			return m[1]
		}
		return ""
	}

	chosen := spans[len(spans)-1]
	for _, sp := range spans {
		from := sp.start - contextWindow
		if from < 0 {
			from = 0
		}
		if reDateKeywords.MatchString(text[from:sp.start]) {
			chosen = sp
			break
		}
	}
	return strings.TrimSpace(reOrdinalSuffix.ReplaceAllString(chosen.text, "$1"))
}

// findDateSpans collects parser-validated date spans in text order.
func findDateSpans(text string) []dateSpan {
	var spans []dateSpan
	seen := make(map[int]struct{})
	for _, p := range dateSpanPatterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			if _, dup := seen[loc[0]]; dup {
				continue
			}
			span := text[loc[0]:loc[1]]
			if !parsesAsDate(span) {
				continue
			}
			seen[loc[0]] = struct{}{}
			spans = append(spans, dateSpan{text: span, start: loc[0]})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

func parsesAsDate(span string) bool {
	cleaned := reOrdinalSuffix.ReplaceAllString(span, "$1")
	_, err := dateparse.ParseAny(cleaned)
	return err == nil
}
