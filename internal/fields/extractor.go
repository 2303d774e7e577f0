// Package fields recovers certificate fields (name, course, company,
// domain, duration, certification date) from raw extracted text. Each
// field runs an ordered list of strategies sharing the signature
// func(string) string; the first non-empty candidate wins.
package fields

import (
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/praktiki/certverify/internal/nlp"
)

// Config wires the optional collaborators into the extractor.
type Config struct {
	Recognizer         nlp.Recognizer // nil disables NER fallbacks
	KnownOrganizations []string       // nil disables fuzzy canonicalization
	FuzzyThreshold     int            // 0..100; <=0 means default 80
}

type strategy func(text string) string

type Extractor struct {
	ner            nlp.Recognizer
	knownOrgs      []string
	fuzzyThreshold int
	logger         *slog.Logger

	nameStrategies    []strategy
	companyStrategies []strategy
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = 80
	}
	x := &Extractor{
		ner:            cfg.Recognizer,
		knownOrgs:      cfg.KnownOrganizations,
		fuzzyThreshold: cfg.FuzzyThreshold,
		logger:         logger,
	}
	// Strategy order is the contract: regex phraseology first, NER when
	// configured, positional heuristics last.
	x.nameStrategies = []strategy{
		nameFromPhraseology,
		x.nameFromNER,
		nameFromCapitalizedRun,
	}
	x.companyStrategies = []strategy{
		companyFromPreposition,
		companyFromCapsPhrase,
		x.companyFromNER,
		companyFromFooterBlock,
	}
	return x
}

// Extract never errors; unrecoverable fields keep the sentinel.
func (x *Extractor) Extract(text string) Record {
	rec := NewRecord()
	if strings.TrimSpace(text) == "" {
		return rec
	}

	t := precleanForExtraction(text)

	if name := firstHit(x.nameStrategies, t); name != "" {
		rec.Name = collapseSpaces(name)
	}
	if course := extractCourse(t); course != "" {
		rec.Course = course
	}
	if company := x.extractCompany(t); company != "" {
		rec.Company = company
	}
	if duration := extractDuration(t); duration != "" {
		rec.Duration = duration
	}
	if domain := extractDomain(t); domain != "" {
		rec.Domain = domain
	}
	if date := x.extractDate(t); date != "" {
		rec.DateOfCertification = date
	}

	x.logger.Debug("field extraction done",
		"name", rec.Name,
		"company", rec.Company,
		"duration", rec.Duration,
	)
	return rec
}

func firstHit(strategies []strategy, text string) string {
	for _, s := range strategies {
		if candidate := s(text); candidate != "" {
			return candidate
		}
	}
	return ""
}

var (
	reSpaceRuns    = regexp.MustCompile(`\s+`)
	reBrokenHyphen = regexp.MustCompile(`\s*-\s*`)
)

// precleanForExtraction normalizes whitespace and rejoins hyphenated
// tokens OCR tends to break apart, but keeps punctuation structure the
// field regexes rely on.
func precleanForExtraction(text string) string {
	t := strings.NewReplacer("\r", " ", "\t", " ").Replace(text)
	t = strings.TrimSpace(reSpaceRuns.ReplaceAllString(t, " "))
	t = reBrokenHyphen.ReplaceAllString(t, "-")
	return t
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaceRuns.ReplaceAllString(s, " "))
}

// a cases.Caser is stateful, so each call gets its own
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
