package fields

import (
	"regexp"
	"strings"
)

const legalSuffixes = `Pvt|Pvt\.|Ltd|LLP|Inc|Corporation|Company|Firm|Institute|University|Bazaar|Bank|Group|Solutions|Technologies|Foundation|Enterprises`

var (
	// "at <Company>", "with <Company>", ... optionally ending in a
	// legal-entity suffix.
	reCompanyPreposition = regexp.MustCompile(`(?i)\b(?:at|with|from|under|in|by)\s+([A-Z][A-Za-z0-9&\-.,'\s]{2,120}?(?:` + legalSuffixes + `)?)\b`)

	// All-caps-led phrase, the way letterheads print company names.
	reCompanyCaps = regexp.MustCompile(`\b([A-Z][A-Z0-9 &\-.']{2,80})(?:\s+(?:Pvt|Ltd|LLP|INC|COMPANY|GROUP|BAZAAR|BANK|FOUNDATION))?\b`)

	// Footer/address block heuristic: a capitalized phrase near the end.
	reCompanyFooter = regexp.MustCompile(`([A-Z][A-Za-z &.']{2,80}(?:\s+(?:Pvt|Ltd|LLP|Inc|Company|Group|Bazaar|Firm))?)`)

	// Overrun cut: the capture ran into the award phrasing.
	reCompanyOverrun = regexp.MustCompile(`(?i)\b(for successfully|for completing|during|who|that|has successfully|has)\b`)
)

const footerWindow = 400

func companyFromPreposition(text string) string {
	m := reCompanyPreposition.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return trimCompanyCandidate(m[1])
}

func companyFromCapsPhrase(text string) string {
	m := reCompanyCaps.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return trimCompanyCandidate(m[1])
}

func (x *Extractor) companyFromNER(text string) string {
	if x.ner == nil {
		return ""
	}
	ents, err := x.ner.Entities(text)
	if err != nil {
		x.logger.Debug("ner failed", "error", err)
		return ""
	}
	// longest organization-like entity wins
	var best string
	for _, e := range ents {
		switch e.Label {
		case "ORG", "FAC", "NORP", "GPE":
			if t := strings.TrimSpace(e.Text); len(t) > len(best) {
				best = t
			}
		}
	}
	return best
}

func companyFromFooterBlock(text string) string {
	tail := text
	if len(tail) > footerWindow {
		tail = tail[len(tail)-footerWindow:]
	}
	m := reCompanyFooter.FindStringSubmatch(tail)
	if m == nil {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(m[1]), " ,.;:")
}

// trimCompanyCandidate cuts overrun clauses and trailing punctuation;
// candidates shorter than two characters are noise.
func trimCompanyCandidate(cand string) string {
	if loc := reCompanyOverrun.FindStringIndex(cand); loc != nil {
		cand = cand[:loc[0]]
	}
	cand = strings.TrimRight(strings.TrimSpace(cand), " ,.;:-")
	if len(cand) < 2 {
		return ""
	}
	return cand
}

// extractCompany runs the cascade and canonicalizes the winner against
// the known-organization list when one is configured.
func (x *Extractor) extractCompany(text string) string {
	cand := firstHit(x.companyStrategies, text)
	if cand == "" {
		return ""
	}
	if len(x.knownOrgs) > 0 {
		if canonical := fuzzyMatchOrganization(cand, x.knownOrgs, x.fuzzyThreshold); canonical != "" {
			cand = canonical
		}
	}
	return titleCase(collapseSpaces(cand))
}
