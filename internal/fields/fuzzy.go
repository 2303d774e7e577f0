package fields

import (
	"strings"

	"github.com/agext/levenshtein"
)

var fuzzyParams = levenshtein.NewParams()

// fuzzyMatchOrganization matches a candidate against the known list and
// returns the canonical name of the best match scoring at or above the
// threshold (0..100), or "" when nothing clears it. Scoring takes the
// best of whole-string and per-token similarity so "Delloite Consulting"
// still lands on "Deloitte".
func fuzzyMatchOrganization(candidate string, known []string, threshold int) string {
	if candidate == "" || len(known) == 0 {
		return ""
	}

	best := ""
	bestScore := 0
	for _, org := range known {
		if score := fuzzyScore(candidate, org); score > bestScore {
			bestScore = score
			best = org
		}
	}
	if bestScore >= threshold {
		return best
	}
	return ""
}

// fuzzyScore is an edit-similarity score in 0..100.
func fuzzyScore(candidate, org string) int {
	cand := strings.ToLower(candidate)
	target := strings.ToLower(org)

	best := levenshtein.Match(cand, target, fuzzyParams)
	for _, tok := range strings.Fields(cand) {
		if s := levenshtein.Match(tok, target, fuzzyParams); s > best {
			best = s
		}
	}
	return int(best * 100)
}
