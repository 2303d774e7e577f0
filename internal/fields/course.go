package fields

import (
	"regexp"
	"strings"
)

// Course/role cascade. RE2 has no lookahead, so the boundary words are
// consumed by a non-capturing group instead; only the captured span is
// used.
var coursePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for successfully completing\s+(?:a\s+|the\s+)?([A-Za-z &\-]{3,70})`),
	regexp.MustCompile(`(?i)(?:internship\s*(?:as|for|in|:)?\s*|training\s*(?:as|in|for)?\s*|as\s+an?\s+|role\s*(?:of|:)?\s*)([A-Za-z &\-()/]{2,80}?)\s*(?:\b(?:at|with|in|during|for)\b|,|\.|$)`),
	regexp.MustCompile(`(?i)(?:certificate of|certificate for|course:|program:)\s*([A-Za-z &\-()/]{2,80}?)\s*(?:\b(?:by|at|issued)\b|,|\.|$)`),
}

var (
	reCourseTrailingClause = regexp.MustCompile(`(?i)\b(at|with|from|during|for|under)\b.*$`)
	reCourseFiller         = regexp.MustCompile(`(?i)\b(internship|training|certificate|program|course|completion)\b`)
)

func extractCourse(text string) string {
	for _, p := range coursePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cand := strings.TrimSpace(m[1])
		// Drop accidentally captured company-like clauses and filler.
		cand = strings.TrimSpace(reCourseTrailingClause.ReplaceAllString(cand, ""))
		cand = strings.TrimSpace(reCourseFiller.ReplaceAllString(cand, ""))
		if cand != "" {
			return titleCase(collapseSpaces(cand))
		}
	}
	return ""
}
