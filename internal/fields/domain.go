package fields

import (
	"regexp"
	"strings"
)

var reDomain = regexp.MustCompile(`(?i)(?:domain|field\s*of|area\s*of|specialization)\s*[:\-]?\s*([A-Za-z &\-/]{3,60})`)

func extractDomain(text string) string {
	m := reDomain.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return titleCase(strings.TrimSpace(m[1]))
}
