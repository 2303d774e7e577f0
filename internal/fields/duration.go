package fields

import (
	"regexp"
	"strings"
)

// Duration cascade: a range ("3-6 months", "2 to 4 weeks") or a plain
// span ("54 days", "1 year"), with a last-resort "<N>-month" pattern.
var (
	reDurationRange  = regexp.MustCompile(`(?i)(\d{1,3}\s*(?:-|\sto\s)?\s*\d{0,3}\s*(?:days?|months?|weeks?|years?))`)
	reDurationSimple = regexp.MustCompile(`(?i)(\d+\s*(?:days?|months?|years?))`)
	reDurationMonth  = regexp.MustCompile(`(?i)(\d+\s*-\s*month|\d+\s*months?)`)
)

func extractDuration(text string) string {
	if m := reDurationRange.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reDurationSimple.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reDurationMonth.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
