package similarity

import "strings"

// RecognizedOrganizations is the fixed list of well-known employers and
// institutions certificates commonly name.
var RecognizedOrganizations = []string{
	"Deloitte", "EY", "PwC", "KPMG", "TCS", "Infosys", "Wipro",
	"Accenture", "Google", "Microsoft", "Amazon", "IBM", "Carter & Mills",
	"Law Firm", "Ministry", "High Court", "Supreme Court",
}

// FindRecognizedOrganization scans text for a case-insensitive substring
// match against the recognized list, returning the first canonical name
// or "" when none matches.
func FindRecognizedOrganization(text string) string {
	if text == "" {
		return ""
	}
	tl := strings.ToLower(text)
	for _, org := range RecognizedOrganizations {
		if strings.Contains(tl, strings.ToLower(org)) {
			return org
		}
	}
	return ""
}
