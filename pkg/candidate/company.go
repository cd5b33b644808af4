package candidate

import (
	"regexp"
	"strings"
)

// companyPatterns capture a capitalized phrase following a workplace
// preposition, ending at the next whitespace, comma, or period. Order
// matters: the first pattern that matches wins.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`at\s+([A-Z][A-Za-z0-9\s&,.-]+?)(?:\s|,|\.|$)`),
	regexp.MustCompile(`@\s*([A-Z][A-Za-z0-9\s&,.-]+?)(?:\s|,|\.|$)`),
	regexp.MustCompile(`from\s+([A-Z][A-Za-z0-9\s&,.-]+?)(?:\s|,|\.|$)`),
}

var legalSuffix = regexp.MustCompile(`(?i)\s+(Inc|LLC|Ltd|Corp|Corporation|Company|Co)\.?$`)

// Company derives an employer name from free-form context text such as
// "Senior RF Engineer at Acme Corp, 8 years experience". Trailing
// legal-entity suffixes are stripped. An empty result means no company
// could be derived, which is a normal outcome.
func Company(text string) string {
	for _, p := range companyPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		company := strings.TrimSpace(m[1])
		company = legalSuffix.ReplaceAllString(company, "")
		return company
	}
	return ""
}
