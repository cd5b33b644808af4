package htmlutil

import (
	"regexp"
	"strings"
)

// jobTitlePatterns recognize common professional titles in free text,
// most specific first.
var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Senior|Junior|Lead|Principal|Staff)?\s*(?:Software|Hardware|Embedded|IoT|RF|Wireless|Systems|Data|AI|ML|Cloud|DevOps|Full.?Stack|Frontend|Backend)?\s*(?:Engineer|Developer|Architect|Specialist|Consultant|Manager|Director|Technician|Analyst|Scientist|Researcher|Designer|Product|Marketing|Sales|Business)`),
	regexp.MustCompile(`(?i)Product\s*(?:Manager|Owner|Lead)`),
	regexp.MustCompile(`(?i)Technical\s*(?:Lead|Manager|Director|Architect)`),
	regexp.MustCompile(`(?i)Engineering\s*(?:Manager|Director|Lead)`),
}

// companyNameTerms mark a page title as a company rather than a person.
var companyNameTerms = []string{"Inc.", "LLC", "Corp.", "Corporation", "Company", "Ltd.", "Limited"}

// Name derives a person's name from a page title. Titles usually lead
// with the name, separated from the rest by "|" or "-". Returns "Unknown"
// when nothing usable remains.
func Name(title string) string {
	name := title
	if i := strings.Index(name, " | "); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " - "); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "Unknown"
	}
	return name
}

// LooksLikeCompany reports whether a name carries a corporate suffix and
// so cannot be an individual.
func LooksLikeCompany(name string) bool {
	for _, term := range companyNameTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}

// JobTitle extracts a job title from the page title and body text. Empty
// when no pattern matches.
func JobTitle(title, text string) string {
	combined := title + " " + text
	for _, p := range jobTitlePatterns {
		if m := p.FindString(combined); strings.TrimSpace(m) != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}
