package candidate

import (
	"strings"

	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// IsGeneric reports whether a candidate value contains any of the given
// exclusion patterns. The check is substring containment anywhere in the
// case-folded value, not prefix anchoring: "noreply" disqualifies
// "jane.noreply@acme.com" just as it does "noreply@acme.com".
func IsGeneric(value string, patterns []string) bool {
	folded := strings.ToLower(value)
	for _, p := range patterns {
		if strings.Contains(folded, p) {
			return true
		}
	}
	return false
}

// NameTokens splits a display name on whitespace and keeps the case-folded
// tokens longer than two characters. Short tokens like initials or "de"
// match too many unrelated addresses to be useful.
func NameTokens(name string) []string {
	var tokens []string
	for _, part := range strings.Fields(name) {
		if len(part) > 2 {
			tokens = append(tokens, strings.ToLower(part))
		}
	}
	return tokens
}

// ContainsNameToken reports whether the case-folded candidate value
// contains any of the profile's name tokens.
func ContainsNameToken(value string, tokens []string) bool {
	folded := strings.ToLower(value)
	for _, t := range tokens {
		if strings.Contains(folded, t) {
			return true
		}
	}
	return false
}

// IsProfileSpecific judges whether a candidate likely belongs to the
// subject of a profile: either its value contains a name token, or a
// company derived from the profile's context text appears in the
// candidate's domain.
func IsProfileSpecific(value string, pc profile.Context) bool {
	if value == "" {
		return false
	}

	if ContainsNameToken(value, NameTokens(pc.Name)) {
		return true
	}

	company := pc.Company
	if company == "" {
		company = Company(pc.RawText)
	}
	if company == "" {
		return false
	}

	squashed := squashCompany(company)
	if squashed == "" {
		return false
	}
	domain := value
	if at := strings.LastIndex(value, "@"); at >= 0 {
		domain = value[at+1:]
	}
	return strings.Contains(strings.ToLower(domain), squashed)
}

// squashCompany case-folds a company name and strips whitespace and
// punctuation so "Acme & Sons" can match the domain "acmesons.com".
func squashCompany(company string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(company) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
