package source

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/profile"
)

var (
	inferLegalSuffix = regexp.MustCompile(`(?i)\s+(inc|llc|ltd|corp|corporation|company|co)\.?$`)
	inferDisallowed  = regexp.MustCompile(`[^a-z0-9.-]`)
)

// InferSource guesses an address from the person's name and company. The
// guess is unverified and always carries Inferred provenance, so it is
// only ever used when nothing was actually observed.
type InferSource struct{}

// Name implements Source.
func (InferSource) Name() string { return "infer" }

// Produce returns at most one candidate, built as first.last@domain from
// the profile's name and company. The company comes from the context
// field or, failing that, from a phrase like "at Acme" in the raw text.
// Companies with no recognizable public suffix get ".com" appended.
func (InferSource) Produce(_ context.Context, pc profile.Context) ([]candidate.Candidate, error) {
	company := pc.Company
	if company == "" {
		company = candidate.Company(pc.RawText)
	}
	value := Infer(pc.Name, company)
	if value == "" {
		return nil, nil
	}
	return []candidate.Candidate{{Value: value, Provenance: candidate.Inferred}}, nil
}

// Infer builds a single guessed address from a name and company, or ""
// when either input is unusable.
func Infer(name, company string) string {
	if name == "" || name == "Unknown" || company == "" {
		return ""
	}

	domain := inferLegalSuffix.ReplaceAllString(strings.ToLower(company), "")
	domain = inferDisallowed.ReplaceAllString(domain, "")
	domain = strings.Trim(domain, ".-")
	if domain == "" {
		return ""
	}
	if _, icann := publicsuffix.PublicSuffix(domain); !icann {
		domain += ".com"
	}

	parts := strings.Fields(strings.ToLower(name))
	if len(parts) == 0 {
		return ""
	}

	local := parts[0]
	if len(parts) > 1 {
		local = parts[0] + "." + parts[len(parts)-1]
	}

	value := local + "@" + domain
	if !candidate.Valid(value) {
		return ""
	}
	return value
}
