// Package rank assigns confidence tiers to email candidates by provenance
// and selects the single best candidate for a profile.
//
// Tiers reflect how trustworthy each acquisition channel is, independent
// of the candidate's content. Inference is deliberately last-resort: an
// inferred candidate never out-ranks anything actually observed, whatever
// the tiers say.
package rank

import "github.com/scrapsterhq/scrapster/pkg/candidate"

// Confidence tiers; higher is more trusted.
const (
	TierInferred   = 1 // pattern-guessed, unverified
	TierPage       = 2 // page text, shadow DOM, URL
	TierContact    = 3 // explicit contact surfaces: modals, profile sections
	TierIntercept  = 4 // captured from a structured API response
	tierUnrankable = 0
)

// Tier returns the confidence tier for a provenance.
func Tier(p candidate.Provenance) int {
	switch p {
	case candidate.NetworkIntercept:
		return TierIntercept
	case candidate.Modal, candidate.SectionText:
		return TierContact
	case candidate.PageText, candidate.ShadowDOM, candidate.URL:
		return TierPage
	case candidate.Inferred:
		return TierInferred
	default:
		return tierUnrankable
	}
}

// Select picks the best candidate for a profile from an ordered list of
// surviving (non-generic) candidates. Policy, in order:
//
//  1. If any candidate is profile-specific, the highest-tier
//     profile-specific one wins; ties break to first-encountered.
//  2. Otherwise the highest-tier observed (non-inferred) candidate wins,
//     same tiebreak. Inferred candidates are considered only when no
//     observed candidate exists at all.
//  3. No candidate at all means no email; ok is false.
func Select(cands []candidate.Candidate) (best candidate.Candidate, ok bool) {
	pick := func(accept func(candidate.Candidate) bool) (candidate.Candidate, bool) {
		var chosen candidate.Candidate
		found := false
		for _, c := range cands {
			if !accept(c) {
				continue
			}
			if !found || Tier(c.Provenance) > Tier(chosen.Provenance) {
				chosen = c
				found = true
			}
		}
		return chosen, found
	}

	if c, found := pick(func(c candidate.Candidate) bool {
		return c.ProfileSpecific && c.Provenance != candidate.Inferred
	}); found {
		return c, true
	}
	if c, found := pick(func(c candidate.Candidate) bool { return c.Provenance != candidate.Inferred }); found {
		return c, true
	}
	return pick(func(c candidate.Candidate) bool { return c.Provenance == candidate.Inferred })
}
