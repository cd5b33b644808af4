// Package candidate turns raw text from any extraction source into email
// candidates and validates them against a profile's context.
//
// A Candidate is a syntactically valid email string tagged with the channel
// that produced it. Candidates are immutable; validation annotates copies
// rather than mutating in place.
package candidate

import (
	"regexp"
	"strings"
)

// Provenance identifies the extraction channel that produced a candidate.
// It is the only input to confidence ranking.
type Provenance int

// Extraction channels, roughly ordered by trustworthiness.
const (
	PageText         Provenance = iota // rendered page body
	SectionText                        // profile/about/contact sections
	ShadowDOM                          // text reachable only through shadow roots
	Modal                              // contact or message dialogs
	NetworkIntercept                   // captured structured API responses
	URL                                // the profile URL itself
	Inferred                           // pattern-guessed from name and company
)

// String returns the channel name for logging.
func (p Provenance) String() string {
	switch p {
	case PageText:
		return "page_text"
	case SectionText:
		return "section_text"
	case ShadowDOM:
		return "shadow_dom"
	case Modal:
		return "modal"
	case NetworkIntercept:
		return "network_intercept"
	case URL:
		return "url"
	case Inferred:
		return "inferred"
	default:
		return "unknown"
	}
}

// Candidate is one email string plus how it was obtained.
type Candidate struct {
	Value           string
	Provenance      Provenance
	ProfileSpecific bool
}

// emailPattern is the shared email-token grammar: local-part of
// alphanumerics and ._%+-, a domain of alphanumerics/.-, and a final
// label of at least two letters.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Extract finds the distinct syntactically valid email strings in a text
// blob and tags each with the given provenance. Matching is purely
// lexical, so HTML, rendered text, and stringified JSON all work the same
// way. Differently-cased copies of one address count once; the first
// occurrence's casing is kept. Malformed or empty input yields an empty
// result, never an error.
func Extract(text string, prov Provenance) []Candidate {
	if text == "" {
		return nil
	}

	matches := emailPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		folded := strings.ToLower(m)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, Candidate{Value: m, Provenance: prov})
	}
	return out
}

// Valid reports whether s is exactly one email per the shared grammar.
func Valid(s string) bool {
	m := emailPattern.FindString(s)
	return m == s && m != ""
}
