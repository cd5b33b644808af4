// Package relevance scores a profile's text against a keyword query and
// decides whether the profile is worth keeping.
//
// Scoring is deterministic: the same context and keywords always produce
// the same score and reason string. Nothing here performs I/O.
package relevance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/scrapsterhq/scrapster/pkg/profile"
	"github.com/scrapsterhq/scrapster/pkg/vocab"
)

// stopwords are dropped when splitting keywords into terms.
var stopwords = map[string]bool{
	"the": true, "and": true, "or": true, "for": true, "with": true, "from": true,
}

var termSeparator = regexp.MustCompile(`[\s,.-]+`)

// Terms splits raw keyword lines into the lowercase match terms used
// throughout scoring: tokens longer than two characters, stopwords
// removed, duplicates collapsed while preserving first-seen order.
func Terms(keywords []string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for _, part := range termSeparator.Split(kw, -1) {
			if len(part) <= 2 || stopwords[part] || seen[part] {
				continue
			}
			seen[part] = true
			terms = append(terms, part)
		}
	}
	return terms
}

// Scorer evaluates profiles against one keyword query.
type Scorer struct {
	terms   []string
	vocab   vocab.Vocabulary
	weights vocab.Weights
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithVocabulary replaces the default vocabulary.
func WithVocabulary(v vocab.Vocabulary) Option {
	return func(s *Scorer) { s.vocab = v }
}

// WithWeights replaces the default scoring weights.
func WithWeights(w vocab.Weights) Option {
	return func(s *Scorer) { s.weights = w }
}

// NewScorer builds a scorer for the given keyword lines.
func NewScorer(keywords []string, opts ...Option) *Scorer {
	s := &Scorer{
		terms:   Terms(keywords),
		vocab:   vocab.Default(),
		weights: vocab.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Terms returns the match terms derived from the keyword query.
func (s *Scorer) Terms() []string { return s.terms }

// MinScore returns the validity threshold.
func (s *Scorer) MinScore() float64 { return s.weights.MinScore }

// countContains returns how many of the terms occur in the (already
// case-folded) text.
func countContains(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}

func anyContains(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// Score computes the relevance score in [0,1] and a human-readable reason.
//
// Hard rejects come first and force the score to zero: two or more
// commercial terms, any single product indicator, or two or more
// company-page phrases. Otherwise the score is a capped weighted sum of
// keyword coverage, professional-vocabulary presence, and binary job-title
// and company matches, discounted heavily when no keyword matched at all.
func (s *Scorer) Score(pc profile.Context) (float64, string) {
	if pc.RawText == "" {
		return 0, "No profile text available"
	}

	combined := strings.ToLower(pc.Title + " " + pc.JobTitle + " " + pc.Company + " " + pc.RawText)

	if n := countContains(combined, s.vocab.Irrelevant); n >= 2 {
		return 0, fmt.Sprintf("Profile appears to be selling products (found %d irrelevant terms)", n)
	}

	keywordMatches := countContains(combined, s.terms)
	professionalCount := countContains(combined, s.vocab.Professional)

	if anyContains(combined, s.vocab.Product) {
		return 0, "Profile appears to be a product listing, not a professional"
	}
	if countContains(combined, s.vocab.CompanyPage) >= 2 {
		return 0, "Profile appears to be a company page, not an individual"
	}

	var score float64
	if keywordMatches > 0 && len(s.terms) > 0 {
		score += minFloat(float64(keywordMatches)/float64(len(s.terms)), 1) * s.weights.KeywordCoverage
	}
	if professionalCount > 0 {
		score += minFloat(float64(professionalCount)/float64(s.weights.ProfessionalCap), 1) * s.weights.Professional
	}

	jobTitleMatch := pc.JobTitle != "" && anyContains(strings.ToLower(pc.JobTitle), s.terms)
	if jobTitleMatch {
		score += s.weights.JobTitle
	}
	if pc.Company != "" && anyContains(strings.ToLower(pc.Company), s.terms) {
		score += s.weights.Company
	}

	// Keyword grounding is necessary: a professional-sounding profile
	// that shares no vocabulary with the query is heavily discounted.
	if keywordMatches == 0 {
		score *= s.weights.NoKeywordPenalty
	}

	var reasons []string
	if keywordMatches > 0 {
		reasons = append(reasons, fmt.Sprintf("Found %d keyword match(es)", keywordMatches))
	}
	if professionalCount > 0 {
		reasons = append(reasons, fmt.Sprintf("Found %d professional indicator(s)", professionalCount))
	}
	if jobTitleMatch {
		reasons = append(reasons, "Job title matches keywords")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "No clear keyword relevance")
	}

	return minFloat(score, 1), strings.Join(reasons, "; ")
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
