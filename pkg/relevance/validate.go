package relevance

import (
	"strings"

	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// notProductTermCount is how many leading irrelevant-vocabulary terms feed
// the not_product structural check.
const notProductTermCount = 5

// Validate composes the relevance score with structural checks into a
// final accept/reject decision. A failing profile is a normal filtering
// outcome: the caller drops it from the batch and may log the reason.
func (s *Scorer) Validate(pc profile.Context) profile.ValidationResult {
	score, reason := s.Score(pc)

	text := strings.ToLower(pc.RawText)

	productTerms := s.vocab.Irrelevant
	if len(productTerms) > notProductTermCount {
		productTerms = productTerms[:notProductTermCount]
	}

	checks := map[string]bool{
		"has_name":          pc.Name != "" && pc.Name != "Unknown" && len(pc.Name) > 2,
		"has_keyword_match": anyContains(text, s.terms),
		"is_professional":   anyContains(text, s.vocab.Professional),
		"not_product":       !anyContains(text, productTerms),
		"not_company_page":  !anyContains(text, s.vocab.CompanyPageChecks),
	}

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}

	return profile.ValidationResult{
		IsValid: score >= s.weights.MinScore &&
			checks["has_name"] &&
			checks["has_keyword_match"] &&
			checks["not_product"],
		Score:      score,
		Reason:     reason,
		Confidence: float64(passed) / float64(len(checks)),
		Checks:     checks,
	}
}
