// Package search builds web search queries that steer results toward
// individual professional profiles rather than product or company pages.
package search

import (
	"fmt"
	"strings"
)

// Operator joins multiple keyword or location clauses.
type Operator string

// Supported clause operators. Anything else is treated as OR.
const (
	And Operator = "AND"
	Or  Operator = "OR"
)

// Query describes one search to run.
type Query struct {
	// Keywords holds raw keyword input, one phrase per line.
	Keywords string
	// Locations holds raw location input, one location per line.
	Locations string
	// KeywordOperator joins keyword phrases; defaults to OR.
	KeywordOperator Operator
	// LocationOperator joins locations; defaults to OR.
	LocationOperator Operator
	// TargetIndividuals biases the query toward personal profiles.
	TargetIndividuals bool
	// Strict restricts results to known profile sites instead of merely
	// adding profile vocabulary. Only meaningful with TargetIndividuals.
	Strict bool
}

// profileSites restricts a strict query to pages that are almost always
// personal profiles.
const profileSites = `site:linkedin.com/in OR site:github.com OR site:about.me OR site:twitter.com`

// profileKeywords broadens a normal query toward individuals without
// excluding other sites.
const profileKeywords = `profile OR "about me" OR linkedin OR contact`

// splitLines returns the non-empty trimmed lines of raw input.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func joinQuoted(items []string, op Operator) string {
	sep := " OR "
	if op == And {
		sep = " AND "
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, sep)
}

// Build assembles the final search string. An input with no keywords
// produces an empty query.
func (q Query) Build() string {
	keywords := splitLines(q.Keywords)
	if len(keywords) == 0 {
		return ""
	}

	var keywordQuery string
	if len(keywords) == 1 {
		keywordQuery = fmt.Sprintf("%q", keywords[0])
	} else {
		keywordQuery = "(" + joinQuoted(keywords, q.KeywordOperator) + ")"
	}

	switch {
	case q.TargetIndividuals && q.Strict:
		keywordQuery = fmt.Sprintf("(%s) AND (%s)", keywordQuery, profileSites)
	case q.TargetIndividuals:
		keywordQuery = keywordQuery + " " + profileKeywords
	}

	if locations := splitLines(q.Locations); len(locations) > 0 {
		keywordQuery += " AND (" + joinQuoted(locations, q.LocationOperator) + ")"
	}
	return keywordQuery
}

// KeywordLines returns the cleaned keyword phrases, ready to hand to the
// relevance scorer.
func (q Query) KeywordLines() []string {
	return splitLines(q.Keywords)
}
