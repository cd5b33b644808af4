// Package profile defines the common types for profile attribution.
package profile

// Context holds the extracted facts about one discovered profile.
// It is populated once by the collection layer and read-only afterwards.
// Missing fields are empty strings, never sentinels that crash.
//
//nolint:govet // fieldalignment: intentional layout for readability
type Context struct {
	Name     string // Display name ("Unknown" when extraction failed)
	Company  string // Employer, when known
	JobTitle string // Job title, when known
	URL      string // Canonical profile URL
	RawText  string // Rendered page text / snippet
	Title    string // Page title
}

// ValidationResult carries the relevance decision for one profile with
// enough detail for audit and debugging.
type ValidationResult struct {
	Checks     map[string]bool // Per-check outcomes (has_name, not_product, ...)
	Reason     string          // Human-readable explanation of the score
	Score      float64         // Relevance score in [0,1]
	Confidence float64         // Fraction of structural checks passed
	IsValid    bool            // Final accept/reject
}

// Attributed is the outcome of running the full pipeline on one profile.
// Email is empty when no candidate survived; that is a normal result,
// not a failure.
type Attributed struct {
	Context   Context
	Email     string
	Relevance ValidationResult
}

// Batch is the ordered collection of attribution outcomes for one run.
// It grows by append during collection and shrinks only through
// deduplication; individual entries are never mutated.
type Batch []Attributed
