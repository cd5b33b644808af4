// Package vocab holds the static pattern vocabularies and scoring weights
// used by the attribution engine. Everything here is plain data: the engine
// receives a Vocabulary by value and never mutates it, so tests can
// substitute smaller vocabularies without touching globals.
package vocab

// Vocabulary groups the fixed term lists the engine matches against.
type Vocabulary struct {
	// GenericEmail lists substrings that disqualify an email candidate
	// anywhere in its case-folded value (role prefixes, transactional
	// markers, known placeholder strings).
	GenericEmail []string `yaml:"generic_email"`

	// Irrelevant lists commercial terms that signal a product listing
	// rather than a person. The first five entries double as the
	// not_product structural check.
	Irrelevant []string `yaml:"irrelevant"`

	// Professional lists terms that indicate a professional profile.
	Professional []string `yaml:"professional"`

	// Product lists the narrow is-a-product indicators; any single
	// match hard-rejects a profile.
	Product []string `yaml:"product"`

	// CompanyPage lists phrases typical of company pages; two or more
	// matches hard-reject a profile.
	CompanyPage []string `yaml:"company_page"`

	// CompanyPageChecks is the narrower phrase list used by the
	// not_company_page structural check.
	CompanyPageChecks []string `yaml:"company_page_checks"`
}

// Weights holds the scoring constants. The values are empirically chosen
// and preserved for behavior parity; change them through configuration,
// not by editing call sites.
type Weights struct {
	KeywordCoverage  float64 `yaml:"keyword_coverage"`  // weight of keyword-term coverage
	Professional     float64 `yaml:"professional"`      // weight of professional-vocabulary presence
	JobTitle         float64 `yaml:"job_title"`         // bonus when a keyword appears in the job title
	Company          float64 `yaml:"company"`           // bonus when a keyword appears in the company name
	NoKeywordPenalty float64 `yaml:"no_keyword_penalty"` // multiplier applied when zero keywords matched
	MinScore         float64 `yaml:"min_score"`         // validity threshold
	ProfessionalCap  int     `yaml:"professional_cap"`  // professional matches counted before saturation
}

// Default returns the built-in vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		GenericEmail: []string{
			"noreply", "no-reply", "donotreply", "support@", "info@", "contact@",
			"admin@", "webmaster@", "privacy@", "hello@", "mailer-", "postmaster@",
			"sales@", "marketing@", "help@", "customerservice@", "service@",
			"broofa", "example", "test@", "sample@",
		},
		Irrelevant: []string{
			"shop", "store", "buy", "sell", "purchase", "price", "deal", "discount",
			"product", "products", "equipment", "device", "scanner", "reader",
			"handbag", "wallet", "blocking", "protection", "card holder",
			"amazon", "ebay", "aliexpress", "wholesale", "retail",
			"shipping", "delivery", "order", "cart", "checkout",
		},
		Professional: []string{
			"engineer", "developer", "architect", "specialist", "consultant",
			"manager", "director", "lead", "senior", "principal", "staff",
			"researcher", "analyst", "scientist", "expert", "professional",
			"experience", "years", "skills", "certification", "degree",
			"university", "college", "education", "project", "team",
		},
		Product: []string{
			"shop", "buy", "sell", "price", "add to cart", "checkout",
		},
		CompanyPage: []string{
			"about us", "our company", "our team", "contact us", "careers",
		},
		CompanyPageChecks: []string{
			"about us", "our company", "contact us",
		},
	}
}

// DefaultWeights returns the built-in scoring weights.
func DefaultWeights() Weights {
	return Weights{
		KeywordCoverage:  0.4,
		Professional:     0.3,
		JobTitle:         0.2,
		Company:          0.1,
		NoKeywordPenalty: 0.3,
		MinScore:         0.3,
		ProfessionalCap:  5,
	}
}
