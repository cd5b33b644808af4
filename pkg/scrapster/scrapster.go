// Package scrapster fuses noisy email candidates and contextual text into
// one attributed, relevance-checked answer per profile.
//
// Basic usage:
//
//	engine := scrapster.New([]string{"RFID engineer"})
//	attributed := engine.Resolve(pc, candidates)
//	batch := scrapster.Deduplicate(profile.Batch{attributed})
//
// The engine is pure and side-effect free: it performs no I/O, never
// returns errors, and may be called from any number of goroutines. Use a
// Collector to accumulate results from concurrent workers.
package scrapster

import (
	"log/slog"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/dedupe"
	"github.com/scrapsterhq/scrapster/pkg/profile"
	"github.com/scrapsterhq/scrapster/pkg/rank"
	"github.com/scrapsterhq/scrapster/pkg/relevance"
	"github.com/scrapsterhq/scrapster/pkg/vocab"
)

type (
	// Candidate re-exports candidate.Candidate for convenience.
	Candidate = candidate.Candidate
	// Context re-exports profile.Context for convenience.
	Context = profile.Context
	// Attributed re-exports profile.Attributed for convenience.
	Attributed = profile.Attributed
)

// Engine runs the per-profile attribution pipeline for one keyword query.
type Engine struct {
	scorer *relevance.Scorer
	vocab  vocab.Vocabulary
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	vocab   vocab.Vocabulary
	weights vocab.Weights
	logger  *slog.Logger
}

// WithVocabulary replaces the default vocabularies.
func WithVocabulary(v vocab.Vocabulary) Option {
	return func(c *config) { c.vocab = v }
}

// WithWeights replaces the default scoring weights.
func WithWeights(w vocab.Weights) Option {
	return func(c *config) { c.weights = w }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates an Engine for the given keyword lines (one keyword phrase
// per element, as entered by the user).
func New(keywords []string, opts ...Option) *Engine {
	cfg := &config{
		vocab:   vocab.Default(),
		weights: vocab.DefaultWeights(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Engine{
		scorer: relevance.NewScorer(keywords,
			relevance.WithVocabulary(cfg.vocab),
			relevance.WithWeights(cfg.weights)),
		vocab:  cfg.vocab,
		logger: cfg.logger,
	}
}

// Resolve runs the end-to-end pipeline for one profile: generic-pattern
// exclusion, name-token gating, profile-specificity annotation, confidence
// ranking, and relevance validation. "No email found" is a normal outcome
// reported as an empty Email, never an error.
func (e *Engine) Resolve(pc profile.Context, cands []candidate.Candidate) profile.Attributed {
	survivors := e.filter(pc, cands)

	var email string
	if best, ok := rank.Select(survivors); ok {
		email = best.Value
		e.logger.Debug("attributed email",
			"url", pc.URL,
			"email", email,
			"provenance", best.Provenance.String(),
			"tier", rank.Tier(best.Provenance),
			"profile_specific", best.ProfileSpecific)
	} else {
		e.logger.Debug("no email candidate survived", "url", pc.URL, "candidates", len(cands))
	}

	return profile.Attributed{
		Context:   pc,
		Email:     email,
		Relevance: e.scorer.Validate(pc),
	}
}

// filter applies generic-pattern exclusion and the name-token attribution
// gate, and annotates each survivor with profile specificity.
//
// When the profile has a usable name, an observed candidate whose value
// contains no name token is discarded rather than attributed. Inferred
// candidates pass the gate (they are built from the name) but remain
// last-resort at selection time.
func (e *Engine) filter(pc profile.Context, cands []candidate.Candidate) []candidate.Candidate {
	tokens := candidate.NameTokens(pc.Name)
	if pc.Name == "Unknown" {
		tokens = nil
	}

	out := make([]candidate.Candidate, 0, len(cands))
	for _, c := range cands {
		if candidate.IsGeneric(c.Value, e.vocab.GenericEmail) {
			e.logger.Debug("discarded generic candidate", "url", pc.URL, "email", c.Value)
			continue
		}
		if len(tokens) > 0 && c.Provenance != candidate.Inferred &&
			!candidate.ContainsNameToken(c.Value, tokens) {
			e.logger.Debug("discarded candidate without name match",
				"url", pc.URL, "email", c.Value, "name", pc.Name)
			continue
		}
		c.ProfileSpecific = candidate.IsProfileSpecific(c.Value, pc)
		out = append(out, c)
	}
	return out
}

// Deduplicate removes duplicate and conflicting profiles from a finished
// batch; see the dedupe package for the policy.
func Deduplicate(batch profile.Batch) profile.Batch {
	return dedupe.Deduplicate(batch)
}
