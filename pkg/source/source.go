// Package source acquires email candidates for a profile through
// independent channels: cached page fetches, the profile URL itself,
// pattern inference, and an optional real browser.
//
// Sources are additive and fallible. A source that fails contributes
// nothing; it never aborts the profile.
package source

import (
	"context"
	"log/slog"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// Source produces email candidates for one profile.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Produce returns zero or more candidates for the profile. An empty
	// result is a normal outcome.
	Produce(ctx context.Context, pc profile.Context) ([]candidate.Candidate, error)
}

// Collect runs each source in order and merges their candidates. Source
// failures are logged and treated as empty candidate sets.
func Collect(ctx context.Context, logger *slog.Logger, pc profile.Context, sources ...Source) []candidate.Candidate {
	var all []candidate.Candidate
	for _, src := range sources {
		cands, err := src.Produce(ctx, pc)
		if err != nil {
			logger.DebugContext(ctx, "candidate source failed",
				"source", src.Name(), "url", pc.URL, "error", err)
			continue
		}
		if len(cands) > 0 {
			logger.DebugContext(ctx, "candidates found",
				"source", src.Name(), "url", pc.URL, "count", len(cands))
		}
		all = append(all, cands...)
	}
	return all
}
