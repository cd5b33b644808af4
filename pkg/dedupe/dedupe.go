// Package dedupe removes duplicate and conflicting profiles from a
// finished batch.
//
// The pass is greedy, stable, and single-threaded by design: "first
// occurrence wins" depends on a strict input ordering, so it must run once
// after all profiles for a batch have been collected. Running it again on
// its own output is a no-op.
package dedupe

import (
	"strings"

	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// Deduplicate returns a new batch with duplicates removed, preserving the
// relative order of kept entries. A profile is dropped when its URL was
// already seen, or when its email was already claimed by a different URL.
// The same URL claiming the same email twice is redundancy, not conflict,
// and is handled by the URL check.
func Deduplicate(batch profile.Batch) profile.Batch {
	seenURLs := make(map[string]bool, len(batch))
	claimedBy := make(map[string]string, len(batch)) // email -> first claiming URL

	kept := make(profile.Batch, 0, len(batch))
	for _, p := range batch {
		url := p.Context.URL
		email := strings.ToLower(strings.TrimSpace(p.Email))

		if url != "" && seenURLs[url] {
			continue
		}
		if email != "" {
			if owner, ok := claimedBy[email]; ok && owner != url {
				continue
			}
		}

		if url != "" {
			seenURLs[url] = true
		}
		if email != "" {
			claimedBy[email] = url
		}
		kept = append(kept, p)
	}
	return kept
}
