package source

import (
	"context"
	"net/url"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// URLSource extracts candidates embedded in the profile URL itself, such
// as mailto links or addresses in query parameters.
type URLSource struct{}

// Name implements Source.
func (URLSource) Name() string { return "url" }

// Produce scans the raw and percent-decoded URL for email candidates.
func (URLSource) Produce(_ context.Context, pc profile.Context) ([]candidate.Candidate, error) {
	text := pc.URL
	if decoded, err := url.QueryUnescape(pc.URL); err == nil && decoded != pc.URL {
		text += " " + decoded
	}
	return candidate.Extract(text, candidate.URL), nil
}
