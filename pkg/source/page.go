package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/htmlutil"
	"github.com/scrapsterhq/scrapster/pkg/httpcache"
	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// PageSource fetches the profile page over HTTP and extracts candidates
// from its visible text.
type PageSource struct {
	client *httpcache.Client
	logger *slog.Logger
}

// NewPageSource creates a page source on top of a fetch client.
func NewPageSource(client *httpcache.Client, logger *slog.Logger) *PageSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageSource{client: client, logger: logger}
}

// Name implements Source.
func (*PageSource) Name() string { return "page" }

// Produce fetches the profile URL and extracts email candidates from the
// page text. One client-side redirect is followed.
func (s *PageSource) Produce(ctx context.Context, pc profile.Context) ([]candidate.Candidate, error) {
	text, err := s.fetchText(ctx, pc.URL)
	if err != nil {
		return nil, err
	}
	return candidate.Extract(text, candidate.PageText), nil
}

// Enrich fills empty profile context fields from the fetched page: title,
// name, job title, and raw text. Fields already set are left alone so
// search-result metadata wins over page heuristics.
func (s *PageSource) Enrich(ctx context.Context, pc profile.Context) (profile.Context, error) {
	body, err := s.fetch(ctx, pc.URL)
	if err != nil {
		return pc, err
	}

	html := string(body)
	text := htmlutil.VisibleText(html)
	if htmlutil.IsNotFound(text) {
		return pc, fmt.Errorf("page not found: %s", pc.URL)
	}

	if pc.Title == "" {
		pc.Title = htmlutil.Title(html)
	}
	if pc.Name == "" || pc.Name == "Unknown" {
		if name := htmlutil.Name(pc.Title); !htmlutil.LooksLikeCompany(name) {
			pc.Name = name
		}
	}
	if pc.JobTitle == "" {
		pc.JobTitle = htmlutil.JobTitle(pc.Title, text)
	}
	if pc.RawText == "" {
		pc.RawText = text
	} else if desc := htmlutil.Description(html); desc != "" {
		pc.RawText = pc.RawText + " " + desc
	}
	return pc, nil
}

func (s *PageSource) fetchText(ctx context.Context, url string) (string, error) {
	body, err := s.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return htmlutil.VisibleText(string(body)), nil
}

func (s *PageSource) fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := s.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if redirect := htmlutil.RedirectURL(string(body)); redirect != "" {
		s.logger.DebugContext(ctx, "following client-side redirect", "from", url, "to", redirect)
		return s.client.Fetch(ctx, redirect)
	}
	return body, nil
}
