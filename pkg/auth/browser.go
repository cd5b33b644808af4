package auth

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register all browser cookie stores
	"github.com/browserutils/kooky/browser/firefox"
)

// BrowserSource reads cookies from the browsers installed on this machine.
type BrowserSource struct {
	logger *slog.Logger
}

// NewBrowserSource creates a browser cookie source.
func NewBrowserSource(logger *slog.Logger) *BrowserSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowserSource{logger: logger}
}

// Cookies returns cookies for the given domain from browser stores. A
// browser that cannot be read is skipped, not an error: running without
// authentication just yields thinner pages.
func (s *BrowserSource) Cookies(ctx context.Context, domain string) (map[string]string, error) {
	s.logger.DebugContext(ctx, "reading browser cookies", "domain", domain)

	// Firefox profiles first; kooky's auto-detection misses some layouts
	// and Firefox cookies need no OS keychain access.
	if cookies := s.tryFirefoxProfiles(ctx, domain); len(cookies) > 0 {
		return cookies, nil
	}

	kookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix(domain))
	if err != nil {
		s.logger.Debug("failed to read browser cookies", "domain", domain, "error", err)
		return nil, nil //nolint:nilnil // failed browser read is not a fatal error
	}
	if len(kookies) == 0 {
		return nil, nil //nolint:nilnil // no browser cookies is not an error
	}

	return s.filterEssential(kookies, domain), nil
}

func (s *BrowserSource) tryFirefoxProfiles(ctx context.Context, domain string) map[string]string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	globs := []string{
		filepath.Join(home, ".mozilla", "firefox", "*", "cookies.sqlite"),
		filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles", "*", "cookies.sqlite"),
	}

	for _, pattern := range globs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, f := range matches {
			kookies, err := firefox.ReadCookies(ctx, f, kooky.Valid, kooky.DomainHasSuffix(domain))
			if err != nil || len(kookies) == 0 {
				continue
			}
			s.logger.Debug("found Firefox cookies",
				"profile", filepath.Base(filepath.Dir(f)),
				"domain", domain,
				"count", len(kookies))
			return s.filterEssential(kookies, domain)
		}
	}
	return nil
}

// filterEssential keeps only the session cookies a domain needs, when we
// know which those are.
func (s *BrowserSource) filterEssential(kookies []*kooky.Cookie, domain string) map[string]string {
	essential, ok := essentialCookies[domain]
	if !ok {
		cookies := make(map[string]string, len(kookies))
		for _, c := range kookies {
			cookies[c.Name] = c.Value
		}
		return cookies
	}

	want := make(map[string]bool, len(essential))
	for _, name := range essential {
		want[name] = true
	}

	cookies := make(map[string]string)
	for _, c := range kookies {
		if want[c.Name] {
			cookies[c.Name] = c.Value
		}
	}

	var missing []string
	for _, name := range essential {
		if _, ok := cookies[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		s.logger.Info("browser cookies missing", "domain", domain, "keys", missing)
	}

	return cookies
}
