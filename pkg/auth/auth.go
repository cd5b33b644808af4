// Package auth supplies session cookies for sites that hide profile
// details behind a login. Cookies come from the user's own browser or
// from environment variables; this package never performs a login itself.
package auth

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// Source provides authentication cookies for a domain.
type Source interface {
	// Cookies returns cookies for the given domain, or nil if unavailable.
	Cookies(ctx context.Context, domain string) (map[string]string, error)
}

// essentialCookies lists the session cookies worth carrying per domain.
// Domains not listed here pass all cookies through unfiltered.
var essentialCookies = map[string][]string{
	"linkedin.com": {"li_at", "JSESSIONID", "lidc", "bcookie"},
	"x.com":        {"auth_token", "ct0", "twid"},
	"github.com":   {"user_session", "logged_in"},
}

// NewCookieJar creates an http.CookieJar populated with the given cookies
// for a domain.
func NewCookieJar(domain string, cookies map[string]string) (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse("https://" + domain)
	if err != nil {
		return nil, err
	}

	var httpCookies []*http.Cookie
	for name, value := range cookies {
		if value != "" {
			httpCookies = append(httpCookies, &http.Cookie{
				Name:   name,
				Value:  value,
				Domain: "." + domain,
				Path:   "/",
			})
		}
	}

	jar.SetCookies(u, httpCookies)
	return jar, nil
}

// ChainSources returns cookies from the first source that provides them.
func ChainSources(ctx context.Context, domain string, sources ...Source) (map[string]string, error) {
	for _, src := range sources {
		cookies, err := src.Cookies(ctx, domain)
		if err != nil {
			return nil, err
		}
		if len(cookies) > 0 {
			return cookies, nil
		}
	}
	return nil, nil //nolint:nilnil // no source had cookies, but this is not an error
}
