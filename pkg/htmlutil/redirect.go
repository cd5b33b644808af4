package htmlutil

import (
	"regexp"
	"strings"
)

var redirectPatterns = []*regexp.Regexp{
	// <meta http-equiv="refresh" content="0;url=...">, either attribute order
	regexp.MustCompile(`(?i)<meta[^>]+http-equiv\s*=\s*["']?refresh["']?[^>]+content\s*=\s*["']?\d+\s*;\s*url\s*=\s*["']?([^"'>\s]+)`),
	regexp.MustCompile(`(?i)<meta[^>]+content\s*=\s*["']?\d+\s*;\s*url\s*=\s*["']?([^"'>\s]+)[^>]+http-equiv\s*=\s*["']?refresh["']?`),
	// JavaScript location assignments and calls
	regexp.MustCompile(`(?i)window\.location(?:\.href)?\s*=\s*["']([^"']+)["']`),
	regexp.MustCompile(`(?i)document\.location(?:\.href)?\s*=\s*["']([^"']+)["']`),
	regexp.MustCompile(`(?i)window\.location\.(?:replace|assign)\s*\(\s*["']([^"']+)["']\s*\)`),
}

// RedirectURL checks markup for a meta-refresh or JavaScript redirect and
// returns the destination, or "" when the page does not redirect.
// Fragment-only and self-referential destinations are ignored.
func RedirectURL(htmlContent string) string {
	for _, p := range redirectPatterns {
		m := p.FindStringSubmatch(htmlContent)
		if len(m) < 2 {
			continue
		}
		url := strings.TrimSpace(m[1])
		url = strings.TrimRight(url, `"'>`)
		if url == "" || strings.HasPrefix(url, "#") || url == "." || url == "./" {
			continue
		}
		return url
	}
	return ""
}
