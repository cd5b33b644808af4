// Package htmlutil provides lightweight HTML processing for profile pages.
//
// Everything here is regex-based on raw markup. That is deliberate: we
// only need titles, meta descriptions, and visible text for downstream
// email extraction and relevance scoring, not a faithful DOM.
package htmlutil

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	scriptPattern     = regexp.MustCompile(`(?is)<(script|style|noscript)[^>]*>.*?</(script|style|noscript)>`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
	titlePattern      = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	ogTitlePattern    = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:title["'][^>]+content=["']([^"']+)["']`)
	firstH1Pattern    = regexp.MustCompile(`(?i)<h1[^>]*>([^<]+)</h1>`)
	descPattern       = regexp.MustCompile(`(?i)<meta[^>]+name=["']description["'][^>]+content=["']([^"']+)["']`)
	ogDescPattern     = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:description["'][^>]+content=["']([^"']+)["']`)
)

// VisibleText strips scripts, styles, and tags and returns the page's
// plain text with whitespace collapsed.
func VisibleText(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}
	content := scriptPattern.ReplaceAllString(htmlContent, " ")
	content = tagPattern.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	content = multiSpacePattern.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// Title extracts the page title, preferring <title>, then og:title, then
// the first <h1>.
func Title(htmlContent string) string {
	for _, p := range []*regexp.Regexp{titlePattern, ogTitlePattern, firstH1Pattern} {
		if matches := p.FindStringSubmatch(htmlContent); len(matches) > 1 {
			return strings.TrimSpace(html.UnescapeString(matches[1]))
		}
	}
	return ""
}

// Description extracts the meta description, preferring name=description
// over og:description.
func Description(htmlContent string) string {
	if matches := descPattern.FindStringSubmatch(htmlContent); len(matches) > 1 {
		return strings.TrimSpace(html.UnescapeString(matches[1]))
	}
	if matches := ogDescPattern.FindStringSubmatch(htmlContent); len(matches) > 1 {
		return strings.TrimSpace(html.UnescapeString(matches[1]))
	}
	return ""
}

// IsNotFound detects common "page not found" responses that arrive with a
// 200 status. Pages matching here carry no usable profile.
func IsNotFound(text string) bool {
	lower := strings.ToLower(text)
	patterns := []string{
		"404 not found",
		"page not found",
		"error 404",
		"profile not found",
		"user not found",
		"this account has been suspended",
		"user does not exist",
		"this page doesn't exist",
		"this profile is not available",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
