package auth

import (
	"context"
	"os"
)

// domainEnvVars maps domains to environment variable names and the cookie
// each one carries, for users who prefer not to expose a browser profile.
var domainEnvVars = map[string]map[string]string{
	"linkedin.com": {
		"LINKEDIN_LI_AT":      "li_at",
		"LINKEDIN_JSESSIONID": "JSESSIONID",
		"LINKEDIN_LIDC":       "lidc",
		"LINKEDIN_BCOOKIE":    "bcookie",
	},
	"x.com": {
		"TWITTER_AUTH_TOKEN": "auth_token",
		"TWITTER_CT0":        "ct0",
	},
	"github.com": {
		"GITHUB_USER_SESSION": "user_session",
	},
}

// EnvSource reads cookies from environment variables.
type EnvSource struct{}

// Cookies returns cookies for the given domain from environment variables.
func (EnvSource) Cookies(_ context.Context, domain string) (map[string]string, error) {
	envMap, ok := domainEnvVars[domain]
	if !ok {
		return nil, nil //nolint:nilnil // no cookies for unknown domain is not an error
	}

	cookies := make(map[string]string)
	for envVar, cookieName := range envMap {
		if value := os.Getenv(envVar); value != "" {
			cookies[cookieName] = value
		}
	}

	if len(cookies) == 0 {
		return nil, nil //nolint:nilnil // no env vars set is not an error
	}
	return cookies, nil
}
