// Package httpcache fetches profile pages with disk caching, per-domain
// rate limiting, and retry on transient failures.
//
// Caching serves two purposes: repeated runs over the same search results
// are free, and concurrent workers asking for the same URL collapse into a
// single request.
package httpcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/codeGROOVE-dev/sfcache"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/localfs"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/null"
)

// UserAgent identifies every request this package makes.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:146.0) Gecko/20100101 Firefox/146.0"

// maxBodySize caps how much of a response body is read. Profile pages
// beyond this are truncated, not rejected.
const maxBodySize = 2 << 20

// Cache wraps sfcache for HTTP response caching.
type Cache struct {
	*sfcache.TieredCache[string, []byte]

	ttl time.Duration
}

// NewCache creates a Cache with disk persistence at ~/.cache/scrapster.
func NewCache(ttl time.Duration) (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return NewCacheWithPath(ttl, filepath.Join(cacheDir, "scrapster"))
}

// NewCacheWithPath creates a Cache with disk persistence at the given path.
func NewCacheWithPath(ttl time.Duration, cachePath string) (*Cache, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("scrapster", cachePath)
	if err != nil {
		return nil, fmt.Errorf("create persistence layer: %w", err)
	}

	tc, err := sfcache.NewTiered[string, []byte](persist, sfcache.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Cache{TieredCache: tc, ttl: ttl}, nil
}

// NewNullCache creates a Cache that stores nothing. Every lookup misses,
// but concurrent requests for the same URL still collapse.
func NewNullCache() *Cache {
	tc, err := sfcache.NewTiered[string, []byte](null.New[string, []byte]())
	if err != nil {
		panic("sfcache.NewTiered with null store: " + err.Error())
	}
	return &Cache{TieredCache: tc, ttl: 0}
}

// TTL returns the default TTL for cache entries.
func (c *Cache) TTL() time.Duration { return c.ttl }

// URLToKey converts a URL to a stable cache key.
func URLToKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(hash[:])
}

// HTTPError represents a non-200 HTTP response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// Client fetches pages through an optional cache and a shared per-domain
// rate limiter.
type Client struct {
	HTTP    *http.Client
	Cache   *Cache // nil disables caching
	Logger  *slog.Logger
	limiter *domainRateLimiter
	once    sync.Once
}

// NewClient builds a Client around the given cache. A nil cache means
// every fetch goes to the network.
func NewClient(cache *Cache, logger *slog.Logger) *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: 30 * time.Second},
		Cache:  cache,
		Logger: logger,
	}
}

func (c *Client) rateLimiter() *domainRateLimiter {
	c.once.Do(func() {
		c.limiter = &domainRateLimiter{minDelay: 1100 * time.Millisecond}
	})
	return c.limiter
}

// Fetch returns the body of the URL, from cache when possible. Failed
// fetches are cached too, so a dead URL is not hammered across a run.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if c.Cache == nil {
		return c.doFetch(ctx, rawURL)
	}

	data, err := c.Cache.GetSet(ctx, URLToKey(rawURL), func(ctx context.Context) ([]byte, error) {
		if c.Logger != nil {
			c.Logger.Debug("cache miss", "url", rawURL)
		}
		body, fetchErr := c.doFetch(ctx, rawURL)
		if fetchErr != nil {
			var httpErr *HTTPError
			if errors.As(fetchErr, &httpErr) {
				return fmt.Appendf(nil, "ERROR:%d", httpErr.StatusCode), nil
			}
			return fmt.Appendf(nil, "NETERR:%s", fetchErr.Error()), nil
		}
		return body, nil
	}, c.Cache.TTL())
	if err != nil {
		return nil, err
	}

	s := string(data)
	if code, found := strings.CutPrefix(s, "ERROR:"); found {
		status, _ := strconv.Atoi(code) //nolint:errcheck // 0 is acceptable default
		return nil, &HTTPError{StatusCode: status, URL: rawURL}
	}
	if msg, found := strings.CutPrefix(s, "NETERR:"); found {
		return nil, fmt.Errorf("cached network error: %s", msg)
	}
	return data, nil
}

func (c *Client) doFetch(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	return retry.DoWithData(
		func() ([]byte, error) {
			c.rateLimiter().Wait(rawURL, c.Logger)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
			if err != nil {
				return nil, fmt.Errorf("create request: %w", err)
			}
			req.Header.Set("User-Agent", UserAgent)
			req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

			resp, err := c.HTTP.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close() //nolint:errcheck // intentional

			if resp.StatusCode != http.StatusOK {
				return nil, &HTTPError{StatusCode: resp.StatusCode, URL: rawURL}
			}

			return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(300*time.Millisecond),
		retry.MaxJitter(150*time.Millisecond),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			if c.Logger != nil {
				c.Logger.Debug("retrying HTTP request", "attempt", n+1, "url", rawURL, "error", err)
			}
		}),
	)
}

// isRetryableError reports whether an error is transient.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false // other 4xx are permanent
		}
	}
	return true
}

// domainRateLimiter spaces requests to the same host. The delay applies
// per domain, so fetches against different hosts proceed in parallel.
type domainRateLimiter struct {
	lastRequest sync.Map
	mu          sync.Map
	minDelay    time.Duration
}

func (r *domainRateLimiter) Wait(rawURL string, logger *slog.Logger) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return
	}
	domain := u.Host

	muI, _ := r.mu.LoadOrStore(domain, &sync.Mutex{})
	mu, ok := muI.(*sync.Mutex)
	if !ok {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if lastI, ok := r.lastRequest.Load(domain); ok {
		if last, ok := lastI.(time.Time); ok {
			if elapsed := time.Since(last); elapsed < r.minDelay {
				wait := r.minDelay - elapsed
				if logger != nil {
					logger.Debug("rate limit pause", "domain", domain, "wait", wait)
				}
				time.Sleep(wait)
			}
		}
	}

	r.lastRequest.Store(domain, time.Now())
}
