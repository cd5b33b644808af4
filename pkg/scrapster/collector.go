package scrapster

import (
	"log/slog"
	"sync"

	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// Collector accumulates attributed profiles from concurrent workers and
// produces the final deduplicated batch. The zero value is not usable;
// call NewCollector.
type Collector struct {
	mu     sync.Mutex
	batch  profile.Batch
	logger *slog.Logger
}

// NewCollector creates an empty collector.
func NewCollector(opts ...Option) *Collector {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Collector{logger: cfg.logger}
}

// Add appends a profile to the batch if it passed relevance validation.
// Invalid profiles are logged and dropped. Safe for concurrent use;
// insertion order follows the order Add is called in.
func (c *Collector) Add(p profile.Attributed) {
	if !p.Relevance.IsValid {
		c.logger.Debug("dropped irrelevant profile",
			"url", p.Context.URL,
			"name", p.Context.Name,
			"score", p.Relevance.Score,
			"reason", p.Relevance.Reason)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.batch = append(c.batch, p)
}

// Len reports how many profiles have been collected so far, before
// deduplication.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batch)
}

// Results returns the deduplicated batch. Call it once, after every
// worker has finished adding: the duplicate-resolution policy is
// first-in-wins, so results are only stable over a complete batch.
func (c *Collector) Results() profile.Batch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Deduplicate(c.batch)
}
