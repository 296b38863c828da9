package server

import (
	"sync"
	"time"

	"github.com/fovesdk/fove-go/internal/output"
)

// StatusCache provides a TTL-based cache for status snapshots, so agents
// polling the status tool don't hammer the runtime with version and license
// queries.
type StatusCache struct {
	mu        sync.Mutex
	result    output.StatusResult
	timestamp time.Time
	ttl       time.Duration
}

// NewStatusCache creates a new cache. A ttl of 0 disables caching.
func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{ttl: ttl}
}

// Get returns the cached snapshot if within TTL, otherwise collects fresh.
func (c *StatusCache) Get(collect func() output.StatusResult) output.StatusResult {
	if c.ttl == 0 {
		return collect()
	}

	c.mu.Lock()
	if !c.timestamp.IsZero() && time.Since(c.timestamp) < c.ttl {
		result := c.result
		c.mu.Unlock()
		return result
	}
	c.mu.Unlock()

	result := collect()

	c.mu.Lock()
	c.result = result
	c.timestamp = time.Now()
	c.mu.Unlock()

	return result
}

// Invalidate clears the cached snapshot.
func (c *StatusCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timestamp = time.Time{}
}
