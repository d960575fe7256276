package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached summary stays valid.
const DefaultTTL = time.Hour

// Config configures a SummaryCache.
type Config struct {
	// TTL is the lifetime of each entry.
	// Default: 1 hour
	TTL time.Duration

	// Clock returns the current time. Tests inject a fake clock to
	// simulate expiry without sleeping.
	// Default: time.Now
	Clock func() time.Time
}

// SummaryCache is the in-memory, tenant-keyed summary store.
//
// Contract:
// - Concurrency: safe for concurrent use by multiple in-flight requests.
// - Isolation: entries for distinct tenants never interact.
// - Expiry: lazy, on access; Stats never mutates state.
type SummaryCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
}

// NewSummaryCache creates a new summary cache.
func NewSummaryCache(config Config) *SummaryCache {
	// Apply defaults
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	return &SummaryCache{
		entries: make(map[string]Entry),
		ttl:     config.TTL,
		now:     config.Clock,
	}
}

// Get retrieves the entry for a tenant. Returns (Entry{}, false) on
// miss or expiry; expired entries are deleted on access.
func (c *SummaryCache) Get(tenantKey string) (Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[tenantKey]
	c.mu.RUnlock()

	if !ok {
		return Entry{}, false
	}

	if !entry.Valid(c.now()) {
		// Expired - clean up lazily
		c.mu.Lock()
		delete(c.entries, tenantKey)
		c.mu.Unlock()
		return Entry{}, false
	}

	return entry, true
}

// Put stores a summary for a tenant, overwriting any prior entry.
// Invalid tenant keys are dropped silently: a result that cannot be
// attributed to a tenant must not be cached at all.
func (c *SummaryCache) Put(tenantKey, summary string) {
	if ValidateKey(tenantKey) != nil {
		return
	}

	now := c.now()
	c.mu.Lock()
	c.entries[tenantKey] = Entry{
		Summary:   summary,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.mu.Unlock()
}

// ClearAll empties the cache. Idempotent.
func (c *SummaryCache) ClearAll() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

// Len returns the number of stored entries, including any expired
// entries not yet lazily deleted.
func (c *SummaryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats reports the cache state for a tenant without mutating it.
// An empty tenant key reports ReasonIdentityUnavailable; a missing or
// expired entry reports ReasonNotCached.
func (c *SummaryCache) Stats(tenantKey string) Stats {
	if tenantKey == "" {
		return Stats{Cached: false, Reason: ReasonIdentityUnavailable}
	}

	c.mu.RLock()
	entry, ok := c.entries[tenantKey]
	c.mu.RUnlock()

	now := c.now()
	if !ok || !entry.Valid(now) {
		return Stats{Cached: false, Reason: ReasonNotCached}
	}

	return Stats{
		Cached:           true,
		IsValid:          true,
		AgeMinutes:       now.Sub(entry.CreatedAt).Minutes(),
		ExpiresInMinutes: entry.ExpiresAt.Sub(now).Minutes(),
		SummaryLength:    len(entry.Summary),
	}
}

// TTL returns the configured entry lifetime.
func (c *SummaryCache) TTL() time.Duration {
	return c.ttl
}
