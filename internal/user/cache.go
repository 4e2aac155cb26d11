package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/gridloom/gridloom/internal/domain"
	"github.com/gridloom/gridloom/internal/metrics"
)

// cachedAccountEntry wraps an account with version metadata for cache invalidation
type cachedAccountEntry struct {
	Version  string          `json:"version"`
	Account  *domain.Account `json:"account"`
	CachedAt time.Time       `json:"cached_at"`
}

// accountCache provides an in-memory LRU cache for account lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type accountCache struct {
	lru *expirable.LRU[string, *cachedAccountEntry]
}

// newAccountCache creates a new account cache with the specified size and TTL
func newAccountCache(size int, ttl time.Duration) *accountCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &accountCache{
		lru: expirable.NewLRU[string, *cachedAccountEntry](size, nil, ttl),
	}
}

// Get retrieves an account from the cache.
// Returns (nil, false) if not in cache, expired, or version mismatch.
// Automatically invalidates entries with mismatched versions.
func (c *accountCache) Get(uid string) (*domain.Account, bool) {
	entry, found := c.lru.Get(uid)
	if !found {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(uid)
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return entry.Account, true
}

// Set stores an account in the cache with current schema version
func (c *accountCache) Set(uid string, account *domain.Account) {
	c.lru.Add(uid, &cachedAccountEntry{
		Version:  CacheSchemaVersion,
		Account:  account,
		CachedAt: time.Now(),
	})
}

// Invalidate removes an account from the cache.
// Called after any write that changes the balance or the profile.
func (c *accountCache) Invalidate(uid string) {
	c.lru.Remove(uid)
}

// Clear removes all entries from the cache
func (c *accountCache) Clear() {
	c.lru.Purge()
}
