// Package cache provides a concurrency-safe, time-bounded in-memory cache of
// validated API key records, keyed by digest.
//
// Expiry is handled in two independent paths: Get checks entry age lazily and
// never mutates, while Cleanup sweeps expired entries and is driven by an
// external periodic trigger. The cache never schedules its own eviction.
package cache

import (
	"sync"
	"time"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
)

// entry holds a cached API key record together with its insertion instant.
type entry struct {
	apiKey   *authDomain.APIKey
	cachedAt time.Time
}

// KeyCache is a reader/writer-locked digest→record map with a fixed TTL.
// Reads proceed concurrently; writes hold the lock only for their mutation.
// There is no size bound: growth is limited by distinct-digest churn and TTL.
type KeyCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewKeyCache creates an empty cache whose entries expire after ttl.
func NewKeyCache(ttl time.Duration) *KeyCache {
	return &KeyCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get returns the record cached under the digest if it exists and is younger
// than the TTL. A stale entry behaves as a miss but is left in place for the
// next Cleanup sweep.
func (c *KeyCache) Get(keyHash string) (*authDomain.APIKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[keyHash]
	if !ok || time.Since(e.cachedAt) >= c.ttl {
		return nil, false
	}
	return e.apiKey, true
}

// Insert upserts the record under the digest, resetting the entry's age.
func (c *KeyCache) Insert(keyHash string, apiKey *authDomain.APIKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[keyHash] = entry{apiKey: apiKey, cachedAt: time.Now()}
}

// Remove deletes the entry under the digest; it is a no-op if absent.
func (c *KeyCache) Remove(keyHash string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, keyHash)
}

// Cleanup removes every entry whose age exceeds the TTL. Intended to be run
// by an external periodic trigger.
func (c *KeyCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for keyHash, e := range c.entries {
		if time.Since(e.cachedAt) >= c.ttl {
			delete(c.entries, keyHash)
		}
	}
}

// Len returns the number of entries currently held, expired or not.
func (c *KeyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
