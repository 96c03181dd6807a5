// Package cache memoizes verification outcomes per wallet for a short TTL to
// absorb bursty re-verification requests. Failed fetches are cached alongside
// successes so a struggling provider is not hammered; entries keep enough
// shape for callers to tell the two apart.
package cache

import (
	"sync"
	"time"

	"github.com/nftforge/mint-service/internal/clock"
	"github.com/nftforge/mint-service/internal/models"
)

type Entry struct {
	Payload  *models.VerificationResult
	StoredAt time.Time
}

type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[string]Entry
}

func NewTTLCache(ttl time.Duration, clk clock.Clock) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		clock:   clk,
		entries: make(map[string]Entry),
	}
}

// Get returns the entry for a wallet while it is still fresh. Expired entries
// are evicted lazily on read.
func (c *TTLCache) Get(walletID string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[walletID]
	if !ok {
		return Entry{}, false
	}

	if c.clock.Now().Sub(entry.StoredAt) >= c.ttl {
		delete(c.entries, walletID)
		return Entry{}, false
	}

	return entry, true
}

// Put overwrites the wallet's entry whole; entries are never partially
// updated.
func (c *TTLCache) Put(walletID string, payload *models.VerificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[walletID] = Entry{
		Payload:  payload,
		StoredAt: c.clock.Now(),
	}
}

// Clear drops every entry and returns how many were removed. Admin-only.
func (c *TTLCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cleared := len(c.entries)
	c.entries = make(map[string]Entry)
	return cleared
}
