// Package ratelimit throttles verification requests per wallet with a fixed
// window counter. The map is process-local; a multi-instance deployment swaps
// in a shared store behind the same Allow interface.
package ratelimit

import (
	"sync"
	"time"

	"github.com/nftforge/mint-service/internal/clock"
)

type bucket struct {
	windowStart time.Time
	count       int
}

type FixedWindowLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clock   clock.Clock
	buckets map[string]*bucket
}

func NewFixedWindowLimiter(limit int, window time.Duration, clk clock.Clock) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		limit:   limit,
		window:  window,
		clock:   clk,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the wallet may make another request in the current
// window. Buckets are created lazily; a denied request still counts against
// the window but never extends or resets it.
func (l *FixedWindowLimiter) Allow(walletID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	b, ok := l.buckets[walletID]
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets[walletID] = &bucket{windowStart: now, count: 1}
		return true
	}

	b.count++
	return b.count <= l.limit
}
