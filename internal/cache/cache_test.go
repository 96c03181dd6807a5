package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nftforge/mint-service/internal/cache"
	"github.com/nftforge/mint-service/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func successResult() *models.VerificationResult {
	return &models.VerificationResult{
		Success: true,
		Verdict: &models.VerificationVerdict{Verified: true, Confidence: 100},
		Source:  "primary",
	}
}

func TestGet_MissOnEmptyCache(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := cache.NewTTLCache(5*time.Minute, clk)

	_, ok := c.Get("W1")

	assert.False(t, ok)
}

func TestPutGet_RoundTrip(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := cache.NewTTLCache(5*time.Minute, clk)
	result := successResult()

	c.Put("W1", result)
	entry, ok := c.Get("W1")

	assert.True(t, ok)
	assert.Equal(t, result, entry.Payload)
	assert.Equal(t, clk.now, entry.StoredAt)
}

func TestGet_ExpiresAfterTTL(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := cache.NewTTLCache(5*time.Minute, clk)

	c.Put("W1", successResult())
	clk.Advance(5 * time.Minute)

	_, ok := c.Get("W1")

	assert.False(t, ok)
}

func TestGet_FreshJustBeforeTTL(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := cache.NewTTLCache(5*time.Minute, clk)

	c.Put("W1", successResult())
	clk.Advance(5*time.Minute - time.Second)

	_, ok := c.Get("W1")

	assert.True(t, ok)
}

func TestPut_OverwritesWholeEntry(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := cache.NewTTLCache(5*time.Minute, clk)

	failure := &models.VerificationResult{
		Success:     false,
		ErrorKind:   "TIMEOUT",
		Retryable:   true,
		UserMessage: "The ledger service took too long to answer, please retry shortly",
	}
	c.Put("W1", failure)

	entry, ok := c.Get("W1")
	assert.True(t, ok)
	assert.False(t, entry.Payload.Success)
	assert.True(t, entry.Payload.Retryable)

	c.Put("W1", successResult())

	entry, ok = c.Get("W1")
	assert.True(t, ok)
	assert.True(t, entry.Payload.Success)
}

func TestClear_ReturnsClearedCount(t *testing.T) {
	clk := &fakeClock{now: time.Now()}
	c := cache.NewTTLCache(5*time.Minute, clk)

	c.Put("W1", successResult())
	c.Put("W2", successResult())

	assert.Equal(t, 2, c.Clear())

	_, ok := c.Get("W1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Clear())
}
