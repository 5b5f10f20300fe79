package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"cinewire/internal/logger"
)

// Budget tracks request usage against the search provider's daily quota
// (the free NewsAPI tier allows 100 requests per day). Counters reset
// once the reset window has passed.
type Budget struct {
	mu        sync.Mutex
	count     int
	max       int
	cacheHits int
	resetTime time.Time
}

// NewBudget creates a budget tracker. max <= 0 means unlimited.
func NewBudget(max int) *Budget {
	return &Budget{
		max:       max,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// CanUse reports whether another request fits in the budget.
func (b *Budget) CanUse() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.max > 0 && b.count >= b.max {
		logger.Warn("search request budget reached", "used", b.count, "max", b.max)
		return false
	}
	return true
}

// Use consumes one request from the budget.
func (b *Budget) Use() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.max > 0 && b.count >= b.max {
		return fmt.Errorf("daily request budget exceeded (%d/%d)", b.count, b.max)
	}

	b.count++
	logger.Debug("search request budget", "used", b.count, "max", b.max)
	return nil
}

// RecordCacheHit notes a request that was served from cache instead of
// consuming budget.
func (b *Budget) RecordCacheHit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cacheHits++
}

// Remaining returns how many requests are left in the current window.
// Unlimited budgets report -1.
func (b *Budget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.max <= 0 {
		return -1
	}
	left := b.max - b.count
	if left < 0 {
		left = 0
	}
	return left
}

// Stats returns current usage for the metrics endpoint.
func (b *Budget) Stats() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	return map[string]interface{}{
		"requests_used":  b.count,
		"requests_limit": b.max,
		"cache_hits":     b.cacheHits,
		"reset_time":     b.resetTime,
	}
}

// checkReset resets counters if the reset window has passed.
// Caller must hold the lock.
func (b *Budget) checkReset() {
	if time.Now().After(b.resetTime) {
		logger.Info("resetting search request budget", "used", b.count)
		b.count = 0
		b.cacheHits = 0
		b.resetTime = time.Now().Add(24 * time.Hour)
	}
}
