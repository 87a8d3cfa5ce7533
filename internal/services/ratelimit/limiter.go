package ratelimit

import (
	"sync"
	"time"
)

const staleAfter = 10 * time.Minute

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a token-bucket rate limiter keyed by caller identity,
// typically the client IP. Capacity and refill rate are fixed at
// construction so every caller gets the same allowance.
type Limiter struct {
	mu           sync.Mutex
	m            map[string]*bucket
	capacity     float64
	refillPerSec float64
	lastSweep    time.Time
}

func New(capacity, refillPerSec float64) *Limiter {
	return &Limiter{
		m:            make(map[string]*bucket),
		capacity:     capacity,
		refillPerSec: refillPerSec,
		lastSweep:    time.Now(),
	}
}

// Allow consumes one token for key, returning false when the bucket is
// empty.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: now}
		l.m[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * l.refillPerSec
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// sweep drops buckets idle long enough to have fully refilled, keeping
// the map bounded by active callers. Runs at most once per staleAfter.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < staleAfter {
		return
	}
	for key, b := range l.m {
		if now.Sub(b.last) > staleAfter {
			delete(l.m, key)
		}
	}
	l.lastSweep = now
}
