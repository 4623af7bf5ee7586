// Package ratelimit implements fixed-window admission control keyed by client
// identity. Counters live behind the Store interface so the in-memory map can
// be swapped for a shared store (e.g. a key-value store with expiry) when the
// service runs as more than one instance.
package ratelimit

import (
	"sync"
	"time"
)

// Store counts hits per key. Increment must be atomic per key: one
// increment-and-compare, never a separate read then write.
type Store interface {
	Increment(key string, now time.Time) (count int, resetAt time.Time)
}

type entry struct {
	count       int
	windowStart time.Time
}

// MemoryStore is the single-instance Store. A process restart drops all
// counters; accepted for a single-instance deployment.
type MemoryStore struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*entry
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{
		window:  window,
		entries: make(map[string]*entry),
	}
}

func (s *MemoryStore) Increment(key string, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !now.Before(e.windowStart.Add(s.window)) {
		e = &entry{windowStart: now}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.windowStart.Add(s.window)
}

// Limiter applies a max-per-window policy over a Store.
type Limiter struct {
	Store  Store
	Max    int
	Window time.Duration
	Now    func() time.Time // injectable clock for tests; nil means time.Now
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		Store:  NewMemoryStore(window),
		Max:    max,
		Window: window,
	}
}

// Allow records one hit for key and reports whether it is within the limit.
// retryAfter is the remaining window in seconds when denied.
func (l *Limiter) Allow(key string) (ok bool, retryAfter int) {
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	count, resetAt := l.Store.Increment(key, now)
	if count <= l.Max {
		return true, 0
	}
	secs := int(resetAt.Sub(now).Seconds())
	if secs < 1 {
		secs = 1
	}
	return false, secs
}
