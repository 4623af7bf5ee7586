package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func testLimiter(max int, window time.Duration) (*Limiter, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(max, window)
	l.Now = func() time.Time { return now }
	return l, &now
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := testLimiter(5, 15*time.Minute)

	for i := 1; i <= 5; i++ {
		ok, _ := l.Allow("10.0.0.1")
		if !ok {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}
	ok, retryAfter := l.Allow("10.0.0.1")
	if ok {
		t.Fatalf("6th attempt in window should be rejected")
	}
	if retryAfter != 900 {
		t.Fatalf("retryAfter = %d, want 900", retryAfter)
	}
}

func TestLimiterKeepsRejectingWithinWindow(t *testing.T) {
	l, now := testLimiter(5, 15*time.Minute)

	for i := 0; i < 6; i++ {
		l.Allow("10.0.0.1")
	}
	*now = now.Add(10 * time.Minute)
	ok, retryAfter := l.Allow("10.0.0.1")
	if ok {
		t.Fatalf("attempt inside the window should stay rejected")
	}
	if retryAfter != 300 {
		t.Fatalf("retryAfter = %d, want 300 after 10 minutes elapsed", retryAfter)
	}
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	l, now := testLimiter(5, 15*time.Minute)

	for i := 0; i < 6; i++ {
		l.Allow("10.0.0.1")
	}
	*now = now.Add(15 * time.Minute)
	ok, _ := l.Allow("10.0.0.1")
	if !ok {
		t.Fatalf("attempt after the window elapsed should be allowed")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l, _ := testLimiter(5, 15*time.Minute)

	for i := 0; i < 6; i++ {
		l.Allow("10.0.0.1")
	}
	ok, _ := l.Allow("10.0.0.2")
	if !ok {
		t.Fatalf("a different address must not share the counter")
	}
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Increment("k", now)
		}()
	}
	wg.Wait()

	count, _ := s.Increment("k", now)
	if count != 51 {
		t.Fatalf("count = %d, want 51 (lost increments)", count)
	}
}
