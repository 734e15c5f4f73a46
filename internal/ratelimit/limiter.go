// Package ratelimit bounds form submissions per client identity using a
// fixed-window counter. The window resets relative to the first
// submission, so a client may land up to twice the limit across a window
// boundary; that is a property of the algorithm and is relied on by the
// public form endpoints' tests.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultLimit is the number of submissions accepted per window.
	DefaultLimit = 5
	// DefaultWindow is the counting window length.
	DefaultWindow = time.Hour
)

type record struct {
	count       int
	windowStart time.Time
}

// Limiter is an in-process fixed-window submission counter keyed by
// client identity. Safe for concurrent use; every decision is a single
// critical section.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record
	limit   int
	window  time.Duration

	now func() time.Time
}

// New constructs a Limiter. Non-positive arguments fall back to the
// defaults (5 submissions per hour).
func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		records: make(map[string]*record),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether a submission from key may proceed, consuming one
// slot when it does. A denied call leaves the record untouched.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	rec, ok := l.records[key]
	if !ok {
		l.records[key] = &record{count: 1, windowStart: now}
		return true
	}

	if now.Sub(rec.windowStart) > l.window {
		rec.count = 1
		rec.windowStart = now
		return true
	}

	if rec.count >= l.limit {
		return false
	}

	rec.count++
	return true
}

// Sweep drops records whose window has fully elapsed. Without it the map
// would grow for the life of the process, one entry per client ever seen.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for key, rec := range l.records {
		if rec.windowStart.Before(cutoff) {
			delete(l.records, key)
		}
	}
}

// StartJanitor sweeps on the given interval until ctx is cancelled.
func (l *Limiter) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}

// Len reports the number of tracked client keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
