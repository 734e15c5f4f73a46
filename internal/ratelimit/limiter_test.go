package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := New(limit, window)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAllowUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("1.2.3.4"), "submission %d", i+1)
	}
	assert.False(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestDeniedCallDoesNotConsume(t *testing.T) {
	l, now := newTestLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}
	for i := 0; i < 10; i++ {
		require.False(t, l.Allow("1.2.3.4"))
	}

	// The window still resets relative to first submission, not the
	// denied attempts.
	*now = now.Add(time.Hour + time.Second)
	assert.True(t, l.Allow("1.2.3.4"))
}

func TestWindowResets(t *testing.T) {
	l, now := newTestLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}
	require.False(t, l.Allow("1.2.3.4"))

	// Exactly one window later is still inside the window.
	*now = now.Add(time.Hour)
	assert.False(t, l.Allow("1.2.3.4"))

	*now = now.Add(time.Second)
	assert.True(t, l.Allow("1.2.3.4"))

	// The reset grants a fresh budget.
	for i := 0; i < 4; i++ {
		assert.True(t, l.Allow("1.2.3.4"))
	}
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("1.2.3.4"))
	}
	require.False(t, l.Allow("1.2.3.4"))

	assert.True(t, l.Allow("5.6.7.8"))
	assert.True(t, l.Allow("unknown"))
}

func TestDefaultsApplied(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < DefaultLimit; i++ {
		assert.True(t, l.Allow("k"))
	}
	assert.False(t, l.Allow("k"))
}

func TestSweepDropsExpiredRecords(t *testing.T) {
	l, now := newTestLimiter(5, time.Hour)

	require.True(t, l.Allow("old"))
	*now = now.Add(30 * time.Minute)
	require.True(t, l.Allow("fresh"))
	require.Equal(t, 2, l.Len())

	*now = now.Add(45 * time.Minute)
	l.Sweep()

	assert.Equal(t, 1, l.Len())
	// "old" got swept and starts a new window; "fresh" keeps counting.
	assert.True(t, l.Allow("old"))
	assert.True(t, l.Allow("fresh"))
}

func TestSweepKeepsActiveWindows(t *testing.T) {
	l, _ := newTestLimiter(5, time.Hour)

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("b"))
	l.Sweep()
	assert.Equal(t, 2, l.Len())
}

func TestConcurrentAllowAccountsExactly(t *testing.T) {
	l, _ := newTestLimiter(5, time.Hour)

	const attempts = 50
	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- l.Allow("shared")
		}()
	}
	wg.Wait()
	close(results)

	allowed := 0
	for ok := range results {
		if ok {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed)
}

func TestConcurrentDistinctKeys(t *testing.T) {
	l, _ := newTestLimiter(2, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("client-%d", i)
			assert.True(t, l.Allow(key))
			assert.True(t, l.Allow(key))
			assert.False(t, l.Allow(key))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, l.Len())
}
