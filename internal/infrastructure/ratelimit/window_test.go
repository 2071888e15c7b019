package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowLimiter_AllowsOncePerWindow(t *testing.T) {
	l := NewWindowLimiter(50 * time.Millisecond)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "search:FCO-BCN-2026-07-01"))
	assert.False(t, l.Allow(ctx, "search:FCO-BCN-2026-07-01"))
	assert.True(t, l.Allow(ctx, "search:FCO-BCN-2026-07-02"), "keys are independent")

	time.Sleep(70 * time.Millisecond)

	assert.True(t, l.Allow(ctx, "search:FCO-BCN-2026-07-01"), "allowed again after the window")
}

func TestWindowLimiter_ConcurrentCallersGetOneSlot(t *testing.T) {
	l := NewWindowLimiter(time.Minute)

	var allowed int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow(context.Background(), "refresh:trip-1") {
				atomic.AddInt32(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed)
}

func TestWindowLimiter_EvictsExpiredKeys(t *testing.T) {
	l := NewWindowLimiter(20 * time.Millisecond)
	for _, key := range []string{"a", "b", "c"} {
		l.Allow(context.Background(), key)
	}
	assert.Equal(t, 3, l.Len())

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestNewWindowLimiter_DefaultWindow(t *testing.T) {
	l := NewWindowLimiter(0)
	assert.Equal(t, DefaultCooldown, l.window)
}
