package usecase

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTripLocks_SerialisesSameTrip(t *testing.T) {
	locks := newTripLocks()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("trip-1")
			defer unlock()

			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxActive)
				if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
	assert.Zero(t, locks.size())
}

func TestTripLocks_DifferentTripsDoNotBlock(t *testing.T) {
	locks := newTripLocks()

	unlockA := locks.Lock("trip-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("trip-b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on trip-b blocked behind trip-a")
	}
	assert.Equal(t, 1, locks.size())
}
