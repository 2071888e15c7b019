package usecase

import "sync"

// tripLocks serialises generate-and-persist per trip ID so concurrent searches
// for the same trip cannot interleave their delete and insert steps.
type tripLocks struct {
	mu    sync.Mutex
	locks map[string]*tripLock
}

type tripLock struct {
	mu   sync.Mutex
	refs int
}

func newTripLocks() *tripLocks {
	return &tripLocks{locks: make(map[string]*tripLock)}
}

// Lock blocks until the caller owns tripID and returns the matching unlock.
// Entries are dropped once no goroutine holds or waits on them.
func (l *tripLocks) Lock(tripID string) (unlock func()) {
	l.mu.Lock()
	lock, ok := l.locks[tripID]
	if !ok {
		lock = &tripLock{}
		l.locks[tripID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, tripID)
		}
		l.mu.Unlock()
	}
}

// size reports how many trip IDs are tracked.
func (l *tripLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
