package scheduling

import (
	"context"
	"sync"
)

// SlotLocker serializes the check-then-insert critical section of Book for
// a single slot key. Acquire blocks until the lock is held or ctx is done;
// the returned release function must be called exactly once.
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MemorySlotLocker is an in-process keyed mutex. It is sufficient for a
// single-instance deployment and serves as the test double for
// RedisSlotLocker. Entries are kept for the process lifetime; the key
// space is bounded by the distinct slots actually booked.
type MemorySlotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemorySlotLocker() *MemorySlotLocker {
	return &MemorySlotLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemorySlotLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
