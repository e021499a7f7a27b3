package lock

import (
	"context"
	"sync"

	reserrors "tessera/internal/reservations/errors"
)

// Table provides per-key mutual exclusion for the check-then-commit section.
// Acquisition is context-bounded: a caller that gives up waiting gets
// ErrLockTimeout and never blocks the holder. Keys for different museums are
// independent, so unrelated commits proceed in parallel.
type Table struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewTable() *Table {
	return &Table{
		slots: make(map[string]chan struct{}),
	}
}

// slot returns the key's semaphore channel, creating it on first use. Slots
// are never removed; the key space is the bounded museum catalog.
func (t *Table) slot(key string) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		t.slots[key] = s
	}
	return s
}

// Acquire takes the key's lock, blocking until it is free or ctx ends. On
// success it returns a release function that must be called exactly once;
// callers defer it so the lock is released on every exit path.
func (t *Table) Acquire(ctx context.Context, key string) (func(), error) {
	s := t.slot(key)

	select {
	case s <- struct{}{}:
		var once sync.Once
		release := func() {
			once.Do(func() { <-s })
		}
		return release, nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, reserrors.ErrLockTimeout
		}
		return nil, ctx.Err()
	}
}
