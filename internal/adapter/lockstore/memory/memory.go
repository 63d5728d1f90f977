// Package memory provides the in-process lock store backing seat
// reservations. One entry per reservation key, guarded by a single mutex so
// that acquisition is an atomic check-and-set rather than a read-then-write.
package memory

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	owner    string
	deadline time.Time
}

type LockStore struct {
	mu    sync.RWMutex
	locks map[string]entry

	now func() time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// NewLockStore builds a lock store and starts its background sweeper, which
// evicts expired entries every sweepInterval. The sweeper only bounds memory
// growth; every read path re-checks deadlines itself. Call Close to stop the
// sweeper.
func NewLockStore(sweepInterval time.Duration) *LockStore {
	s := &LockStore{
		locks: make(map[string]entry),
		now:   time.Now,
		done:  make(chan struct{}),
	}
	go s.run(sweepInterval)
	return s
}

func (s *LockStore) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *LockStore) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *LockStore) evictExpired() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.locks {
		if !now.Before(e.deadline) {
			delete(s.locks, key)
		}
	}
}

// TryAcquire grants the lock when the key is absent or its deadline has
// passed, stamping a fresh deadline of now+ttl. A live entry rejects the
// attempt, whoever the owner is. The whole decision happens under one
// critical section, so concurrent contenders for the same key cannot both
// win.
func (s *LockStore) TryAcquire(_ context.Context, key, owner string, ttl time.Duration) (bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.locks[key]; ok && now.Before(e.deadline) {
		return false, nil
	}
	s.locks[key] = entry{owner: owner, deadline: now.Add(ttl)}
	return true, nil
}

// Release removes the entry unconditionally; releasing an absent key is a
// no-op.
func (s *LockStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, key)
	return nil
}

func (s *LockStore) IsHeld(_ context.Context, key string) (bool, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.locks[key]
	return ok && now.Before(e.deadline), nil
}

func (s *LockStore) IsExpired(_ context.Context, key string) (bool, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.locks[key]
	return ok && e.deadline.Before(now), nil
}

// IsOwnedBy matches on owner identity alone: an expired-but-unswept entry
// still reports its last owner, which is how a lapsed grace period is told
// apart from a seat that was never locked.
func (s *LockStore) IsOwnedBy(_ context.Context, key, owner string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.locks[key]
	return ok && e.owner == owner, nil
}
