package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LockStore {
	t.Helper()
	s := NewLockStore(time.Hour)
	t.Cleanup(s.Close)
	return s
}

func TestTryAcquire_MutualExclusion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const contenders = 64

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins []string
	)

	start := make(chan struct{})
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()
			<-start
			ok, err := s.TryAcquire(ctx, "show1:A1", owner, time.Minute)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins = append(wins, owner)
				mu.Unlock()
			}
		}(fmt.Sprintf("user%d", i))
	}
	close(start)
	wg.Wait()

	require.Len(t, wins, 1, "exactly one contender must win the seat")

	owned, err := s.IsOwnedBy(ctx, "show1:A1", wins[0])
	require.NoError(t, err)
	assert.True(t, owned)
}

func TestTryAcquire_RejectsWhileLive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.TryAcquire(ctx, "show1:A1", "alice", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.TryAcquire(ctx, "show1:A1", "bob", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// The original holder cannot refresh a live lock either; acquisition is
	// replace-or-reject, not update.
	ok, err = s.TryAcquire(ctx, "show1:A1", "alice", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTryAcquire_ReclaimAfterExpiry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	ok, err := s.TryAcquire(ctx, "show1:A1", "alice", 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// Past the deadline, and the sweeper has not run: a different owner must
	// still be able to take the seat.
	current = current.Add(6 * time.Second)

	ok, err = s.TryAcquire(ctx, "show1:A1", "bob", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	owned, err := s.IsOwnedBy(ctx, "show1:A1", "bob")
	require.NoError(t, err)
	assert.True(t, owned, "fresh acquisition replaces the stale owner")

	owned, err = s.IsOwnedBy(ctx, "show1:A1", "alice")
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestExpiryStates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	expired, err := s.IsExpired(ctx, "show1:A1")
	require.NoError(t, err)
	assert.False(t, expired, "absent key is not expired")

	held, err := s.IsHeld(ctx, "show1:A1")
	require.NoError(t, err)
	assert.False(t, held)

	ok, err := s.TryAcquire(ctx, "show1:A1", "alice", 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	expired, err = s.IsExpired(ctx, "show1:A1")
	require.NoError(t, err)
	assert.False(t, expired)

	held, err = s.IsHeld(ctx, "show1:A1")
	require.NoError(t, err)
	assert.True(t, held)

	current = current.Add(6 * time.Second)

	expired, err = s.IsExpired(ctx, "show1:A1")
	require.NoError(t, err)
	assert.True(t, expired)

	held, err = s.IsHeld(ctx, "show1:A1")
	require.NoError(t, err)
	assert.False(t, held)

	// Owner identity survives expiry until the entry is swept or replaced.
	owned, err := s.IsOwnedBy(ctx, "show1:A1", "alice")
	require.NoError(t, err)
	assert.True(t, owned)
}

func TestEvictExpired(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	ok, err := s.TryAcquire(ctx, "show1:A1", "alice", 5*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.TryAcquire(ctx, "show1:A2", "alice", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	current = current.Add(6 * time.Second)
	s.evictExpired()

	owned, err := s.IsOwnedBy(ctx, "show1:A1", "alice")
	require.NoError(t, err)
	assert.False(t, owned, "expired entry must be gone after a sweep")

	expired, err := s.IsExpired(ctx, "show1:A1")
	require.NoError(t, err)
	assert.False(t, expired, "swept key behaves like it was never locked")

	owned, err = s.IsOwnedBy(ctx, "show1:A2", "alice")
	require.NoError(t, err)
	assert.True(t, owned, "live entry survives the sweep")
}

func TestSweeperRuns(t *testing.T) {
	s := NewLockStore(10 * time.Millisecond)
	t.Cleanup(s.Close)
	ctx := context.Background()

	ok, err := s.TryAcquire(ctx, "show1:A1", "alice", 5*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		owned, err := s.IsOwnedBy(ctx, "show1:A1", "alice")
		return err == nil && !owned
	}, time.Second, 5*time.Millisecond, "sweeper should evict the expired entry")
}

func TestRelease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Release(ctx, "show1:A1"), "releasing an absent key is a no-op")

	ok, err := s.TryAcquire(ctx, "show1:A1", "alice", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Release(ctx, "show1:A1"))

	ok, err = s.TryAcquire(ctx, "show1:A1", "bob", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released seat is immediately available again")
}
