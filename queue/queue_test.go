package queue

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBounded_FIFO(t *testing.T) {
	q := New[int](4, ErrWhenFull)
	for i := 0; i < 4; i++ {
		require.NoError(t, q.Push(i))
	}
	for i := 0; i < 4; i++ {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBounded_ErrWhenFull(t *testing.T) {
	q := New[string](2, ErrWhenFull)
	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))

	err := q.Push("c")
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 2, q.Len(), "rejected push must leave the queue unchanged")

	got, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", got, "rejected item was not enqueued")
}

func TestBounded_OverwriteWhenFull(t *testing.T) {
	q := New[string](2, OverwriteWhenFull)
	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))
	require.NoError(t, q.Push("c"), "overwrite push always succeeds")
	assert.Equal(t, 2, q.Len())

	got, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", got, "oldest item is no longer retrievable")
	got, _ = q.Pop()
	assert.Equal(t, "c", got)
}

// The blocking-policy scenario: a push at capacity suspends until a
// concurrent Pop frees a slot.
func TestBounded_BlockWhenFull(t *testing.T) {
	q := New[string](2, BlockWhenFull)
	require.NoError(t, q.Push("a"))
	require.NoError(t, q.Push("b"))

	var pushed atomic.Bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = q.Push("c")
		pushed.Store(true)
	}()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, pushed.Load(), "push must block while full")

	got, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("blocked push did not complete after a slot freed")
	}

	got, _ = q.Pop()
	assert.Equal(t, "b", got)
	got, _ = q.Pop()
	assert.Equal(t, "c", got)
	_, err = q.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBounded_CapacityInvariantUnderConcurrency(t *testing.T) {
	const (
		producers = 8
		perWorker = 500
	)
	q := New[int](16, BlockWhenFull)

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if err := q.Push(p*perWorker + i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	seen := make(map[int]bool, producers*perWorker)
	for len(seen) < producers*perWorker {
		assert.LessOrEqual(t, q.Len(), q.Cap())
		v, err := q.Pop()
		if err != nil {
			time.Sleep(time.Millisecond)
			continue
		}
		assert.False(t, seen[v], "duplicate delivery of %d", v)
		seen[v] = true
	}
	require.NoError(t, g.Wait())
	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNew_InvalidCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { New[int](0, ErrWhenFull) })
}
