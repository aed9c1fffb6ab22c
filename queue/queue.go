// Package queue provides a bounded, internally synchronized FIFO queue
// with a configurable overflow policy. Any number of producers may Push
// concurrently; Pop is non-blocking and intended for a single consumer
// that layers its own wake signal on top.
package queue

import (
	"errors"
	"sync"

	"github.com/hyperutils/hyperion/ring"
)

// Overflow policy: what Push does when the queue is exactly at capacity.
// The policy never changes behavior before the boundary.
type Policy uint8

const (
	// BlockWhenFull suspends the pushing goroutine until a Pop frees a
	// slot. No timeout: the wait is indefinite.
	BlockWhenFull Policy = iota
	// ErrWhenFull rejects the push with ErrFull; the queue is unchanged.
	ErrWhenFull
	// OverwriteWhenFull silently discards the oldest unread element and
	// enqueues the new one.
	OverwriteWhenFull
)

var (
	// ErrFull is returned by Push under ErrWhenFull when the queue is at
	// capacity.
	ErrFull = errors.New("queue: full")
	// ErrEmpty is returned by Pop when there is nothing to read.
	ErrEmpty = errors.New("queue: empty")
)

// Bounded is a fixed-capacity concurrent FIFO queue. The zero value is
// unusable; construct with New.
type Bounded[T any] struct {
	mu      sync.Mutex
	notFull *sync.Cond
	buf     *ring.Buffer[T]
	policy  Policy
}

// New builds a Bounded queue with the given capacity and overflow policy.
// Panics when capacity is not positive.
func New[T any](capacity int, policy Policy) *Bounded[T] {
	q := &Bounded[T]{
		buf:    ring.New[T](capacity),
		policy: policy,
	}
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Push enqueues v per the configured overflow policy. It returns ErrFull
// only under ErrWhenFull; the other policies always succeed (BlockWhenFull
// after waiting for space).
func (q *Bounded[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.buf.Full() {
		switch q.policy {
		case BlockWhenFull:
			for q.buf.Full() {
				q.notFull.Wait()
			}
		case ErrWhenFull:
			return ErrFull
		case OverwriteWhenFull:
			// PushBack evicts the oldest element itself.
		}
	}
	q.buf.PushBack(v)
	return nil
}

// Pop removes and returns the oldest element, or ErrEmpty. It never
// blocks; a freed slot wakes one goroutine parked in a blocking Push.
func (q *Bounded[T]) Pop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.buf.PopFront()
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	q.notFull.Signal()
	return v, nil
}

// Len returns the number of buffered elements.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// Cap returns the fixed capacity.
func (q *Bounded[T]) Cap() int { return q.buf.Cap() }
