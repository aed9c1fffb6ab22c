// Package ring provides a fixed-capacity circular buffer. The buffer is
// not internally synchronized; callers that share one across goroutines
// must hold their own lock (queue.Bounded does exactly that).
package ring

// Buffer is a fixed-capacity FIFO ring of T. The zero value is unusable;
// construct with New.
type Buffer[T any] struct {
	slots []T
	read  int
	write int
	count int
}

// New builds a Buffer with the given capacity. Panics when capacity is not
// positive: a zero-capacity ring cannot hold anything and indicates a
// configuration bug.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{slots: make([]T, capacity)}
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Empty reports whether no elements are buffered.
func (b *Buffer[T]) Empty() bool { return b.count == 0 }

// Full reports whether the buffer is at capacity.
func (b *Buffer[T]) Full() bool { return b.count == len(b.slots) }

// PushBack appends v, overwriting the oldest element when full. It reports
// whether an element was evicted.
func (b *Buffer[T]) PushBack(v T) (evicted bool) {
	if b.Full() {
		// Drop the oldest unread element; count stays at capacity.
		b.read = b.next(b.read)
		b.count--
		evicted = true
	}
	b.slots[b.write] = v
	b.write = b.next(b.write)
	b.count++
	return evicted
}

// PopFront removes and returns the oldest element. The second result is
// false when the buffer is empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.Empty() {
		return zero, false
	}
	v := b.slots[b.read]
	b.slots[b.read] = zero
	b.read = b.next(b.read)
	b.count--
	return v, true
}

// Front returns the oldest element without removing it. The second result
// is false when the buffer is empty.
func (b *Buffer[T]) Front() (T, bool) {
	var zero T
	if b.Empty() {
		return zero, false
	}
	return b.slots[b.read], true
}

func (b *Buffer[T]) next(i int) int {
	i++
	if i == len(b.slots) {
		return 0
	}
	return i
}
