package queue

// Channel wraps a buffered channel as a Queue.
//
// This is the standard library baseline the ring buffer is measured
// against. Each TryPush/TryPop performs a non-blocking channel operation
// via select with default. Unlike the ring, a channel is safe for any
// number of producers and consumers; it pays for that generality in the
// SPSC case.
type Channel[T any] struct {
	ch chan T
}

// NewChannel creates a Channel queue with the specified buffer size.
func NewChannel[T any](size int) *Channel[T] {
	return &Channel[T]{
		ch: make(chan T, size),
	}
}

// TryPush adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *Channel[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// TryPop removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *Channel[T]) TryPop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of items in the queue.
func (q *Channel[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *Channel[T]) Cap() int {
	return cap(q.ch)
}
