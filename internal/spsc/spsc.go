package spsc

import (
	"sync/atomic"
)

// Ring is a lock-free SPSC (Single-Producer Single-Consumer) ring buffer.
//
// WARNING: Ring is NOT safe for multiple producers or multiple consumers.
// Using it incorrectly will cause data races and undefined behavior.
// See the package documentation for the full contract, and Checked for a
// guarded variant that panics on misuse.
//
// Capacity is a power of two fixed at construction. One slot is always
// kept unused so that head == tail unambiguously means empty; a Ring of
// capacity N therefore holds at most N-1 items.
type Ring[T any] struct {
	buf  []T
	mask uint64

	// Cache line padding to prevent false sharing between the indices
	_pad0 [56]byte //nolint:unused

	head atomic.Uint64 // Next slot the producer writes; wrapped into [0, cap)

	_pad1 [56]byte //nolint:unused

	tail atomic.Uint64 // Next slot the consumer reads; wrapped into [0, cap)

	_pad2 [56]byte //nolint:unused
}

// New creates a Ring with the specified capacity.
//
// Capacity must be a power of two >= 2; anything else is a programming
// error and panics. There is no resize: a bounded queue that grows under
// pressure would need producer/consumer coordination on the new storage,
// which is exactly what this design avoids.
func New[T any](capacity int) *Ring[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("spsc: capacity must be a power of two >= 2")
	}
	return &Ring[T]{
		buf:  make([]T, capacity),
		mask: uint64(capacity - 1),
	}
}

// TryPush adds an item to the queue.
// Returns false if the queue is full (non-blocking backpressure signal,
// not an error; the caller decides whether to retry, drop, or back off).
//
// SPSC CONTRACT: Only ONE goroutine may call TryPush / PushMany.
func (r *Ring[T]) TryPush(v T) bool {
	head := r.head.Load() // producer-owned; relaxed would suffice
	tail := r.tail.Load() // acquire: observe the consumer's retirements

	next := (head + 1) & r.mask
	if next == tail {
		return false // full: the one spare slot keeps full != empty
	}

	// Write the slot before publishing the index
	r.buf[head] = v

	// Publish (store-release semantics via atomic): a consumer that
	// observes the new head also observes the slot write above
	r.head.Store(next)

	return true
}

// TryPop removes and returns an item from the queue.
// Returns false if the queue is empty.
//
// The popped slot is not zeroed: T is copied by value and the slot is
// logically dead until the producer overwrites it. Callers transferring
// pointer payloads who care about GC liveness should pop indices or
// clear on their side.
//
// SPSC CONTRACT: Only ONE goroutine may call TryPop / PopMany.
func (r *Ring[T]) TryPop() (T, bool) {
	tail := r.tail.Load() // consumer-owned; relaxed would suffice
	head := r.head.Load() // acquire: pairs with the producer's publish

	if tail == head {
		var zero T
		return zero, false // empty
	}

	// Read the slot before retiring the index
	v := r.buf[tail]

	// Retire (store-release semantics via atomic): the producer's next
	// acquire load of tail sees this slot as free for reuse
	r.tail.Store((tail + 1) & r.mask)

	return v, true
}

// Len returns the current number of items in the queue.
// This is an approximation and may be slightly stale when read
// concurrently with the producer or consumer.
func (r *Ring[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	return int((head - tail) & r.mask)
}

// Cap returns the capacity of the underlying buffer.
// The queue holds at most Cap()-1 items.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Empty reports whether the queue is empty.
// Advisory when read concurrently: only authoritative for the consumer.
func (r *Ring[T]) Empty() bool {
	return r.head.Load() == r.tail.Load()
}

// Full reports whether the queue is full.
// Advisory when read concurrently: only authoritative for the producer.
func (r *Ring[T]) Full() bool {
	return (r.head.Load()+1)&r.mask == r.tail.Load()
}
