package spsc

// RelaxedRing is a deliberately BROKEN variant of Ring.
//
// It runs the exact same algorithm but reads and writes head and tail as
// plain (non-atomic) fields, i.e. with no cross-thread ordering at all —
// the Go analogue of using relaxed ordering on every index operation.
// Without the release publish / acquire observe pairing, the consumer may
// see a new head before the corresponding slot write, and read a stale or
// torn value; items can be silently lost or duplicated.
//
// It exists only as a negative fixture: run the stress test against it
// under `go test -race` and the race detector reports the conflicting
// index accesses, demonstrating that the atomic protocol in Ring is
// necessary rather than incidental.
//
// NEVER use RelaxedRing to move real data.
type RelaxedRing[T any] struct {
	buf  []T
	mask uint64

	_pad0 [56]byte //nolint:unused

	head uint64 // plain field: no publish ordering (the bug)

	_pad1 [56]byte //nolint:unused

	tail uint64 // plain field: no retire ordering (the bug)

	_pad2 [56]byte //nolint:unused
}

// NewRelaxed creates a RelaxedRing. Same capacity contract as New.
func NewRelaxed[T any](capacity int) *RelaxedRing[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("spsc: capacity must be a power of two >= 2")
	}
	return &RelaxedRing[T]{
		buf:  make([]T, capacity),
		mask: uint64(capacity - 1),
	}
}

// TryPush mirrors Ring.TryPush with the ordering stripped out.
func (r *RelaxedRing[T]) TryPush(v T) bool {
	head := r.head
	tail := r.tail // plain load: should be acquire
	next := (head + 1) & r.mask
	if next == tail {
		return false
	}
	r.buf[head] = v
	r.head = next // plain store: should be release
	return true
}

// TryPop mirrors Ring.TryPop with the ordering stripped out.
func (r *RelaxedRing[T]) TryPop() (T, bool) {
	tail := r.tail
	head := r.head // plain load: should be acquire
	if tail == head {
		var zero T
		return zero, false
	}
	v := r.buf[tail]
	r.tail = (tail + 1) & r.mask // plain store: should be release
	return v, true
}

// Cap returns the capacity of the underlying buffer.
func (r *RelaxedRing[T]) Cap() int {
	return len(r.buf)
}
