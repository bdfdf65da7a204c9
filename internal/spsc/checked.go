package spsc

import "sync/atomic"

// Checked wraps a Ring with runtime guards that panic if the SPSC
// contract is violated. This catches bugs early during development but
// adds ~1-2ns overhead per operation; use the bare Ring (or Split
// handles) on the performance path.
type Checked[T any] struct {
	ring *Ring[T]

	// SPSC guards: detect concurrent misuse
	pushActive atomic.Uint32
	popActive  atomic.Uint32
}

// NewChecked creates a guarded ring. Same capacity contract as New.
func NewChecked[T any](capacity int) *Checked[T] {
	return &Checked[T]{ring: New[T](capacity)}
}

// TryPush adds an item to the queue.
// Panics if another TryPush is in flight on a different goroutine.
func (c *Checked[T]) TryPush(v T) bool {
	if !c.pushActive.CompareAndSwap(0, 1) {
		panic("spsc: concurrent TryPush on SPSC ring - only one producer allowed")
	}
	defer c.pushActive.Store(0)
	return c.ring.TryPush(v)
}

// TryPop removes and returns an item from the queue.
// Panics if another TryPop is in flight on a different goroutine.
func (c *Checked[T]) TryPop() (T, bool) {
	if !c.popActive.CompareAndSwap(0, 1) {
		panic("spsc: concurrent TryPop on SPSC ring - only one consumer allowed")
	}
	defer c.popActive.Store(0)
	return c.ring.TryPop()
}

// PushMany pushes items until done or full, under the push guard.
func (c *Checked[T]) PushMany(items []T) int {
	if !c.pushActive.CompareAndSwap(0, 1) {
		panic("spsc: concurrent PushMany on SPSC ring - only one producer allowed")
	}
	defer c.pushActive.Store(0)
	return c.ring.PushMany(items)
}

// PopMany pops into out until filled or empty, under the pop guard.
func (c *Checked[T]) PopMany(out []T) int {
	if !c.popActive.CompareAndSwap(0, 1) {
		panic("spsc: concurrent PopMany on SPSC ring - only one consumer allowed")
	}
	defer c.popActive.Store(0)
	return c.ring.PopMany(out)
}

// Len returns the approximate number of queued items.
func (c *Checked[T]) Len() int { return c.ring.Len() }

// Cap returns the capacity of the underlying ring.
func (c *Checked[T]) Cap() int { return c.ring.Cap() }
