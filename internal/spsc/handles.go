package spsc

// Split returns a Producer/Consumer handle pair over the same ring.
//
// The handles make the one-writer-per-index contract structural: hand the
// Producer to the pushing goroutine and the Consumer to the popping
// goroutine, and neither side can call the other's operations. The Ring
// itself is unchanged; Split may be called more than once, but only one
// goroutine may ever use producer-side methods and one consumer-side.
func (r *Ring[T]) Split() (*Producer[T], *Consumer[T]) {
	return &Producer[T]{r: r}, &Consumer[T]{r: r}
}

// Producer is the push-only view of a Ring.
type Producer[T any] struct {
	r *Ring[T]
}

// TryPush adds an item; returns false if the queue is full.
func (p *Producer[T]) TryPush(v T) bool {
	return p.r.TryPush(v)
}

// PushMany pushes items until done or full; returns the count pushed.
func (p *Producer[T]) PushMany(items []T) int {
	return p.r.PushMany(items)
}

// Full reports whether the queue is full, from the producer's view.
func (p *Producer[T]) Full() bool {
	return p.r.Full()
}

// Cap returns the capacity of the underlying ring.
func (p *Producer[T]) Cap() int {
	return p.r.Cap()
}

// Consumer is the pop-only view of a Ring.
type Consumer[T any] struct {
	r *Ring[T]
}

// TryPop removes an item; returns false if the queue is empty.
func (c *Consumer[T]) TryPop() (T, bool) {
	return c.r.TryPop()
}

// PopMany pops into out until filled or empty; returns the count popped.
func (c *Consumer[T]) PopMany(out []T) int {
	return c.r.PopMany(out)
}

// Empty reports whether the queue is empty, from the consumer's view.
func (c *Consumer[T]) Empty() bool {
	return c.r.Empty()
}

// Len returns the approximate number of queued items.
func (c *Consumer[T]) Len() int {
	return c.r.Len()
}
