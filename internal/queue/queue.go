// Package queue defines the non-blocking SPSC queue interface shared by
// the ring buffer and the buffered-channel baseline, so drivers and
// benchmarks can swap implementations.
//
// Implementations are non-blocking: TryPush returns false if full,
// TryPop returns false if empty. Full and empty are expected steady-state
// conditions in a bounded queue, not errors.
package queue

// Queue is a single-producer single-consumer queue.
type Queue[T any] interface {
	// TryPush adds an item to the queue.
	// Returns false if the queue is full.
	TryPush(T) bool

	// TryPop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	TryPop() (T, bool)

	// Len returns the approximate number of queued items.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int
}
