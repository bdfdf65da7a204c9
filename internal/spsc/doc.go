// Package spsc provides a bounded, lock-free SPSC (Single-Producer
// Single-Consumer) ring buffer.
//
// # SPSC Safety (IMPORTANT)
//
// Ring is NOT safe for multiple producers or multiple consumers.
// Correct usage:
//   - Exactly ONE goroutine calls TryPush / PushMany
//   - Exactly ONE goroutine calls TryPop / PopMany
//   - These may be the same goroutine or different goroutines
//
// The bare Ring carries no runtime guards so the hot path stays at a
// handful of nanoseconds. Two safer layers are available on top:
//   - Split() returns Producer/Consumer handles so the compiler enforces
//     which side of the queue a goroutine holds.
//   - Checked wraps a Ring with runtime guards that panic on concurrent
//     misuse (~1-2ns overhead per operation, useful during development).
//
// # Memory ordering
//
// The protocol needs exactly two happens-before edges: the producer's
// slot write must be visible before its head publish (release/acquire on
// head), and the consumer's slot read must complete before its tail
// retire (release/acquire on tail). Go's sync/atomic operations are
// sequentially consistent, a strict superset of the required ordering,
// so plain atomic.Uint64 loads and stores are sufficient and correct.
//
// RelaxedRing demonstrates what happens without those edges. It is a
// deliberately broken fixture for the race detector; never use it to
// move real data.
package spsc
