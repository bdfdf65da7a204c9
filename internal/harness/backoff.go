package harness

import "runtime"

// DefaultSpinBudget is the number of consecutive misses tolerated before
// the scheduler is yielded to. Spinning briefly keeps hand-off latency
// in the nanosecond range during bursts; yielding after the budget stops
// a starved side from burning a core while the other side is descheduled.
const DefaultSpinBudget = 256

// Backoff is the caller-side wait policy layered over the ring's
// non-blocking operations. The ring itself never blocks or spins; what
// to do on full/empty is the caller's decision, and this is ours:
// busy-poll up to a budget of misses, then runtime.Gosched.
type Backoff struct {
	miss   int
	budget int
}

// NewBackoff creates a Backoff with the given spin budget.
// A budget <= 0 selects DefaultSpinBudget.
func NewBackoff(budget int) *Backoff {
	if budget <= 0 {
		budget = DefaultSpinBudget
	}
	return &Backoff{budget: budget}
}

// Miss records a failed TryPush/TryPop. Once the budget of consecutive
// misses is spent, the goroutine yields and the count resets.
func (b *Backoff) Miss() {
	b.miss++
	if b.miss >= b.budget {
		b.miss = 0
		runtime.Gosched()
	}
}

// Hit resets the miss count after a successful operation.
func (b *Backoff) Hit() {
	b.miss = 0
}
