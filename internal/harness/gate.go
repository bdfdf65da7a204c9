package harness

import (
	"runtime"
	"sync/atomic"
)

// Gate is a one-shot start barrier.
//
// Both worker goroutines spin in Wait() until the coordinator calls
// Release(), so setup cost (goroutine spawn, thread pinning) never leaks
// into the measured interval. Each Wait poll is a single atomic load.
//
// Safe for concurrent use: any number of goroutines may Wait() while one
// calls Release(). Release is idempotent.
type Gate struct {
	released atomic.Bool
}

// NewGate creates a closed Gate.
func NewGate() *Gate {
	return &Gate{}
}

// Release opens the gate. Safe to call multiple times.
func (g *Gate) Release() {
	g.released.Store(true)
}

// Released returns true if the gate has been opened.
func (g *Gate) Released() bool {
	return g.released.Load()
}

// Wait blocks (spinning) until the gate is opened.
func (g *Gate) Wait() {
	for !g.released.Load() {
		runtime.Gosched()
	}
}
