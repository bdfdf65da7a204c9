package harness_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/spsc-ring/internal/harness"
)

// TestGate_Race tests concurrent access to Gate.
// Run with: go test -race ./internal/harness
func TestGate_Race(t *testing.T) {
	g := harness.NewGate()
	var wg sync.WaitGroup

	// Spawn waiters
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Wait()
		}()
	}

	// Spawn pollers
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10000; j++ {
				_ = g.Released()
			}
		}()
	}

	// Releaser
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.Release()
	}()

	wg.Wait()

	if !g.Released() {
		t.Error("expected Released() = true after Release()")
	}
}

func TestGate_ReleaseIdempotent(t *testing.T) {
	g := harness.NewGate()

	if g.Released() {
		t.Error("expected Released() = false on fresh gate")
	}

	g.Release()
	g.Release()

	if !g.Released() {
		t.Error("expected Released() = true after Release()")
	}

	// Wait on an open gate returns immediately
	g.Wait()
}
