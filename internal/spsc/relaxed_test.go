package spsc_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/randomizedcoder/spsc-ring/internal/spsc"
)

// Single-goroutine use of RelaxedRing is well defined, so the basic
// contract can be tested without tripping the race detector.
func TestRelaxedRing_SingleGoroutine(t *testing.T) {
	r := spsc.NewRelaxed[int](8)

	if _, ok := r.TryPop(); ok {
		t.Error("expected TryPop() = false on empty queue")
	}
	for i := 0; i < 7; i++ {
		if !r.TryPush(i) {
			t.Fatalf("expected TryPush(%d) = true", i)
		}
	}
	if r.TryPush(7) {
		t.Error("expected TryPush() = false on full queue")
	}
	for i := 0; i < 7; i++ {
		got, ok := r.TryPop()
		if !ok || got != i {
			t.Fatalf("expected (%d, true), got (%d, %v)", i, got, ok)
		}
	}
}

func TestNewRelaxedPanicsOnBadCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRelaxed(3) should panic")
		}
	}()
	_ = spsc.NewRelaxed[int](3)
}

// TestRelaxedRing_DemonstrateRace intentionally violates the memory
// ordering contract. It is skipped by default; to watch the race
// detector catch the missing publish/retire ordering, run:
//
//	SPSC_DEMONSTRATE_RACE=1 go test -race -run DemonstrateRace ./internal/spsc
//
// The detector is expected to report races on the head/tail fields.
// A clean -race run of the rest of this package, combined with a dirty
// run here, is the evidence that Ring's atomic protocol is what makes
// Ring correct.
func TestRelaxedRing_DemonstrateRace(t *testing.T) {
	if os.Getenv("SPSC_DEMONSTRATE_RACE") == "" {
		t.Skip("intentionally racy; set SPSC_DEMONSTRATE_RACE=1 and run with -race to observe")
	}

	const (
		count    = 100_000
		capacity = 1024
	)

	r := spsc.NewRelaxed[uint32](capacity)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < count; i++ {
			for !r.TryPush(uint32(i)) {
				runtime.Gosched()
			}
		}
	}()

	var sum uint64
	received := 0
	for received < count {
		if v, ok := r.TryPop(); ok {
			sum += uint64(v)
			received++
		}
	}
	<-done

	// Without ordering the checksum may or may not match; the race
	// report is the point, not the arithmetic.
	t.Logf("relaxed checksum: got %d, want %d", sum, uint64(count)*(count-1)/2)
}
