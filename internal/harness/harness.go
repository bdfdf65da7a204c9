package harness

import (
	"runtime"
	"sync"
	"time"

	"github.com/randomizedcoder/spsc-ring/internal/spsc"
)

// Options configures a Run.
type Options struct {
	// Count is the number of items to transfer.
	Count int

	// Capacity is the ring capacity; must be a power of two >= 2.
	Capacity int

	// Batch is the PushMany/PopMany batch size. 0 or 1 selects the
	// single-item TryPush/TryPop path.
	Batch int

	// ProducerCPU / ConsumerCPU pin each role's OS thread to a logical
	// CPU. Negative values disable pinning for that role.
	ProducerCPU int
	ConsumerCPU int

	// SpinBudget is the consecutive-miss budget before yielding.
	// 0 selects DefaultSpinBudget.
	SpinBudget int
}

// Result reports what a Run transferred.
type Result struct {
	Count    int           // items received by the consumer
	Checksum uint64        // sum of received values
	Want     uint64        // expected checksum: Count*(Count-1)/2
	Elapsed  time.Duration // release of the start gate to consumer completion
}

// OK reports whether every item arrived exactly once.
func (r Result) OK() bool {
	return r.Checksum == r.Want
}

// ItemsPerSec returns the transfer rate.
func (r Result) ItemsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Count) / r.Elapsed.Seconds()
}

// Run transfers opts.Count sequential values 0..Count-1 through a fresh
// ring, one dedicated producer goroutine to one dedicated consumer
// goroutine, and returns the consumer's checksum against the closed-form
// expected sum.
//
// Both goroutines lock their OS thread, optionally pin to a CPU, and
// spin on the start gate so neither begins before setup completes. The
// measured interval starts when the gate is released.
func Run(opts Options) Result {
	ring := spsc.New[uint64](opts.Capacity)
	producer, consumer := ring.Split()

	gate := NewGate()
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if opts.ProducerCPU >= 0 {
			_ = Pin(opts.ProducerCPU)
		}
		gate.Wait()
		runProducer(producer, opts)
	}()

	var sum uint64
	var received int
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if opts.ConsumerCPU >= 0 {
			_ = Pin(opts.ConsumerCPU)
		}
		gate.Wait()
		sum, received = runConsumer(consumer, opts)
	}()

	start := time.Now()
	gate.Release()
	wg.Wait()
	elapsed := time.Since(start)

	n := uint64(opts.Count)
	return Result{
		Count:    received,
		Checksum: sum,
		Want:     n * (n - 1) / 2,
		Elapsed:  elapsed,
	}
}

func runProducer(p *spsc.Producer[uint64], opts Options) {
	bo := NewBackoff(opts.SpinBudget)

	if opts.Batch <= 1 {
		for i := 0; i < opts.Count; i++ {
			for !p.TryPush(uint64(i)) {
				bo.Miss()
			}
			bo.Hit()
		}
		return
	}

	batch := make([]uint64, opts.Batch)
	next := 0
	for next < opts.Count {
		n := opts.Batch
		if remaining := opts.Count - next; n > remaining {
			n = remaining
		}
		for i := 0; i < n; i++ {
			batch[i] = uint64(next + i)
		}
		sent := 0
		for sent < n {
			pushed := p.PushMany(batch[sent:n])
			if pushed == 0 {
				bo.Miss()
			} else {
				bo.Hit()
			}
			sent += pushed
		}
		next += n
	}
}

func runConsumer(c *spsc.Consumer[uint64], opts Options) (sum uint64, received int) {
	bo := NewBackoff(opts.SpinBudget)

	if opts.Batch <= 1 {
		for received < opts.Count {
			v, ok := c.TryPop()
			if !ok {
				bo.Miss()
				continue
			}
			bo.Hit()
			sum += v
			received++
		}
		return sum, received
	}

	out := make([]uint64, opts.Batch)
	for received < opts.Count {
		n := c.PopMany(out)
		if n == 0 {
			bo.Miss()
			continue
		}
		bo.Hit()
		for i := 0; i < n; i++ {
			sum += out[i]
		}
		received += n
	}
	return sum, received
}
