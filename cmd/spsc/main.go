// Command spsc runs the concurrent SPSC ring throughput harness:
// one producer goroutine pushes 0..n-1, one consumer goroutine pops and
// sums, and the checksum is validated against n*(n-1)/2.
//
// Usage:
//
//	go run ./cmd/spsc -n 4000000 -size 16384 -batch 8 -pin-producer 2 -pin-consumer 3
//
// Run it under the race detector to verify the transfer protocol:
//
//	go run -race ./cmd/spsc -n 1000000
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/randomizedcoder/spsc-ring/internal/harness"
)

func main() {
	count := flag.Int("n", 4_000_000, "number of items to transfer")
	size := flag.Int("size", 16384, "ring capacity (power of two)")
	batch := flag.Int("batch", 1, "batch size (1 = single-item push/pop)")
	spin := flag.Int("spin", harness.DefaultSpinBudget, "consecutive misses before yielding")
	pinProducer := flag.Int("pin-producer", -1, "CPU to pin the producer to (-1 = no pinning)")
	pinConsumer := flag.Int("pin-consumer", -1, "CPU to pin the consumer to (-1 = no pinning)")
	flag.Parse()

	fmt.Printf("SPSC ring throughput (%d items, size=%d, batch=%d)\n", *count, *size, *batch)
	fmt.Printf("Architecture: %s/%s, NumCPU: %d\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	if *pinProducer >= 0 || *pinConsumer >= 0 {
		fmt.Printf("Pinning: producer=%d consumer=%d\n", *pinProducer, *pinConsumer)
	}
	fmt.Println("─────────────────────────────────────────────────")

	res := harness.Run(harness.Options{
		Count:       *count,
		Capacity:    *size,
		Batch:       *batch,
		SpinBudget:  *spin,
		ProducerCPU: *pinProducer,
		ConsumerCPU: *pinConsumer,
	})

	perOp := float64(res.Elapsed.Nanoseconds()) / float64(res.Count)

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Transferred:  %d items in %v\n", res.Count, res.Elapsed)
	fmt.Printf("  Per item:     %.2f ns\n", perOp)
	fmt.Printf("  Throughput:   %.2f M items/sec\n", res.ItemsPerSec()/1e6)

	if res.OK() {
		fmt.Printf("  Checksum:     %d (ok)\n", res.Checksum)
	} else {
		fmt.Printf("  Checksum:     %d, want %d (MISMATCH)\n", res.Checksum, res.Want)
		os.Exit(1)
	}
}
