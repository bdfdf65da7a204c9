//go:build !linux

package harness

// Pin is a no-op on platforms without sched_setaffinity. Benchmarks run
// unpinned; results are noisier but still valid.
func Pin(cpu int) error {
	return nil
}
