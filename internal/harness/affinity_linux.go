//go:build linux

package harness

import "golang.org/x/sys/unix"

// Pin binds the calling OS thread to the given logical CPU.
//
// Callers must hold runtime.LockOSThread() first, otherwise the Go
// scheduler may migrate the goroutine off the pinned thread. Errors are
// returned but are safe to ignore: inside containers or restrictive
// cgroups the syscall may fail with EPERM/EINVAL, and the benchmark
// simply runs unpinned.
func Pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set) // pid 0 = current thread
}
