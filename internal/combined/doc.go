// Package combined provides cross-implementation comparison benchmarks
// for the SPSC transfer path.
//
// The same one-producer/one-consumer workload is run against the ring
// buffer, a buffered channel, and the sharded MPSC ring from
// github.com/randomizedcoder/go-lock-free-ring configured with a single
// shard. These are more representative of real-world hand-off cost than
// the isolated micro-benchmarks, as they capture the cross-core cache
// traffic between the two goroutines.
package combined
