// Package harness drives one producer and one consumer goroutine over an
// SPSC ring and validates the transfer end to end with a checksum.
//
// Everything the ring deliberately does not do lives here: the start
// gate that lines both goroutines up before the clock starts, the
// spin/yield backoff used when the ring reports full or empty, and the
// optional CPU pinning that keeps each role on its own core.
package harness
