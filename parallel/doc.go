// Package parallel schedules per-file work across workers.
//
// Work is split into contiguous chunks of indices (Partition) so a chunk's
// results sit next to each other in file order. A Backend runs every index of
// every chunk; callers store each result in the slot for its index, which
// makes reassembly independent of completion order.
//
// Backends are looked up by name. "serial" (also the empty name) runs chunks
// one after another on the calling goroutine; "pool" runs chunks on
// goroutines with fail-fast cancellation. Unknown names yield
// ErrBackendUnavailable.
package parallel
