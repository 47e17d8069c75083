// Package resource governs the process-wide budget shared by concurrent reads.
//
// A Controller bounds three things:
//
//   - Workers: how many files are decoded at once across all reads
//   - Memory: bytes of raw container data held in flight (blocking, clamped)
//   - IO: ingest throughput in bytes per second (token bucket)
//
// Shared returns a lazily created controller sized to GOMAXPROCS. It lives
// for the rest of the process and is never torn down; readers that need
// isolation pass their own Controller.
//
// All methods are safe for concurrent use, and a nil *Controller is a valid,
// unlimited controller.
package resource
