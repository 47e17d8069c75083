package cache

import "context"

// BlobCache is a byte-oriented cache of whole blobs keyed by name.
// Returned slices must be treated as read-only.
type BlobCache interface {
	// Get returns a cached blob. ok=false if missing.
	Get(ctx context.Context, name string) (b []byte, ok bool)
	// Set caches a blob. Implementations retain b; caller must treat b as immutable.
	Set(ctx context.Context, name string, b []byte)
	// Invalidate removes entries whose name matches the predicate.
	Invalidate(predicate func(name string) bool)
	// Stats returns cache statistics.
	Stats() (hits, misses int64)
}
