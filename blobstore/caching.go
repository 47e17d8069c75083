package blobstore

import (
	"context"

	"github.com/hupe1980/crystio/internal/cache"
	"github.com/hupe1980/crystio/resource"
)

// CachingStore keeps whole blobs fetched from another store in an LRU cache.
// It suits remote stores whose files are read more than once per process.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRUBlobCache
}

// NewCachingStore wraps inner with a cache of capacityBytes. If rc is not nil,
// cached bytes count against its memory budget. Do not pass the controller
// that bounds reads through this store: a full cache would starve them.
func NewCachingStore(inner BlobStore, capacityBytes int64, rc *resource.Controller) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRUBlobCache(capacityBytes, rc),
	}
}

// Open returns a cached blob, or fetches and caches it.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	data, err := s.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: data}, nil
}

// Fetch returns the blob's contents. The result is shared with the cache and
// must not be modified.
func (s *CachingStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(ctx, name); ok {
		return data, nil
	}
	owned, err := s.fetchInner(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, name, owned)
	return owned, nil
}

func (s *CachingStore) fetchInner(ctx context.Context, name string) ([]byte, error) {
	if f, ok := s.inner.(Fetcher); ok {
		return f.Fetch(ctx, name)
	}
	data, release, err := ReadAll(ctx, s.inner, name)
	if err != nil {
		return nil, err
	}
	// mapped bytes must not outlive release
	owned := append([]byte(nil), data...)
	if err := release(); err != nil {
		return nil, err
	}
	return owned, nil
}

// List delegates to the wrapped store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Invalidate drops a cached blob.
func (s *CachingStore) Invalidate(name string) {
	s.cache.Invalidate(func(n string) bool { return n == name })
}

// Stats returns cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}
