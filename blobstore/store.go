package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is a read-only source of reflection files.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns the names of all blobs starting with prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored file.
type Blob interface {
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs whose contents are already in memory.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Fetcher is an optional interface for stores that download a whole object
// more efficiently than ranged reads.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ReadAll returns the complete contents of a blob. The release func must be
// called once the bytes are no longer referenced; for mapped blobs it unmaps.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, func() error, error) {
	if f, ok := store.(Fetcher); ok {
		data, err := f.Fetch(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		return data, noRelease, nil
	}

	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			_ = b.Close()
			return nil, nil, err
		}
		return data, b.Close, nil
	}
	defer func() { _ = b.Close() }()

	buf := make([]byte, b.Size())
	n, err := b.ReadAt(ctx, buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}
	if int64(n) != b.Size() {
		return nil, nil, fmt.Errorf("blobstore: short read of %q: %d of %d bytes", name, n, b.Size())
	}
	return buf, noRelease, nil
}

func noRelease() error { return nil }
