package reflfile

import (
	"context"

	"github.com/hupe1980/crystio/blobstore"
)

// Open reads a container from a blob store and decodes the requested columns.
func Open(ctx context.Context, store blobstore.BlobStore, name string, columns []string) (*Container, error) {
	data, release, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	// decoded columns never alias the blob
	defer func() { _ = release() }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(data, columns)
}
