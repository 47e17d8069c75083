package minio

import (
	"bytes"
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crystio/blobstore"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	bucket := "test-crystio"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("packed reflection table")
	_, err = client.PutObject(ctx, bucket, "test-prefix/shot.refl", bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.RemoveObject(ctx, bucket, "test-prefix/shot.refl", minio.RemoveObjectOptions{})
	})

	store := NewStore(client, bucket, "test-prefix/")

	got, release, err := blobstore.ReadAll(ctx, store, "shot.refl")
	require.NoError(t, err)
	require.NoError(t, release())
	assert.Equal(t, data, got)

	blob, err := store.Open(ctx, "shot.refl")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 10)
	n, err := blob.ReadAt(ctx, buf, 7)
	require.NoError(t, err)
	assert.Equal(t, "reflection", string(buf[:n]))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "shot.refl")

	_, err = store.Open(ctx, "missing.refl")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
