package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_OpenAndReadAll(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("reflection table payload")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "shot-001.refl"), data, 0o600))

	blob, err := store.Open(ctx, "shot-001.refl")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 11)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	assert.Equal(t, "table", string(buf))

	_, err = blob.ReadAt(ctx, buf, 100)
	assert.Equal(t, io.EOF, err)
	require.NoError(t, blob.Close())

	got, release, err := ReadAll(ctx, store, "shot-001.refl")
	require.NoError(t, err)
	assert.Equal(t, data, got)
	require.NoError(t, release())

	_, _, err = ReadAll(ctx, store, "missing.refl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_EmptyRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abs.refl")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	got, release, err := ReadAll(context.Background(), NewLocalStore(""), path)
	require.NoError(t, err)
	defer release()
	assert.Equal(t, []byte("x"), got)
}

func TestLocalStore_List(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "run1"), 0o755))
	for _, name := range []string{"run1/b.refl", "run1/a.refl", "other.expt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(name), 0o600))
	}

	names, err := NewLocalStore(tmpDir).List(context.Background(), "run1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"run1/a.refl", "run1/b.refl"}, names)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	src := []byte("abc")
	store.Put("x/1.refl", src)
	store.Put("x/0.refl", []byte("def"))
	store.Put("y.refl", nil)
	src[0] = 'z'

	got, release, err := ReadAll(ctx, store, "x/1.refl")
	require.NoError(t, err)
	require.NoError(t, release())
	assert.Equal(t, []byte("abc"), got)

	names, err := store.List(ctx, "x/")
	require.NoError(t, err)
	assert.Equal(t, []string{"x/0.refl", "x/1.refl"}, names)

	_, err = store.Open(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

// rangeOnlyStore hides Mappable so ReadAll takes the ReadAt path.
type rangeOnlyStore struct{ *MemoryStore }

type rangeOnlyBlob struct{ b Blob }

func (r rangeOnlyBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	return r.b.ReadAt(ctx, p, off)
}
func (r rangeOnlyBlob) Close() error { return r.b.Close() }
func (r rangeOnlyBlob) Size() int64  { return r.b.Size() }

func (s rangeOnlyStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.MemoryStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return rangeOnlyBlob{b}, nil
}

func TestReadAll_RangedFallback(t *testing.T) {
	mem := NewMemoryStore()
	mem.Put("f", []byte("ranged read"))

	got, release, err := ReadAll(context.Background(), rangeOnlyStore{mem}, "f")
	require.NoError(t, err)
	require.NoError(t, release())
	assert.Equal(t, "ranged read", string(got))
}
