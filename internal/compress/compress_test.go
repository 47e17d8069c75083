package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompress_Formats(t *testing.T) {
	payload := bytes.Repeat([]byte("dials::af::reflection_table"), 64)

	for _, f := range []Format{Zstd, Gzip, LZ4} {
		t.Run(f.String(), func(t *testing.T) {
			packed, err := Compress(f, payload)
			require.NoError(t, err)
			assert.Equal(t, f, Detect(packed))

			out, got, err := Decompress(packed)
			require.NoError(t, err)
			assert.Equal(t, f, got)
			assert.Equal(t, payload, out)
		})
	}
}

func TestDecompress_Passthrough(t *testing.T) {
	// msgpack fixarray header of a reflection container
	raw := []byte{0x93, 0xbb, 'd', 'i', 'a', 'l', 's'}
	out, f, err := Decompress(raw)
	require.NoError(t, err)
	assert.Equal(t, None, f)
	assert.Equal(t, raw, out)

	out, f, err = Decompress(nil)
	require.NoError(t, err)
	assert.Equal(t, None, f)
	assert.Empty(t, out)
}

func TestDecompress_Truncated(t *testing.T) {
	packed, err := Compress(Zstd, bytes.Repeat([]byte{1, 2, 3}, 1000))
	require.NoError(t, err)
	_, _, err = Decompress(packed[:len(packed)/2])
	assert.Error(t, err)

	packed, err = Compress(Gzip, bytes.Repeat([]byte{1, 2, 3}, 1000))
	require.NoError(t, err)
	_, _, err = Decompress(packed[:len(packed)/2])
	assert.Error(t, err)

	_, err = Compress(Format(9), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
