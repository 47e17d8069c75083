// Package compress transparently unwraps compressed reflection files.
//
// Files are recognised by their frame magic; anything else is returned as is.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies a compression frame format.
type Format uint8

const (
	// None means the bytes are used verbatim.
	None Format = iota
	Zstd
	Gzip
	LZ4
)

func (f Format) String() string {
	switch f {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

var (
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicGzip = []byte{0x1f, 0x8b}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ErrUnknownFormat is returned by Compress for an unsupported Format.
var ErrUnknownFormat = errors.New("compress: unknown format")

// Detect reports the frame format of data.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		return Zstd
	case bytes.HasPrefix(data, magicGzip):
		return Gzip
	case bytes.HasPrefix(data, magicLZ4):
		return LZ4
	default:
		return None
	}
}

var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
}

// Decompress returns the decoded payload and the detected format. For
// uncompressed input the same slice is returned.
func Decompress(data []byte) ([]byte, Format, error) {
	f := Detect(data)
	switch f {
	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, f, err
		}
		defer zstdDecoderPool.Put(dec)
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, f, fmt.Errorf("zstd: %w", err)
		}
		return out, f, nil
	case Gzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, f, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, f, fmt.Errorf("gzip: %w", err)
		}
		return out, f, nil
	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, f, fmt.Errorf("lz4: %w", err)
		}
		return out, f, nil
	default:
		return data, None, nil
	}
}

// Compress wraps data in the given frame format.
func Compress(f Format, data []byte) ([]byte, error) {
	switch f {
	case None:
		return data, nil
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case Gzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}
