package testutil

import (
	"encoding/binary"
	"slices"
	"strconv"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/crystio/internal/compress"
)

const (
	stillTag     = "dials::af::reflection_table"
	stillVersion = 1
)

type stillColumn struct {
	name string
	tag  string
	rows int
	raw  []byte
}

// Still builds a packed reflection container.
type Still struct {
	tag         string
	version     int
	nrows       int
	identifiers map[int]string
	columns     []stillColumn
	strBuffers  bool
	compression compress.Format
}

// NewStill starts a container declaring nrows rows.
func NewStill(nrows int) *Still {
	return &Still{
		tag:         stillTag,
		version:     stillVersion,
		nrows:       nrows,
		identifiers: map[int]string{},
	}
}

func experimentName(k int) string { return "experiment" + strconv.Itoa(k) }

// Tag overrides the format tag.
func (s *Still) Tag(tag string) *Still { s.tag = tag; return s }

// Version overrides the format version.
func (s *Still) Version(v int) *Still { s.version = v; return s }

// Identifiers sets the experiment identifier map.
func (s *Still) Identifiers(ids map[int]string) *Still {
	for k, v := range ids {
		s.identifiers[k] = v
	}
	return s
}

// StrBuffers stores column buffers as msgpack str, as older writers did.
func (s *Still) StrBuffers() *Still { s.strBuffers = true; return s }

// Compressed wraps the marshalled container in a compression frame.
func (s *Still) Compressed(f compress.Format) *Still { s.compression = f; return s }

// Raw adds a column with an arbitrary type tag and buffer.
func (s *Still) Raw(name, tag string, rows int, raw []byte) *Still {
	s.columns = append(s.columns, stillColumn{name: name, tag: tag, rows: rows, raw: raw})
	return s
}

func (s *Still) add(name, tag string, rows int, v any) *Still {
	raw, err := binary.Append(nil, binary.LittleEndian, v)
	if err != nil {
		panic(err)
	}
	return s.Raw(name, tag, rows, raw)
}

// Bool adds a "bool" column.
func (s *Still) Bool(name string, v []bool) *Still { return s.add(name, "bool", len(v), v) }

// Int32 adds an "int" column.
func (s *Still) Int32(name string, v []int32) *Still { return s.add(name, "int", len(v), v) }

// Uint64 adds a "std::size_t" column.
func (s *Still) Uint64(name string, v []uint64) *Still { return s.add(name, "std::size_t", len(v), v) }

// Float64 adds a "double" column.
func (s *Still) Float64(name string, v []float64) *Still { return s.add(name, "double", len(v), v) }

// Vec3 adds a "vec3<double>" column.
func (s *Still) Vec3(name string, v [][3]float64) *Still {
	return s.add(name, "vec3<double>", len(v), v)
}

// MillerIndex adds a "cctbx::miller::index<>" column.
func (s *Still) MillerIndex(name string, v [][3]int32) *Still {
	return s.add(name, "cctbx::miller::index<>", len(v), v)
}

// Marshal encodes the container.
func (s *Still) Marshal() []byte {
	b := msgp.AppendArrayHeader(nil, 3)
	b = msgp.AppendString(b, s.tag)
	b = msgp.AppendInt(b, s.version)

	b = msgp.AppendMapHeader(b, 3)
	b = msgp.AppendString(b, "identifiers")
	b = msgp.AppendMapHeader(b, uint32(len(s.identifiers)))
	keys := make([]int, 0, len(s.identifiers))
	for k := range s.identifiers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		b = msgp.AppendInt(b, k)
		b = msgp.AppendString(b, s.identifiers[k])
	}

	b = msgp.AppendString(b, "nrows")
	b = msgp.AppendInt(b, s.nrows)

	b = msgp.AppendString(b, "data")
	b = msgp.AppendMapHeader(b, uint32(len(s.columns)))
	for _, c := range s.columns {
		b = msgp.AppendString(b, c.name)
		b = msgp.AppendArrayHeader(b, 2)
		b = msgp.AppendString(b, c.tag)
		b = msgp.AppendArrayHeader(b, 2)
		b = msgp.AppendInt(b, c.rows)
		if s.strBuffers {
			b = msgp.AppendStringFromBytes(b, c.raw)
		} else {
			b = msgp.AppendBytes(b, c.raw)
		}
	}

	out, err := compress.Compress(s.compression, b)
	if err != nil {
		panic(err)
	}
	return out
}
