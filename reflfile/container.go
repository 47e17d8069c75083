package reflfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/crystio/dataset"
	"github.com/hupe1980/crystio/internal/compress"
	"github.com/hupe1980/crystio/internal/conv"
)

// Container format identification.
const (
	FormatTag     = "dials::af::reflection_table"
	FormatVersion = 1
)

// Column is one decoded column: Rows × Type.Width() elements, row-major.
type Column struct {
	Name string
	Type ColumnType
	Rows int

	// one of []int32, []uint64, []float64, []bool
	data any
}

// Values returns the flat element slice of a column.
func Values[T dataset.Element](c *Column) ([]T, error) {
	v, ok := c.data.([]T)
	if !ok {
		return nil, &ColumnError{Column: c.Name, Type: c.Type.String(),
			Err: fmt.Errorf("element kind is %s, not %s", c.Type.Kind(), dataset.KindOf[T]())}
	}
	return v, nil
}

// Components splits a column into Width() per-component slices. Scalar
// columns yield a single slice sharing the decoded buffer.
func Components[T dataset.Element](c *Column) ([][]T, error) {
	flat, err := Values[T](c)
	if err != nil {
		return nil, err
	}
	w := c.Type.Width()
	if w == 1 {
		return [][]T{flat}, nil
	}
	out := make([][]T, w)
	for j := range out {
		out[j] = make([]T, c.Rows)
	}
	for i := 0; i < c.Rows; i++ {
		row := flat[i*w : (i+1)*w]
		for j, v := range row {
			out[j][i] = v
		}
	}
	return out, nil
}

// Container is a decoded reflection file.
type Container struct {
	Tag         string
	Version     int
	Identifiers map[int]string
	NumRows     int
	// Schema holds the declared type tag of every column in the file,
	// decoded or not.
	Schema  map[string]string
	Columns map[string]*Column
	// Compression is the frame format the file was wrapped in.
	Compression compress.Format
}

// Column returns a decoded column.
func (c *Container) Column(name string) (*Column, bool) {
	col, ok := c.Columns[name]
	return col, ok
}

// ColumnNames returns the declared column names, sorted.
func (c *Container) ColumnNames() []string {
	names := make([]string, 0, len(c.Schema))
	for n := range c.Schema {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Decode parses a container and decodes the requested columns.
//
// A nil columns list decodes every column of a supported type and skips the
// rest. A non-nil list must name columns that exist and have a supported type.
// The returned columns do not alias data.
func Decode(data []byte, columns []string) (*Container, error) {
	raw, format, err := compress.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptContainer, err)
	}

	d := decoder{
		all:    columns == nil,
		wanted: make(map[string]bool, len(columns)),
		c: &Container{
			Identifiers: make(map[int]string),
			Schema:      make(map[string]string),
			Columns:     make(map[string]*Column),
			Compression: format,
		},
	}
	for _, name := range columns {
		d.wanted[name] = true
	}

	if err := d.decode(raw); err != nil {
		return nil, err
	}

	for _, name := range columns {
		if _, ok := d.c.Columns[name]; !ok {
			return nil, &ColumnError{Column: name, Err: ErrMissingColumn}
		}
	}
	for _, col := range d.c.Columns {
		if col.Rows != d.c.NumRows {
			return nil, &ColumnError{Column: col.Name, Type: col.Type.String(),
				Err: corrupt("%d rows, container declares %d", col.Rows, d.c.NumRows)}
		}
	}
	return d.c, nil
}

type decoder struct {
	all    bool
	wanted map[string]bool
	c      *Container
}

func (d *decoder) decode(b []byte) error {
	n, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return corrupt("top level: %v", err)
	}
	if n != 3 {
		return corrupt("top level: want 3 elements, got %d", n)
	}

	d.c.Tag, b, err = msgp.ReadStringBytes(b)
	if err != nil {
		return corrupt("tag: %v", err)
	}
	if d.c.Tag != FormatTag {
		return fmt.Errorf("%w: tag %q", ErrUnsupportedFormat, d.c.Tag)
	}

	version, b, err := readInt(b)
	if err != nil {
		return corrupt("version: %v", err)
	}
	if version != FormatVersion {
		return fmt.Errorf("%w: version %d", ErrUnsupportedFormat, version)
	}
	d.c.Version = int(version)

	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return corrupt("payload: %v", err)
	}
	for range fields {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return corrupt("payload key: %v", err)
		}
		switch key {
		case "identifiers":
			b, err = d.identifiers(b)
		case "nrows":
			var rows int64
			rows, b, err = readInt(b)
			if err == nil {
				d.c.NumRows, err = conv.CountToInt(rows)
			}
		case "data":
			b, err = d.data(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			var ce *ColumnError
			if errors.As(err, &ce) || errors.Is(err, ErrCorruptContainer) || errors.Is(err, ErrUnsupportedFormat) {
				return err
			}
			return corrupt("%s: %v", key, err)
		}
	}
	return nil
}

func (d *decoder) identifiers(b []byte) ([]byte, error) {
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for range n {
		var id int64
		var ident string
		id, b, err = readInt(b)
		if err != nil {
			return b, err
		}
		ident, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		key, err := conv.Int64ToInt(id)
		if err != nil {
			return b, err
		}
		d.c.Identifiers[key] = ident
	}
	return b, nil
}

func (d *decoder) data(b []byte) ([]byte, error) {
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for range n {
		var name string
		name, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		b, err = d.column(name, b)
		if err != nil {
			return b, err
		}
	}
	return b, nil
}

// column reads one ["type", [rows, bytes]] entry.
func (d *decoder) column(name string, b []byte) ([]byte, error) {
	sz, b, err := msgp.ReadArrayHeaderBytes(b)
	if err != nil {
		return b, &ColumnError{Column: name, Err: corrupt("%v", err)}
	}
	if sz != 2 {
		return b, &ColumnError{Column: name, Err: corrupt("want [type, [rows, bytes]], got %d elements", sz)}
	}
	tag, b, err := msgp.ReadStringBytes(b)
	if err != nil {
		return b, &ColumnError{Column: name, Err: corrupt("type: %v", err)}
	}
	d.c.Schema[name] = tag

	ct, perr := ParseColumnType(tag)
	if !d.wanted[name] && (!d.all || perr != nil) {
		b, err = msgp.Skip(b)
		if err != nil {
			return b, &ColumnError{Column: name, Type: tag, Err: corrupt("%v", err)}
		}
		return b, nil
	}
	if perr != nil {
		return b, &ColumnError{Column: name, Type: tag, Err: ErrUnsupportedFormat}
	}

	sz, b, err = msgp.ReadArrayHeaderBytes(b)
	if err == nil && sz != 2 {
		err = fmt.Errorf("want [rows, bytes], got %d elements", sz)
	}
	if err != nil {
		return b, &ColumnError{Column: name, Type: tag, Err: corrupt("%v", err)}
	}
	rows, b, err := readInt(b)
	if err != nil {
		return b, &ColumnError{Column: name, Type: tag, Err: corrupt("rows: %v", err)}
	}
	buf, b, err := readRaw(b)
	if err != nil {
		return b, &ColumnError{Column: name, Type: tag, Err: corrupt("buffer: %v", err)}
	}

	rowSize := int64(ct.RowSize())
	if rows < 0 || rows > math.MaxInt64/rowSize || int64(len(buf)) != rows*rowSize {
		return b, &ColumnError{Column: name, Type: tag,
			Err: corrupt("%d bytes for %d rows of %d bytes", len(buf), rows, rowSize)}
	}

	n, err := conv.CountToInt(rows)
	if err != nil {
		return b, &ColumnError{Column: name, Type: tag, Err: corrupt("%v", err)}
	}
	col := &Column{Name: name, Type: ct, Rows: n}
	switch ct.Kind() {
	case dataset.KindInt32:
		col.data, err = decodeLE[int32](buf)
	case dataset.KindUint64:
		col.data, err = decodeLE[uint64](buf)
	case dataset.KindFloat64:
		col.data, err = decodeLE[float64](buf)
	case dataset.KindBool:
		col.data, err = decodeLE[bool](buf)
	}
	if err != nil {
		return b, &ColumnError{Column: name, Type: tag, Err: corrupt("%v", err)}
	}
	d.c.Columns[name] = col
	return b, nil
}

func decodeLE[T dataset.Element](buf []byte) ([]T, error) {
	var zero T
	out := make([]T, len(buf)/binary.Size(zero))
	if _, err := binary.Decode(buf, binary.LittleEndian, out); err != nil {
		return nil, err
	}
	return out, nil
}

// readInt accepts both signed and unsigned msgpack integer encodings.
func readInt(b []byte) (int64, []byte, error) {
	if msgp.NextType(b) == msgp.UintType {
		u, o, err := msgp.ReadUint64Bytes(b)
		if err != nil {
			return 0, b, err
		}
		v, err := conv.Uint64ToInt64(u)
		if err != nil {
			return 0, b, err
		}
		return v, o, nil
	}
	return msgp.ReadInt64Bytes(b)
}

// readRaw reads a buffer stored as bin, or as str by older writers.
func readRaw(b []byte) ([]byte, []byte, error) {
	if msgp.NextType(b) == msgp.StrType {
		return msgp.ReadStringZC(b)
	}
	return msgp.ReadBytesZC(b)
}
