// Package dataset provides the crystallographic table returned by the readers:
// typed columns, a (non-unique) Miller-index key and table-level unit cell and
// space group metadata.
package dataset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/crystio/crystal"
)

var (
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateColumn is returned when adding a column whose name is taken.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrLengthMismatch is returned when a column length differs from the table's row count.
	ErrLengthMismatch = errors.New("column length mismatch")
	// ErrSchemaMismatch is returned when concatenating tables with different columns.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrMetadataMismatch is returned when concatenating tables with different cells or groups.
	ErrMetadataMismatch = errors.New("metadata mismatch")
)

// Miller index column names.
const (
	ColumnH = "H"
	ColumnK = "K"
	ColumnL = "L"
)

// MillerIndex is the default key of a reflection table.
var MillerIndex = []string{ColumnH, ColumnK, ColumnL}

// DataSet is a column-oriented reflection table. Index columns are ordinary
// int32 columns that additionally form the row key; key uniqueness is not required.
type DataSet struct {
	cell       crystal.UnitCell
	spaceGroup *crystal.SpaceGroup

	columns []Column
	byName  map[string]int
	index   []string
	nrows   int
}

// New creates an empty table carrying the given metadata.
func New(cell crystal.UnitCell, sg *crystal.SpaceGroup) *DataSet {
	return &DataSet{
		cell:       cell,
		spaceGroup: sg,
		byName:     make(map[string]int),
	}
}

// Cell returns the unit cell.
func (d *DataSet) Cell() crystal.UnitCell { return d.cell }

// SpaceGroup returns the space group.
func (d *DataSet) SpaceGroup() *crystal.SpaceGroup { return d.spaceGroup }

// NumRows returns the number of rows.
func (d *DataSet) NumRows() int { return d.nrows }

// NumColumns returns the number of columns, index columns included.
func (d *DataSet) NumColumns() int { return len(d.columns) }

// AddColumn appends a column. The first column fixes the row count.
func (d *DataSet) AddColumn(c Column) error {
	if _, ok := d.byName[c.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
	}
	if len(d.columns) > 0 && c.Len() != d.nrows {
		return fmt.Errorf("%w: %q has %d rows, table has %d", ErrLengthMismatch, c.Name(), c.Len(), d.nrows)
	}
	d.nrows = c.Len()
	d.byName[c.Name()] = len(d.columns)
	d.columns = append(d.columns, c)
	return nil
}

// SetIndex marks existing int32 columns as the row key.
func (d *DataSet) SetIndex(names ...string) error {
	for _, n := range names {
		c, ok := d.Column(n)
		if !ok {
			return fmt.Errorf("%w: index %q", ErrColumnNotFound, n)
		}
		if c.Kind() != KindInt32 {
			return fmt.Errorf("%w: index %q must be int32, got %s", ErrSchemaMismatch, n, c.Kind())
		}
	}
	d.index = slices.Clone(names)
	return nil
}

// Index returns the names of the key columns.
func (d *DataSet) Index() []string { return slices.Clone(d.index) }

// Column returns the named column.
func (d *DataSet) Column(name string) (Column, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.columns[i], true
}

// Has reports whether a column exists.
func (d *DataSet) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Names returns the column names in insertion order.
func (d *DataSet) Names() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in insertion order.
func (d *DataSet) Columns() []Column { return slices.Clone(d.columns) }

// Values returns the typed values of a column.
func Values[T Element](d *DataSet, name string) ([]T, error) {
	c, ok := d.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	s, ok := c.(*Series[T])
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s, not %s", ErrSchemaMismatch, name, c.Kind(), KindOf[T]())
	}
	return s.Values(), nil
}

// MillerIndices returns the H, K, L columns as triples.
func (d *DataSet) MillerIndices() ([][3]int32, error) {
	h, err := Values[int32](d, ColumnH)
	if err != nil {
		return nil, err
	}
	k, err := Values[int32](d, ColumnK)
	if err != nil {
		return nil, err
	}
	l, err := Values[int32](d, ColumnL)
	if err != nil {
		return nil, err
	}
	out := make([][3]int32, d.nrows)
	for i := range out {
		out[i] = [3]int32{h[i], k[i], l[i]}
	}
	return out, nil
}

// Rename renames a column in place.
func (d *DataSet) Rename(from, to string) error {
	i, ok := d.byName[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, from)
	}
	if from == to {
		return nil
	}
	if _, ok := d.byName[to]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, to)
	}
	d.columns[i] = d.columns[i].rename(to)
	delete(d.byName, from)
	d.byName[to] = i
	for j, n := range d.index {
		if n == from {
			d.index[j] = to
		}
	}
	return nil
}

// Take returns a new table with the given rows, in the given order.
func (d *DataSet) Take(rows []int) *DataSet {
	out := New(d.cell, d.spaceGroup)
	for _, c := range d.columns {
		out.byName[c.Name()] = len(out.columns)
		out.columns = append(out.columns, c.take(rows))
	}
	out.nrows = len(rows)
	out.index = slices.Clone(d.index)
	return out
}

// Equal reports whether both tables have the same metadata, index, column
// order and values. NaN values compare equal.
func (d *DataSet) Equal(o *DataSet) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !d.cell.Equal(o.cell) || !d.spaceGroup.Equal(o.spaceGroup) {
		return false
	}
	if d.nrows != o.nrows || len(d.columns) != len(o.columns) || !slices.Equal(d.index, o.index) {
		return false
	}
	for i, c := range d.columns {
		if !c.equal(o.columns[i]) {
			return false
		}
	}
	return true
}

// Concat stacks tables vertically, preserving argument order. All tables must
// share cell, space group, index and column schema. Each output column is
// allocated once.
func Concat(sets ...*DataSet) (*DataSet, error) {
	if len(sets) == 0 {
		return nil, errors.New("concat: no tables")
	}
	first := sets[0]
	total := first.nrows
	for n, s := range sets[1:] {
		if !s.cell.Equal(first.cell) || !s.spaceGroup.Equal(first.spaceGroup) {
			return nil, fmt.Errorf("%w: table %d", ErrMetadataMismatch, n+1)
		}
		if !slices.Equal(s.Names(), first.Names()) || !slices.Equal(s.index, first.index) {
			return nil, fmt.Errorf("%w: table %d has columns %v, want %v", ErrSchemaMismatch, n+1, s.Names(), first.Names())
		}
		total += s.nrows
	}

	out := New(first.cell, first.spaceGroup)
	out.columns = make([]Column, len(first.columns))
	parts := make([]Column, len(sets))
	for i, c := range first.columns {
		for n, s := range sets {
			parts[n] = s.columns[i]
		}
		merged, err := c.concat(parts, total)
		if err != nil {
			return nil, err
		}
		out.columns[i] = merged
		out.byName[c.Name()] = i
	}
	out.index = slices.Clone(first.index)
	out.nrows = total
	return out, nil
}
