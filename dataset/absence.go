package dataset

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/crystio/crystal"
)

// ErrNoSpaceGroup is returned by absence filtering on a table without a space group.
var ErrNoSpaceGroup = errors.New("table has no space group")

// AbsentRows returns the row positions whose Miller index is systematically
// absent in the table's space group.
func (d *DataSet) AbsentRows() (*roaring.Bitmap, error) {
	if d.spaceGroup == nil {
		return nil, ErrNoSpaceGroup
	}
	hkl, err := d.MillerIndices()
	if err != nil {
		return nil, err
	}
	rb := roaring.New()
	for i, absent := range crystal.HKLIsAbsent(hkl, d.spaceGroup) {
		if absent {
			rb.Add(uint32(i))
		}
	}
	return rb, nil
}

// RemoveAbsences returns a copy of the table without systematically absent
// reflections. Row order is preserved.
func (d *DataSet) RemoveAbsences() (*DataSet, error) {
	absent, err := d.AbsentRows()
	if err != nil {
		return nil, err
	}
	keep := roaring.New()
	keep.AddRange(0, uint64(d.nrows))
	keep.AndNot(absent)

	rows := make([]int, 0, keep.GetCardinality())
	it := keep.Iterator()
	for it.HasNext() {
		rows = append(rows, int(it.Next()))
	}
	return d.Take(rows), nil
}
