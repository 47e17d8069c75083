package dataset

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crystio/crystal"
)

var testCell = crystal.UnitCell{A: 40, B: 50, C: 60, Alpha: 90, Beta: 90, Gamma: 90}

func newTable(t *testing.T, h, k, l []int32, i []float64) *DataSet {
	t.Helper()
	d := New(testCell, crystal.MustSpaceGroup("P 21 21 21"))
	require.NoError(t, d.AddColumn(NewSeries(ColumnH, h)))
	require.NoError(t, d.AddColumn(NewSeries(ColumnK, k)))
	require.NoError(t, d.AddColumn(NewSeries(ColumnL, l)))
	require.NoError(t, d.AddColumn(NewSeries("I", i)))
	require.NoError(t, d.SetIndex(MillerIndex...))
	return d
}

func TestDataSet_AddColumn(t *testing.T) {
	d := newTable(t, []int32{1, 2}, []int32{0, 0}, []int32{0, 0}, []float64{1, 2})
	assert.Equal(t, 2, d.NumRows())
	assert.Equal(t, []string{"H", "K", "L", "I"}, d.Names())
	assert.Equal(t, MillerIndex, d.Index())

	err := d.AddColumn(NewSeries("I", []float64{3, 4}))
	require.ErrorIs(t, err, ErrDuplicateColumn)

	err = d.AddColumn(NewSeries("SigI", []float64{1}))
	require.ErrorIs(t, err, ErrLengthMismatch)

	err = d.SetIndex("I")
	require.ErrorIs(t, err, ErrSchemaMismatch)
	err = d.SetIndex("nope")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestValues(t *testing.T) {
	d := newTable(t, []int32{1, 2}, []int32{0, 0}, []int32{0, 0}, []float64{1, 2})

	v, err := Values[float64](d, "I")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v)

	_, err = Values[int32](d, "I")
	require.ErrorIs(t, err, ErrSchemaMismatch)
	_, err = Values[float64](d, "missing")
	require.ErrorIs(t, err, ErrColumnNotFound)

	hkl, err := d.MillerIndices()
	require.NoError(t, err)
	assert.Equal(t, [][3]int32{{1, 0, 0}, {2, 0, 0}}, hkl)
}

func TestDataSet_Rename(t *testing.T) {
	d := newTable(t, []int32{1}, []int32{0}, []int32{0}, []float64{1})
	require.NoError(t, d.Rename("I", "IMEAN"))
	assert.True(t, d.Has("IMEAN"))
	assert.False(t, d.Has("I"))
	require.ErrorIs(t, d.Rename("IMEAN", "H"), ErrDuplicateColumn)
	require.ErrorIs(t, d.Rename("I", "X"), ErrColumnNotFound)
}

func TestConcat(t *testing.T) {
	a := newTable(t, []int32{1}, []int32{0}, []int32{0}, []float64{1})
	b := newTable(t, []int32{2, 3}, []int32{0, 0}, []int32{0, 0}, []float64{2, 3})

	out, err := Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, out.NumRows())
	v, err := Values[float64](out, "I")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v)
	// inputs are untouched
	assert.Equal(t, 1, a.NumRows())

	t.Run("schema", func(t *testing.T) {
		c := newTable(t, []int32{2}, []int32{0}, []int32{0}, []float64{2})
		require.NoError(t, c.AddColumn(NewSeries("id", []int32{0})))
		_, err := Concat(a, c)
		require.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("kind", func(t *testing.T) {
		c := New(testCell, a.SpaceGroup())
		require.NoError(t, c.AddColumn(NewSeries(ColumnH, []int32{2})))
		require.NoError(t, c.AddColumn(NewSeries(ColumnK, []int32{0})))
		require.NoError(t, c.AddColumn(NewSeries(ColumnL, []int32{0})))
		require.NoError(t, c.AddColumn(NewSeries("I", []int32{2})))
		require.NoError(t, c.SetIndex(MillerIndex...))
		_, err := Concat(a, c)
		require.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("metadata", func(t *testing.T) {
		c := newTable(t, []int32{2}, []int32{0}, []int32{0}, []float64{2})
		c.spaceGroup = crystal.MustSpaceGroup("P 1")
		_, err := Concat(a, c)
		require.ErrorIs(t, err, ErrMetadataMismatch)
	})

	_, err = Concat()
	require.Error(t, err)
}

func manyTables(tb testing.TB, n, rows int) []*DataSet {
	tb.Helper()
	sg := crystal.MustSpaceGroup("P 21 21 21")
	sets := make([]*DataSet, n)
	for s := range sets {
		d := New(testCell, sg)
		h := make([]int32, rows)
		i := make([]float64, rows)
		for r := range rows {
			h[r] = int32(s)
			i[r] = float64(s*rows + r)
		}
		for _, c := range []Column{NewSeries(ColumnH, h), NewSeries(ColumnK, h), NewSeries(ColumnL, h), NewSeries("I", i)} {
			if err := d.AddColumn(c); err != nil {
				tb.Fatal(err)
			}
		}
		sets[s] = d
	}
	return sets
}

func TestConcat_Many(t *testing.T) {
	sets := manyTables(t, 500, 20)

	out, err := Concat(sets...)
	require.NoError(t, err)
	require.Equal(t, 10000, out.NumRows())

	v, err := Values[float64](out, "I")
	require.NoError(t, err)
	// one allocation sized for every row
	assert.Equal(t, 10000, cap(v))
	for r, x := range v {
		if x != float64(r) {
			t.Fatalf("row %d: got %v", r, x)
		}
	}
	h, err := Values[int32](out, ColumnH)
	require.NoError(t, err)
	assert.Equal(t, int32(499), h[9999])
	assert.Equal(t, 10000, cap(h))
}

func BenchmarkConcat(b *testing.B) {
	for _, n := range []int{100, 1000} {
		sets := manyTables(b, n, 1000)
		b.Run(fmt.Sprintf("tables=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Concat(sets...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestDataSet_Equal(t *testing.T) {
	nan := math.NaN()
	a := newTable(t, []int32{1, 2}, []int32{0, 0}, []int32{0, 0}, []float64{1, nan})
	b := newTable(t, []int32{1, 2}, []int32{0, 0}, []int32{0, 0}, []float64{1, nan})
	c := newTable(t, []int32{1, 2}, []int32{0, 0}, []int32{0, 0}, []float64{1, 2})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	b.cell = crystal.UnitCell{A: 41, B: 50, C: 60, Alpha: 90, Beta: 90, Gamma: 90}
	assert.False(t, a.Equal(b))
}

func TestDataSet_RemoveAbsences(t *testing.T) {
	d := newTable(t,
		[]int32{1, 2, 0, 0, 1},
		[]int32{0, 0, 3, 0, 2},
		[]int32{0, 0, 0, 0, 3},
		[]float64{10, 20, 30, 40, 50},
	)

	absent, err := d.AbsentRows()
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2}, absent.ToArray())

	out, err := d.RemoveAbsences()
	require.NoError(t, err)
	v, err := Values[float64](out, "I")
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40, 50}, v)
	assert.Equal(t, MillerIndex, out.Index())
	assert.Equal(t, 5, d.NumRows())

	d.spaceGroup = nil
	_, err = d.AbsentRows()
	require.ErrorIs(t, err, ErrNoSpaceGroup)
}
