package crystio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/crystio/dataset"
	"github.com/hupe1980/crystio/reflfile"
	"github.com/hupe1980/crystio/testutil"
)

func TestSigmaName(t *testing.T) {
	assert.Equal(t, "intensity.sum.sigma", sigmaName("intensity.sum.variance"))
	assert.Equal(t, "intensity.prf.sigma", sigmaName("intensity.prf.variance"))
	assert.Equal(t, "var_I.sigma", sigmaName("var_I"))
}

func TestColumnPlan(t *testing.T) {
	o := defaultOptions()
	WithExtraColumns("xyz", "id", "xyz")(&o)
	p := newColumnPlan(&o)

	assert.Equal(t, []string{"xyz"}, p.extras)
	assert.Equal(t, []string{"miller_index", "intensity.sum.value", "intensity.sum.variance", "id", "xyz"}, p.sourceColumns())
	assert.Equal(t, ColumnI, p.intensityOut)
	assert.Equal(t, ColumnSigI, p.sigmaOut)
}

func TestBuildStill_ExtraKinds(t *testing.T) {
	data := testutil.NewStill(2).
		Identifiers(map[int]string{0: "a", 1: "b"}).
		MillerIndex("miller_index", [][3]int32{{1, 0, 0}, {0, 1, 0}}).
		Float64("intensity.sum.value", []float64{1, 2}).
		Float64("intensity.sum.variance", []float64{1, 4}).
		Int32("id", []int32{0, 1}).
		Bool("flag", []bool{true, false}).
		Uint64("refl_id", []uint64{10, 11}).
		Marshal()

	o := defaultOptions()
	WithExtraColumns("flag", "refl_id", "miller_index")(&o)
	p := newColumnPlan(&o)
	c, err := reflfile.Decode(data, p.sourceColumns())
	require.NoError(t, err)

	st, err := buildStill(c, p)
	require.NoError(t, err)
	assert.Equal(t, 2, st.numRows())
	assert.Len(t, st.identifiers, 2)

	ds, err := st.dataSet(testCell, testGroup, []int32{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"H", "K", "L", "I", "SigI", "id", "flag", "refl_id",
		"miller_index.0", "miller_index.1", "miller_index.2"}, ds.Names())

	flag, _ := ds.Column("flag")
	assert.Equal(t, dataset.KindBool, flag.Kind())
	rid, err := dataset.Values[uint64](ds, "refl_id")
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 11}, rid)
	ids, err := dataset.Values[int32](ds, "id")
	require.NoError(t, err)
	assert.Equal(t, []int32{5, 6}, ids)
	k, err := dataset.Values[int32](ds, "miller_index.1")
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, k)
}

func TestBuildStill_WrongType(t *testing.T) {
	data := testutil.NewStill(1).
		MillerIndex("miller_index", [][3]int32{{1, 0, 0}}).
		Float64("intensity.sum.value", []float64{1}).
		Float64("intensity.sum.variance", []float64{1}).
		Float64("id", []float64{0}).
		Marshal()

	o := defaultOptions()
	p := newColumnPlan(&o)
	c, err := reflfile.Decode(data, p.sourceColumns())
	require.NoError(t, err)

	_, err = buildStill(c, p)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	var ce *reflfile.ColumnError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "id", ce.Column)
	assert.Equal(t, "double", ce.Type)
}
