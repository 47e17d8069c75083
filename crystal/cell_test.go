package crystal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCell_Validate(t *testing.T) {
	_, err := NewUnitCell(78, 78, 235, 90, 90, 120)
	require.NoError(t, err)

	_, err = NewUnitCell(0, 78, 235, 90, 90, 120)
	require.ErrorIs(t, err, ErrInvalidCell)

	_, err = NewUnitCell(10, 10, 10, 90, 180, 90)
	require.ErrorIs(t, err, ErrInvalidCell)

	// angles that cannot close a parallelepiped
	_, err = NewUnitCell(10, 10, 10, 170, 170, 170)
	require.ErrorIs(t, err, ErrInvalidCell)

	_, err = UnitCellFromSlice([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidCell)
}

func TestParseUnitCell(t *testing.T) {
	c, err := ParseUnitCell("78,78, 235 90 90 120")
	require.NoError(t, err)
	assert.Equal(t, [6]float64{78, 78, 235, 90, 90, 120}, c.Parameters())

	_, err = ParseUnitCell("78,78,x,90,90,120")
	require.ErrorIs(t, err, ErrInvalidCell)
}

func TestUnitCell_Equal(t *testing.T) {
	a := UnitCell{78, 78, 235, 90, 90, 120}
	b := UnitCell{78, 78, 235 + 1e-9, 90, 90, 120}
	c := UnitCell{78, 78, 230, 90, 90, 120}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestUnitCell_VolumeAndDSpacing(t *testing.T) {
	cubic := UnitCell{10, 10, 10, 90, 90, 90}
	assert.InDelta(t, 1000, cubic.Volume(), 1e-9)
	assert.InDelta(t, 10/math.Sqrt(3), cubic.DSpacing([3]int32{1, 1, 1}), 1e-9)
	assert.InDelta(t, 5, cubic.DSpacing([3]int32{2, 0, 0}), 1e-9)
	assert.True(t, math.IsInf(cubic.DSpacing([3]int32{0, 0, 0}), 1))

	hex := UnitCell{78, 78, 235, 90, 90, 120}
	// d(100) = a·sin(60°) for hexagonal axes
	assert.InDelta(t, 78*math.Sqrt(3)/2, hex.DSpacing([3]int32{1, 0, 0}), 1e-9)
	assert.InDelta(t, 235.0/6, hex.DSpacing([3]int32{0, 0, 6}), 1e-9)
}

func TestUnitCell_CompatibleWith(t *testing.T) {
	hex := UnitCell{78, 78, 235, 90, 90, 120}
	ortho := UnitCell{40, 50, 60, 90, 90, 90}
	rhomb := UnitCell{50, 50, 50, 80, 80, 80}

	assert.True(t, hex.CompatibleWith(MustSpaceGroup("P 65 2 2")))
	assert.True(t, hex.CompatibleWith(MustSpaceGroup("R 3")))
	assert.False(t, hex.CompatibleWith(MustSpaceGroup("P 21 21 21")))
	assert.True(t, ortho.CompatibleWith(MustSpaceGroup("P 21 21 21")))
	assert.False(t, ortho.CompatibleWith(MustSpaceGroup("P 41 21 2")))
	assert.True(t, ortho.CompatibleWith(MustSpaceGroup("P 1")))
	assert.True(t, rhomb.CompatibleWith(MustSpaceGroup("R 3:R")))
	assert.False(t, rhomb.CompatibleWith(MustSpaceGroup("R 3:H")))
	assert.False(t, hex.CompatibleWith(nil))
}
