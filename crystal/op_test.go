package crystal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriplet_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"x,y,z",
		"-y,x-y,z+1/3",
		"-x+1/2,y+1/2,-z+1/4",
		"y,x,-z",
		"x-y,-y,-z+2/3",
	} {
		op, err := ParseTriplet(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, op.Triplet())
	}
}

func TestParseTriplet_Forms(t *testing.T) {
	op, err := ParseTriplet(" 1/2+X , -Y , z-0.25 ")
	require.NoError(t, err)
	assert.Equal(t, "x+1/2,-y,z-1/4", op.Triplet())
	assert.Equal(t, "x+1/2,-y,z+3/4", op.Wrap().Triplet())

	for _, bad := range []string{"", "x,y", "x,y,q", "x,y,z+1/7", "x,y,+"} {
		_, err := ParseTriplet(bad)
		assert.ErrorIs(t, err, ErrInvalidOp, bad)
	}
}

func TestOp_Algebra(t *testing.T) {
	four, err := ParseTriplet("-y,x,z+1/4")
	require.NoError(t, err)

	acc := Identity()
	for i := 0; i < 4; i++ {
		acc = four.Mul(acc)
	}
	// four applications of a 41 screw give a full lattice translation
	assert.Equal(t, Identity(), acc.Wrap())
	assert.Equal(t, 1, four.Det())
	assert.Equal(t, -1, four.Negate().Det())

	assert.Equal(t, [3]int{3, -2, 5}, four.ApplyToHKL([3]int{2, 3, 5}))
	assert.Equal(t, 5*Den/4, four.PhaseShift([3]int{2, 3, 5}))
}
