//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt64(t *testing.T) {
	t.Run("valid max int64", func(t *testing.T) {
		got, err := Uint64ToInt64(math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt64(math.MaxInt64 + 1)
		assert.Error(t, err)
	})
}

func TestInt64ToInt(t *testing.T) {
	t.Run("valid min", func(t *testing.T) {
		got, err := Int64ToInt(math.MinInt64)
		assert.NoError(t, err)
		assert.Equal(t, math.MinInt, got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Int64ToInt(math.MaxInt64)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})
}

func TestCountToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := CountToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := CountToInt(-1)
		assert.ErrorContains(t, err, "negative")
	})
}

func TestIntToInt32(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		got, err := IntToInt32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, int32(math.MaxInt32), got)

		got, err = IntToInt32(math.MinInt32)
		assert.NoError(t, err)
		assert.Equal(t, int32(math.MinInt32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToInt32(math.MaxInt32 + 1)
		assert.Error(t, err)
	})

	t.Run("invalid too small", func(t *testing.T) {
		_, err := IntToInt32(math.MinInt32 - 1)
		assert.Error(t, err)
	})
}
