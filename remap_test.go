package crystio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapIDs(t *testing.T) {
	ids, next := RemapIDs([]int32{0, 0, 1, 2}, map[int]string{0: "a", 1: "b", 2: "c"}, 0)
	assert.Equal(t, []int32{0, 0, 1, 2}, ids)
	assert.Equal(t, 3, next)

	ids, next = RemapIDs([]int32{1, 0}, map[int]string{0: "d", 1: "e"}, next)
	assert.Equal(t, []int32{4, 3}, ids)
	assert.Equal(t, 5, next)

	// a file without reflections still consumes its identifiers
	ids, next = RemapIDs(nil, map[int]string{0: "f"}, next)
	assert.Empty(t, ids)
	assert.Equal(t, 6, next)
}

func TestRemapIDs_DoesNotAlias(t *testing.T) {
	local := []int32{0, 1}
	ids, _ := RemapIDs(local, map[int]string{0: "a", 1: "b"}, 10)
	ids[0] = 99
	assert.Equal(t, []int32{0, 1}, local)
}

func TestCheckIDRange(t *testing.T) {
	assert.NoError(t, checkIDRange(nil, math.MaxInt32))
	assert.NoError(t, checkIDRange([]int32{0, 3}, 10))
	assert.NoError(t, checkIDRange([]int32{math.MaxInt32 - 1}, 1))

	assert.Error(t, checkIDRange([]int32{0, math.MaxInt32}, 1))
	assert.Error(t, checkIDRange([]int32{math.MinInt32, 0}, -1))
	assert.Error(t, checkIDRange([]int32{5}, math.MaxInt32))
}
