package crystal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceGroupByName_Equivalence(t *testing.T) {
	a, err := SpaceGroupByName("P6522")
	require.NoError(t, err)
	b, err := SpaceGroupByName("p 65 2 2")
	require.NoError(t, err)
	c, err := SpaceGroupFromHall("P 65 2 (0 0 1)")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.Equal(t, 179, c.Number())
	assert.Equal(t, "P 65 2 2", c.HM())
	assert.Equal(t, 12, a.Order())

	p61, err := SpaceGroupByName("P 61 2 2")
	require.NoError(t, err)
	assert.False(t, a.Equal(p61))
}

func TestSpaceGroupByName_Unknown(t *testing.T) {
	_, err := SpaceGroupByName("Q 7")
	require.ErrorIs(t, err, ErrUnknownSpaceGroup)
}

func TestSpaceGroupOrders(t *testing.T) {
	tests := []struct {
		name  string
		order int
	}{
		{"P 1", 1},
		{"P -1", 2},
		{"P 21", 2},
		{"C 2", 4},
		{"P 21/c", 4},
		{"P 21 21 21", 4},
		{"I 2 2 2", 8},
		{"F 2 2 2", 16},
		{"P 41 21 2", 8},
		{"P 3 2 1", 6},
		{"R 3", 9},
		{"R 3:R", 3},
		{"P 6", 6},
		{"P 63 2 2", 12},
		{"P 21 3", 12},
		{"F m -3 m", 192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := SpaceGroupByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.order, g.Order())
		})
	}
}

// pointGroupOrder returns the point-group order for an International Tables number.
func pointGroupOrder(number int) int {
	bounds := []struct{ last, order int }{
		{1, 1}, {2, 2}, {9, 2}, {15, 4}, {46, 4}, {74, 8}, {82, 4}, {88, 8},
		{122, 8}, {142, 16}, {146, 3}, {148, 6}, {161, 6}, {167, 12},
		{174, 6}, {190, 12}, {194, 24}, {199, 12}, {220, 24}, {230, 48},
	}
	for _, b := range bounds {
		if number <= b.last {
			return b.order
		}
	}
	return 0
}

func centrosymmetric(number int) bool {
	for _, r := range [][2]int{{2, 2}, {10, 15}, {47, 74}, {83, 88}, {123, 142}, {147, 148},
		{162, 167}, {175, 176}, {191, 194}, {200, 206}, {221, 230}} {
		if number >= r[0] && number <= r[1] {
			return true
		}
	}
	return false
}

func latticePoints(e *tableEntry) int {
	switch e.hm[0] {
	case 'A', 'B', 'C', 'I':
		return 2
	case 'F':
		return 4
	case 'R':
		if e.setting == "H" {
			return 3
		}
	}
	return 1
}

func TestSpaceGroupTable_AllBuild(t *testing.T) {
	numbers := make(map[int]bool)
	for i := range spaceGroupTable {
		e := &spaceGroupTable[i]
		numbers[e.number] = true
		t.Run(e.hall, func(t *testing.T) {
			g, err := e.build()
			require.NoError(t, err)
			assert.Equal(t, e.number, g.Number())
			assert.Equal(t, pointGroupOrder(e.number)*latticePoints(e), g.Order())
			assert.Len(t, g.SymOps(), pointGroupOrder(e.number))
			assert.Equal(t, centrosymmetric(e.number), g.IsCentrosymmetric())

			byName, err := SpaceGroupByName(e.hm + suffix(e.setting))
			require.NoError(t, err)
			assert.True(t, g.Equal(byName))
		})
	}
	for n := 1; n <= 230; n++ {
		assert.True(t, numbers[n], "space group %d missing", n)
	}
}

func suffix(setting string) string {
	if setting == "" {
		return ""
	}
	return ":" + setting
}

func TestSpaceGroupByName_CommonGroups(t *testing.T) {
	tests := []struct {
		name   string
		number int
		xhm    string
	}{
		{"P n m a", 62, "P n m a"},
		{"Pbca", 61, "P b c a"},
		{"C m c m", 63, "C m c m"},
		{"C m c e", 64, "C m c a"},
		{"P 21/n", 14, "P 1 21/n 1"},
		{"P 1 21/n 1", 14, "P 1 21/n 1"},
		{"I 2", 5, "I 1 2 1"},
		{"I 41/a", 88, "I 41/a:1"},
		{"I 41/a:2", 88, "I 41/a:2"},
		{"P 42/m n m", 136, "P 42/m n m"},
		{"F d -3 m", 227, "F d -3 m:1"},
		{"Fd-3m:2", 227, "F d -3 m:2"},
		{"I a -3 d", 230, "I a -3 d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := SpaceGroupByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.number, g.Number())
			assert.Equal(t, tt.xhm, g.XHM())
		})
	}

	// origin choices differ in operators but not in absences
	one, two := MustSpaceGroup("F d -3 m:1"), MustSpaceGroup("F d -3 m:2")
	assert.False(t, one.Equal(two))
	for h := -4; h <= 4; h++ {
		for k := -4; k <= 4; k++ {
			for l := -4; l <= 4; l++ {
				hkl := [3]int{h, k, l}
				assert.Equal(t, one.IsSystematicallyAbsent(hkl), two.IsSystematicallyAbsent(hkl), "%v", hkl)
			}
		}
	}
}

func TestSpaceGroupFromHall_EquivalentSpelling(t *testing.T) {
	// differs from the tabulated "F -4a 2 3" by a centering translation
	g, err := SpaceGroupFromHall("F -4c 2 3")
	require.NoError(t, err)
	assert.Equal(t, 219, g.Number())
	assert.Equal(t, Cubic, g.CrystalSystem())
}

func TestSpaceGroupFromOps(t *testing.T) {
	g, err := SpaceGroupFromOps("-x,y+1/2,-z")
	require.NoError(t, err)
	assert.Equal(t, 4, g.Number())
	assert.Equal(t, "P 1 21 1", g.HM())

	ref := MustSpaceGroup("P 21")
	assert.True(t, g.Equal(ref))

	_, err = SpaceGroupFromOps("x,y")
	require.ErrorIs(t, err, ErrInvalidOp)
}

func TestSpaceGroup_Operators(t *testing.T) {
	g := MustSpaceGroup("P 61 2 2")
	var triplets []string
	for _, op := range g.Operations() {
		triplets = append(triplets, op.Triplet())
	}
	assert.Contains(t, triplets, "-y,-x,-z+5/6")
	assert.Contains(t, triplets, "x-y,x,z+1/6")

	p321 := MustSpaceGroup("P 3 2 1")
	triplets = triplets[:0]
	for _, op := range p321.Operations() {
		triplets = append(triplets, op.Triplet())
	}
	assert.Contains(t, triplets, "y,x,-z")
}

func TestSpaceGroup_Centering(t *testing.T) {
	assert.Len(t, MustSpaceGroup("P 1").CenteringVectors(), 1)
	assert.Len(t, MustSpaceGroup("C 2").CenteringVectors(), 2)
	assert.Len(t, MustSpaceGroup("R 3").CenteringVectors(), 3)
	assert.Len(t, MustSpaceGroup("F 2 3").CenteringVectors(), 4)
	assert.True(t, MustSpaceGroup("P -1").IsCentrosymmetric())
}

func TestSpaceGroup_Names(t *testing.T) {
	r3 := MustSpaceGroup("H 3")
	assert.Equal(t, "R 3:H", r3.XHM())
	assert.True(t, r3.Equal(MustSpaceGroup("R 3")))
	assert.False(t, r3.Equal(MustSpaceGroup("R 3:R")))
	assert.Equal(t, Trigonal, r3.CrystalSystem())

	viaHall, err := SpaceGroupByName("Hall:-P 2ybc")
	require.NoError(t, err)
	assert.Equal(t, 14, viaHall.Number())
}

func TestParseHall_Errors(t *testing.T) {
	for _, sym := range []string{"", "X 2", "P 5", "P 2q", "P 2 2 2 2 (0 0", "P 3 3"} {
		_, err := SpaceGroupFromHall(sym)
		assert.ErrorIs(t, err, ErrInvalidHall, "symbol %q", sym)
	}
}
