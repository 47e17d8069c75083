package crystal

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownSpaceGroup is returned when a name or number is not in the table.
var ErrUnknownSpaceGroup = errors.New("unknown space group")

// maxGroupOrder bounds operator closure; Fm-3m has 192 operators.
const maxGroupOrder = 192

// CrystalSystem classifies a space group by its lattice symmetry.
type CrystalSystem int

const (
	UnknownSystem CrystalSystem = iota
	Triclinic
	Monoclinic
	Orthorhombic
	Tetragonal
	Trigonal
	Hexagonal
	Cubic
)

func (s CrystalSystem) String() string {
	switch s {
	case Triclinic:
		return "triclinic"
	case Monoclinic:
		return "monoclinic"
	case Orthorhombic:
		return "orthorhombic"
	case Tetragonal:
		return "tetragonal"
	case Trigonal:
		return "trigonal"
	case Hexagonal:
		return "hexagonal"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// CrystalSystemOf returns the crystal system for an International Tables number.
func CrystalSystemOf(number int) CrystalSystem {
	switch {
	case number >= 1 && number <= 2:
		return Triclinic
	case number <= 15 && number > 0:
		return Monoclinic
	case number <= 74 && number > 0:
		return Orthorhombic
	case number <= 142 && number > 0:
		return Tetragonal
	case number <= 167 && number > 0:
		return Trigonal
	case number <= 194 && number > 0:
		return Hexagonal
	case number <= 230 && number > 0:
		return Cubic
	}
	return UnknownSystem
}

// SpaceGroup is an immutable, fully expanded set of symmetry operators.
type SpaceGroup struct {
	number  int
	hm      string
	setting string
	hall    string

	// ops holds every operator (centering included), sorted and wrapped.
	ops []Op
	// symOps holds one operator per distinct rotation.
	symOps []Op
	// centering holds the pure translations, zero vector first.
	centering [][3]int
}

// SpaceGroupFromHall builds a space group from a Hall symbol.
func SpaceGroupFromHall(hall string) (*SpaceGroup, error) {
	gens, err := parseHall(hall)
	if err != nil {
		return nil, err
	}
	g, err := generate(gens)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHall, hall, err)
	}
	g.hall = strings.TrimSpace(hall)
	if e, ok := lookupHall(g.hall); ok {
		g.number, g.hm, g.setting = e.number, e.hm, e.setting
	} else if e, ok := identify(g); ok {
		// equivalent spelling of a tabulated setting
		g.number, g.hm, g.setting = e.number, e.hm, e.setting
	}
	return g, nil
}

// SpaceGroupFromOps builds a space group as the closure of the given operator triplets.
func SpaceGroupFromOps(triplets ...string) (*SpaceGroup, error) {
	gens := make([]Op, 0, len(triplets))
	for _, t := range triplets {
		op, err := ParseTriplet(t)
		if err != nil {
			return nil, err
		}
		gens = append(gens, op)
	}
	g, err := generate(gens)
	if err != nil {
		return nil, err
	}
	if e, ok := identify(g); ok {
		g.number, g.hm, g.setting, g.hall = e.number, e.hm, e.setting, e.hall
	}
	return g, nil
}

// SpaceGroupByName looks up a Hermann-Mauguin symbol. Spacing and case are
// ignored, so "P6522", "p 65 2 2" and "P 65 2 2" are equivalent. Rhombohedral
// groups default to the hexagonal setting; append ":R" for rhombohedral axes.
// Groups with two origin choices default to origin choice 1; append ":2" for
// the other.
// Hall symbols prefixed with "Hall:" are accepted as well.
func SpaceGroupByName(name string) (*SpaceGroup, error) {
	if h, ok := strings.CutPrefix(strings.TrimSpace(name), "Hall:"); ok {
		return SpaceGroupFromHall(h)
	}
	e, ok := lookupName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpaceGroup, name)
	}
	return e.build()
}

// SpaceGroupByNumber returns the reference setting of a space group number.
func SpaceGroupByNumber(number int) (*SpaceGroup, error) {
	for i := range spaceGroupTable {
		if spaceGroupTable[i].number == number {
			return spaceGroupTable[i].build()
		}
	}
	return nil, fmt.Errorf("%w: number %d", ErrUnknownSpaceGroup, number)
}

// MustSpaceGroup is like SpaceGroupByName but panics on error.
func MustSpaceGroup(name string) *SpaceGroup {
	g, err := SpaceGroupByName(name)
	if err != nil {
		panic(err)
	}
	return g
}

// generate computes the closure of the generators modulo lattice translations.
func generate(gens []Op) (*SpaceGroup, error) {
	id := Identity()
	seen := map[Op]struct{}{id: {}}
	ops := []Op{id}
	for i := 0; i < len(ops); i++ {
		for _, g := range gens {
			next := g.Mul(ops[i]).Wrap()
			if _, ok := seen[next]; ok {
				continue
			}
			if d := next.Det(); d != 1 && d != -1 {
				return nil, fmt.Errorf("operator %s is not unimodular", next.Triplet())
			}
			seen[next] = struct{}{}
			ops = append(ops, next)
			if len(ops) > maxGroupOrder {
				return nil, fmt.Errorf("operator closure exceeds %d elements", maxGroupOrder)
			}
		}
	}

	slices.SortFunc(ops, func(a, b Op) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})

	g := &SpaceGroup{ops: ops}
	byRot := make(map[[3][3]int]Op)
	for _, op := range ops {
		if op.IsIdentityRot() {
			g.centering = append(g.centering, op.Tran)
		}
		if cur, ok := byRot[op.Rot]; !ok || op.less(cur) {
			byRot[op.Rot] = op
		}
	}
	for _, op := range ops {
		if rep := byRot[op.Rot]; rep == op {
			g.symOps = append(g.symOps, op)
		}
	}
	return g, nil
}

// Number returns the International Tables number, or 0 if unknown.
func (g *SpaceGroup) Number() int { return g.number }

// HM returns the Hermann-Mauguin symbol, e.g. "P 65 2 2".
func (g *SpaceGroup) HM() string { return g.hm }

// Setting returns "H" or "R" for rhombohedral groups, "1" or "2" for groups
// with two origin choices, "" otherwise.
func (g *SpaceGroup) Setting() string { return g.setting }

// XHM returns the Hermann-Mauguin symbol with its setting suffix, e.g. "R 3:H"
// or "F d -3 m:1".
func (g *SpaceGroup) XHM() string {
	if g.setting == "" {
		return g.hm
	}
	return g.hm + ":" + g.setting
}

// Hall returns the Hall symbol the group was built from.
func (g *SpaceGroup) Hall() string { return g.hall }

// Operations returns a copy of all operators, centering included.
func (g *SpaceGroup) Operations() []Op { return slices.Clone(g.ops) }

// SymOps returns one operator per distinct rotation (coset representatives).
func (g *SpaceGroup) SymOps() []Op { return slices.Clone(g.symOps) }

// CenteringVectors returns the centering translations in units of 1/Den.
func (g *SpaceGroup) CenteringVectors() [][3]int { return slices.Clone(g.centering) }

// Order returns the number of operators modulo lattice translations.
func (g *SpaceGroup) Order() int { return len(g.ops) }

// IsCentrosymmetric reports whether the group contains the inversion.
func (g *SpaceGroup) IsCentrosymmetric() bool {
	inv := Identity().Negate().Rot
	for _, op := range g.symOps {
		if op.Rot == inv {
			return true
		}
	}
	return false
}

// CrystalSystem returns the crystal system, or UnknownSystem for groups not in the table.
func (g *SpaceGroup) CrystalSystem() CrystalSystem { return CrystalSystemOf(g.number) }

// Equal reports whether both groups contain the same operators.
func (g *SpaceGroup) Equal(o *SpaceGroup) bool {
	if g == nil || o == nil {
		return g == o
	}
	return slices.Equal(g.ops, o.ops)
}

func (g *SpaceGroup) String() string {
	if g.hm != "" {
		return g.XHM()
	}
	return "Hall:" + g.hall
}

// IsSystematicallyAbsent reports whether symmetry forces the reflection to zero intensity.
func (g *SpaceGroup) IsSystematicallyAbsent(hkl [3]int) bool {
	for _, c := range g.centering {
		if mod(hkl[0]*c[0]+hkl[1]*c[1]+hkl[2]*c[2], Den) != 0 {
			return true
		}
	}
	for _, op := range g.symOps {
		if op.IsIdentityRot() {
			continue
		}
		if op.ApplyToHKL(hkl) == hkl && mod(op.PhaseShift(hkl), Den) != 0 {
			return true
		}
	}
	return false
}

// HKLIsAbsent evaluates IsSystematicallyAbsent for every row, preserving order.
func HKLIsAbsent(hkl [][3]int32, sg *SpaceGroup) []bool {
	out := make([]bool, len(hkl))
	for i, h := range hkl {
		out[i] = sg.IsSystematicallyAbsent([3]int{int(h[0]), int(h[1]), int(h[2])})
	}
	return out
}
