package crystal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCell is returned for unit cells with non-physical parameters.
var ErrInvalidCell = errors.New("invalid unit cell")

// CellTolerance is the absolute tolerance used when comparing cell parameters.
const CellTolerance = 1e-6

// UnitCell holds the six lattice parameters: lengths in Ångström and angles in degrees.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// NewUnitCell creates a validated unit cell.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (UnitCell, error) {
	cell := UnitCell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}
	if err := cell.Validate(); err != nil {
		return UnitCell{}, err
	}
	return cell, nil
}

// UnitCellFromSlice creates a unit cell from exactly six parameters.
func UnitCellFromSlice(params []float64) (UnitCell, error) {
	if len(params) != 6 {
		return UnitCell{}, fmt.Errorf("%w: expected 6 parameters, got %d", ErrInvalidCell, len(params))
	}
	return NewUnitCell(params[0], params[1], params[2], params[3], params[4], params[5])
}

// ParseUnitCell parses "a,b,c,alpha,beta,gamma" (commas and/or whitespace).
func ParseUnitCell(s string) (UnitCell, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	params := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return UnitCell{}, fmt.Errorf("%w: %q: %w", ErrInvalidCell, f, err)
		}
		params = append(params, v)
	}
	return UnitCellFromSlice(params)
}

// Validate checks that lengths are positive and angles lie in (0, 180).
func (c UnitCell) Validate() error {
	for _, l := range []float64{c.A, c.B, c.C} {
		if !(l > 0) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: length %v", ErrInvalidCell, l)
		}
	}
	for _, a := range []float64{c.Alpha, c.Beta, c.Gamma} {
		if !(a > 0 && a < 180) {
			return fmt.Errorf("%w: angle %v", ErrInvalidCell, a)
		}
	}
	if !(c.Volume() > 0) {
		return fmt.Errorf("%w: angles do not span a volume", ErrInvalidCell)
	}
	return nil
}

// Parameters returns (a, b, c, alpha, beta, gamma).
func (c UnitCell) Parameters() [6]float64 {
	return [6]float64{c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma}
}

// Equal reports whether both cells agree within CellTolerance.
func (c UnitCell) Equal(o UnitCell) bool {
	p, q := c.Parameters(), o.Parameters()
	for i := range p {
		if math.Abs(p[i]-q[i]) > CellTolerance {
			return false
		}
	}
	return true
}

func (c UnitCell) String() string {
	return fmt.Sprintf("%g %g %g %g %g %g", c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma)
}

func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

// Volume returns the cell volume in Å³.
func (c UnitCell) Volume() float64 {
	ca, cb, cg := cosd(c.Alpha), cosd(c.Beta), cosd(c.Gamma)
	v := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if v <= 0 {
		return 0
	}
	return c.A * c.B * c.C * math.Sqrt(v)
}

// metric returns the real-space metric tensor.
func (c UnitCell) metric() [3][3]float64 {
	ca, cb, cg := cosd(c.Alpha), cosd(c.Beta), cosd(c.Gamma)
	return [3][3]float64{
		{c.A * c.A, c.A * c.B * cg, c.A * c.C * cb},
		{c.A * c.B * cg, c.B * c.B, c.B * c.C * ca},
		{c.A * c.C * cb, c.B * c.C * ca, c.C * c.C},
	}
}

// DSpacing returns the resolution (interplanar spacing, Å) of a reflection.
// The zeroth reflection has infinite spacing.
func (c UnitCell) DSpacing(hkl [3]int32) float64 {
	g := c.metric()
	det := g[0][0]*(g[1][1]*g[2][2]-g[1][2]*g[2][1]) -
		g[0][1]*(g[1][0]*g[2][2]-g[1][2]*g[2][0]) +
		g[0][2]*(g[1][0]*g[2][1]-g[1][1]*g[2][0])
	// adjugate / det is the reciprocal metric tensor
	inv := [3][3]float64{
		{g[1][1]*g[2][2] - g[1][2]*g[2][1], g[0][2]*g[2][1] - g[0][1]*g[2][2], g[0][1]*g[1][2] - g[0][2]*g[1][1]},
		{g[1][2]*g[2][0] - g[1][0]*g[2][2], g[0][0]*g[2][2] - g[0][2]*g[2][0], g[0][2]*g[1][0] - g[0][0]*g[1][2]},
		{g[1][0]*g[2][1] - g[1][1]*g[2][0], g[0][1]*g[2][0] - g[0][0]*g[2][1], g[0][0]*g[1][1] - g[0][1]*g[1][0]},
	}
	h := [3]float64{float64(hkl[0]), float64(hkl[1]), float64(hkl[2])}
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += h[i] * inv[i][j] * h[j]
		}
	}
	s /= det
	if s <= 0 {
		return math.Inf(1)
	}
	return 1 / math.Sqrt(s)
}

// CompatibleWith reports whether the cell satisfies the metric constraints of
// the space group's crystal system. Groups without a known number (built from
// raw operators) are always compatible.
func (c UnitCell) CompatibleWith(sg *SpaceGroup) bool {
	if sg == nil {
		return false
	}
	eq := func(x, y float64) bool { return math.Abs(x-y) <= 1e-3*math.Max(1, math.Abs(y)) }
	right := func(x float64) bool { return eq(x, 90) }

	switch sg.CrystalSystem() {
	case Triclinic, UnknownSystem:
		return true
	case Monoclinic:
		// unique axis b for the settings in the name table
		return right(c.Alpha) && right(c.Gamma)
	case Orthorhombic:
		return right(c.Alpha) && right(c.Beta) && right(c.Gamma)
	case Tetragonal:
		return eq(c.A, c.B) && right(c.Alpha) && right(c.Beta) && right(c.Gamma)
	case Trigonal:
		if sg.Setting() == "R" {
			return eq(c.A, c.B) && eq(c.B, c.C) && eq(c.Alpha, c.Beta) && eq(c.Beta, c.Gamma)
		}
		return eq(c.A, c.B) && right(c.Alpha) && right(c.Beta) && eq(c.Gamma, 120)
	case Hexagonal:
		return eq(c.A, c.B) && right(c.Alpha) && right(c.Beta) && eq(c.Gamma, 120)
	case Cubic:
		return eq(c.A, c.B) && eq(c.B, c.C) && right(c.Alpha) && right(c.Beta) && right(c.Gamma)
	}
	return true
}
