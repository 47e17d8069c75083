package crystal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Den is the common denominator of operator translations. 24 covers every
// fractional shift that appears in space-group operators (halves, thirds,
// quarters, sixths) and the twelfths used by Hall change-of-basis vectors.
const Den = 24

// ErrInvalidOp is returned for unparsable operator triplets.
var ErrInvalidOp = errors.New("invalid symmetry operator")

// Op is a symmetry operator x' = Rot·x + Tran/Den in fractional coordinates.
type Op struct {
	Rot  [3][3]int
	Tran [3]int
}

// Identity returns the identity operator.
func Identity() Op {
	return Op{Rot: [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

func translation(t [3]int) Op {
	op := Identity()
	op.Tran = t
	return op
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Mul returns the composition o∘b (b applied first).
func (o Op) Mul(b Op) Op {
	var r Op
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r.Rot[i][j] += o.Rot[i][k] * b.Rot[k][j]
			}
		}
		r.Tran[i] = o.Tran[i]
		for k := 0; k < 3; k++ {
			r.Tran[i] += o.Rot[i][k] * b.Tran[k]
		}
	}
	return r
}

// Wrap reduces translations into [0, Den).
func (o Op) Wrap() Op {
	for i := range o.Tran {
		o.Tran[i] = mod(o.Tran[i], Den)
	}
	return o
}

// Negate returns the operator combined with inversion through the origin.
func (o Op) Negate() Op {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.Rot[i][j] = -o.Rot[i][j]
		}
		o.Tran[i] = -o.Tran[i]
	}
	return o
}

// Det returns the determinant of the rotation part (+1 proper, -1 improper).
func (o Op) Det() int {
	r := o.Rot
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// IsIdentityRot reports whether the rotation part is the identity.
func (o Op) IsIdentityRot() bool {
	return o.Rot == Identity().Rot
}

// ApplyToHKL transforms a Miller index by the rotation part (row vector h·R).
func (o Op) ApplyToHKL(hkl [3]int) [3]int {
	var r [3]int
	for j := 0; j < 3; j++ {
		r[j] = hkl[0]*o.Rot[0][j] + hkl[1]*o.Rot[1][j] + hkl[2]*o.Rot[2][j]
	}
	return r
}

// PhaseShift returns h·t in units of 1/Den cycles.
func (o Op) PhaseShift(hkl [3]int) int {
	return hkl[0]*o.Tran[0] + hkl[1]*o.Tran[1] + hkl[2]*o.Tran[2]
}

// less orders operators for canonical output.
func (o Op) less(b Op) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if o.Rot[i][j] != b.Rot[i][j] {
				return o.Rot[i][j] > b.Rot[i][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		if o.Tran[i] != b.Tran[i] {
			return o.Tran[i] < b.Tran[i]
		}
	}
	return false
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Triplet formats the operator in coordinate-triplet notation, e.g. "-y,x-y,z+1/3".
func (o Op) Triplet() string {
	axes := [3]string{"x", "y", "z"}
	parts := make([]string, 3)
	for i := 0; i < 3; i++ {
		var sb strings.Builder
		for j := 0; j < 3; j++ {
			c := o.Rot[i][j]
			switch {
			case c == 0:
				continue
			case c == 1:
				if sb.Len() > 0 {
					sb.WriteByte('+')
				}
			case c == -1:
				sb.WriteByte('-')
			case c > 0:
				if sb.Len() > 0 {
					sb.WriteByte('+')
				}
				sb.WriteString(strconv.Itoa(c) + "*")
			default:
				sb.WriteString(strconv.Itoa(c) + "*")
			}
			sb.WriteString(axes[j])
		}
		if t := o.Tran[i]; t != 0 {
			g := gcd(t, Den)
			num, den := t/g, Den/g
			if num > 0 && sb.Len() > 0 {
				sb.WriteByte('+')
			}
			if den == 1 {
				sb.WriteString(strconv.Itoa(num))
			} else {
				sb.WriteString(fmt.Sprintf("%d/%d", num, den))
			}
		}
		if sb.Len() == 0 {
			sb.WriteByte('0')
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, ",")
}

func (o Op) String() string { return o.Triplet() }

// ParseTriplet parses coordinate-triplet notation such as "-x+1/2, y, -z+1/4".
func ParseTriplet(s string) (Op, error) {
	rows := strings.Split(s, ",")
	if len(rows) != 3 {
		return Op{}, fmt.Errorf("%w: %q: expected 3 components", ErrInvalidOp, s)
	}
	var op Op
	for i, row := range rows {
		rot, tran, err := parseTripletRow(strings.ToLower(strings.ReplaceAll(row, " ", "")))
		if err != nil {
			return Op{}, fmt.Errorf("%w: %q: %w", ErrInvalidOp, s, err)
		}
		op.Rot[i] = rot
		op.Tran[i] = tran
	}
	return op, nil
}

func parseTripletRow(row string) ([3]int, int, error) {
	var rot [3]int
	tran := 0
	if row == "" {
		return rot, 0, errors.New("empty component")
	}
	i := 0
	for i < len(row) {
		sign := 1
		if row[i] == '+' || row[i] == '-' {
			if row[i] == '-' {
				sign = -1
			}
			i++
		}
		if i >= len(row) {
			return rot, 0, errors.New("dangling sign")
		}
		// numeric prefix: integer, fraction or coefficient
		start := i
		for i < len(row) && (row[i] >= '0' && row[i] <= '9' || row[i] == '/' || row[i] == '.') {
			i++
		}
		num := row[start:i]
		if i < len(row) && row[i] == '*' {
			i++
		}
		if i < len(row) && row[i] >= 'x' && row[i] <= 'z' {
			coef := 1
			if num != "" {
				c, err := strconv.Atoi(num)
				if err != nil {
					return rot, 0, err
				}
				coef = c
			}
			rot[row[i]-'x'] += sign * coef
			i++
			continue
		}
		if num == "" {
			return rot, 0, fmt.Errorf("unexpected %q", row[i:])
		}
		t, err := parseFraction(num)
		if err != nil {
			return rot, 0, err
		}
		tran += sign * t
	}
	return rot, tran, nil
}

// parseFraction converts "1/3", "0.5" or "1" into units of 1/Den.
func parseFraction(s string) (int, error) {
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := strconv.Atoi(n)
		if err != nil {
			return 0, err
		}
		den, err := strconv.Atoi(d)
		if err != nil {
			return 0, err
		}
		if den == 0 || (num*Den)%den != 0 {
			return 0, fmt.Errorf("fraction %s not representable", s)
		}
		return num * Den / den, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	v := f * Den
	r := int(v + 0.5)
	if d := v - float64(r); d > 1e-9 || d < -1e-9 {
		return 0, fmt.Errorf("fraction %s not representable", s)
	}
	return r, nil
}
