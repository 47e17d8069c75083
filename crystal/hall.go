package crystal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHall is returned for malformed Hall symbols.
var ErrInvalidHall = errors.New("invalid hall symbol")

const half, quarter = Den / 2, Den / 4

var latticeTranslations = map[byte][][3]int{
	'P': nil,
	'A': {{0, half, half}},
	'B': {{half, 0, half}},
	'C': {{half, half, 0}},
	'I': {{half, half, half}},
	'R': {{2 * Den / 3, Den / 3, Den / 3}, {Den / 3, 2 * Den / 3, 2 * Den / 3}},
	'S': {{Den / 3, Den / 3, 2 * Den / 3}, {2 * Den / 3, 2 * Den / 3, Den / 3}},
	'T': {{Den / 3, 2 * Den / 3, Den / 3}, {2 * Den / 3, Den / 3, 2 * Den / 3}},
	'F': {{0, half, half}, {half, 0, half}, {half, half, 0}},
}

var hallTranslations = map[byte][3]int{
	'a': {half, 0, 0},
	'b': {0, half, 0},
	'c': {0, 0, half},
	'n': {half, half, half},
	'u': {quarter, 0, 0},
	'v': {0, quarter, 0},
	'w': {0, 0, quarter},
	'd': {quarter, quarter, quarter},
}

// rotations along z; other principal axes are obtained by cyclic permutation.
var zRotations = map[int][3][3]int{
	1: {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	2: {{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	3: {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	4: {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	6: {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

var (
	// two-fold along a-b (') and a+b (") relative to z
	zPrime       = [3][3]int{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}
	zDoublePrime = [3][3]int{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}
	// three-fold along the body diagonal
	bodyDiagonal = [3][3]int{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
)

// permuteAxis re-expresses a z-axis matrix for the x or y axis.
func permuteAxis(m [3][3]int, axis byte) [3][3]int {
	var perm [3]int
	switch axis {
	case 'x':
		perm = [3]int{1, 2, 0}
	case 'y':
		perm = [3]int{2, 0, 1}
	default:
		return m
	}
	var r [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[perm[i]][perm[j]] = m[i][j]
		}
	}
	return r
}

func axisIndex(axis byte) int {
	switch axis {
	case 'x':
		return 0
	case 'y':
		return 1
	}
	return 2
}

// hallMatrix is one rotation token of a Hall symbol after default-axis resolution.
type hallMatrix struct {
	order int
	axis  byte
}

// parseHall expands a Hall symbol into generators (centering translations
// included) with the change-of-basis already applied.
func parseHall(symbol string) ([]Op, error) {
	s := strings.TrimSpace(symbol)
	var shift [3]int
	if open := strings.IndexByte(s, '('); open >= 0 {
		closeIdx := strings.IndexByte(s, ')')
		if closeIdx < open {
			return nil, fmt.Errorf("%w: %q: unbalanced parenthesis", ErrInvalidHall, symbol)
		}
		v, err := parseHallShift(s[open+1 : closeIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHall, symbol, err)
		}
		shift = v
		s = strings.TrimSpace(s[:open])
	}

	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty symbol", ErrInvalidHall)
	}

	lat := tokens[0]
	centric := false
	if strings.HasPrefix(lat, "-") {
		centric = true
		lat = lat[1:]
	}
	if len(lat) != 1 {
		return nil, fmt.Errorf("%w: %q: bad lattice symbol", ErrInvalidHall, symbol)
	}
	centering, ok := latticeTranslations[strings.ToUpper(lat)[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q: unknown lattice %q", ErrInvalidHall, symbol, lat)
	}

	gens := make([]Op, 0, 8)
	for _, t := range centering {
		gens = append(gens, translation(t))
	}
	if centric {
		gens = append(gens, Identity().Negate())
	}

	var prev hallMatrix
	for pos, tok := range tokens[1:] {
		op, cur, err := parseHallRotation(tok, pos, prev)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHall, symbol, err)
		}
		gens = append(gens, op)
		prev = cur
	}

	if shift != [3]int{} {
		for i, g := range gens {
			gens[i] = changeOrigin(g, shift)
		}
	}
	return gens, nil
}

// changeOrigin conjugates op with a translation by v: t' = t + v - R·v.
func changeOrigin(op Op, v [3]int) Op {
	for i := 0; i < 3; i++ {
		op.Tran[i] += v[i]
		for k := 0; k < 3; k++ {
			op.Tran[i] -= op.Rot[i][k] * v[k]
		}
	}
	return op
}

// parseHallShift parses the "(0 0 1)" vector, given in twelfths.
func parseHallShift(s string) ([3]int, error) {
	var v [3]int
	f := strings.Fields(s)
	if len(f) != 3 {
		return v, errors.New("change-of-basis must be a 3-vector")
	}
	for i, x := range f {
		n, err := strconv.Atoi(x)
		if err != nil {
			return v, err
		}
		v[i] = n * Den / 12
	}
	return v, nil
}

func parseHallRotation(tok string, pos int, prev hallMatrix) (Op, hallMatrix, error) {
	var cur hallMatrix
	improper := false
	if strings.HasPrefix(tok, "-") {
		improper = true
		tok = tok[1:]
	}
	if tok == "" {
		return Op{}, cur, errors.New("empty rotation")
	}
	n, err := strconv.Atoi(tok[:1])
	if err != nil {
		return Op{}, cur, fmt.Errorf("bad rotation order in %q", tok)
	}
	if _, ok := zRotations[n]; !ok {
		return Op{}, cur, fmt.Errorf("bad rotation order %d", n)
	}
	cur.order = n

	screw := 0
	var tran [3]int
	for i := 1; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= '1' && c <= '5':
			if int(c-'0') >= n {
				return Op{}, cur, fmt.Errorf("screw %c invalid for %d-fold", c, n)
			}
			screw = int(c - '0')
		case c == 'x' || c == 'y' || c == 'z' || c == '\'' || c == '"' || c == '*':
			cur.axis = c
		default:
			t, ok := hallTranslations[c]
			if !ok {
				return Op{}, cur, fmt.Errorf("unknown symbol %q in %q", c, tok)
			}
			for k := range tran {
				tran[k] += t[k]
			}
		}
	}

	if cur.axis == 0 {
		switch {
		case n == 1:
			cur.axis = 'z'
		case pos == 0:
			cur.axis = 'z'
		case pos == 1 && n == 2 && (prev.order == 2 || prev.order == 4):
			cur.axis = 'x'
		case pos == 1 && n == 2 && (prev.order == 3 || prev.order == 6):
			cur.axis = '\''
		case pos == 2 && n == 3:
			cur.axis = '*'
		default:
			return Op{}, cur, fmt.Errorf("cannot infer axis for %q", tok)
		}
	}

	ref := prev.axis
	if ref != 'x' && ref != 'y' {
		ref = 'z'
	}

	var rot [3][3]int
	switch cur.axis {
	case 'x', 'y', 'z':
		rot = permuteAxis(zRotations[n], cur.axis)
		if screw > 0 {
			tran[axisIndex(cur.axis)] += screw * Den / n
		}
	case '\'', '"':
		if n != 2 || screw > 0 {
			return Op{}, cur, fmt.Errorf("diagonal axis requires a plain two-fold in %q", tok)
		}
		if cur.axis == '\'' {
			rot = permuteAxis(zPrime, ref)
		} else {
			rot = permuteAxis(zDoublePrime, ref)
		}
		// the diagonal takes the reference axis for the next token's defaults
		cur.axis = ref
	case '*':
		if n != 3 || screw > 0 {
			return Op{}, cur, fmt.Errorf("body diagonal requires a plain three-fold in %q", tok)
		}
		rot = bodyDiagonal
	}
	op := Op{Rot: rot, Tran: tran}
	if improper {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				op.Rot[i][j] = -op.Rot[i][j]
			}
		}
	}
	return op, cur, nil
}
