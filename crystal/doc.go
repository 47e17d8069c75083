// Package crystal provides the crystallographic metadata attached to reflection
// tables: unit cells, symmetry operators and space groups.
//
// Space groups are built from Hall symbols and expanded into their full
// operator set. Two groups compare equal when they contain the same operators,
// so "P6522", "P 65 2 2" and the Hall symbol "P 65 2 (0 0 1)" all describe the
// same group:
//
//	sg, err := crystal.SpaceGroupByName("P 65 2 2")
//	if err != nil { ... }
//	absent := crystal.HKLIsAbsent([][3]int32{{0, 0, 1}, {0, 0, 6}}, sg)
//	// absent == []bool{true, false}
//
// # Systematic absences
//
// A reflection is systematically absent when a centering translation, or a
// symmetry operator that maps the index onto itself, introduces a phase shift
// that is not a whole number of cycles.
//
// # Limitations
//
// The rhombohedral-axes settings of the hexagonal glide groups
// ("R 3 c :R" and "R -3 c :R") disagree with reference absence tables for a
// subset of indices. Use the hexagonal setting (":H") for these groups.
package crystal
