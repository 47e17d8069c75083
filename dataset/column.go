package dataset

import (
	"fmt"
	"math"
	"slices"
)

// Kind identifies the element type of a column.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt32
	KindUint64
	KindFloat64
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Element is the set of supported column element types.
type Element interface {
	int32 | uint64 | float64 | bool
}

// KindOf returns the Kind of an element type.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case uint64:
		return KindUint64
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	}
	return KindInvalid
}

// Column is a named, typed, immutable sequence of values.
type Column interface {
	Name() string
	Kind() Kind
	Len() int

	// rename returns the same values under a different name.
	rename(name string) Column
	// concat stacks parts, all of the receiver's kind, into one column of
	// total rows.
	concat(parts []Column, total int) (Column, error)
	// take returns the rows at the given positions.
	take(rows []int) Column
	// equal compares values; NaN equals NaN.
	equal(o Column) bool
}

// Series is the concrete Column implementation.
type Series[T Element] struct {
	name   string
	values []T
}

// NewSeries creates a column; values are not copied.
func NewSeries[T Element](name string, values []T) *Series[T] {
	return &Series[T]{name: name, values: values}
}

func (s *Series[T]) Name() string { return s.name }
func (s *Series[T]) Kind() Kind   { return KindOf[T]() }
func (s *Series[T]) Len() int     { return len(s.values) }

// Values returns the underlying slice. Callers must not modify it.
func (s *Series[T]) Values() []T { return s.values }

// At returns the value in row i.
func (s *Series[T]) At(i int) T { return s.values[i] }

func (s *Series[T]) rename(name string) Column {
	return &Series[T]{name: name, values: s.values}
}

func (s *Series[T]) concat(parts []Column, total int) (Column, error) {
	out := make([]T, 0, total)
	for _, p := range parts {
		other, ok := p.(*Series[T])
		if !ok {
			return nil, fmt.Errorf("%w: column %q: %s vs %s", ErrSchemaMismatch, s.name, s.Kind(), p.Kind())
		}
		out = append(out, other.values...)
	}
	return &Series[T]{name: s.name, values: out}, nil
}

func (s *Series[T]) take(rows []int) Column {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = s.values[r]
	}
	return &Series[T]{name: s.name, values: out}
}

func (s *Series[T]) equal(o Column) bool {
	other, ok := o.(*Series[T])
	if !ok || s.name != other.name {
		return false
	}
	if f, ok := any(s.values).([]float64); ok {
		g := any(other.values).([]float64)
		return slices.EqualFunc(f, g, func(a, b float64) bool {
			return a == b || (math.IsNaN(a) && math.IsNaN(b))
		})
	}
	return slices.Equal(s.values, other.values)
}
