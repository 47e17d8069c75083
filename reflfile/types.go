package reflfile

import (
	"fmt"

	"github.com/hupe1980/crystio/dataset"
)

// ColumnType is the closed set of column element types a container may declare.
type ColumnType uint8

const (
	TypeInvalid ColumnType = iota
	TypeBool
	TypeInt
	TypeSize
	TypeDouble
	TypeVec2Double
	TypeVec3Double
	TypeMat3Double
	TypeInt6
	TypeMillerIndex
)

type typeInfo struct {
	tag      string
	width    int
	elemSize int
	kind     dataset.Kind
}

var typeTable = [...]typeInfo{
	TypeInvalid:     {tag: "invalid"},
	TypeBool:        {"bool", 1, 1, dataset.KindBool},
	TypeInt:         {"int", 1, 4, dataset.KindInt32},
	TypeSize:        {"std::size_t", 1, 8, dataset.KindUint64},
	TypeDouble:      {"double", 1, 8, dataset.KindFloat64},
	TypeVec2Double:  {"vec2<double>", 2, 8, dataset.KindFloat64},
	TypeVec3Double:  {"vec3<double>", 3, 8, dataset.KindFloat64},
	TypeMat3Double:  {"mat3<double>", 9, 8, dataset.KindFloat64},
	TypeInt6:        {"int6", 6, 4, dataset.KindInt32},
	TypeMillerIndex: {"cctbx::miller::index<>", 3, 4, dataset.KindInt32},
}

var typeByTag = func() map[string]ColumnType {
	m := make(map[string]ColumnType, len(typeTable))
	for t := TypeBool; int(t) < len(typeTable); t++ {
		m[typeTable[t].tag] = t
	}
	return m
}()

// ParseColumnType maps a declared type tag to a ColumnType.
func ParseColumnType(tag string) (ColumnType, error) {
	if t, ok := typeByTag[tag]; ok {
		return t, nil
	}
	return TypeInvalid, fmt.Errorf("%w: column type %q", ErrUnsupportedFormat, tag)
}

func (t ColumnType) info() typeInfo {
	if int(t) >= len(typeTable) {
		return typeTable[TypeInvalid]
	}
	return typeTable[t]
}

// String returns the on-disk type tag.
func (t ColumnType) String() string { return t.info().tag }

// Width is the number of elements per row (3 for a Miller index).
func (t ColumnType) Width() int { return t.info().width }

// ElemSize is the size of one element in bytes.
func (t ColumnType) ElemSize() int { return t.info().elemSize }

// RowSize is the number of buffer bytes per row.
func (t ColumnType) RowSize() int { return t.Width() * t.ElemSize() }

// Kind is the element kind of the decoded values.
func (t ColumnType) Kind() dataset.Kind { return t.info().kind }

// IsVector reports whether a row holds more than one element.
func (t ColumnType) IsVector() bool { return t.Width() > 1 }
