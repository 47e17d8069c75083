package reflfile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for an unknown container tag or
	// version, or a requested column of an unknown type.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrMissingColumn is returned when a requested column is not in the file.
	ErrMissingColumn = errors.New("missing column")
	// ErrCorruptContainer is returned for malformed msgpack or buffers whose
	// size disagrees with the declared row count.
	ErrCorruptContainer = errors.New("corrupt container")
)

// ColumnError attaches column and type context to a decode failure.
//
// The sentinel (ErrUnsupportedFormat, ErrMissingColumn, ErrCorruptContainer)
// can be matched via errors.Is.
type ColumnError struct {
	Column string
	Type   string
	Err    error
}

func (e *ColumnError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("column %q (%s): %v", e.Column, e.Type, e.Err)
	}
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptContainer, fmt.Sprintf(format, args...))
}
