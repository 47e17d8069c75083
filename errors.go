package crystio

import (
	"errors"
	"fmt"

	"github.com/hupe1980/crystio/parallel"
	"github.com/hupe1980/crystio/reflfile"
)

var (
	// ErrInconsistentMetadata is returned when the supplied unit cell or space
	// group is invalid or the two disagree.
	ErrInconsistentMetadata = errors.New("inconsistent crystal metadata")

	// ErrNoFiles is returned when ReadStills is called without paths.
	ErrNoFiles = errors.New("no reflection files given")

	// ErrUnsupportedFormat is returned for containers with an unknown tag or version.
	ErrUnsupportedFormat = reflfile.ErrUnsupportedFormat

	// ErrMissingColumn is returned when a required column is absent from a file.
	ErrMissingColumn = reflfile.ErrMissingColumn

	// ErrCorruptContainer is returned when a container cannot be parsed.
	ErrCorruptContainer = reflfile.ErrCorruptContainer

	// ErrBackendUnavailable is returned by parallel.Lookup; ReadStills
	// recovers from it by reading serially.
	ErrBackendUnavailable = parallel.ErrBackendUnavailable
)

// FileError records the file whose read failed.
//
// The underlying error can be accessed via errors.Unwrap.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
