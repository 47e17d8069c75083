package mmap

import "errors"

// AccessPattern is a hint about how mapped bytes will be touched.
type AccessPattern int

const (
	AccessDefault AccessPattern = iota
	// AccessSequential suits a single front-to-back decode pass.
	AccessSequential
	AccessRandom
	AccessWillNeed
	AccessDontNeed
)

var (
	// ErrClosed is returned when using a mapping after Close.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for files whose size cannot be mapped.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrInvalidOffset is returned for negative read offsets.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
