// Package mmap maps reflection files read-only into memory so the container
// decoder can walk them without an intermediate copy.
//
// A Mapping is safe for concurrent reads. Close is idempotent; slices returned
// by Bytes must not be used after Close returns.
//
// On Unix the mapping uses mmap(2) and honours madvise(2) hints. On Windows it
// uses CreateFileMapping/MapViewOfFile and access hints are ignored.
package mmap
