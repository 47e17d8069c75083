package crystio

import (
	"slices"

	"github.com/hupe1980/crystio/internal/conv"
)

// RemapIDs shifts per-file experiment ids into the global numbering of a
// multi-file read and returns the offset for the next file.
//
// offset must be the total number of identifiers in all preceding files, in
// file-list order. next is offset plus the number of entries in identifiers.
// Callers must ensure every local+offset fits in an int32; ReadStills checks
// this before remapping.
func RemapIDs(local []int32, identifiers map[int]string, offset int) (ids []int32, next int) {
	ids = make([]int32, len(local))
	for i, id := range local {
		ids[i] = id + int32(offset)
	}
	return ids, offset + len(identifiers)
}

// checkIDRange reports an error if shifting any local id by offset leaves
// the int32 range.
func checkIDRange(local []int32, offset int) error {
	if len(local) == 0 {
		return nil
	}
	for _, id := range []int32{slices.Min(local), slices.Max(local)} {
		if _, err := conv.IntToInt32(int(id) + offset); err != nil {
			return err
		}
	}
	return nil
}
