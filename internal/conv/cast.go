package conv

import (
	"fmt"
	"math"
)

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	// On 64-bit systems this never fails
	if v > math.MaxInt || v < math.MinInt {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int", v)
	}
	return int(v), nil
}

// CountToInt converts a decoded element or row count to int, rejecting
// negative values.
func CountToInt(v int64) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("invalid count: %d is negative", v)
	}
	return Int64ToInt(v)
}

// IntToInt32 converts int to int32 safely.
func IntToInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}
