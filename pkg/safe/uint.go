// Package safe provides integer conversions and arithmetic that report overflow instead of
// wrapping.
package safe

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Uint32 converts v to uint32 or returns ErrOverflow when it does not fit.
func Uint32[T constraints.Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64 or returns ErrOverflow for negative values.
func Uint64[T constraints.Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOverflow, v)
	}
	return uint64(v), nil
}

// Int converts v to int or returns ErrOverflow when it does not fit.
func Int[T constraints.Integer](v T) (int, error) {
	if v < 0 {
		if int64(v) < math.MinInt {
			return 0, fmt.Errorf("%w: %d does not fit int", ErrOverflow, v)
		}
		return int(v), nil
	}
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("%w: %d does not fit int", ErrOverflow, v)
	}
	return int(v), nil
}
