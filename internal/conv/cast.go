package conv

import (
	"fmt"
	"math"
)

// Uint64ToUint32 converts uint64 to uint32 safely.
func Uint64ToUint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// MulInt multiplies two non-negative ints, failing instead of wrapping.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d (negative operand)", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}

// AddInt adds two non-negative ints, failing instead of wrapping.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d (negative operand)", a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds max int", a, b)
	}
	return a + b, nil
}
