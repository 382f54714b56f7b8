// Package buf contains overflow-safe range checks shared by the bit codecs.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckRange validates that n units starting at off fit in a buffer of size
// total. Returns the end offset if valid, or an error describing the specific
// failure (negative input, overflow or out of bounds).
//
// The bit codecs call it with bit counts:
//
//	end, err := buf.CheckRange(seq.Len(), pos, width)
//	if err != nil {
//	    return 0, fmt.Errorf("read: %w", err)
//	}
func CheckRange(total, off, n int) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset: %d", off)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative length: %d", n)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + length=%d", off, n)
	}
	if end > total {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, total)
	}
	return end, nil
}

// Has reports whether [off, off+n) lies within [0, total).
func Has(total, off, n int) bool {
	_, err := CheckRange(total, off, n)
	return err == nil
}
