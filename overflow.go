package saferat

import (
	"math"
	"math/bits"
)

// MulOverflows reports whether a*b is outside the range of int64.
// It is meant to be called before multiplying, not after.
func MulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	// -MinInt64 is not representable, and MinInt64/-1 would trap below
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return true
	}
	return (a*b)/b != a
}

// AddOverflows reports whether a+b is outside the range of int64.
// Overflow happened iff both operands have the same sign and the wrapped sum
// does not.
func AddOverflows(a, b int64) bool {
	c := a + b
	if a >= 0 && b >= 0 {
		return c < 0
	}
	if a < 0 && b < 0 {
		return c >= 0
	}
	return false
}

// mulIntUint reports whether a*b fits in int64 and returns the product if so.
func mulIntUint(a int64, b uint64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if b > math.MaxInt64 {
		// only a == -1 with b == 2^63 survives
		if a == -1 && b == 1<<63 {
			return math.MinInt64, true
		}
		return 0, false
	}
	if MulOverflows(a, int64(b)) {
		return 0, false
	}
	return a * int64(b), true
}

// mulUint reports whether a*b fits in uint64 and returns the product if so.
func mulUint(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// abs64 returns the magnitude of x. Unlike -x it is correct for MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// signed applies a sign to a magnitude, reporting whether the result fits in
// int64.
func signed(neg bool, m uint64) (int64, bool) {
	if neg {
		if m > 1<<63 {
			return 0, false
		}
		return -int64(m), true
	}
	if m > math.MaxInt64 {
		return 0, false
	}
	return int64(m), true
}
