package saferat

import "math/bits"

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n.
// GCD(0, n) is n, and GCD(0, 0) is 0.
func GCD(m, n uint64) uint64 {
	// per Donald Knuth, TAOCP Vol 2 (3e), pp 338, Algorithm B (binary GCD),
	// which avoids division entirely
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}
	k := bits.TrailingZeros64(m | n)
	m >>= bits.TrailingZeros64(m)
	for {
		n >>= bits.TrailingZeros64(n)
		if m > n {
			m, n = n, m
		}
		n -= m
		if n == 0 {
			return m << k
		}
	}
}

// gcdWide returns GCD(hi:lo, n) for a 128-bit first operand and n > 0.
func gcdWide(hi, lo, n uint64) uint64 {
	return GCD(bits.Rem64(hi, lo, n), n)
}
