package saferat

import "math/bits"

// Equal returns true if x == y. Values are kept in lowest terms, so this is
// the same as x == y on the struct.
func (x N) Equal(y N) bool {
	return x == y
}

// NotEqual returns true if x != y.
func (x N) NotEqual(y N) bool {
	return x != y
}

// Less returns true if x < y.
func (x N) Less(y N) bool {
	return Lenient.Less(x, y)
}

// LessEq returns true if x <= y.
func (x N) LessEq(y N) bool {
	return Lenient.LessEq(x, y)
}

// Greater returns true if x > y.
func (x N) Greater(y N) bool {
	return Lenient.Greater(x, y)
}

// GreaterEq returns true if x >= y.
func (x N) GreaterEq(y N) bool {
	return Lenient.GreaterEq(x, y)
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x N) Cmp(y N) int {
	return Lenient.Cmp(x, y)
}

// Less returns true if x < y, comparing the cross products x.Num()*y.Den()
// and y.Num()*x.Den(). In Wrap mode the products are taken in int64 and may
// wrap around; in Widen mode they are exact.
func (p Policy) Less(x, y N) bool {
	if p.Overflow == Widen {
		return lessWiden(x, y)
	}
	return x.m*int64(y.Den()) < y.m*int64(x.Den())
}

// LessEq returns true if x < y or x == y.
func (p Policy) LessEq(x, y N) bool {
	return p.Less(x, y) || x == y
}

// Greater returns true if !(x <= y).
func (p Policy) Greater(x, y N) bool {
	return !p.LessEq(x, y)
}

// GreaterEq returns true if !(x < y).
func (p Policy) GreaterEq(x, y N) bool {
	return !p.Less(x, y)
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 otherwise.
func (p Policy) Cmp(x, y N) int {
	if x == y {
		return 0
	}
	if p.Less(x, y) {
		return -1
	}
	return 1
}

func lessWiden(x, y N) bool {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		return sx < sy
	}
	if sx == 0 {
		return false
	}
	lh, ll := bits.Mul64(abs64(x.m), y.Den())
	rh, rl := bits.Mul64(abs64(y.m), x.Den())
	if sx < 0 {
		lh, ll, rh, rl = rh, rl, lh, ll
	}
	return lh < rh || (lh == rh && ll < rl)
}
