package saferat

import (
	"math"
	"math/bits"
)

// addWiden returns x+y, or x-y if sub is set.
//
// The denominators first have their common factor g removed, so in the
// common case x+y is a/b + c/d = (a*(d/g) + c*(b/g)) / (b*(d/g)) and only
// needs 64-bit arithmetic. When that would overflow, the numerator is formed
// in 128 bits and the remaining common factor gcd(t, g) is divided out,
// per Donald Knuth, TAOCP Vol 2 (3e), sec 4.5.1. The result is exact unless
// it cannot be represented at all, in which case an error is returned.
func addWiden(x, y N, sub bool) (N, error) {
	a, b := x.Num(), x.Den()
	c, d := y.Num(), y.Den()
	cneg := c < 0
	if sub {
		cneg = c > 0
	}
	if c == 0 {
		return x, nil
	} else if a == 0 {
		if sub {
			return Strict.Neg(y)
		}
		return y, nil
	}

	g := GCD(b, d)
	sd1, sd2 := b/g, d/g

	// 64-bit path; -MinInt64 does not fit so that case goes wide
	if !sub || c != math.MinInt64 {
		if sub {
			c = -c
		}
		t1, ok1 := mulIntUint(a, sd2)
		t2, ok2 := mulIntUint(c, sd1)
		den, ok3 := mulUint(b, sd2)
		if ok1 && ok2 && ok3 && !AddOverflows(t1, t2) {
			t := t1 + t2
			return reduce(t < 0, abs64(t), den)
		}
	}

	// Multiply the a*sd2 and c*sd1 terms with 128-bit precision.
	// From here on out, h is for "high bits" and l is for "low bits".
	m1h, m1l := bits.Mul64(abs64(a), sd2)
	m2h, m2l := bits.Mul64(abs64(c), sd1)

	// Each term is below 2^127, so the sum cannot carry out of 128 bits.
	// When the signs differ, subtract the smaller magnitude from the larger
	// and take the sign of the larger.
	var th, tl uint64
	neg := a < 0
	if neg == cneg {
		var carry uint64
		tl, carry = bits.Add64(m1l, m2l, 0)
		th, _ = bits.Add64(m1h, m2h, carry)
	} else {
		if m2h > m1h || (m2h == m1h && m2l > m1l) {
			m1h, m2h = m2h, m1h
			m1l, m2l = m2l, m1l
			neg = cneg
		}
		var borrow uint64
		tl, borrow = bits.Sub64(m1l, m2l, 0)
		th, _ = bits.Sub64(m1h, m2h, borrow)
	}
	if th == 0 && tl == 0 {
		return N{}, nil
	}

	// sd1 and sd2 are coprime to t already; only factors of g remain.
	g2 := gcdWide(th, tl, g)
	qh, r := th/g2, th%g2
	ql, _ := bits.Div64(r, tl, g2)
	if qh != 0 {
		return N{}, ErrNumOverflow
	}
	den, ok := mulUint(sd1, d/g2)
	if !ok {
		return N{}, ErrDenOverflow
	}
	z, err := reduce(neg, ql, den)
	if err != nil {
		return N{}, err
	}
	return z, nil
}

// addWrap returns x+y using only wrapping int64 arithmetic.
//
// A direct cross multiplication is tried first. If any of its products would
// overflow, the denominators have their common factor removed and the terms
// are checked again; if those would still overflow, the unreduced cross
// multiplication (a*d + c*b) / (b*d) is used unchecked and may wrap.
func addWrap(x, y N) N {
	a, b := x.m, int64(x.Den())
	c, d := y.m, int64(y.Den())
	if !MulOverflows(a, d) && !MulOverflows(c, b) && !MulOverflows(b, d) {
		return New(a*d+c*b, b*d)
	}
	g := int64(GCD(uint64(b), uint64(d)))
	sd1, sd2 := b/g, d/g
	if MulOverflows(a, sd2) || MulOverflows(c, sd1) {
		return New(a*d+c*b, b*d)
	}
	t1, t2 := a*sd2, c*sd1
	if AddOverflows(t1, t2) {
		return New(a*d+c*b, b*d)
	}
	return New(t1+t2, b*sd2)
}

// mulWiden returns sign * (a/b) * (c/d), with a, c magnitudes and b, d
// positive denominators.
//
// If neither a*c nor b*d overflows, the product is reduced in one step.
// Otherwise the cross GCDs are divided out first; the fractions are already
// reduced, so the cross-reduced product is in lowest terms and only needs an
// overflow check.
func mulWiden(neg bool, a, b, c, d uint64) (N, error) {
	if a == 0 || c == 0 {
		return N{}, nil
	}
	if ac, ok := mulUint(a, c); ok {
		if bd, ok := mulUint(b, d); ok {
			return reduce(neg, ac, bd)
		}
	}
	if g := GCD(a, d); g != 1 {
		a, d = a/g, d/g
	}
	if g := GCD(c, b); g != 1 {
		c, b = c/g, b/g
	}
	mh, ml := bits.Mul64(a, c)
	if mh != 0 {
		return N{}, ErrNumOverflow
	}
	nh, nl := bits.Mul64(b, d)
	if nh != 0 {
		return N{}, ErrDenOverflow
	}
	return reduce(neg, ml, nl)
}

// mulWrap returns x*y using only wrapping int64 arithmetic.
//
// If a*c or b*d would overflow, the cross GCDs are divided out before
// multiplying; that product is not checked again and may wrap.
func mulWrap(x, y N) N {
	a, b := x.m, int64(x.Den())
	c, d := y.m, int64(y.Den())
	if !MulOverflows(a, c) && !MulOverflows(b, d) {
		return New(a*c, b*d)
	}
	// both GCDs are at least 1 since b and d are positive
	g1 := int64(GCD(abs64(a), uint64(d)))
	g2 := int64(GCD(abs64(c), uint64(b)))
	a, d = a/g1, d/g1
	c, b = c/g2, b/g2
	return New(a*c, b*d)
}

// divWrap returns x/y using only wrapping int64 arithmetic. y must not be 0.
func divWrap(x, y N) N {
	return mulWrap(x, New(int64(y.Den()), y.m))
}
