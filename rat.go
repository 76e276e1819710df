// Package saferat provides fixed-width rational numbers with overflow-aware
// arithmetic. See the N type, the New function and the Policy type for
// details.
package saferat

import (
	"errors"
	"math"
	"math/big"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero       = errors.New("denominator is zero")
	ErrDenOverflow   = errors.New("denominator overflow")
	ErrNumOverflow   = errors.New("numerator overflow")
	ErrDivByZero     = errors.New("division by zero")
	ErrPolicyInvalid = errors.New("invalid policy")
)

// N is a rational number with a signed 64-bit numerator and an unsigned
// 64-bit denominator.
//
// The sign is carried by the numerator and the denominator is always
// positive. Values are kept in lowest terms, so two valid values of N can be
// compared using the == and != operators. Internally, the denominator is
// biased by 1, which means the zero value is equivalent to 0/1 and thus valid
// and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type N
//   - returned by a constructor such as New or FromInt
//   - returned by arithmetic on any valid values
//   - copied from a valid value
//
// N has proper value semantics and its values can be freely copied and
// shared between goroutines.
type N struct {
	m int64
	n uint64
}

// One is the rational number 1/1.
var One = N{1, 0}

// New creates a new rational number with the given numerator and denominator.
// A zero denominator silently yields 0; use Try to detect it instead.
// New is shorthand for Lenient.New.
func New(num, den int64) N {
	z, _ := Lenient.New(num, den)
	return z
}

// Try is like New but returns ErrDenZero if den is zero and ErrNumOverflow
// if the value cannot be represented, as with Try(math.MinInt64, -1).
// Try is shorthand for Strict.New.
func Try(num, den int64) (N, error) {
	return Strict.New(num, den)
}

// FromInt returns n/1.
func FromInt(n int64) N {
	return N{n, 0}
}

// Int returns v/1 for any signed integer type.
func Int[T constraints.Signed](v T) N {
	return FromInt(int64(v))
}

// FromParts is like New but accepts the full range of unsigned denominators.
func FromParts(num int64, den uint64) N {
	z, _ := TryParts(num, den)
	return z
}

// TryParts is like FromParts but returns ErrDenZero if den is zero.
func TryParts(num int64, den uint64) (N, error) {
	if den == 0 {
		return N{}, ErrDenZero
	}
	z, _ := reduce(num < 0, abs64(num), den)
	return z, nil
}

// FromBigRat converts a big.Rat to N, if it is possible to do so.
func FromBigRat(r *big.Rat) (N, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() {
		return N{}, ErrNumOverflow
	} else if !den.IsUint64() {
		return N{}, ErrDenOverflow
	}
	return TryParts(num.Int64(), den.Uint64())
}

// Num returns the numerator of x.
func (x N) Num() int64 {
	return x.m
}

// Den returns the denominator of x.
func (x N) Den() uint64 {
	return x.n + 1
}

// IsValid returns true if x is a valid rational number.
// Invalid numbers do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x N) IsValid() bool {
	if x.n == math.MaxUint64 {
		return false
	}
	z, err := reduce(x.m < 0, abs64(x.m), x.Den())
	return err == nil && z == x
}

// IsZero returns true if x is equal to 0.
func (x N) IsZero() bool {
	return x.m == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x N) Sign() int {
	if x.m == 0 {
		return 0
	}
	if x.m < 0 {
		return -1
	}
	return 1
}

// Neg returns the negation of x, -x.
// The negation of a numerator of math.MinInt64 wraps around to itself;
// use TryNeg to detect it.
func (x N) Neg() N {
	return N{-x.m, x.n}
}

// TryNeg is like Neg but returns ErrNumOverflow if -x cannot be represented.
func (x N) TryNeg() (N, error) {
	return Strict.Neg(x)
}

// Abs returns the absolute value of x, |x|.
// Like Neg, it wraps for a numerator of math.MinInt64.
func (x N) Abs() N {
	if x.m < 0 {
		return x.Neg()
	}
	return x
}

// Inv returns the inverse of x, 1/x. The inverse of 0 is 0.
func (x N) Inv() N {
	return One.Div(x)
}

// TryInv is like Inv but returns ErrDivByZero if x is 0.
func (x N) TryInv() (N, error) {
	return One.TryDiv(x)
}

// Add adds x and y and returns the result.
// If the exact result does not fit, the result is whatever the fixed-width
// cross multiplication wraps to. Use TryAdd to detect that.
func (x N) Add(y N) N {
	z, _ := Lenient.Add(x, y)
	return z
}

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and a non-nil error if the result would overflow.
func (x N) TryAdd(y N) (N, error) {
	return Strict.Add(x, y)
}

// Sub subtracts y from x and returns the result.
func (x N) Sub(y N) N {
	z, _ := Lenient.Sub(x, y)
	return z
}

// TrySub subtracts y from x and returns the result.
// TrySub returns 0 and a non-nil error if the result would overflow.
func (x N) TrySub(y N) (N, error) {
	return Strict.Sub(x, y)
}

// Mul multiplies x and y and returns the result.
func (x N) Mul(y N) N {
	z, _ := Lenient.Mul(x, y)
	return z
}

// TryMul multiplies x and y and returns the result.
// TryMul returns 0 and a non-nil error if the result would overflow.
func (x N) TryMul(y N) (N, error) {
	return Strict.Mul(x, y)
}

// Div divides x by y and returns the result. Dividing by 0 yields 0.
func (x N) Div(y N) N {
	z, _ := Lenient.Div(x, y)
	return z
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and ErrDivByZero if y is 0, or another non-nil error if
// the result would overflow.
func (x N) TryDiv(y N) (N, error) {
	return Strict.Div(x, y)
}

// AddAssign sets *x to x+y.
func (x *N) AddAssign(y N) {
	*x = x.Add(y)
}

// SubAssign sets *x to x-y.
func (x *N) SubAssign(y N) {
	*x = x.Sub(y)
}

// MulAssign sets *x to x*y.
func (x *N) MulAssign(y N) {
	*x = x.Mul(y)
}

// DivAssign sets *x to x/y.
func (x *N) DivAssign(y N) {
	*x = x.Div(y)
}

// String returns a string representation of x, as m if x is an integer and
// as m/n otherwise.
func (x N) String() string {
	buf := make([]byte, 0, 41)
	buf = strconv.AppendInt(buf, x.m, 10)
	if x.n != 0 {
		buf = append(buf, '/')
		buf = strconv.AppendUint(buf, x.Den(), 10)
	}
	return string(buf)
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x N) Float64() (v float64, exact bool) {
	m, n := x.Num(), x.Den()

	// check for zero, trivial case
	if m == 0 {
		return 0, true
	}

	// integers are exact as long as they fit in the mantissa
	prec := bits.Len64(abs64(m)) - bits.TrailingZeros64(abs64(m))
	if n == 1 {
		return float64(m), prec <= 53
	}

	// non-integers are exact as long as the numerator fits in the mantissa
	// and the denominator is a power of two
	nIsPow2 := bits.OnesCount64(n) == 1
	return float64(m) / float64(n), prec <= 53 && nIsPow2
}

// BigRat converts x to a new big.Rat.
func (x N) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(x.m), new(big.Int).SetUint64(x.Den()))
}

// reduce returns sign*m/d in lowest terms. If the reduced numerator does not
// fit in int64, reduce returns the wrapped value along with ErrNumOverflow.
// d must not be zero.
func reduce(neg bool, m, d uint64) (N, error) {
	if m == 0 {
		return N{}, nil
	}
	if g := GCD(m, d); g != 1 {
		m, d = m/g, d/g
	}
	num, ok := signed(neg, m)
	if !ok {
		num = int64(m)
		if neg {
			num = -num
		}
		return N{num, d - 1}, ErrNumOverflow
	}
	return N{num, d - 1}, nil
}
