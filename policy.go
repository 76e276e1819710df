package saferat

import (
	"fmt"
	"math"
)

// Overflow selects how arithmetic proceeds once the primary 64-bit
// computation would overflow.
type Overflow uint8

const (
	// Widen redoes the computation with 128-bit intermediates. Results are
	// exact whenever they can be represented at all.
	Widen Overflow = iota
	// Wrap falls back to unreduced fixed-width cross multiplication, which
	// may silently wrap around. Comparisons also use wrapping products.
	Wrap
)

var overflowNames = [...]string{
	Widen: "widen",
	Wrap:  "wrap",
}

// String returns the name of o.
func (o Overflow) String() string {
	if int(o) < len(overflowNames) {
		return overflowNames[o]
	}
	return fmt.Sprintf("Overflow(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) {
	if int(o) >= len(overflowNames) {
		return nil, fmt.Errorf("%w: unknown overflow mode %d", ErrPolicyInvalid, uint8(o))
	}
	return []byte(overflowNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Overflow) UnmarshalText(text []byte) error {
	for i, name := range overflowNames {
		if string(text) == name {
			*o = Overflow(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown overflow mode %q", ErrPolicyInvalid, text)
}

// Policy decides how anomalous conditions are resolved.
//
// A lenient policy never returns an error: a zero denominator or divisor
// yields 0, and a result that cannot be represented is whatever the
// fixed-width fallback wraps to. A strict policy returns ErrDenZero or
// ErrDivByZero instead, and, in Widen mode, ErrNumOverflow or ErrDenOverflow.
// Wrap mode never detects overflow, so it only affects the zero cases.
//
// The zero value is Lenient.
type Policy struct {
	Strict   bool     `toml:"strict"`
	Overflow Overflow `toml:"overflow"`
}

// Predefined policies.
var (
	// Lenient substitutes silently and widens on overflow.
	Lenient = Policy{}
	// Strict reports errors and widens on overflow.
	Strict = Policy{Strict: true}
	// Compat substitutes silently and wraps on overflow, reproducing a
	// plain fixed-width implementation.
	Compat = Policy{Overflow: Wrap}
)

// Validate returns an error wrapping ErrPolicyInvalid if p is not usable.
func (p Policy) Validate() error {
	if int(p.Overflow) >= len(overflowNames) {
		return fmt.Errorf("%w: unknown overflow mode %d", ErrPolicyInvalid, uint8(p.Overflow))
	}
	return nil
}

// String returns a short description of p, such as "strict/widen".
func (p Policy) String() string {
	if p.Strict {
		return "strict/" + p.Overflow.String()
	}
	return "lenient/" + p.Overflow.String()
}

// New creates a rational number num/den in lowest terms.
func (p Policy) New(num, den int64) (N, error) {
	if den == 0 {
		return p.zero(ErrDenZero)
	}
	neg := num < 0
	if den < 0 {
		neg = !neg
	}
	z, err := reduce(neg, abs64(num), abs64(den))
	if err != nil {
		return p.wrapped(z, err)
	}
	return z, nil
}

// Neg returns -x.
func (p Policy) Neg(x N) (N, error) {
	if x.m == math.MinInt64 {
		return p.wrapped(x, ErrNumOverflow)
	}
	return x.Neg(), nil
}

// Add returns x+y.
func (p Policy) Add(x, y N) (N, error) {
	return p.add(x, y, false)
}

// Sub returns x-y, which is x+(-y).
func (p Policy) Sub(x, y N) (N, error) {
	return p.add(x, y, true)
}

func (p Policy) add(x, y N, sub bool) (N, error) {
	if p.Overflow == Widen {
		z, err := addWiden(x, y, sub)
		if err == nil {
			return z, nil
		}
		if p.Strict {
			return N{}, err
		}
	}
	if sub {
		y = y.Neg()
	}
	return addWrap(x, y), nil
}

// Mul returns x*y.
func (p Policy) Mul(x, y N) (N, error) {
	if p.Overflow == Widen {
		neg := (x.m < 0) != (y.m < 0)
		z, err := mulWiden(neg, abs64(x.m), x.Den(), abs64(y.m), y.Den())
		if err == nil {
			return z, nil
		}
		if p.Strict {
			return N{}, err
		}
	}
	return mulWrap(x, y), nil
}

// Div returns x/y, which is x multiplied by the reciprocal of y.
// Dividing by 0 yields 0 or ErrDivByZero.
func (p Policy) Div(x, y N) (N, error) {
	if y.m == 0 {
		return p.zero(ErrDivByZero)
	}
	if p.Overflow == Widen {
		neg := (x.m < 0) != (y.m < 0)
		z, err := mulWiden(neg, abs64(x.m), x.Den(), y.Den(), abs64(y.m))
		if err == nil {
			return z, nil
		}
		if p.Strict {
			return N{}, err
		}
	}
	return divWrap(x, y), nil
}

// zero resolves a zero denominator or divisor.
func (p Policy) zero(err error) (N, error) {
	if p.Strict {
		return N{}, err
	}
	return N{}, nil
}

// wrapped resolves a result that only exists in wrapped form.
func (p Policy) wrapped(z N, err error) (N, error) {
	if p.Strict && p.Overflow == Widen {
		return N{}, err
	}
	return z, nil
}
