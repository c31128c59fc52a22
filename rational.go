package ratcalc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidArgument is returned when a Rational is built with a zero denominator
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrArithmetic is returned when a zero Rational is inverted or used as a divisor
	ErrArithmetic = errors.New("arithmetic error")
)

const zeroDenominatorMsg = "denominator may not be zero"

// Rational is an immutable fraction kept in lowest terms with a positive
// denominator. The sign is carried by the numerator.
//
// The zero value is not a valid Rational, use NewRational or One.
type Rational struct {
	num int64
	den int64
}

// NewRational ...
func NewRational(num int64, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: %s", ErrInvalidArgument, zeroDenominatorMsg)
	}

	g := GCD(num, den)
	if num != 0 {
		num /= g
		den /= g
	}
	if den < 0 {
		num = -num
		den = -den
	}
	return Rational{num: num, den: den}, nil
}

// MustRational is like NewRational but panics on a zero denominator
func MustRational(num int64, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// One returns 1/1
func One() Rational {
	return Rational{num: 1, den: 1}
}

// Numerator ...
func (r Rational) Numerator() int64 {
	return r.num
}

// Denominator ...
func (r Rational) Denominator() int64 {
	return r.den
}

// String renders the bare numerator for whole numbers and zero, "n/d" otherwise
func (r Rational) String() string {
	if r.den == 1 || r.num == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// Mul returns r * o. Products wrap on int64 overflow, and a denominator
// that wraps to exactly 0 panics with ErrInvalidArgument.
func (r Rational) Mul(o Rational) Rational {
	return MustRational(r.num*o.num, r.den*o.den)
}

// Add returns r + o. A zero operand short-circuits to the other operand.
func (r Rational) Add(o Rational) Rational {
	if o.num == 0 {
		return r
	}
	if r.num == 0 {
		return o
	}
	return MustRational(r.num*o.den+o.num*r.den, r.den*o.den)
}

// Sub returns r - o
func (r Rational) Sub(o Rational) Rational {
	if o.num == 0 {
		return r
	}
	return MustRational(-(o.num*r.den)+o.den*r.num, r.den*o.den)
}

// Reciprocal returns 1/r, or ErrArithmetic when r is zero
func (r Rational) Reciprocal() (Rational, error) {
	if r.num == 0 {
		return Rational{}, fmt.Errorf("%w: %s", ErrArithmetic, zeroDenominatorMsg)
	}
	if r.num < 0 {
		return MustRational(-r.den, -r.num), nil
	}
	return MustRational(r.den, r.num), nil
}

// Div returns r / o, or ErrArithmetic when o is zero
func (r Rational) Div(o Rational) (Rational, error) {
	recip, err := o.Reciprocal()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(recip), nil
}

// Product ...
func Product(a Rational, b Rational) Rational {
	return a.Mul(b)
}

// Sum ...
func Sum(a Rational, b Rational) Rational {
	return a.Add(b)
}

// Difference returns a - b
func Difference(a Rational, b Rational) Rational {
	return a.Sub(b)
}

// Reciprocal ...
func Reciprocal(a Rational) (Rational, error) {
	return a.Reciprocal()
}

// Quotient returns a / b
func Quotient(a Rational, b Rational) (Rational, error) {
	return a.Div(b)
}
