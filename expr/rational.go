package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Rational is an exact fraction numerator/denominator. Rationals are never
// reduced: 3/6 and 1/2 are different values.
//
// A denominator of 0 is representable. Clients performing arithmetic on
// rationals have to guard against it.
//
// Rationals are immutable. The zero value is the number 0.
type Rational struct {
	num *big.Int
	den *big.Int
}

// ErrNotANumber is returned when creating a rational from a non-finite float.
var ErrNotANumber = errors.New("not a finite number")

// NewRational creates the fraction n/d.
func NewRational(n, d int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(d)}
}

// RationalFromInt creates the fraction i/1.
func RationalFromInt(i int64) Rational {
	return NewRational(i, 1)
}

// RationalFromBig creates the fraction n/d from big integers.
// Both arguments are copied.
func RationalFromBig(n, d *big.Int) Rational {
	if n == nil || d == nil {
		panic("rational from nil integer")
	}
	return Rational{num: new(big.Int).Set(n), den: new(big.Int).Set(d)}
}

// RationalFromFloat decomposes a float into an exact binary fraction.
// Non-finite values are rejected.
func RationalFromFloat(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("cannot convert %v to rational: %w", f, ErrNotANumber)
	}
	r := new(big.Rat).SetFloat64(f)
	return RationalFromBig(r.Num(), r.Denom()), nil
}

// ParseRational reads a decimal literal, i.e. one or more digits, optionally
// followed by a dot and one or more digits. The digits behind the dot make
// up a power-of-ten denominator:
//
//     "7"      ⇒  7/1
//     "1.5"    ⇒  15/10
//     "0.001"  ⇒  1/1000
//
func ParseRational(s string) (Rational, error) {
	if !isDecimalLiteral(s) {
		return Rational{}, fmt.Errorf("malformed decimal literal: %q", s)
	}
	digits, den := s, big.NewInt(1)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		digits = s[:dot] + s[dot+1:]
		places := int64(len(s) - dot - 1)
		den.Exp(big.NewInt(10), big.NewInt(places), nil)
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, fmt.Errorf("malformed decimal literal: %q", s)
	}
	return Rational{num: num, den: den}, nil
}

// isDecimalLiteral checks s against  [0-9]+(\.[0-9]+)?
func isDecimalLiteral(s string) bool {
	digits, dots, fraction := 0, 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			if dots == 0 {
				digits++
			} else {
				fraction++
			}
		case c == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0 && (dots == 0 || fraction > 0)
}

func (r Rational) n() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.n())
}

// Denom returns a copy of the denominator.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.d())
}

// IsZero is a predicate: is the numerator 0?
func (r Rational) IsZero() bool {
	return r.n().Sign() == 0
}

// IsOne is a predicate: are numerator and denominator equal?
// Note that this holds for 5/5 as well as for 0/0.
func (r Rational) IsOne() bool {
	return r.n().Cmp(r.d()) == 0
}

// Sign returns 0 for a zero numerator, 1 if numerator and denominator have
// the same sign, and -1 otherwise.
func (r Rational) Sign() int {
	if r.n().Sign() == 0 {
		return 0
	}
	if r.n().Sign() == r.d().Sign() {
		return 1
	}
	return -1
}

// Equal compares numerators and denominators. As rationals are not reduced,
// 1/2 is not equal to 2/4.
func (r Rational) Equal(other Rational) bool {
	return r.n().Cmp(other.n()) == 0 && r.d().Cmp(other.d()) == 0
}

// Float64 returns the nearest float value. A zero denominator yields
// ±Inf, or NaN for 0/0.
func (r Rational) Float64() float64 {
	if r.d().Sign() == 0 {
		switch r.n().Sign() {
		case 1:
			return math.Inf(1)
		case -1:
			return math.Inf(-1)
		}
		return math.NaN()
	}
	f, _ := new(big.Rat).SetFrac(r.n(), r.d()).Float64()
	return f
}

// String prints 0 for zero values, the numerator for denominator 1, and
// n/d otherwise.
func (r Rational) String() string {
	if r.IsZero() {
		return "0"
	}
	if r.d().Cmp(big.NewInt(1)) == 0 {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}
