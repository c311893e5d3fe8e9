// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Float conversion functions.

package mpfloat

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

var floatZero Float

// Implement interfaces for "testing of implements".
var _ fmt.Scanner = &floatZero

// SetString sets z to the value of s and returns z and a boolean
// indicating success. s must be a floating-point number of the same
// format as accepted by Parse, with base argument 0. The entire string
// (not just a prefix) must be valid for success. If the operation
// failed, the value of z is undefined but the returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	if f, _, err := z.Parse(s, 0); err == nil {
		return f, true
	}
	return nil, false
}

// scan is like Parse but reads the longest possible prefix representing a
// valid Float from an io.ByteScanner rather than a string. It serves as
// the implementation of Parse. It does not recognize ±Inf or NaN and it
// does not expect EOF at the end.
func (z *Float) scan(r io.ByteScanner, base int) (f *Float, b int, err error) {
	if z.prec == 0 {
		z.prec = uint32(DefaultPrec())
	}

	// sign
	neg, err := scanSign(r)
	if err != nil {
		return
	}

	// mantissa
	var fcount int // fractional digit count; valid if <= 0
	var m nat
	m, b, fcount, err = m.scan(r, base, true)
	if err != nil {
		return
	}

	// exponent
	var exp int64
	var ebase int
	exp, ebase, err = scanExponent(r, true, true, base == 0)
	if err != nil {
		return
	}

	if len(m) == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = neg
		return z, b, nil
	}
	// len(m) > 0

	if fcount > 0 {
		// no decimal point: all digits are integral
		fcount = 0
	}
	// the base scaled by the '@' marker is the mantissa base
	eb := ebase
	if eb == 0 {
		eb = b
	}

	// Estimate the binary magnitude of m × b^fcount × eb^exp and cut off
	// absurd exponents before computing huge powers. The slack keeps the
	// estimate's float64 error away from the decision.
	const slack = 16
	est := float64(m.bitLen()) + float64(fcount)*math.Log2(float64(b))
	if exp != 0 {
		est += float64(exp) * math.Log2(float64(eb))
	}
	emin, emax := expRange()
	switch {
	case est > float64(emax)+slack:
		return z.overflow(neg), b, nil
	case est < float64(emin)-slack:
		return z.underflow(neg, emin-2, emin), b, nil
	}

	// Split each scaling base into its power-of-two part and its odd
	// part, accumulating a binary exponent and odd integer factors for
	// numerator and denominator. The result then rounds in one step,
	// with an exact ternary.
	var s int64
	num := m
	den := nat(nil).setWord(1)

	if fcount < 0 {
		shift, odd := splitBase(uint(b))
		s += int64(shift) * int64(fcount)
		if odd > 1 {
			den = nat(nil).mul(den, natPow(odd, int64(-fcount)))
		}
	}
	if exp != 0 {
		shift, odd := splitBase(uint(eb))
		s += int64(shift) * exp
		if odd > 1 {
			p := natPow(odd, abs64(exp))
			if exp > 0 {
				num = nat(nil).mul(num, p)
			} else {
				den = nat(nil).mul(den, p)
			}
		}
	}

	if den.cmp(natOne) == 0 {
		return z.setFromNat(neg, num, s, 0), b, nil
	}
	return z.quoBits(neg, num, s, den, 0), b, nil
}

// splitBase splits b into a power of two and an odd factor,
// b = 2^shift · odd.
func splitBase(b uint) (shift uint, odd Word) {
	shift = uint(bits.TrailingZeros(b))
	odd = Word(b >> shift)
	return
}

// natPow returns b**e for a single-word base b and e >= 0.
func natPow(b Word, e int64) nat {
	z := nat(nil).setWord(1)
	x := nat(nil).setWord(b)
	for e > 0 {
		if e&1 != 0 {
			z = nat(nil).mul(z, x)
		}
		e >>= 1
		if e > 0 {
			x = nat(nil).mul(x, x)
		}
	}
	return z
}

// Parse parses s which must contain a text representation of a floating-
// point number with a mantissa in the given conversion base (the exponent
// is always a decimal number), or a string representing an infinite or
// NaN value.
//
// For base 0, an underscore character "_" may appear between a base
// prefix and an adjacent digit or exponent digit, and between successive
// mantissa or exponent digits; such underscores do not change the value
// of the number, or the number of mantissa digits. Incorrect placement of
// underscores is reported as an error if there are no other errors. If
// base != 0, underscores are not recognized and thus terminate scanning
// like any other character that is not a valid radix point or digit.
//
// It sets z to the (possibly rounded) value of the corresponding
// floating-point value, and returns z, the actual base b, and an error
// err, if any. The entire string (not just a prefix) must be consumed for
// success. If z's precision is 0, it is changed to the package default
// precision before rounding takes effect. The number must be of the form:
//
//	number    = [ sign ] ( mantissa | "inf" | "Inf" | "nan" | "NaN" ) .
//	sign      = "-" | "+" .
//	mantissa  = [ prefix ] digits "." [ digits ] | digits | "." digits .
//	prefix    = "0" [ "b" | "B" | "o" | "O" | "x" | "X" ] .
//	digits    = digit { [ "_" ] digit } .
//	exponent  = ( "e" | "E" | "p" | "P" | "@" ) [ sign ] digits .
//
// The base argument must be 0, or a value between 2 and MaxBase.
// For base 0, the number prefix determines the actual base: a prefix of
// "0b" or "0B" selects base 2, "0o" or "0O" selects base 8, and "0x" or
// "0X" selects base 16. Otherwise, the actual base is 10 and no prefix
// is accepted.
//
// A "p" or "P" exponent indicates a base 2 exponent; an "@" exponent
// scales by powers of the mantissa base, which makes it the only usable
// exponent form for bases in which "e" and "p" are digit characters;
// otherwise the exponent value scales the mantissa by powers of 10. A
// rounded result sets z's Acc and raises the Inexact flag; parsing a NaN
// raises the NaN flag.
func (z *Float) Parse(s string, base int) (f *Float, b int, err error) {
	// scan doesn't handle ±Inf or NaN
	t := s
	sign := false
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		sign = t[0] == '-'
		t = t[1:]
	}
	switch t {
	case "Inf", "inf":
		return z.SetInf(sign), 0, nil
	case "NaN", "nan":
		return z.setNaN(), 0, nil
	}

	r := strings.NewReader(s)
	if f, b, err = z.scan(r, base); err != nil {
		err = errors.Wrapf(err, "parsing %q", s)
		return
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		err = errors.Errorf("parsing %q: expected end of string, found %q", s, ch)
	} else if err2 != io.EOF {
		err = err2
	}

	return
}

// ParseFloat is like f.Parse(s, base) with f set to the given precision
// and rounding mode.
func ParseFloat(s string, base int, prec uint, mode RoundingMode) (f *Float, b int, err error) {
	return new(Float).SetPrec(prec).SetMode(mode).Parse(s, base)
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts formats whose verbs are supported by
// fmt.Scan for floating point values, which are:
// 'b' (binary), 'e', 'E', 'f', 'F', 'g' and 'G'.
// Scan doesn't handle ±Inf or NaN.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	_, _, err := z.scan(byteReader{s}, 0)
	return err
}
