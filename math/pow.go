// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"

	"github.com/db47h/mpfloat"
)

// Pow sets z to the rounded value of x**y, and returns z.
//
// If z's precision is 0, it is changed to the larger of x's or y's
// precision before the operation. Rounding is performed according to z's
// precision and rounding mode.
//
// Following IEEE 754-2008 and MPFR, the special cases are:
//
//	Pow(x, ±0)     = 1 for any x, even NaN
//	Pow(1, y)      = 1 for any y, even NaN or ±Inf
//	Pow(NaN, y)    = NaN
//	Pow(x, NaN)    = NaN
//	Pow(x, +Inf)   = +Inf for |x| > 1, +0 for |x| < 1
//	Pow(x, -Inf)   = +0 for |x| > 1, +Inf for |x| < 1
//	Pow(-1, ±Inf)  = 1
//	Pow(+Inf, y)   = +Inf for y > 0, +0 for y < 0
//	Pow(-Inf, y)   = Pow(-0, -y)
//	Pow(±0, y)     = ±Inf for y < 0 (raising the DivByZero flag)
//	Pow(±0, y)     = ±0 for y > 0 (the sign for odd integer y only)
//	Pow(x < 0, y)  = NaN for non-integer y (raising the NaN flag)
func Pow(z, x, y *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
		if p := y.Prec(); p > prec {
			prec = p
		}
	}

	if y.IsZero() {
		return ready(z, prec).SetUint64(1)
	}
	if !x.IsNaN() && x.Cmp(one) == 0 {
		return ready(z, prec).SetUint64(1)
	}
	if x.IsNaN() || y.IsNaN() {
		return ready(z, prec).SetNaN()
	}
	if y.IsInf() {
		// |x| != 1 handled by the x == 1 shortcut and CmpAbs below
		switch c := x.CmpAbs(one); {
		case c == 0: // x == -1
			return ready(z, prec).SetUint64(1)
		case (c > 0) == !y.Signbit():
			return ready(z, prec).SetInf(false)
		default:
			return ready(z, prec).SetZero(false)
		}
	}
	// y is finite and nonzero
	yInt := y.IsInt()
	yOdd := yInt && uint(y.MantExp(nil)) == y.MinPrec()
	if x.IsInf() {
		neg := x.Signbit() && yOdd
		if y.Signbit() {
			return ready(z, prec).SetZero(neg)
		}
		return ready(z, prec).SetInf(neg)
	}
	if x.IsZero() {
		neg := x.Signbit() && yOdd
		if y.Signbit() {
			mpfloat.RaiseFlags(mpfloat.DivByZero)
			return ready(z, prec).SetInf(neg)
		}
		return ready(z, prec).SetZero(neg)
	}
	// x is finite and nonzero
	if x.Signbit() && !yInt {
		return ready(z, prec).SetNaN()
	}
	neg := x.Signbit() && yOdd

	// small integer exponents: repeated squaring, exact results stay
	// exact
	if yi, acc := y.Int64(); yInt && acc == mpfloat.Exact && -1<<20 <= yi && yi <= 1<<20 {
		return checkRange(ziv(z, prec, func(p uint) *mpfloat.Float {
			v := fp(p)
			n := yi
			if n < 0 {
				n = -n
			}
			pow(v, fp(p).Abs(x), uint64(n))
			if yi < 0 {
				v.Quo(one, fp(p).Set(v))
			}
			if neg {
				v.Neg(v)
			}
			return v
		}), false)
	}

	// x**y = e^(y·ln|x|), with the sign fixed up for odd integer y
	if cut := powRangeCut(z, x, y, prec, neg); cut {
		return z
	}
	return checkRange(ziv(z, prec, func(p uint) *mpfloat.Float {
		xa := fp(p + wordBits).Abs(x)
		t := fp(p + wordBits).Mul(y, lnT(p+wordBits, xa))
		v := expT(fp(p), t)
		if neg {
			v.Neg(v)
		}
		return v
	}), false)
}

// powRangeCut handles arguments for which |x|^y is certain to lie
// outside the exponent range. It reports whether it set z to the
// properly rounded overflow or underflow result with sign neg, flags
// raised.
func powRangeCut(z, x, y *mpfloat.Float, prec uint, neg bool) bool {
	emin, emax := mpfloat.ExpRange()
	yf, _ := y.Float64()
	// crude but safe estimate of ln|x|: |x| = f·2^e with 1/2 <= f < 1,
	// so (e-1)·ln2 < ln|x| < e·ln2
	e := float64(x.MantExp(nil))
	lo, hi := (e-1)*stdmath.Ln2, e*stdmath.Ln2
	est1, est2 := yf*lo, yf*hi
	if est1 > est2 {
		est1, est2 = est2, est1
	}
	s := int64(1)
	if neg {
		s = -1
	}
	switch {
	case est1 > (float64(emax)+2)*stdmath.Ln2:
		ready(z, prec)
		z.SetMantExp(z.SetInt64(s), emax+1)
		return true
	case est2 < (float64(emin)-3)*stdmath.Ln2:
		ready(z, prec)
		z.SetMantExp(z.SetInt64(s), emin-4)
		return true
	}
	return false
}
