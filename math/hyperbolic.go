// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"

	"github.com/db47h/mpfloat"
)

// Sinh sets z to the rounded value of the hyperbolic sine of x, and
// returns z.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode.
//
// Special cases are:
//
//	Sinh(NaN)  = NaN
//	Sinh(±0)   = ±0
//	Sinh(±Inf) = ±Inf
func Sinh(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		return ready(z, prec).SetZero(x.Signbit())
	}
	if x.IsInf() {
		return ready(z, prec).SetInf(x.Signbit())
	}
	if cut := coshRangeCut(z, x, prec, x.Signbit()); cut {
		return z
	}

	if x.MantExp(nil) <= 0 {
		// |x| < 1: sinh(x) = (em + em/(em+1))/2 with em = e^x - 1,
		// which preserves the relative accuracy of small results
		return ziv(z, prec, func(p uint) *mpfloat.Float {
			em := expm1T(fp(p), x)
			t := fp(p).Add(em, one)
			t.Quo(em, t)
			v := fp(p).Add(em, t)
			return v.Mul(v, half)
		})
	}
	return checkRange(ziv(z, prec, func(p uint) *mpfloat.Float {
		u := expT(fp(p), x)
		v := fp(p).Quo(one, u)
		v.Sub(u, v)
		return v.Mul(v, half)
	}), false)
}

// Cosh sets z to the rounded value of the hyperbolic cosine of x, and
// returns z.
//
// Special cases are:
//
//	Cosh(NaN)  = NaN
//	Cosh(±0)   = 1
//	Cosh(±Inf) = +Inf
func Cosh(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		return ready(z, prec).SetUint64(1)
	}
	if x.IsInf() {
		return ready(z, prec).SetInf(false)
	}
	if cut := coshRangeCut(z, x, prec, false); cut {
		return z
	}

	return checkRange(ziv(z, prec, func(p uint) *mpfloat.Float {
		u := expT(fp(p), x)
		v := fp(p).Quo(one, u)
		v.Add(u, v)
		return v.Mul(v, half)
	}), false)
}

// coshRangeCut handles arguments for which e^|x|/2 is certain to
// overflow. It reports whether it set z to the properly rounded overflow
// result with sign neg, flags raised.
func coshRangeCut(z, x *mpfloat.Float, prec uint, neg bool) bool {
	_, emax := mpfloat.ExpRange()
	xf, _ := x.Float64()
	if xf < 0 {
		xf = -xf
	}
	if xf > (float64(emax)+3)*stdmath.Ln2 {
		ready(z, prec)
		if neg {
			z.SetInt64(-1)
		} else {
			z.SetUint64(1)
		}
		z.SetMantExp(z, emax+1)
		return true
	}
	return false
}

// Tanh sets z to the rounded value of the hyperbolic tangent of x, and
// returns z.
//
// Special cases are:
//
//	Tanh(NaN)  = NaN
//	Tanh(±0)   = ±0
//	Tanh(±Inf) = ±1
func Tanh(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		return ready(z, prec).SetZero(x.Signbit())
	}
	if x.IsInf() {
		if x.Signbit() {
			return ready(z, prec).SetInt64(-1)
		}
		return ready(z, prec).SetUint64(1)
	}

	if x.MantExp(nil) <= 0 {
		// |x| < 1: tanh(x) = em2/(em2+2) with em2 = e^(2x) - 1
		return ziv(z, prec, func(p uint) *mpfloat.Float {
			x2 := fp(p).Set(x)
			x2.SetMantExp(x2, 1)
			em2 := expm1T(fp(p), x2)
			t := fp(p).Add(em2, two)
			return t.Quo(em2, t)
		})
	}
	// |x| >= 1: tanh|x| = 1 - 2/(e^(2|x|)+1), negated for negative x.
	// The subtraction loses no accuracy since 2/(e^2+1) < 0.24.
	ziv(z, prec, func(p uint) *mpfloat.Float {
		x2 := fp(p).Abs(x)
		x2.SetMantExp(x2, 1)
		u := expT(fp(p), x2)
		u.Add(u, one)
		t := fp(p).Quo(two, u)
		t.Sub(one, t)
		if x.Signbit() {
			t.Neg(t)
		}
		return t
	})
	if z.CmpAbs(one) == 0 {
		// |tanh| < 1 always; the limit was reached by rounding
		mpfloat.RaiseFlags(mpfloat.Inexact)
	}
	return z
}
