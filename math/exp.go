// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"

	"github.com/db47h/mpfloat"
)

// Exp sets z to the rounded value of e**x, the base-e exponential of x,
// and returns z.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode. Results outside the exponent range overflow to infinity
// or underflow to zero according to z's mode, raising the corresponding
// flags.
//
// Special cases are:
//
//	Exp(NaN)  = NaN
//	Exp(±0)   = 1
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = +0
func Exp(z, x *mpfloat.Float) *mpfloat.Float {
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
		if x.Signbit() {
			return ready(z, prec).SetZero(false)
		}
		return ready(z, prec).SetInf(false)
	}

	if cut := expRangeCut(z, x, prec); cut {
		return z
	}
	return checkRange(ziv(z, prec, func(p uint) *mpfloat.Float {
		return expT(fp(p), x)
	}), false)
}

// Expm1 sets z to the rounded value of e**x - 1, and returns z. It is
// more accurate than Exp(z, x) followed by a subtraction of 1 when x is
// near zero.
//
// Special cases are:
//
//	Expm1(NaN)  = NaN
//	Expm1(±0)   = ±0
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
func Expm1(z, x *mpfloat.Float) *mpfloat.Float {
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
		return ready(z, prec).SetInf(false)
	}

	if x.MantExp(nil) <= 0 {
		// |x| < 1: sum the series directly, avoiding the cancellation
		// of Exp(x)-1
		return ziv(z, prec, func(p uint) *mpfloat.Float {
			return expm1T(fp(p), x)
		})
	}
	if !x.Signbit() {
		if cut := expRangeCut(z, x, prec); cut {
			return z
		}
	}
	return checkRange(ziv(z, prec, func(p uint) *mpfloat.Float {
		u := expT(fp(p), x)
		return u.Sub(u, one)
	}), false)
}

// expRangeCut handles arguments whose exponential is certain to lie
// outside the exponent range. It reports whether it set z to the
// properly rounded overflow or underflow result, flags raised; for other
// arguments z is left untouched.
func expRangeCut(z, x *mpfloat.Float, prec uint) bool {
	emin, emax := mpfloat.ExpRange()
	xf, _ := x.Float64() // saturates to ±Inf for huge x, raising no flags
	switch {
	case xf > (float64(emax)+2)*stdmath.Ln2:
		ready(z, prec)
		z.SetMantExp(z.SetUint64(1), emax+1)
		return true
	case xf < (float64(emin)-3)*stdmath.Ln2:
		ready(z, prec)
		z.SetMantExp(z.SetUint64(1), emin-4)
		return true
	}
	return false
}

// expT sets z to e^x for a finite nonzero x, using the reduction
//
//	x = k·ln2 + r, |r| < ln2, e^x = 2^k · e^r
//
// The precision of z must be non zero and the caller is responsible for
// allocating guard bits and rounding down z.
func expT(z, x *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()

	// Arguments this far out are caught by the callers' range cuts;
	// refuse them anyway: the reduction below needs k to fit an int64.
	switch xf, _ := x.Float64(); {
	case xf > (float64(mpfloat.MaxExp)+2)*stdmath.Ln2:
		return z.SetInf(false)
	case xf < (float64(mpfloat.MinExp)-3)*stdmath.Ln2:
		return z.SetZero(false)
	}

	// The reduction runs with an extra guard word: r comes out of a
	// subtraction of two nearly equal values of magnitude |k|·ln2.
	pr := p + wordBits
	t := fp(pr).Quo(x, ln2(pr))
	k, _ := t.Int64()
	r := fp(pr)
	if k != 0 {
		r.Sub(x, t.Mul(t.SetInt64(k), ln2(pr)))
	} else {
		r.Set(x)
	}

	expm1T(z, r)
	z.Add(z, one)
	return z.SetMantExp(z, int(k))
}

// expm1T sets z to e^r - 1 using the Taylor series of exp, for |r| < 1.
// The precision of z must be non zero and the caller is responsible for
// allocating guard bits and rounding down z.
func expm1T(z, r *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()
	if r.IsZero() {
		return z.SetZero(r.Signbit())
	}
	var (
		q    = fp(p).SetUint64(1)
		fact = fp(p).SetUint64(1)
		t    = fp(p)
		re   = fp(p).Set(r) // r^n
		s    = fp(p).Set(r) // first term
		eps  = epsOf(r, p+1)
	)
	for {
		re.Set(t.Mul(re, r))
		fact.Set(t.Mul(fact, q.Add(q, one)))
		z.Set(s)
		s.Add(z, t.Quo(re, fact))
		if t.Sub(z, s).CmpAbs(eps) <= 0 {
			break
		}
	}
	return z.Set(s)
}
