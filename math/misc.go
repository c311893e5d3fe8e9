// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides elementary functions for multi-precision
// floating-point values: exponentials, logarithms, trigonometric and
// hyperbolic functions, powers, the gamma function, π, and random
// distribution sampling.
//
// All functions of the form
//
//	func Op(z, x *mpfloat.Float) *mpfloat.Float
//
// set z to the rounded value of op(x) and return z. If z's precision is
// 0, it is changed to x's precision before the operation. Rounding is
// performed according to z's precision and rounding mode.
//
// Results are computed with increased working precision until the value
// rounds unambiguously to z's precision; the retry count is bounded, so
// in adversarial cases (and for Gamma, always) the result is faithful
// rather than correctly rounded: one of the two floating-point numbers
// adjacent to the exact value. On that fallback path the Inexact flag is
// raised whenever the approximation was inexact, but the Acc of z may
// still report Exact if the approximation happens to fit z's precision;
// the flag register is authoritative.
//
// Internal computations run in an isolated flag scope and under the full
// exponent range: only the flags describing the final rounded result
// reach the package flag register, and a range narrowed with SetExpRange
// applies to the final rounding only, never to intermediates.
package math

import (
	"github.com/db47h/mpfloat"
)

const wordBits = 32 << (^mpfloat.Word(0) >> 63 & 1)

// shared read-only constants
var (
	one     = new(mpfloat.Float).SetUint64(1)
	negOne  = new(mpfloat.Float).SetInt64(-1)
	two     = new(mpfloat.Float).SetUint64(2)
	four    = new(mpfloat.Float).SetUint64(4)
	half    = mpfloat.NewFloat(1, -1)
	quarter = mpfloat.NewFloat(1, -2)
)

// fp returns a new Float with its precision set to prec.
func fp(prec uint) *mpfloat.Float {
	return new(mpfloat.Float).SetPrec(prec)
}

// ready sets z's precision to prec without rounding z's old value, which
// is not preserved.
func ready(z *mpfloat.Float, prec uint) *mpfloat.Float {
	if z.Prec() != prec {
		z.SetPrec(0).SetPrec(prec)
	}
	return z
}

// epsOf returns the series convergence threshold 2^-p relative to the
// binary magnitude of x.
func epsOf(x *mpfloat.Float, p uint) *mpfloat.Float {
	return mpfloat.NewFloat(1, x.MantExp(nil)-int(p))
}

// roundable reports whether an approximation u, computed with an error
// of a few ulps at u's precision, rounds unambiguously to prec bits
// under any rounding mode. It does so by checking that the mantissa bits
// below the rounding position are not all equal: the dangerous patterns
// (all zeros, all ones, and the half-ulp patterns 100...0 and 011...1
// for the nearest modes) all have constant bits after position prec+1.
func roundable(u *mpfloat.Float, prec uint) bool {
	if !u.IsFinite() || u.IsZero() {
		return true
	}
	w := u.Prec()
	if w < prec+16 {
		return false
	}
	bits, _ := u.BitsExp()
	total := uint(len(bits)) * wordBits
	// check mantissa positions prec+1 .. w-9, msb first, leaving 8 slack
	// bits at the bottom for the approximation error
	var seen0, seen1 bool
	for i := prec + 1; i <= w-9; i++ {
		j := total - 1 - i // lsb-first bit index
		if bits[j/wordBits]>>(j%wordBits)&1 != 0 {
			seen1 = true
		} else {
			seen0 = true
		}
		if seen0 && seen1 {
			return true
		}
	}
	return false
}

// wideRange widens the exponent range to its full extent and returns a
// function restoring the caller's range. Approximations must never be
// clipped by a narrowed user range; that range applies to the final
// rounding of a result, not to intermediates.
func wideRange() func() {
	emin, emax := mpfloat.ExpRange()
	if emin == mpfloat.MinExp && emax == mpfloat.MaxExp {
		return func() {}
	}
	mpfloat.SetExpRange(mpfloat.MinExp, mpfloat.MaxExp)
	return func() { mpfloat.SetExpRange(emin, emax) }
}

// ziv evaluates f with increasing working precision p until the
// approximation it returns rounds unambiguously to prec bits, then sets
// z to the rounded result and returns z. f runs in an isolated flag
// scope and under the full exponent range; only z's final rounding
// reaches the package flag register and obeys the caller's range.
func ziv(z *mpfloat.Float, prec uint, f func(p uint) *mpfloat.Float) *mpfloat.Float {
	saved := mpfloat.SaveFlags()
	restoreRange := wideRange()
	mpfloat.ClearFlags(mpfloat.Inexact)
	var (
		u        *mpfloat.Float
		fallback bool
	)
	p := prec + wordBits
	for i := 0; ; i++ {
		u = f(p)
		if roundable(u, prec) {
			break
		}
		if i == 2 {
			fallback = true
			break
		}
		p += prec/2 + wordBits
	}
	inexact := mpfloat.TestFlags(mpfloat.Inexact) != 0
	restoreRange()
	mpfloat.RestoreFlags(saved)
	ready(z, prec).Set(u)
	if fallback && inexact && z.Acc() == mpfloat.Exact {
		// The approximation never stabilized and was itself inexact: an
		// accidentally exact final rounding must not hide that.
		mpfloat.RaiseFlags(mpfloat.Inexact)
	}
	return z
}

// checkRange raises the range flags for a rounded result that left the
// exponent range during an internal computation. exact reports that the
// infinite or zero result is exact (obtained from special operands, not
// from rounding).
func checkRange(z *mpfloat.Float, exact bool) *mpfloat.Float {
	if exact {
		return z
	}
	switch {
	case z.IsInf():
		mpfloat.RaiseFlags(mpfloat.Overflow | mpfloat.Inexact)
	case z.IsZero():
		mpfloat.RaiseFlags(mpfloat.Underflow | mpfloat.Inexact)
	}
	return z
}

// pow sets z to the rounded value of x^n and returns z. The precision of
// z must be non zero and the caller is responsible for allocating guard
// bits and rounding down z.
func pow(z, x *mpfloat.Float, n uint64) *mpfloat.Float {
	if n == 0 {
		return z.SetUint64(1)
	}
	t := fp(z.Prec())
	y := fp(z.Prec()).SetUint64(1)
	z.Set(x)

	for n > 1 {
		if n%2 != 0 {
			y.Mul(t.Set(y), z)
		}
		z.Mul(t.Set(z), t)
		if z.IsInf() || z.IsZero() {
			return z
		}
		n /= 2
	}
	if y.Cmp(one) == 0 {
		return z
	}
	return z.Mul(t.Set(z), y)
}
