// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"

	"github.com/db47h/mpfloat"
)

// Sin sets z to the rounded value of the sine of x (in radians), and
// returns z.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode.
//
// Special cases are:
//
//	Sin(NaN)  = NaN
//	Sin(±0)   = ±0
//	Sin(±Inf) = NaN   (raising the NaN flag)
func Sin(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() || x.IsInf() {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		return ready(z, prec).SetZero(x.Signbit())
	}
	return ziv(z, prec, func(p uint) *mpfloat.Float {
		r, q := trigReduce(p, x)
		v := fp(p)
		switch q {
		case 0:
			sinT(v, r)
		case 1:
			cosT(v, r)
		case 2:
			sinT(v, r).Neg(v)
		default:
			cosT(v, r).Neg(v)
		}
		return v
	})
}

// Cos sets z to the rounded value of the cosine of x (in radians), and
// returns z.
//
// Special cases are:
//
//	Cos(NaN)  = NaN
//	Cos(±0)   = 1
//	Cos(±Inf) = NaN   (raising the NaN flag)
func Cos(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() || x.IsInf() {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		return ready(z, prec).SetUint64(1)
	}
	return ziv(z, prec, func(p uint) *mpfloat.Float {
		// cos(x) = sin(x + π/2): shift the quadrant
		r, q := trigReduce(p, x)
		v := fp(p)
		switch (q + 1) & 3 {
		case 0:
			sinT(v, r)
		case 1:
			cosT(v, r)
		case 2:
			sinT(v, r).Neg(v)
		default:
			cosT(v, r).Neg(v)
		}
		return v
	})
}

// Tan sets z to the rounded value of the tangent of x (in radians), and
// returns z.
//
// Special cases are:
//
//	Tan(NaN)  = NaN
//	Tan(±0)   = ±0
//	Tan(±Inf) = NaN   (raising the NaN flag)
func Tan(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() || x.IsInf() {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		return ready(z, prec).SetZero(x.Signbit())
	}
	return ziv(z, prec, func(p uint) *mpfloat.Float {
		r, q := trigReduce(p, x)
		s := sinT(fp(p), r)
		c := cosT(fp(p), r)
		v := fp(p)
		if q&1 != 0 {
			// tan(r + π/2) = -cos(r)/sin(r)
			return v.Quo(c.Neg(c), s)
		}
		return v.Quo(s, c)
	})
}

// trigReduce returns r = x - k·(π/2) with |r| <= π/4 (modulo the
// rounding of the reduction itself), and the quadrant q = k mod 4. The
// working precision absorbs the binary magnitude of x: the larger x, the
// more bits of π the reduction consumes.
func trigReduce(p uint, x *mpfloat.Float) (r *mpfloat.Float, q int64) {
	pp := p + wordBits
	if e := x.MantExp(nil); e > 0 {
		pp += uint(e)
	}
	hp := fp(pp).Mul(pi(pp), half) // π/2
	t := fp(pp).Quo(x, hp)
	if t.Signbit() {
		t.Sub(t, half)
	} else {
		t.Add(t, half)
	}
	k, _ := t.Int(new(big.Int)) // nearest integer to x/(π/2)
	r = fp(pp)
	if k.Sign() != 0 {
		r.Sub(x, t.Mul(t.SetInt(k), hp))
	} else {
		r.Set(x)
	}
	q = new(big.Int).Mod(k, big.NewInt(4)).Int64()
	return r, q
}

// sinT sets z to sin(r) using the Taylor series, for |r| <= 1. The
// precision of z must be non zero and the caller is responsible for
// allocating guard bits and rounding down z.
func sinT(z, r *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()
	if r.IsZero() {
		return z.SetZero(r.Signbit())
	}
	var (
		t    = fp(p)
		d    = fp(p)
		rr   = fp(p).Mul(r, r)
		term = fp(p).Set(r)
		s    = fp(p).Set(r)
		n    = uint64(1)
		eps  = epsOf(r, p+1)
	)
	for {
		// term_{k+1} = -term_k · r² / ((n+1)(n+2))
		n += 2
		term.Set(t.Mul(term, rr))
		term.Quo(t.Neg(term), d.SetUint64(n*(n-1)))
		z.Set(s)
		s.Add(z, term)
		if term.CmpAbs(eps) <= 0 {
			break
		}
	}
	return z.Set(s)
}

// cosT sets z to cos(r) using the Taylor series, for |r| <= 1. The
// precision of z must be non zero and the caller is responsible for
// allocating guard bits and rounding down z.
func cosT(z, r *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()
	if r.IsZero() {
		return z.SetUint64(1)
	}
	var (
		t    = fp(p)
		d    = fp(p)
		rr   = fp(p).Mul(r, r)
		term = fp(p).SetUint64(1)
		s    = fp(p).SetUint64(1)
		n    = uint64(0)
		eps  = mpfloat.NewFloat(1, -int(p)-1)
	)
	for {
		n += 2
		term.Set(t.Mul(term, rr))
		term.Quo(t.Neg(term), d.SetUint64(n*(n-1)))
		z.Set(s)
		s.Add(z, term)
		if term.CmpAbs(eps) <= 0 {
			break
		}
	}
	return z.Set(s)
}
