// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"sync"

	"github.com/db47h/mpfloat"
)

// Log sets z to the rounded value of the natural logarithm of x, and
// returns z.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode.
//
// Special cases are:
//
//	Log(NaN)   = NaN
//	Log(x < 0) = NaN       (raising the NaN flag)
//	Log(±0)    = -Inf      (raising the DivByZero flag)
//	Log(1)     = +0
//	Log(+Inf)  = +Inf
func Log(z, x *mpfloat.Float) *mpfloat.Float {
	// Log uses the Salamin algorithm described in Michael Beeler,
	// R. William Gosper, Richard Schroeppel, HAKMEM, Artificial
	// Intelligence Memo No. 239, Item 143, except near 1 where the
	// identity loses all its significant bits and an atanh series is
	// used instead.
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() || x.Sign() < 0 {
		return ready(z, prec).SetNaN()
	}
	if x.IsZero() {
		mpfloat.RaiseFlags(mpfloat.DivByZero)
		return ready(z, prec).SetInf(true)
	}
	if x.IsInf() {
		return ready(z, prec).SetInf(false)
	}
	if x.Cmp(one) == 0 {
		return ready(z, prec).SetZero(false)
	}

	return ziv(z, prec, func(p uint) *mpfloat.Float {
		return lnT(p, x)
	})
}

// lnT returns ln(x) at working precision p, for finite x > 0, x != 1.
func lnT(p uint, x *mpfloat.Float) *mpfloat.Float {
	if e := x.MantExp(nil); 0 <= e && e <= 1 {
		// 1/2 <= x < 2: ln(x) can be arbitrarily close to 0 and the AGM
		// identity cancels; sum the series on x-1 instead.
		u := fp(p + wordBits).Sub(x, one)
		return log1pT(fp(p), u)
	}
	return logT(fp(p), x)
}

// Log1p sets z to the rounded value of ln(1+x), and returns z. It is
// more accurate than Log(z, 1+x) when x is near zero.
//
// Special cases are:
//
//	Log1p(NaN)    = NaN
//	Log1p(x < -1) = NaN    (raising the NaN flag)
//	Log1p(-1)     = -Inf   (raising the DivByZero flag)
//	Log1p(±0)     = ±0
//	Log1p(+Inf)   = +Inf
func Log1p(z, x *mpfloat.Float) *mpfloat.Float {
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
			return ready(z, prec).SetNaN()
		}
		return ready(z, prec).SetInf(false)
	}
	switch x.Cmp(negOne) {
	case -1:
		return ready(z, prec).SetNaN()
	case 0:
		mpfloat.RaiseFlags(mpfloat.DivByZero)
		return ready(z, prec).SetInf(true)
	}

	if x.MantExp(nil) <= -1 {
		// |x| < 1/2
		return ziv(z, prec, func(p uint) *mpfloat.Float {
			return log1pT(fp(p), x)
		})
	}
	return ziv(z, prec, func(p uint) *mpfloat.Float {
		u := fp(p + wordBits).Add(x, one)
		return logT(fp(p), u)
	})
}

// log1pT sets z to ln(1+x) for -1 < x < 1 using the atanh series
//
//	ln(1+x) = 2·atanh(u),  u = x/(2+x),  atanh(u) = u + u³/3 + u⁵/5 + …
//
// The precision of z must be non zero and the caller is responsible for
// allocating guard bits and rounding down z.
func log1pT(z, x *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()
	var (
		t   = fp(p)
		d   = fp(p)
		u   = fp(p).Quo(x, t.Add(x, two))
		uu  = fp(p).Mul(u, u)
		num = fp(p).Set(u) // u^(2k+1)
		s   = fp(p).Set(u) // partial sum
		n   = uint64(1)
		eps = epsOf(u, p+1)
	)
	for {
		num.Set(t.Mul(num, uu))
		n += 2
		t.Quo(num, d.SetUint64(n))
		z.Set(s)
		s.Add(z, t)
		if t.CmpAbs(eps) <= 0 {
			break
		}
	}
	return z.Mul(s, two)
}

// logT computes ln(x) for finite x > 0 with the AGM identity
//
//	ln(s) = π/(2·AGM(1, 4/s)) + O(2^-p)  for s > 2^(p/2+1)
//
// applied to s = 2^m/f where x = f·2^e with 1/2 <= f < 1, so that
// ln(x) = (e+m)·ln2 − ln(s). The precision of z must be non zero and the
// caller is responsible for allocating guard bits and rounding down z.
func logT(z, x *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()
	f := fp(p).Set(x)
	e := x.MantExp(nil)
	f.SetMantExp(f, -e) // 1/2 <= f < 1

	m := (int(p)+1)/2 + 2
	s := fp(p).Quo(one, f)
	s.SetMantExp(s, m) // s = 2^m/f > 2^(p/2+1)

	t := fp(p).SetUint64(1)
	u := fp(p).Quo(four, s)
	agm(z, t, u)
	z.Quo(pi(p), t.Mul(z, two)) // ln(s)
	t.Mul(u.SetInt64(int64(e)+int64(m)), ln2(p))
	return z.Sub(t, z)
}

var (
	ln2Mu sync.Mutex
	_ln2  = new(mpfloat.Float)
)

// ln2 returns ln(2) with a precision of at least prec bits. The returned
// value is shared and must not be modified: when the cache grows, a
// fresh Float replaces it, so values handed out earlier stay valid.
func ln2(prec uint) *mpfloat.Float {
	ln2Mu.Lock()
	defer ln2Mu.Unlock()
	if _ln2.Prec() < prec {
		_ln2 = ln2T(fp(prec))
	}
	return _ln2
}

// ln2T computes ln(2) to z.Prec() bits of precision and returns z. It
// raises no flags and is immune to a narrowed exponent range.
//
// This is a special case of logT with x = 2^m: the pre-scaling is exact
// and the result is recovered with a single division by m.
func ln2T(z *mpfloat.Float) *mpfloat.Float {
	defer mpfloat.RestoreFlags(mpfloat.SaveFlags())
	defer wideRange()()

	prec := z.Prec()
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}
	p := prec + wordBits
	z.SetMode(mpfloat.ToNearestEven).SetPrec(p)

	m := (int(p)+1)/2 + 3
	t := fp(p)
	agm(z,
		fp(p).SetUint64(1),
		fp(p).Quo(four, mpfloat.NewFloat(1, m)))
	z.Quo(pi(p), t.Mul(z, two)) // ln(2^m) = m·ln2
	return z.Quo(z, t.SetInt64(int64(m))).SetPrec(prec)
}

// agm sets z to the arithmetic-geometric mean of a, b and returns z.
// a, b and z must be distinct Floats. a and b are not preserved.
func agm(z, a, b *mpfloat.Float) *mpfloat.Float {
	var (
		prec    = z.Prec()
		t       = fp(prec)
		epsilon = mpfloat.NewFloat(1, -int(prec))
	)

	for {
		t.Copy(a)
		a.Mul(z.Add(a, b), half) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))      // b_n+1 = sqrt(a_n × b_n)
		if z.Sub(a, b).CmpAbs(epsilon) <= 0 {
			break
		}
	}
	return z.Copy(a)
}
