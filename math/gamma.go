// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"
	"math/big"

	"github.com/db47h/mpfloat"
)

// Gamma sets z to the value of the gamma function of x, and returns z.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode. Unlike the other functions in this package, Gamma
// guarantees a faithful result only: one of the two floating-point
// numbers adjacent to Γ(x).
//
// Special cases are:
//
//	Gamma(NaN)      = NaN
//	Gamma(+Inf)     = +Inf
//	Gamma(-Inf)     = NaN   (raising the NaN flag)
//	Gamma(±0)       = ±Inf  (raising the DivByZero flag)
//	Gamma(-integer) = NaN   (raising the NaN flag)
func Gamma(z, x *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	if x.IsNaN() {
		return ready(z, prec).SetNaN()
	}
	if x.IsInf() {
		if x.Signbit() {
			return ready(z, prec).SetNaN()
		}
		return ready(z, prec).SetInf(false)
	}
	if x.IsZero() {
		mpfloat.RaiseFlags(mpfloat.DivByZero)
		return ready(z, prec).SetInf(x.Signbit())
	}
	if x.Signbit() && x.IsInt() {
		// the poles at the negative integers have no one-sided limit
		return ready(z, prec).SetNaN()
	}

	if cut := gammaRangeCut(z, x, prec); cut {
		return z
	}

	saved := mpfloat.SaveFlags()
	restoreRange := wideRange()
	p := prec + 2*wordBits
	var u *mpfloat.Float
	switch xi, acc := x.Int64(); {
	case x.IsInt() && acc == mpfloat.Exact && 0 < xi && xi <= 1<<16:
		u = factT(fp(p), uint64(xi)-1)
	case x.Cmp(half) >= 0:
		u = gammaT(fp(p), x)
	default:
		// Γ(x) = π / (sin(πx)·Γ(1-x))
		t := fp(p).Sub(one, x)
		u = fp(p).Mul(sinPi(p, x), gammaT(fp(p), t))
		u.Quo(pi(p), fp(p).Set(u))
	}
	restoreRange()
	mpfloat.RestoreFlags(saved)
	return checkRange(ready(z, prec).Set(u), false)
}

// gammaRangeCut handles arguments for which Γ(x) is certain to lie
// outside the exponent range, using the float64 log-gamma as a crude but
// safe magnitude estimate. It reports whether it set z to the properly
// rounded overflow or underflow result, flags raised. The cut also
// bounds the arguments reaching gammaT: without it, huge x would push
// the exp reduction past the capacity of an int64 exponent.
func gammaRangeCut(z, x *mpfloat.Float, prec uint) bool {
	emin, emax := mpfloat.ExpRange()
	xf, _ := x.Float64()
	if xf >= 0.5 {
		// Γ(x) > 0, monotonically growing for x >= 2
		if lg, _ := stdmath.Lgamma(xf); lg > (float64(emax)+2)*stdmath.Ln2 {
			ready(z, prec)
			z.SetMantExp(z.SetInt64(1), emax+1)
			return true
		}
		return false
	}
	if xf >= 0 {
		// 0 < x < 1/2: Γ(x) < 1/x + 1, within reach of the normal path
		return false
	}
	// x < 0: the reflection Γ(x) = π/(sin(πx)·Γ(1-x)) shrinks like
	// 1/Γ(1-x). A non-integer x at precision prec keeps a distance of at
	// least 2^-prec from the poles, so |sin(πx)| >= 2^-prec: discount
	// prec bits from the estimate.
	if lg, _ := stdmath.Lgamma(1 - xf); lg > (float64(x.Prec())-(float64(emin)-3))*stdmath.Ln2 {
		s := int64(1)
		// the sign of Γ(x) for negative non-integer x is the sign of
		// sin(πx), (-1)^⌊x⌋; Int truncates, so ⌊x⌋ = trunc(x) - 1 here
		if n, _ := x.Int(new(big.Int)); n.Bit(0) == 0 {
			s = -1
		}
		ready(z, prec)
		z.SetMantExp(z.SetInt64(s), emin-4)
		return true
	}
	return false
}

// factT sets z to n! and returns z. The precision of z must be non zero
// and the caller is responsible for allocating guard bits and rounding
// down z.
func factT(z *mpfloat.Float, n uint64) *mpfloat.Float {
	t := fp(z.Prec())
	d := fp(z.Prec())
	z.SetUint64(1)
	for k := uint64(2); k <= n; k++ {
		z.Mul(t.Set(z), d.SetUint64(k))
	}
	return z
}

// gammaT sets z to Γ(x) for finite x >= 1/2 using the Spouge
// approximation
//
//	Γ(w+1) = (w+a)^(w+1/2) · e^(-w-a) · (c₀ + Σ ck/(w+k) + ε)
//
// with c₀ = sqrt(2π) and ck = (-1)^(k-1)·(a-k)^(k-1/2)·e^(a-k)/(k-1)!.
// The relative error ε decreases like (2π)^-a, so a grows linearly with
// the precision of z. The precision of z must be non zero and the caller
// is responsible for allocating guard bits and rounding down z.
func gammaT(z, x *mpfloat.Float) *mpfloat.Float {
	p := z.Prec()
	a := uint64(float64(p)*stdmath.Ln2/stdmath.Log(2*stdmath.Pi)) + 4

	w := fp(p).Sub(x, one) // Γ(x) = Γ(w+1)

	sum := fp(p).Mul(pi(p), two)
	sum.Sqrt(sum) // c₀
	var (
		t    = fp(p)
		d    = fp(p)
		ak   = fp(p)
		ck   = fp(p)
		fact = fp(p).SetUint64(1)            // (k-1)!
		e1   = expT(fp(p), one)              // e
		eak  = expT(fp(p), t.SetUint64(a-1)) // e^(a-k)
	)
	for k := uint64(1); k < a; k++ {
		ak.SetUint64(a - k)
		pow(ck, ak, k)
		ck.Quo(t.Set(ck), d.Sqrt(ak)) // (a-k)^(k-1/2)
		ck.Mul(t.Set(ck), eak)
		ck.Quo(t.Set(ck), fact)
		if k%2 == 0 {
			ck.Neg(ck)
		}
		t.Add(w, d.SetUint64(k))
		sum.Add(d.Set(sum), t.Quo(ck, t))

		eak.Quo(d.Set(eak), e1)
		fact.Mul(d.Set(fact), t.SetUint64(k))
	}

	wa := fp(p).Add(w, t.SetUint64(a))
	u := fp(p).Add(w, half)
	u.Mul(t.Set(u), lnT(p, wa))
	u.Sub(t.Set(u), wa)
	expT(z, u) // (w+a)^(w+1/2) · e^(-w-a)
	return z.Mul(t.Set(z), sum)
}

// sinPi returns sin(πx) for finite non-integer x, computed at precision
// p. The argument reduction splits x into its integer and fraction parts
// exactly, so the result keeps its relative accuracy for any magnitude
// of x.
func sinPi(p uint, x *mpfloat.Float) *mpfloat.Float {
	// f = x - ⌊x⌋, exactly: f holds the low-order fraction bits of x
	pq := x.Prec() + wordBits
	if pq < p {
		pq = p
	}
	n, _ := x.Int(new(big.Int))
	f := fp(pq).Sub(x, fp(pq).SetInt(n))
	if f.Signbit() {
		f.Add(f, one)
		n.Sub(n, big.NewInt(1))
	}
	neg := n.Bit(0) != 0 // sin(π(n+f)) = (-1)^n · sin(πf)

	// fold 0 < f < 1 onto [0, 1/4], where the series converge
	if f.Cmp(half) > 0 {
		f.Sub(one, f) // sin(πf) = sin(π(1-f)), exact by Sterbenz
	}
	z := fp(p)
	r := fp(p)
	if f.Cmp(quarter) <= 0 {
		sinT(z, r.Mul(pi(p), f))
	} else {
		r.Sub(half, f) // exact
		cosT(z, r.Mul(pi(p), fp(p).Set(r)))
	}
	if neg {
		z.Neg(z)
	}
	return z
}
