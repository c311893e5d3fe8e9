// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"encoding/binary"
	"math/big"

	"github.com/db47h/mpfloat"
)

// A Source is a stream of uniformly distributed random bits, consumed 64
// bits at a time. math/rand.Source64 implements Source, as does
// rand.Rand.
type Source interface {
	Uint64() uint64
}

// Uniform sets z to a random number in [0, 1) with a uniform
// distribution, and returns z. The result is exact: it is N·2^-prec
// where N is built from the first prec bits of src, with prec being z's
// precision (or DefaultPrec if z's precision is 0).
func Uniform(z *mpfloat.Float, src Source) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}
	ready(z, prec)

	n := (int(prec) + 63) / 64
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(buf[i*8:], src.Uint64())
	}
	N := new(big.Int).SetBytes(buf)
	N.Rsh(N, uint(n*64)-prec)
	if N.Sign() == 0 {
		return z.SetZero(false)
	}
	z.SetInt(N) // exact: N has at most prec bits
	return z.SetMantExp(z, z.MantExp(nil)-int(prec))
}

// Exponential sets z to a random number drawn from the exponential
// distribution with rate 1, and returns z. It draws a uniform u in
// (0, 1] worth of prec+guard bits from src (redrawing on 0) and returns
// the rounded value of -ln(u).
func Exponential(z *mpfloat.Float, src Source) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}
	// the draw is an intermediate: a narrowed exponent range applies to
	// the final result only
	restoreRange := wideRange()
	u := fp(prec + wordBits)
	for Uniform(u, src).IsZero() {
	}
	restoreRange()
	return ziv(z, prec, func(p uint) *mpfloat.Float {
		v := lnT(p, u)
		return v.Neg(v)
	})
}

// Normal sets z to a random number drawn from the standard normal
// distribution, and returns z. It uses the Box-Muller transform
//
//	z = sqrt(-2·ln(u1)) · cos(2π·u2)
//
// on two uniform draws of prec+guard bits from src, redrawing u1 on 0.
func Normal(z *mpfloat.Float, src Source) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}
	// the draws are intermediates: a narrowed exponent range applies to
	// the final result only
	restoreRange := wideRange()
	u1 := fp(prec + wordBits)
	for Uniform(u1, src).IsZero() {
	}
	u2 := Uniform(fp(prec+wordBits), src)
	restoreRange()

	return ziv(z, prec, func(p uint) *mpfloat.Float {
		v := lnT(p, u1)
		v.SetMantExp(v, v.MantExp(nil)+1)
		v.Neg(v)
		v.Sqrt(v) // sqrt(-2·ln(u1))

		c := fp(p)
		if u2.IsZero() {
			c.SetUint64(1)
		} else {
			ang := fp(p).Mul(pi(p), u2)
			ang.SetMantExp(ang, ang.MantExp(nil)+1) // 2π·u2
			r, q := trigReduce(p, ang)
			switch (q + 1) & 3 {
			case 0:
				sinT(c, r)
			case 1:
				cosT(c, r)
			case 2:
				sinT(c, r).Neg(c)
			default:
				cosT(c, r).Neg(c)
			}
		}
		return v.Mul(fp(p).Set(v), c)
	})
}
