// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"sync"

	"github.com/db47h/mpfloat"
)

var (
	piMu sync.Mutex
	_pi  = piT(fp(2 * wordBits))
)

// Pi sets z to the rounded value of π and returns z. If z's precision is
// 0, it is changed to the package default precision.
func Pi(z *mpfloat.Float) *mpfloat.Float {
	prec := z.Prec()
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}
	return ziv(z, prec, func(p uint) *mpfloat.Float {
		return pi(p)
	})
}

// pi returns π with a precision of at least prec bits. The returned
// value is shared and must not be modified: when the cache grows, a
// fresh Float replaces it, so values handed out earlier stay valid.
func pi(prec uint) *mpfloat.Float {
	piMu.Lock()
	defer piMu.Unlock()
	if _pi.Prec() < prec {
		_pi = piT(fp(prec))
	}
	return _pi
}

// piT computes π with the Gauss-Legendre algorithm to z.Prec() bits of
// precision and returns z. It raises no flags and is immune to a
// narrowed exponent range.
func piT(z *mpfloat.Float) *mpfloat.Float {
	defer mpfloat.RestoreFlags(mpfloat.SaveFlags())
	defer wideRange()()

	prec := z.Prec()
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}

	var (
		// Work with a whole extra word of precision; the quadratic
		// convergence test below keeps one iteration past the point
		// where |a-b| drops under epsilon.
		pp = prec + wordBits
		a  = fp(pp).SetUint64(1)
		u  = fp(pp).Sqrt(two)
		b  = fp(pp).Quo(one, u)
		t  = fp(pp).Set(quarter)
		// while p is an int, just use a Float. This causes less mallocs.
		p       = fp(pp).SetUint64(1)
		epsilon = mpfloat.NewFloat(1, -int(pp))
	)

	z.SetMode(mpfloat.ToNearestEven).SetPrec(pp)

	for {
		u.Set(a)                 // a_n
		a.Mul(z.Add(a, b), half) // a_n+1
		b.Sqrt(z.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)^2 could be computed as:
		// t.Sub(t, u.Mul(p, u.Mul(u.Sub(u, a), u)))
		// but we shuffle temp vars in order to avoid using arguments as
		// targets in operations, which may result in memory allocations
		// for temp storage.
		t.Set(u.Sub(t, z.Mul(u.Mul(z.Sub(u, a), z), p)))

		if z.Sub(a, b).CmpAbs(epsilon) <= 0 {
			break
		}

		p.Set(z.Mul(p, two))
	}
	z.Add(a, b)
	a.Mul(z, z)
	t.Mul(t, four)
	return z.Quo(a, t).SetPrec(prec)
}
