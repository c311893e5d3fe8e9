// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// Sqrt sets z to the rounded square root of x, and returns it.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode, and z's accuracy reports the result error relative to
// the exact (not rounded) result.
//
// The function's only possible failure is taking the square root of a
// negative number, in which case z is set to NaN and the NaN flag is
// raised. Following IEEE 754 and MPFR, Sqrt(±0) is ±0.
func (z *Float) Sqrt(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z.prec == 0 {
		z.prec = x.prec
	}
	switch x.form {
	case nan:
		return z.setNaN()
	case zero:
		z.acc = Exact
		z.form = zero
		z.neg = x.neg
		return z
	case inf:
		if x.neg {
			return z.setNaN()
		}
		z.acc = Exact
		z.form = inf
		z.neg = false
		return z
	}
	if x.neg {
		return z.setNaN()
	}

	// Scale the mantissa m so that the shifted exponent s is even and m
	// carries at least 2·prec+4 bits: the integer square root then has
	// at least prec+2 bits, and a nonzero remainder is exactly the
	// sticky information below its last bit.
	m := x.mant
	s := x.scale()
	t := 2*int64(z.prec) + 4 - int64(m.bitLen())
	if t < 0 {
		t = 0
	}
	if (s-t)&1 != 0 {
		t++
	}
	u := nat(nil).shl(m, uint(t))
	s -= t

	r := nat(nil).sqrt(u)

	// remainder u - r² feeds the sticky bit
	var sbit uint
	rr := nat(nil).mul(r, r)
	if rr.cmp(u) != 0 {
		sbit = 1
	}
	return z.setFromNat(false, r, s/2, sbit)
}
