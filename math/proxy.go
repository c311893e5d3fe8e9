package math

import "github.com/db47h/mpfloat"

// FMA sets z to x * y + u, computed with only one rounding. (That is, FMA
// performs the fused multiply-add of x, y, and u.) If z's precision is 0, it is
// changed to the larger of x's, y's, or u's precision before the operation.
// Rounding, flags and accuracy reporting are as for Add. Multiplying zero with
// an infinity, or adding two infinities with opposite signs, yields NaN and
// raises the NaN flag.
//
// This function is a proxy for z.FMA(x, y, u)
func FMA(z, x, y, u *mpfloat.Float) *mpfloat.Float {
	return z.FMA(x, y, u)
}

// Sqrt sets z to the rounded square root of x, and returns it.
//
// If z's precision is 0, it is changed to x's precision before the
// operation. Rounding is performed according to z's precision and
// rounding mode.
//
// Sqrt of a negative x yields NaN and raises the NaN flag.
//
// This function is a proxy for z.Sqrt(x)
func Sqrt(z, x *mpfloat.Float) *mpfloat.Float {
	return z.Sqrt(x)
}
