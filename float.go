// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multi-precision binary floating-point numbers.
// Like the IEEE floating-point types, the internal representation of a
// Float is sign × mantissa × 2^exponent, with 0.5 <= mantissa < 1.0, and
// rounding uses the Float's precision and rounding mode.

package mpfloat

import (
	"fmt"
	"math"
	"math/big"
)

// A nonzero finite Float represents a multi-precision binary floating
// point number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0 and MinExp <= exponent <= MaxExp, further
// restricted to the exponent range set with SetExpRange. A Float may also
// be zero (+0, -0), infinite (+Inf, -Inf), or NaN. All Floats are ordered
// except NaN, and all operations on NaNs produce NaNs.
//
// Each Float value also has a precision, rounding mode, and accuracy. The
// precision is the maximum number of mantissa bits available to represent
// the value. The rounding mode specifies how a result should be rounded
// to fit into the mantissa bits, and the accuracy describes the rounding
// error with respect to the exact result. Operations that round also
// raise the package status flags (see RaiseFlags): an operation whose
// accuracy is not Exact raises Inexact, a result clipped to the exponent
// range raises Overflow or Underflow, and a NaN result raises NaN.
//
// Unless specified otherwise, all operations (including setters) that
// specify a *Float variable for the result (usually via the receiver with
// the exception of MantExp), round the numeric result according to the
// precision and rounding mode of the result variable.
//
// If the provided result precision is 0 (see below), it is set to the
// precision of the argument with the largest precision value before any
// rounding takes place, and the rounding mode remains unchanged. Thus,
// uses of the zero Float value as operation targets inherit the operands'
// precisions.
//
// The zero (uninitialized) value for a Float is ready to use and
// represents the number +0.0 exactly, with precision 0 and rounding mode
// ToNearestEven. Floats returned by New and NewDefault start out as NaN
// instead, so that a missing assignment is visible in the result.
//
// Float operations with a non-pointer receiver only read their operands;
// operations with a pointer receiver may share the receiver with any
// number of operands. A Float must not be modified concurrently with any
// operation that reads it.
type Float struct {
	prec uint32
	mode RoundingMode
	acc  Accuracy
	form form
	neg  bool
	mant nat
	exp  int32
}

// NewFloat allocates and returns a new Float with value mant × 2**exp and
// a precision of 64 bits, rounded per the default rounding mode and the
// exponent range.
func NewFloat(mant int64, exp int) *Float {
	z := &Float{prec: 64, mode: DefaultMode()}
	z.SetInt64(mant)
	if z.form == finite {
		return z.setExpAndRound(int64(z.exp) + int64(exp))
	}
	return z
}

// debugging support
func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	if x.mant[m-1]&(1<<(_W-1)) == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of %s", x.mant[m-1], x.Text('p', 0)))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
	if m != int((x.prec+(_W-1))/_W) {
		panic(fmt.Sprintf("mantissa length %d does not match precision %d", m, x.prec))
	}
	if pad := uint(m)*_W - uint(x.prec); pad > 0 && x.mant[0]&(1<<pad-1) != 0 {
		panic(fmt.Sprintf("nonzero padding bits in %#x below precision %d", x.mant[0], x.prec))
	}
}

// scale returns the exponent s such that x = ±m·2^s with m the mantissa
// of x read as a little-endian integer.
func (x *Float) scale() int64 {
	return int64(x.exp) - int64(len(x.mant))*_W
}

// setNaN sets z to NaN and raises the NaN flag.
func (z *Float) setNaN() *Float {
	z.acc = Exact
	z.form = nan
	z.neg = false
	raiseFlags(NaN)
	return z
}

// setFromNat sets z to the rounded value of (-1)^neg · m · 2^s. An sbit
// of 1 stands for a nonzero quantity smaller than 2^s that is part of the
// exact magnitude but not of m. m must be normalized and nonzero.
//
// setFromNat is the single rounding point of the package: all kernels
// funnel their exact (or sticky-summarized) results through it. It sets
// z's accuracy, clips the result to the exponent range, and raises the
// Inexact, Overflow and Underflow flags as applicable.
func (z *Float) setFromNat(neg bool, m nat, s int64, sbit uint) *Float {
	if debugFloat && (len(m) == 0 || m[len(m)-1] == 0) {
		panic("setFromNat: mantissa not normalized")
	}
	bl := int64(m.bitLen())
	e := s + bl
	prec := int64(z.prec)
	nw := int((z.prec + (_W - 1)) / _W)
	pad := uint(int64(nw)*_W - prec)

	var rbit uint
	if n := bl - prec; n > 0 {
		// drop the n least significant bits, keeping round and sticky
		rbit = m.bit(uint(n - 1))
		sbit |= m.sticky(uint(n - 1))
		z.mant = z.mant.shr(m, uint(n))
		if pad > 0 {
			z.mant = z.mant.shl(z.mant, pad)
		}
	} else {
		z.mant = z.mant.shl(m, uint(int64(pad)-n))
	}

	if rbit == 0 && sbit == 0 {
		z.acc = Exact
	} else {
		var inc bool
		switch z.mode {
		case ToNearestEven:
			inc = rbit != 0 && (sbit != 0 || z.mant.bit(pad) != 0)
		case ToNearestAway:
			inc = rbit != 0
		case ToZero, Faithful:
			// truncate
		case AwayFromZero:
			inc = true
		case ToNegativeInf:
			inc = neg
		case ToPositiveInf:
			inc = !neg
		}
		if inc {
			if c := addVW(z.mant, z.mant, Word(1)<<pad); c != 0 {
				// mantissa overflow: 0.111...1 became 1.0
				z.mant[nw-1] = 1 << (_W - 1)
				e++
			}
		}
		z.acc = makeAcc(inc != neg)
	}

	z.neg = neg
	z.form = finite

	emin, emax := expRange()
	switch {
	case e > emax:
		return z.overflow(neg)
	case e < emin:
		return z.underflow(neg, e, emin)
	}
	z.exp = int32(e)
	if z.acc != Exact {
		raiseFlags(Inexact)
	}
	if debugFloat {
		z.validate()
	}
	return z
}

// overflow sets z to the result of an operation whose rounded value is
// too large for the exponent range: ±Inf, or the largest finite number
// for modes rounding towards the exact value.
func (z *Float) overflow(neg bool) *Float {
	var toInf bool
	switch z.mode {
	case ToNearestEven, ToNearestAway, AwayFromZero:
		toInf = true
	case ToZero, Faithful:
		// largest finite
	case ToNegativeInf:
		toInf = neg
	case ToPositiveInf:
		toInf = !neg
	}
	z.neg = neg
	if toInf {
		z.form = inf
		z.acc = makeAcc(!neg)
	} else {
		nw := int((z.prec + (_W - 1)) / _W)
		pad := uint(int64(nw)*_W - int64(z.prec))
		z.mant = z.mant.make(nw)
		for i := range z.mant {
			z.mant[i] = _M
		}
		z.mant[0] = _M << pad
		_, emax := expRange()
		z.exp = int32(emax)
		z.form = finite
		z.acc = makeAcc(neg)
	}
	raiseFlags(Overflow | Inexact)
	return z
}

// underflow sets z to the result of an operation whose nonzero value is
// too small for the exponent range: ±0, or the smallest nonzero number
// 2^(emin-1). e is the rounded result's exponent, e < emin; for the
// to-nearest modes z.mant and z.acc must still describe the rounded
// result so that the midpoint 2^(emin-2) can be compared against.
func (z *Float) underflow(neg bool, e, emin int64) *Float {
	var tiny bool
	switch z.mode {
	case ToZero, Faithful:
		// ±0
	case AwayFromZero:
		tiny = true
	case ToNegativeInf:
		tiny = neg
	case ToPositiveInf:
		tiny = !neg
	default: // ToNearestEven, ToNearestAway
		if e == emin-1 {
			// The exact magnitude is in [2^(emin-2), 2^(emin-1)); compare
			// it with the midpoint 2^(emin-2), which appears here as a
			// mantissa with only the top bit set.
			half := z.mant[len(z.mant)-1] == 1<<(_W-1)
			for i := 0; half && i < len(z.mant)-1; i++ {
				half = z.mant[i] == 0
			}
			switch {
			case !half:
				tiny = true
			case z.acc == Exact:
				// exact midpoint: 0 is the even choice
				tiny = z.mode == ToNearestAway
			default:
				// the rounding direction tells which side of the midpoint
				// the exact value is on
				tiny = z.acc == makeAcc(neg)
			}
		}
	}
	z.neg = neg
	if tiny {
		nw := int((z.prec + (_W - 1)) / _W)
		z.mant = z.mant.make(nw)
		for i := range z.mant {
			z.mant[i] = 0
		}
		z.mant[nw-1] = 1 << (_W - 1)
		z.exp = int32(emin)
		z.form = finite
		z.acc = makeAcc(!neg)
	} else {
		z.form = zero
		z.acc = makeAcc(neg)
	}
	raiseFlags(Underflow | Inexact)
	return z
}

// setExpAndRound sets z's exponent to e, clipping the result to the
// exponent range. z must be finite.
func (z *Float) setExpAndRound(e int64) *Float {
	emin, emax := expRange()
	switch {
	case e > emax:
		return z.overflow(z.neg)
	case e < emin:
		return z.underflow(z.neg, e, emin)
	}
	z.exp = int32(e)
	return z
}

// Prec returns the mantissa precision of x in bits.
// The result may be 0 for |x| == 0 and |x| == Inf.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec such that x.SetPrec(prec).Cmp(x) == 0).
// The result is 0 if x is zero or not finite.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - x.mant.trailingZeroBits()
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode {
	return x.mode
}

// Acc returns the accuracy of x produced by the most recent operation,
// unless explicitly documented otherwise by that operation. This is the
// ternary value of the operation: Below means the computed result is
// smaller than the exact one, Above that it is larger.
func (x *Float) Acc() Accuracy {
	return x.acc
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN (raising ERange for NaN)
//	+1 if x >   0
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case nan:
		raiseFlags(ERange)
		return 0
	case zero:
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
// The result for a NaN is false.
func (x *Float) Signbit() bool {
	return x.form != nan && x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x *Float) IsFinite() bool {
	return x.form <= finite
}

// MantExp breaks x into its mantissa and exponent components and returns
// the exponent. If a non-nil mant argument is provided its value is set
// to the mantissa of x, with the same precision and rounding mode as x.
// The components satisfy x == mant × 2**exp, with 0.5 <= |mant| < 1.0.
// Calling MantExp with a nil argument is an efficient way to get the
// exponent of the receiver.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//	( NaN).MantExp(mant) = 0, with mant set to  NaN
//
// x and mant may be the same in which case x is set to its mantissa value.
func (x *Float) MantExp(mant *Float) (exp int) {
	if debugFloat {
		x.validate()
	}
	if x.form == finite {
		exp = int(x.exp)
	}
	if mant != nil {
		mant.Copy(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// SetMantExp sets z to mant × 2**exp and returns z. The result z has the
// same precision and rounding mode as mant. SetMantExp is an inverse of
// MantExp but does not require 0.5 <= |mant| < 1.0. Specifically, for a
// given x of type *Float, SetMantExp relates to MantExp as follows:
//
//	mant := new(Float)
//	new(Float).SetMantExp(mant, x.MantExp(mant)).Cmp(x) == 0
//
// A result exceeding the exponent range is clipped per z's rounding mode
// (raising Overflow or Underflow); scaling is otherwise exact.
//
// Special cases are:
//
//	z.SetMantExp(  ±0, exp) =   ±0
//	z.SetMantExp(±Inf, exp) = ±Inf
//	z.SetMantExp( NaN, exp) =  NaN
//
// z and mant may be the same in which case z's exponent is set to exp.
func (z *Float) SetMantExp(mant *Float, exp int) *Float {
	if debugFloat {
		mant.validate()
	}
	z.Copy(mant)
	if z.form != finite {
		return z
	}
	z.acc = Exact
	return z.setExpAndRound(int64(z.exp) + int64(exp))
}

// BitsExp returns a copy of x's mantissa words (least significant word
// first) and the exponent s such that |x| equals the returned words read
// as an integer times 2^s. The result is nil, 0 if x is zero or not
// finite.
func (x *Float) BitsExp() ([]Word, int64) {
	if x.form != finite {
		return nil, 0
	}
	m := make([]Word, len(x.mant))
	copy(m, x.mant)
	return m, x.scale()
}

// SetBitsExp sets z to the rounded value of mant × 2**exp, where mant is
// an unsigned little-endian word slice, negated if neg is set. If z's
// precision is 0, it is set to the bit length of mant (or 64 for a zero
// mant). The argument slice is not retained.
func (z *Float) SetBitsExp(neg bool, mant []Word, exp int64) *Float {
	m := nat(nil).set(nat(mant)).norm()
	if len(m) == 0 {
		if z.prec == 0 {
			z.prec = 64
		}
		z.acc = Exact
		z.form = zero
		z.neg = neg
		return z
	}
	if z.prec == 0 {
		z.prec = uint32(m.bitLen())
	}
	return z.setFromNat(neg, m, exp, 0)
}

// Set sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the precision of x before setting z
// (and rounding will have no effect). Rounding is performed according to
// z's precision and rounding mode and raises flags accordingly; setting
// a NaN raises the NaN flag. Use Copy for a silent, exact copy.
func (z *Float) Set(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z == x {
		return z
	}
	switch x.form {
	case nan:
		return z.setNaN()
	case zero, inf:
		z.acc = Exact
		z.form = x.form
		z.neg = x.neg
		return z
	}
	if z.prec == 0 {
		z.prec = x.prec
	}
	if z.prec == x.prec {
		z.acc = Exact
		z.form = finite
		z.neg = x.neg
		z.exp = x.exp
		z.mant = z.mant.set(x.mant)
		return z
	}
	return z.setFromNat(x.neg, x.mant, x.scale(), 0)
}

// Copy sets z to x, with the same precision, rounding mode, and accuracy
// as x, and returns z. Copy is always exact and raises no flags; x and z
// may be the same.
func (z *Float) Copy(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.prec = x.prec
		z.mode = x.mode
		z.acc = x.acc
		z.form = x.form
		z.neg = x.neg
		if z.form == finite {
			z.exp = x.exp
			z.mant = z.mant.set(x.mant)
		}
	}
	return z
}

// SetPrec sets z's precision to prec and rounds z to that precision.
// Rounding occurs per z's rounding mode; to set the rounding mode in
// conjunction with SetPrec, use SetMode first.
//
// SetPrec(0) maps all finite z to ±0; infinities and NaNs are unchanged.
// If prec > MaxPrec, it is set to MaxPrec.
func (z *Float) SetPrec(prec uint) *Float {
	z.acc = Exact
	if prec == 0 {
		z.prec = 0
		if z.form == finite {
			z.form = zero
		}
		return z
	}
	if prec > MaxPrec {
		prec = MaxPrec
	}
	old := z.prec
	z.prec = uint32(prec)
	if z.form == finite && z.prec != old {
		s := z.scale()
		z.setFromNat(z.neg, z.mant, s, 0)
	}
	return z
}

// SetMode sets z's rounding mode to mode and returns an exact z. z's
// remaining fields are unchanged.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	z.acc = Exact
	return z
}

// SetInf sets z to the infinite Float -Inf if signbit is set, or +Inf
// otherwise, and returns z.
func (z *Float) SetInf(signbit bool) *Float {
	z.acc = Exact
	z.form = inf
	z.neg = signbit
	return z
}

// SetNaN sets z to NaN, raises the NaN flag, and returns z.
func (z *Float) SetNaN() *Float {
	return z.setNaN()
}

// SetZero sets z to -0 if signbit is set, or +0 otherwise, and returns z.
func (z *Float) SetZero(signbit bool) *Float {
	z.acc = Exact
	z.form = zero
	z.neg = signbit
	return z
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have no
// effect).
func (z *Float) SetUint64(x uint64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	if x == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = false
		return z
	}
	return z.setFromNat(false, nat(nil).setUint64(x), 0, 0)
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 64 (and rounding will have no
// effect).
func (z *Float) SetInt64(x int64) *Float {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	if z.prec == 0 {
		z.prec = 64
	}
	if u == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = false
		return z
	}
	return z.setFromNat(x < 0, nat(nil).setUint64(u), 0, 0)
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 53 (and rounding will have no
// effect). SetFloat64(NaN) sets z to NaN and raises the NaN flag.
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = 53
	}
	if math.IsNaN(x) {
		return z.setNaN()
	}
	if math.IsInf(x, 0) {
		return z.SetInf(x < 0)
	}
	if x == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = math.Signbit(x)
		return z
	}
	fmant, exp := math.Frexp(x) // 0.5 <= |fmant| < 1.0
	m := nat(nil).setUint64(1<<63 | math.Float64bits(fmant)<<11)
	return z.setFromNat(x < 0, m, int64(exp)-64, 0)
}

// SetInt sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to the larger of x.BitLen() or 64
// (and rounding will have no effect).
func (z *Float) SetInt(x *big.Int) *Float {
	if z.prec == 0 {
		z.prec = umax32(uint32(x.BitLen()), 64)
	}
	if x.Sign() == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = false
		return z
	}
	return z.setFromNat(x.Sign() < 0, natFromBig(x.Bits()), 0, 0)
}

// SetRat sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to the largest of a.BitLen(),
// b.BitLen(), or 64, with x = a/b.
func (z *Float) SetRat(x *big.Rat) *Float {
	if x.IsInt() {
		return z.SetInt(x.Num())
	}
	if z.prec == 0 {
		z.prec = umax32(umax32(uint32(x.Num().BitLen()), uint32(x.Denom().BitLen())), 64)
	}
	a := natFromBig(x.Num().Bits())
	b := natFromBig(x.Denom().Bits())
	return z.quoBits(x.Num().Sign() < 0, a, 0, b, 0)
}

// SetFloat sets z to the (possibly rounded) value of the big.Float x and
// returns z. If z's precision is 0, it is changed to x.Prec() (or 64 if
// x.Prec() is 0).
func (z *Float) SetFloat(x *big.Float) *Float {
	if z.prec == 0 {
		p := uint32(x.Prec())
		if p == 0 {
			p = 64
		}
		z.prec = p
	}
	if x.IsInf() {
		return z.SetInf(x.Signbit())
	}
	if x.Sign() == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = x.Signbit()
		return z
	}
	var m big.Float
	exp := x.MantExp(&m) // x = m · 2**exp, 0.5 <= |m| < 1.0
	p := x.MinPrec()
	m.SetMantExp(&m, int(p)) // m is now an integer
	var i big.Int
	m.Int(&i)
	return z.setFromNat(x.Signbit(), natFromBig(i.Bits()), int64(exp)-int64(p), 0)
}

// msb64 returns the 64 most significant mantissa bits of x.
func (x *Float) msb64() uint64 {
	i := len(x.mant) - 1
	if i < 0 {
		return 0
	}
	if debugFloat && x.mant[i]&(1<<(_W-1)) == 0 {
		panic("x not normalized")
	}
	if _W == 64 {
		return uint64(x.mant[i])
	}
	// _W == 32
	v := uint64(x.mant[i]) << 32
	if i > 0 {
		v |= uint64(x.mant[i-1])
	}
	return v
}

// Uint64 returns the unsigned integer resulting from truncating x
// towards zero. If 0 <= x <= math.MaxUint64, the result is exact if x is
// an integer and Below otherwise. The result is (0, Above) for x < 0,
// and (math.MaxUint64, Below) for x > math.MaxUint64. For a NaN x the
// result is (0, Exact) and the ERange flag is raised.
func (x *Float) Uint64() (uint64, Accuracy) {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case finite:
		if x.neg {
			return 0, Above
		}
		// 0 < x < +Inf
		if x.exp <= 0 {
			// 0 < x < 1
			return 0, Below
		}
		// 1 <= x < Inf
		if x.exp <= 64 {
			// u = trunc(x) fits into a uint64
			u := x.msb64() >> (64 - uint32(x.exp))
			if x.MinPrec() <= uint(x.exp) {
				return u, Exact
			}
			return u, Below // x truncated
		}
		// x too large
		return math.MaxUint64, Below
	case zero:
		return 0, Exact
	case inf:
		if x.neg {
			return 0, Above
		}
		return math.MaxUint64, Below
	}
	raiseFlags(ERange)
	return 0, Exact
}

// Int64 returns the integer resulting from truncating x towards zero. If
// math.MinInt64 <= x <= math.MaxInt64, the result is exact if x is an
// integer, and Above (x < 0) or Below (x > 0) otherwise. Results out of
// that range saturate to math.MinInt64 or math.MaxInt64. For a NaN x the
// result is (0, Exact) and the ERange flag is raised.
func (x *Float) Int64() (int64, Accuracy) {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case finite:
		acc := makeAcc(x.neg)
		if x.exp <= 0 {
			// 0 < |x| < 1
			return 0, acc
		}
		// 1 <= |x| < +Inf
		if x.exp <= 63 {
			// i = trunc(x) fits into an int64 (excluding math.MinInt64)
			i := int64(x.msb64() >> (64 - uint32(x.exp)))
			if x.neg {
				i = -i
			}
			if x.MinPrec() <= uint(x.exp) {
				return i, Exact
			}
			return i, acc // x truncated
		}
		if x.neg {
			// check for special case x == math.MinInt64 (i.e. x == -(0.5 << 64))
			if x.exp == 64 && x.MinPrec() == 1 {
				acc = Exact
			}
			return math.MinInt64, acc
		}
		return math.MaxInt64, Below
	case zero:
		return 0, Exact
	case inf:
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}
	raiseFlags(ERange)
	return 0, Exact
}

// round64 rounds x's mantissa to p bits (0 < p < 64), to nearest with
// ties to even, and reports the rounded significand, a carry when the
// rounding overflowed into a new leading bit, and the accuracy.
func (x *Float) round64(p uint) (q uint64, carry bool, acc Accuracy) {
	m := x.msb64()
	drop := 64 - p
	q = m >> drop
	rbit := m >> (drop - 1) & 1
	sbit := m & (1<<(drop-1) - 1)
	if all := uint(len(x.mant)) * _W; sbit == 0 && all > 64 {
		sbit = uint64(x.mant.sticky(all - 64))
	}
	if rbit == 0 && sbit == 0 {
		return q, false, Exact
	}
	inc := rbit != 0 && (sbit != 0 || q&1 != 0)
	if inc {
		q++
		if q>>p != 0 {
			q >>= 1
			carry = true
		}
	}
	return q, carry, makeAcc(inc != x.neg)
}

// Float64 returns the float64 value nearest to x, with halfway cases
// rounded to even (regardless of x's rounding mode). If x is too small
// to be represented by a float64 (|x| < math.SmallestNonzeroFloat64),
// the result is (0, Below) or (-0, Above), respectively, depending on
// the sign of x. If x is too large (|x| > math.MaxFloat64), the result
// is (+Inf, Above) or (-Inf, Below). For a NaN x the result is
// (NaN, Exact). Float64 raises no flags.
func (x *Float) Float64() (float64, Accuracy) {
	if debugFloat {
		x.validate()
	}
	switch x.form {
	case finite:
		const (
			fbits = 64                //        float size
			mbits = 52                //        mantissa size (excluding implicit msb)
			ebits = fbits - mbits - 1 //    11  exponent size
			bias  = 1<<(ebits-1) - 1  //  1023  exponent bias
			dmin  = 1 - bias - mbits  // -1074  smallest unbiased exponent (denormal)
			emin  = 1 - bias          // -1022  smallest unbiased exponent (normal)
			emax  = bias              //  1023  largest unbiased exponent (normal)
		)

		e := int64(x.exp) - 1 // exponent for normal mantissa m with 1.0 <= m < 2.0

		// Compute the precision p of the float64 mantissa: fewer bits are
		// available in the denormal range, where the exponent is pinned
		// but the mantissa shifts right.
		p := int64(mbits + 1)
		if e < emin {
			p = e - dmin + 1
			if p < 0 || p == 0 && x.mant.sticky(uint(len(x.mant))*_W-1) == 0 {
				// |x| is at most a quarter, or exactly half, of the
				// smallest denormal: rounds to zero
				if x.neg {
					return math.Copysign(0, -1), Above
				}
				return 0, Below
			}
			if p == 0 {
				// more than half of the smallest denormal: rounds up
				if x.neg {
					return -math.SmallestNonzeroFloat64, Below
				}
				return math.SmallestNonzeroFloat64, Above
			}
		}
		// 0 < p <= 53

		q, carry, acc := x.round64(uint(p))
		if carry {
			e++
		}
		if e > emax {
			// overflow
			if x.neg {
				return math.Inf(-1), Below
			}
			return math.Inf(+1), Above
		}

		var sign uint64
		if x.neg {
			sign = 1 << (fbits - 1)
		}
		var bits uint64
		if e >= emin {
			// normal number; rounding may have promoted a denormal, in
			// which case q is a power of two with p < 53 bits
			mant := q << (mbits + 1 - uint64(p))
			bits = sign | uint64(e+bias)<<mbits | mant&^(1<<mbits)
		} else {
			// denormal number; all mantissa bits are explicit
			if carry {
				q <<= 1
			}
			bits = sign | q
		}
		return math.Float64frombits(bits), acc

	case zero:
		if x.neg {
			return math.Copysign(0, -1), Exact
		}
		return 0, Exact
	case inf:
		if x.neg {
			return math.Inf(-1), Exact
		}
		return math.Inf(+1), Exact
	}
	return math.NaN(), Exact
}

func natToBig(m nat) []big.Word {
	w := make([]big.Word, len(m))
	for i, d := range m {
		w[i] = big.Word(d)
	}
	return w
}

func natFromBig(w []big.Word) nat {
	m := make(nat, len(w))
	for i, d := range w {
		m[i] = Word(d)
	}
	return m.norm()
}

// Int returns the result of truncating x towards zero; or nil if x is an
// infinity or NaN (raising ERange for NaN). The result is Exact if
// x.IsInt(); otherwise it is Below for x > 0, and Above for x < 0. If a
// non-nil *big.Int argument z is provided, Int stores the result in z
// instead of allocating a new big.Int.
func (x *Float) Int(z *big.Int) (*big.Int, Accuracy) {
	if debugFloat {
		x.validate()
	}
	if z == nil && x.form <= finite {
		z = new(big.Int)
	}
	switch x.form {
	case finite:
		acc := makeAcc(x.neg)
		if x.exp <= 0 {
			// 0 < |x| < 1
			return z.SetInt64(0), acc
		}
		// 1 <= |x| < +Inf
		allBits := uint(len(x.mant)) * _W
		exp := uint(x.exp)
		if x.MinPrec() <= exp {
			acc = Exact
		}
		var t nat
		if exp >= allBits {
			t = t.shl(x.mant, exp-allBits)
		} else {
			t = t.shr(x.mant, allBits-exp)
		}
		z.SetBits(natToBig(t))
		if x.neg {
			z.Neg(z)
		}
		return z, acc
	case zero:
		return z.SetInt64(0), Exact
	case inf:
		return nil, makeAcc(x.neg)
	}
	raiseFlags(ERange)
	return nil, Exact
}

// IsInt reports whether x is an integer. ±Inf and NaN are not integers.
func (x *Float) IsInt() bool {
	if debugFloat {
		x.validate()
	}
	if x.form != finite {
		return x.form == zero
	}
	// x.form == finite
	if x.exp <= 0 {
		return false
	}
	return x.prec <= uint32(x.exp) || x.MinPrec() <= uint(x.exp)
}

// Rat returns the rational number corresponding to x; or nil if x is an
// infinity or NaN (raising ERange for NaN). The result is always Exact
// for a finite x. If a non-nil *big.Rat argument z is provided, Rat
// stores the result in z instead of allocating a new big.Rat.
func (x *Float) Rat(z *big.Rat) (*big.Rat, Accuracy) {
	if debugFloat {
		x.validate()
	}
	if z == nil && x.form <= finite {
		z = new(big.Rat)
	}
	switch x.form {
	case finite:
		num := new(big.Int).SetBits(natToBig(x.mant))
		if x.neg {
			num.Neg(num)
		}
		s := x.scale()
		if s >= 0 {
			return z.SetInt(num.Lsh(num, uint(s))), Exact
		}
		den := new(big.Int).Lsh(big.NewInt(1), uint(-s))
		return z.SetFrac(num, den), Exact
	case zero:
		return z.SetInt64(0), Exact
	case inf:
		return nil, makeAcc(x.neg)
	}
	raiseFlags(ERange)
	return nil, Exact
}

// Float returns x converted to a *big.Float, rounded to nearest-even at
// x's own precision. big.Float has no NaNs: for a NaN x, Float returns
// nil and raises the ERange flag. If a non-nil argument z is provided,
// the result is rounded to z's precision and mode and stored in z.
func (x *Float) Float(z *big.Float) (*big.Float, Accuracy) {
	if debugFloat {
		x.validate()
	}
	if z == nil && x.form != nan {
		z = new(big.Float).SetPrec(uint(x.prec))
	}
	switch x.form {
	case finite:
		i := new(big.Int).SetBits(natToBig(x.mant))
		if x.neg {
			i.Neg(i)
		}
		z.SetInt(i)
		z.SetMantExp(z, int(x.scale()))
		return z, Accuracy(z.Acc())
	case zero:
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
		return z, Exact
	case inf:
		return z.SetInf(x.neg), Exact
	}
	raiseFlags(ERange)
	return nil, Exact
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z. Neg(NaN) is NaN.
func (z *Float) Neg(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z.prec == 0 {
		z.prec = x.prec
	}
	switch x.form {
	case nan:
		return z.setNaN()
	case zero, inf:
		z.acc = Exact
		z.form = x.form
		z.neg = !x.neg
		return z
	}
	return z.setFromNat(!x.neg, x.mant, x.scale(), 0)
}

// Abs sets z to the (possibly rounded) value of |x| (the absolute value
// of x) and returns z. Abs(NaN) is NaN.
func (z *Float) Abs(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z.prec == 0 {
		z.prec = x.prec
	}
	switch x.form {
	case nan:
		return z.setNaN()
	case zero, inf:
		z.acc = Exact
		z.form = x.form
		z.neg = false
		return z
	}
	return z.setFromNat(false, x.mant, x.scale(), 0)
}

// addBits sets z to the rounded value of
// (-1)^neg1·m1·2^s1 + (-1)^neg2·m2·2^s2.
// Both mantissas must be normalized and nonzero.
func (z *Float) addBits(neg1 bool, m1 nat, s1 int64, neg2 bool, m2 nat, s2 int64) *Float {
	e1 := s1 + int64(m1.bitLen())
	e2 := s2 + int64(m2.bitLen())
	if e1 < e2 {
		neg1, m1, s1, e1, neg2, m2, s2, e2 = neg2, m2, s2, e2, neg1, m1, s1, e1
	}

	// If the operands are so far apart that the smaller one cannot affect
	// the rounded digits of the larger, collapse it into the sticky bit
	// instead of materializing the full alignment shift. The larger
	// operand gets g guard bits so that the round bit stays genuine; for
	// a subtraction, borrowing one ulp from the guard bits accounts for
	// the (arbitrarily small) decrease in magnitude.
	window := max64(int64(m1.bitLen()), int64(z.prec)) + 4
	if e2 <= e1-window {
		g := max64(2, int64(z.prec)+3-int64(m1.bitLen()))
		var t nat
		t = t.shl(m1, uint(g))
		if neg1 != neg2 {
			t = t.sub(t, natOne)
		}
		return z.setFromNat(neg1, t, s1-g, 1)
	}

	smin := min64(s1, s2)
	t1 := nat(nil).shl(m1, uint(s1-smin))
	t2 := nat(nil).shl(m2, uint(s2-smin))
	if neg1 == neg2 {
		return z.setFromNat(neg1, t1.add(t1, t2), smin, 0)
	}
	switch t1.cmp(t2) {
	case 0:
		// exact cancellation
		z.acc = Exact
		z.form = zero
		z.neg = z.mode == ToNegativeInf
		return z
	case -1:
		t1, t2 = t2, t1
		neg1 = neg2
	}
	return z.setFromNat(neg1, t1.sub(t1, t2), smin, 0)
}

// quoBits sets z to the rounded quotient of a·2^sa by b·2^sb, with sign
// neg. Both mantissas must be normalized and nonzero.
func (z *Float) quoBits(neg bool, a nat, sa int64, b nat, sb int64) *Float {
	// Scale the dividend so that the quotient carries at least prec+2
	// significant bits; a nonzero remainder then feeds the sticky bit.
	t := int64(z.prec) + 2 + int64(b.bitLen()) - int64(a.bitLen())
	if t < 0 {
		t = 0
	}
	u := nat(nil).shl(a, uint(t))
	q, r := nat(nil).div(nil, u, b)
	var sbit uint
	if len(r) > 0 {
		sbit = 1
	}
	return z.setFromNat(neg, q, sa-sb-t, sbit)
}

// Add sets z to the rounded sum x+y and returns z. If z's precision is 0,
// it is changed to the larger of x's or y's precision before the
// operation.
//
// The IEEE special cases apply: an infinite operand dominates a finite
// one, Inf + Inf with opposite signs is NaN, and the sum of two zeros of
// opposite signs is +0 except in the ToNegativeInf mode, where it is -0.
// A NaN operand makes the result NaN.
func (z *Float) Add(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	if x.form == nan || y.form == nan {
		return z.setNaN()
	}
	if x.form == inf || y.form == inf {
		if x.form == inf && y.form == inf && x.neg != y.neg {
			return z.setNaN() // Inf - Inf
		}
		neg := x.neg
		if x.form != inf {
			neg = y.neg
		}
		z.acc = Exact
		z.form = inf
		z.neg = neg
		return z
	}
	if x.form == zero || y.form == zero {
		if x.form == zero && y.form == zero {
			z.acc = Exact
			z.form = zero
			if x.neg == y.neg {
				z.neg = x.neg
			} else {
				z.neg = z.mode == ToNegativeInf
			}
			return z
		}
		if x.form == zero {
			x = y
		}
		return z.setFromNat(x.neg, x.mant, x.scale(), 0)
	}
	return z.addBits(x.neg, x.mant, x.scale(), y.neg, y.mant, y.scale())
}

// Sub sets z to the rounded difference x-y and returns z. Precision,
// rounding, and special cases are as for Add.
func (z *Float) Sub(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	if x.form == nan || y.form == nan {
		return z.setNaN()
	}
	if x.form == inf || y.form == inf {
		if x.form == inf && y.form == inf && x.neg == y.neg {
			return z.setNaN() // Inf - Inf
		}
		neg := x.neg
		if x.form != inf {
			neg = !y.neg
		}
		z.acc = Exact
		z.form = inf
		z.neg = neg
		return z
	}
	if x.form == zero || y.form == zero {
		if x.form == zero && y.form == zero {
			z.acc = Exact
			z.form = zero
			if x.neg != y.neg {
				z.neg = x.neg
			} else {
				z.neg = z.mode == ToNegativeInf
			}
			return z
		}
		if x.form == zero {
			return z.setFromNat(!y.neg, y.mant, y.scale(), 0)
		}
		return z.setFromNat(x.neg, x.mant, x.scale(), 0)
	}
	return z.addBits(x.neg, x.mant, x.scale(), !y.neg, y.mant, y.scale())
}

// Mul sets z to the rounded product x×y and returns z. If z's precision
// is 0, it is changed to the larger of x's or y's precision before the
// operation.
//
// Mul reports the product of a zero and an infinity as NaN; other
// products involving zeros and infinities follow the sign rule
// Signbit(z) = Signbit(x) != Signbit(y). A NaN operand makes the result
// NaN.
func (z *Float) Mul(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	if x.form == nan || y.form == nan {
		return z.setNaN()
	}
	neg := x.neg != y.neg
	if x.form == inf || y.form == inf {
		if x.form == zero || y.form == zero {
			return z.setNaN() // 0 × Inf
		}
		z.acc = Exact
		z.form = inf
		z.neg = neg
		return z
	}
	if x.form == zero || y.form == zero {
		z.acc = Exact
		z.form = zero
		z.neg = neg
		return z
	}
	var m nat
	m = m.mul(x.mant, y.mant)
	return z.setFromNat(neg, m, x.scale()+y.scale(), 0)
}

// Quo sets z to the rounded quotient x/y and returns z. If z's precision
// is 0, it is changed to the larger of x's or y's precision before the
// operation.
//
// Quo reports 0/0 and Inf/Inf as NaN. Dividing a nonzero finite x by a
// zero yields an infinity of the appropriate sign and raises the
// DivByZero flag. A NaN operand makes the result NaN.
func (z *Float) Quo(x, y *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}
	if x.form == nan || y.form == nan {
		return z.setNaN()
	}
	neg := x.neg != y.neg
	if x.form == inf {
		if y.form == inf {
			return z.setNaN() // Inf / Inf
		}
		z.acc = Exact
		z.form = inf
		z.neg = neg
		return z
	}
	if y.form == inf {
		z.acc = Exact
		z.form = zero
		z.neg = neg
		return z
	}
	if y.form == zero {
		if x.form == zero {
			return z.setNaN() // 0 / 0
		}
		raiseFlags(DivByZero)
		z.acc = Exact
		z.form = inf
		z.neg = neg
		return z
	}
	if x.form == zero {
		z.acc = Exact
		z.form = zero
		z.neg = neg
		return z
	}
	return z.quoBits(neg, x.mant, x.scale(), y.mant, y.scale())
}

// FMA sets z to the rounded value of x×y+u, computed with no intermediate
// rounding of the product, and returns z. If z's precision is 0, it is
// changed to the largest of the operands' precisions before the
// operation. The special cases of Mul and Add apply, evaluated in that
// order.
func (z *Float) FMA(x, y, u *Float) *Float {
	if debugFloat {
		x.validate()
		y.validate()
		u.validate()
	}
	if z.prec == 0 {
		z.prec = umax32(umax32(x.prec, y.prec), u.prec)
	}
	if x.form == nan || y.form == nan || u.form == nan {
		return z.setNaN()
	}
	negp := x.neg != y.neg
	if x.form == inf || y.form == inf {
		if x.form == zero || y.form == zero {
			return z.setNaN() // 0 × Inf
		}
		if u.form == inf && u.neg != negp {
			return z.setNaN() // Inf - Inf
		}
		z.acc = Exact
		z.form = inf
		z.neg = negp
		return z
	}
	// x×y is finite
	if u.form == inf {
		z.acc = Exact
		z.form = inf
		z.neg = u.neg
		return z
	}
	if x.form == zero || y.form == zero {
		if u.form == zero {
			z.acc = Exact
			z.form = zero
			if negp == u.neg {
				z.neg = negp
			} else {
				z.neg = z.mode == ToNegativeInf
			}
			return z
		}
		return z.setFromNat(u.neg, u.mant, u.scale(), 0)
	}
	var p nat
	p = p.mul(x.mant, y.mant)
	sp := x.scale() + y.scale()
	if u.form == zero {
		return z.setFromNat(negp, p, sp, 0)
	}
	return z.addBits(negp, p, sp, u.neg, u.mant, u.scale())
}

// ucmp compares |x| and |y| for finite nonzero x, y.
func (x *Float) ucmp(y *Float) int {
	if debugFloat {
		if x.form != finite || y.form != finite {
			panic("ucmp called with zero or non-finite operand")
		}
	}
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return +1
		}
	}
	return 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
func (x *Float) ord() int {
	var m int
	switch x.form {
	case zero:
		return 0
	case finite:
		m = 1
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// NaNs are unordered: if either operand is a NaN, Cmp returns 0 and
// raises the ERange flag.
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		raiseFlags(ERange)
		return 0
	}
	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}
	return 0
}

// Equal reports whether x and y have identical representations: the
// same precision, form, sign, exponent and bit-for-bit mantissa.
//
// Equal is a structural comparison, not a proxy for numeric equality:
// two Floats of equal value but different precisions are not Equal, +0
// and -0 are not Equal, and two NaNs are Equal (while Cmp treats them
// as unordered). Use Cmp to compare values.
func (x *Float) Equal(y *Float) bool {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form != y.form || x.neg != y.neg || x.prec != y.prec {
		return false
	}
	if x.form == finite && (x.exp != y.exp || x.mant.cmp(y.mant) != 0) {
		return false
	}
	return true
}

// Hash returns a 64 bit hash of x's representation, consistent with
// Equal: x.Equal(y) implies x.Hash() == y.Hash(). Like Equal it is
// structural, so Floats that merely compare equal with Cmp may hash
// differently. The hash depends on the platform word size.
func (x *Float) Hash() uint64 {
	if debugFloat {
		x.validate()
	}
	// FNV-1a over the raw representation
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	b := uint64(x.form) << 1
	if x.neg {
		b |= 1
	}
	h = (h ^ b) * prime64
	h = (h ^ uint64(x.prec)) * prime64
	if x.form == finite {
		h = (h ^ uint64(uint32(x.exp))) * prime64
		for _, w := range x.mant {
			h = (h ^ uint64(w)) * prime64
		}
	}
	return h
}

// CmpAbs compares |x| and |y| and returns -1, 0, or +1. NaN operands
// behave as in Cmp.
func (x *Float) CmpAbs(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		raiseFlags(ERange)
		return 0
	}
	switch {
	case x.form == inf && y.form == inf:
		return 0
	case x.form == inf:
		return +1
	case y.form == inf:
		return -1
	case x.form == zero && y.form == zero:
		return 0
	case x.form == zero:
		return -1
	case y.form == zero:
		return +1
	}
	return x.ucmp(y)
}
