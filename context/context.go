// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *mpfloat.Float
//
// create a new mpfloat.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to a function of other float arguments
// like:
//
//	func (c *Context) UnaryOp(z, x *mpfloat.Float) *mpfloat.Float
//	func (c *Context) BinaryOp(z, x, y *mpfloat.Float) *mpfloat.Float
//
// set z to the result of z.Op(args), rounded using c's precision and
// rounding mode, and return z.
//
// A Context observes the status flags raised by its operations: each
// operation runs in its own flag scope, and the flags it raises
// accumulate in the context (and remain raised in the package register)
// where they can be inspected with (*Context).Flags without interference
// from other computations.
//
// A Context also traps flags: if an operation raises a flag present in
// the context's trap set, the context records an error. Further
// operations with the context are no-ops (they simply return the
// receiver z) until (*Context).Err is called to check for the error and
// clear it. This gives the effect of trapped IEEE-754 exceptions without
// panics: the error surfaces at the end of a computation instead of
// poisoning every intermediate call site with error handling.
//
// Contexts serialize their operations' access to the package flag
// register; operations of a single Context must not be called
// concurrently with each other or with flag register manipulation from
// other goroutines.
package context

import (
	"math/big"

	"github.com/db47h/mpfloat"
)

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision, status flags and error handling.
type Context struct {
	prec  uint32
	mode  mpfloat.RoundingMode
	flags mpfloat.Flags
	traps mpfloat.Flags
	err   error
}

// A TrapError is the error recorded by a Context when an operation
// raises one of the context's trapped flags.
type TrapError struct {
	// Flags is the set of raised flags that are also in the trap set.
	Flags mpfloat.Flags
}

func (e *TrapError) Error() string {
	return "mpfloat/context: trapped status flags: " + e.Flags.String()
}

// New creates a new context with the given precision and rounding mode.
// If prec is 0, it is set to the package default precision. The new
// context has no trapped flags.
func New(prec uint, mode mpfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() mpfloat.RoundingMode {
	return c.mode
}

// Prec returns the mantissa precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode mpfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to the
// package default precision.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = mpfloat.DefaultPrec()
	}
	// general case
	if prec > mpfloat.MaxPrec {
		prec = mpfloat.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// Traps returns the set of flags trapped by c.
func (c *Context) Traps() mpfloat.Flags {
	return c.traps
}

// SetTraps sets the flags trapped by c and returns c. An operation that
// raises any flag in traps records a *TrapError in c.
func (c *Context) SetTraps(traps mpfloat.Flags) *Context {
	c.traps = traps
	return c
}

// Flags returns the flags raised by c's operations since the last call
// to ClearFlags.
func (c *Context) Flags() mpfloat.Flags {
	return c.flags
}

// ClearFlags clears the given accumulated flags in c. The package flag
// register is not affected.
func (c *Context) ClearFlags(f mpfloat.Flags) *Context {
	c.flags &^= f
	return c
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// observe opens a fresh flag scope in the package register and returns a
// function that folds the flags raised within the scope back into both
// the register and c, trapping them as configured.
func (c *Context) observe() func() {
	saved := mpfloat.SaveFlags()
	mpfloat.ClearFlags(mpfloat.AllFlags)
	return func() {
		raised := mpfloat.TestFlags(mpfloat.AllFlags)
		mpfloat.RestoreFlags(saved | raised)
		c.flags |= raised
		if t := raised & c.traps; t != 0 && c.err == nil {
			c.err = &TrapError{Flags: t}
		}
	}
}

// apply applies c's precision and rounding mode to z and returns z. z's
// value is not preserved.
func (c *Context) apply(z *mpfloat.Float) *mpfloat.Float {
	z.SetMode(c.mode)
	if z.Prec() != uint(c.prec) {
		z.SetPrec(0).SetPrec(uint(c.prec))
	}
	return z
}

// New returns a new mpfloat.Float with value 0, precision and rounding
// mode set to c's precision and rounding mode.
func (c *Context) New() *mpfloat.Float {
	return new(mpfloat.Float).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt returns a new *mpfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewInt(x *big.Int) *mpfloat.Float {
	if c.err != nil {
		return c.New()
	}
	defer c.observe()()
	return c.New().SetInt(x)
}

// NewInt64 returns a new *mpfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewInt64(x int64) *mpfloat.Float {
	if c.err != nil {
		return c.New()
	}
	defer c.observe()()
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *mpfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewUint64(x uint64) *mpfloat.Float {
	if c.err != nil {
		return c.New()
	}
	defer c.observe()()
	return c.New().SetUint64(x)
}

// NewFloat returns a new *mpfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewFloat(x *big.Float) *mpfloat.Float {
	if c.err != nil {
		return c.New()
	}
	defer c.observe()()
	return c.New().SetFloat(x)
}

// NewFloat64 returns a new *mpfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewFloat64(x float64) *mpfloat.Float {
	if c.err != nil {
		return c.New()
	}
	defer c.observe()()
	return c.New().SetFloat64(x)
}

// NewRat returns a new *mpfloat.Float set to the (possibly rounded)
// value of x.
func (c *Context) NewRat(x *big.Rat) *mpfloat.Float {
	if c.err != nil {
		return c.New()
	}
	defer c.observe()()
	return c.New().SetRat(x)
}

// NewString returns a new Float with the value of s and a boolean
// indicating success. s must be a floating-point number of the same
// format as accepted by (*mpfloat.Float).Parse, with base argument 0.
// The entire string (not just a prefix) must be valid for success. If
// the operation failed, the value of f is undefined but the returned
// value is nil. f's precision and rounding mode are set to c's precision
// and rounding mode.
func (c *Context) NewString(s string) (f *mpfloat.Float, success bool) {
	if c.err != nil {
		return nil, false
	}
	defer c.observe()()
	return c.New().SetString(s)
}

// ParseFloat is like f.Parse(s, base) with f set to c's precision and
// rounding mode.
func (c *Context) ParseFloat(s string, base int) (f *mpfloat.Float, b int, err error) {
	if c.err != nil {
		return nil, 0, c.err
	}
	defer c.observe()()
	return mpfloat.ParseFloat(s, base, uint(c.prec), c.mode)
}

// Round sets z to the value of x rounded using c's precision and
// rounding mode, and returns z.
func (c *Context) Round(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	z.Copy(x).SetMode(c.mode)
	return z.SetPrec(uint(c.prec))
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Add(x, y)
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Sub(x, y)
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Mul(x, y)
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Quo(x, y)
}

// FMA sets z to x × y + u, computed with only one rounding. That is, FMA
// performs the fused multiply-add of x, y, and u.
func (c *Context) FMA(z, x, y, u *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).FMA(x, y, u)
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Sqrt(x)
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Neg(x)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of
// x) and returns z.
func (c *Context) Abs(z, x *mpfloat.Float) *mpfloat.Float {
	if c.err != nil {
		return z
	}
	defer c.observe()()
	return c.apply(z).Abs(x)
}
