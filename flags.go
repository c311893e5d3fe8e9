// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the package-wide sticky status flags, the
// configurable exponent range and the default precision and rounding
// mode. These mirror the global state of a hardware FPU: flags are set
// by operations and stay set until explicitly cleared.
//
// Threading contract: the register below is a single process-wide
// resource guarded by one mutex. Concurrent goroutines performing
// arithmetic will interleave flag updates; a goroutine that needs an
// isolated flag scope should either serialize around
// SaveFlags/RestoreFlags or use a context.Context from the context
// subpackage.

package mpfloat

import (
	"errors"
	"sync"
)

// Flags is a bit set of sticky status flags. Flags raised by an
// operation accumulate in a package-wide register and are never cleared
// implicitly.
type Flags uint8

// The individual status flags.
const (
	Underflow Flags = 1 << iota // result was too small in magnitude for the exponent range
	Overflow                    // result was too large in magnitude for the exponent range
	DivByZero                   // exact infinite result from finite operands
	NaN                         // a NaN result was produced
	Inexact                     // result had to be rounded
	ERange                      // range error in a non-rounding operation (e.g. comparing with a NaN)

	AllFlags = Underflow | Overflow | DivByZero | NaN | Inexact | ERange
)

var flagNames = [...]string{"Underflow", "Overflow", "DivByZero", "NaN", "Inexact", "ERange"}

func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	var s string
	for i, name := range flagNames {
		if f&(1<<uint(i)) != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	return s
}

// ErrInvalidPrec is returned when a requested precision is zero or
// larger than MaxPrec.
var ErrInvalidPrec = errors.New("mpfloat: invalid precision")

// ErrExpRange is returned by SetExpRange for bounds outside
// [MinExp, MaxExp] or with emin > emax.
var ErrExpRange = errors.New("mpfloat: invalid exponent range")

// register is the process-wide mutable state: sticky flags, exponent
// range bounds, and the default precision and rounding mode used by
// NewDefault and the context package.
var register = struct {
	sync.Mutex
	flags      Flags
	emin, emax int32
	prec       uint32
	mode       RoundingMode
}{
	emin: MinExp,
	emax: MaxExp,
	prec: 53,
	mode: ToNearestEven,
}

// raiseFlags is the internal, always-valid version of RaiseFlags.
func raiseFlags(f Flags) {
	register.Lock()
	register.flags |= f
	register.Unlock()
}

// RaiseFlags sets the given flags in the package flag register.
func RaiseFlags(f Flags) { raiseFlags(f) }

// ClearFlags clears the given flags in the package flag register.
func ClearFlags(f Flags) {
	register.Lock()
	register.flags &^= f
	register.Unlock()
}

// TestFlags returns the subset of f currently raised in the package
// flag register.
func TestFlags(f Flags) Flags {
	register.Lock()
	defer register.Unlock()
	return register.flags & f
}

// SaveFlags returns the current contents of the package flag register.
// Together with RestoreFlags it allows nesting of flag scopes:
//
//	saved := mpfloat.SaveFlags()
//	mpfloat.ClearFlags(mpfloat.AllFlags)
//	// ... do work, inspect flags ...
//	mpfloat.RestoreFlags(saved)
func SaveFlags() Flags {
	register.Lock()
	defer register.Unlock()
	return register.flags
}

// RestoreFlags sets the package flag register to exactly f.
func RestoreFlags(f Flags) {
	register.Lock()
	register.flags = f
	register.Unlock()
}

// ExpRange returns the current exponent range bounds. A finite nonzero
// Float x always satisfies emin <= x.MantExp(nil) <= emax.
func ExpRange() (emin, emax int) {
	register.Lock()
	defer register.Unlock()
	return int(register.emin), int(register.emax)
}

// SetExpRange sets the exponent range bounds used by all subsequent
// operations. Legal bounds are MinExp <= emin <= emax <= MaxExp.
// Already computed values are not revalidated against the new range.
func SetExpRange(emin, emax int) error {
	if emin < MinExp || emax > MaxExp || emin > emax {
		return ErrExpRange
	}
	register.Lock()
	register.emin, register.emax = int32(emin), int32(emax)
	register.Unlock()
	return nil
}

func expRange() (emin, emax int64) {
	register.Lock()
	defer register.Unlock()
	return int64(register.emin), int64(register.emax)
}

// DefaultPrec returns the default mantissa precision, in bits, used by
// NewDefault. The initial value is 53, the precision of a float64.
func DefaultPrec() uint {
	register.Lock()
	defer register.Unlock()
	return uint(register.prec)
}

// SetDefaultPrec sets the default mantissa precision used by NewDefault.
// It returns ErrInvalidPrec if prec is zero or larger than MaxPrec.
func SetDefaultPrec(prec uint) error {
	if prec == 0 || prec > MaxPrec {
		return ErrInvalidPrec
	}
	register.Lock()
	register.prec = uint32(prec)
	register.Unlock()
	return nil
}

// DefaultMode returns the default rounding mode used by NewDefault.
func DefaultMode() RoundingMode {
	register.Lock()
	defer register.Unlock()
	return register.mode
}

// SetDefaultMode sets the default rounding mode used by NewDefault.
func SetDefaultMode(mode RoundingMode) {
	register.Lock()
	register.mode = mode
	register.Unlock()
}

// New returns a new Float with the given precision, initialized to NaN
// and using the default rounding mode. It returns ErrInvalidPrec if
// prec is zero or larger than MaxPrec.
//
// The NaN initial value makes a use-before-set bug surface as a NaN
// result instead of a silent zero; the zero Float value, in contrast,
// is a ready-to-use 0.0 for idiomatic in-struct use.
func New(prec uint) (*Float, error) {
	if prec == 0 || prec > MaxPrec {
		return nil, ErrInvalidPrec
	}
	return &Float{form: nan, prec: uint32(prec), mode: DefaultMode()}, nil
}

// NewDefault returns a new Float initialized to NaN, with the default
// precision and rounding mode.
func NewDefault() *Float {
	register.Lock()
	prec, mode := register.prec, register.mode
	register.Unlock()
	return &Float{form: nan, prec: prec, mode: mode}
}
