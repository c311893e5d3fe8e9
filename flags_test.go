// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsRegister(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	ClearFlags(AllFlags)
	assert.Equal(t, Flags(0), TestFlags(AllFlags))

	RaiseFlags(Inexact)
	assert.Equal(t, Inexact, TestFlags(AllFlags))

	// raising is cumulative
	RaiseFlags(Overflow | Underflow)
	assert.Equal(t, Inexact|Overflow|Underflow, TestFlags(AllFlags))

	// TestFlags masks
	assert.Equal(t, Overflow, TestFlags(Overflow|DivByZero))

	// clearing is selective
	ClearFlags(Overflow)
	assert.Equal(t, Inexact|Underflow, TestFlags(AllFlags))

	// save/restore nests flag scopes
	saved := SaveFlags()
	ClearFlags(AllFlags)
	RaiseFlags(NaN)
	assert.Equal(t, NaN, TestFlags(AllFlags))
	RestoreFlags(saved)
	assert.Equal(t, Inexact|Underflow, TestFlags(AllFlags))
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "None", Flags(0).String())
	assert.Equal(t, "Inexact", Inexact.String())
	assert.Equal(t, "Overflow|Inexact", (Overflow | Inexact).String())
	assert.Equal(t, "Underflow|Overflow|DivByZero|NaN|Inexact|ERange", AllFlags.String())
}

func TestSetExpRange(t *testing.T) {
	defer func() {
		require.NoError(t, SetExpRange(MinExp, MaxExp))
	}()

	require.NoError(t, SetExpRange(-100, 100))
	emin, emax := ExpRange()
	assert.Equal(t, -100, emin)
	assert.Equal(t, 100, emax)

	assert.Error(t, SetExpRange(100, -100))

	// a failed call leaves the range untouched
	emin, emax = ExpRange()
	assert.Equal(t, -100, emin)
	assert.Equal(t, 100, emax)
}

func TestDefaultPrecMode(t *testing.T) {
	oldPrec, oldMode := DefaultPrec(), DefaultMode()
	defer func() {
		require.NoError(t, SetDefaultPrec(oldPrec))
		SetDefaultMode(oldMode)
	}()

	require.NoError(t, SetDefaultPrec(200))
	assert.Equal(t, uint(200), DefaultPrec())

	SetDefaultMode(ToZero)
	assert.Equal(t, ToZero, DefaultMode())

	z := NewDefault()
	assert.Equal(t, uint(200), z.Prec())
	assert.Equal(t, ToZero, z.Mode())
	assert.True(t, z.IsNaN())

	assert.Error(t, SetDefaultPrec(0))
	assert.Equal(t, uint(200), DefaultPrec())
}
