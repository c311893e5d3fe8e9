// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"math/rand"
	"strconv"
	"testing"
	"time"
)

func TestFloatSetString(t *testing.T) {
	for _, test := range []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"-0", 0}, // sign checked separately below
		{"1.5", 1.5},
		{"-1.5", -1.5},
		{"0.125e2", 12.5},
		{"1_000.5", 1000.5},
		{"0x1p-2", 0.25},
		{"0x1.8p1", 3},
		{"0b101", 5},
		{"0o17", 15},
		{"12.5e-1", 1.25},
		{"+Inf", 0}, // form checked separately below
	} {
		x, ok := new(Float).SetPrec(64).SetString(test.s)
		if !ok {
			t.Errorf("SetString(%q) failed", test.s)
			continue
		}
		if x.IsInf() || x.IsNaN() {
			continue
		}
		if f, _ := x.Float64(); f != test.want {
			t.Errorf("SetString(%q) = %g, want %g", test.s, f, test.want)
		}
	}

	if x, ok := new(Float).SetString("-0"); !ok || !x.IsZero() || !x.Signbit() {
		t.Error("SetString(-0) did not produce a negative zero")
	}
	if x, ok := new(Float).SetString("-Inf"); !ok || !x.IsInf() || !x.Signbit() {
		t.Error("SetString(-Inf) did not produce a negative infinity")
	}

	for _, s := range []string{"", "+", "1e", "0x", "1.2.3", "0b2", "1e1.5", "abc"} {
		if _, ok := new(Float).SetString(s); ok {
			t.Errorf("SetString(%q) did not fail", s)
		}
	}
}

func TestFloatParse(t *testing.T) {
	for _, test := range []struct {
		s    string
		base int
		want float64
		b    int
	}{
		{"10.5", 10, 10.5, 10},
		{"10.1", 2, 2.5, 2},
		{"ff", 16, 255, 16},
		{"zz", 36, 36*35 + 35, 36},
		{"Z", 62, 61, 62},
		{"10@2", 10, 1000, 10},
		{"1@-1", 2, 0.5, 2},
		{"ff@1", 16, 255 * 16, 16},
		{"101p3", 2, 40, 2},
	} {
		x, b, err := new(Float).SetPrec(64).Parse(test.s, test.base)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", test.s, test.base, err)
			continue
		}
		if b != test.b {
			t.Errorf("Parse(%q, %d) base = %d, want %d", test.s, test.base, b, test.b)
		}
		if f, _ := x.Float64(); f != test.want {
			t.Errorf("Parse(%q, %d) = %g, want %g", test.s, test.base, f, test.want)
		}
	}

	// trailing garbage is an error
	if _, _, err := new(Float).Parse("1.5x", 10); err == nil {
		t.Error("Parse(1.5x) did not fail")
	}
}

func TestFloatParseFlags(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	// an exact parse raises no flags
	ClearFlags(AllFlags)
	x, _, err := new(Float).SetPrec(10).Parse("1.5", 10)
	if err != nil {
		t.Fatal(err)
	}
	if f := TestFlags(AllFlags); f != 0 {
		t.Errorf("exact parse raised %s", f)
	}
	if x.Acc() != Exact {
		t.Errorf("exact parse acc = %s", x.Acc())
	}

	// a rounded parse raises Inexact and sets Acc
	ClearFlags(AllFlags)
	x, _, err = new(Float).SetPrec(10).Parse("0.1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if f := TestFlags(AllFlags); f != Inexact {
		t.Errorf("rounded parse raised %s, want Inexact", f)
	}
	if x.Acc() == Exact {
		t.Error("rounded parse reported Exact")
	}

	// parsing a NaN raises the NaN flag
	ClearFlags(AllFlags)
	if _, _, err = new(Float).Parse("NaN", 10); err != nil {
		t.Fatal(err)
	}
	if f := TestFlags(AllFlags); f != NaN {
		t.Errorf("NaN parse raised %s, want NaN", f)
	}
}

// TestFloatBaseRoundTrip checks that the shortest form produced by
// AppendBase reads back to the same value, in every base.
func TestFloatBaseRoundTrip(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	for _, base := range []int{2, 3, 7, 10, 16, 36, 37, 61, 62} {
		t.Run(strconv.Itoa(base), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				prec := uint(rnd.Intn(200) + 1)
				x := new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 40))

				s := string(x.AppendBase(nil, base, -1))
				y, _, err := ParseFloat(s, base, prec, ToNearestEven)
				if err != nil {
					t.Fatalf("SEED %x: Parse(%q, %d): %v", seed, s, base, err)
				}
				if y.Cmp(x) != 0 || y.Signbit() != x.Signbit() {
					t.Fatalf("SEED %x: base %d round trip of %g through %q gave %g",
						seed, base, x, s, y)
				}
			}
		})
	}
}

// TestFloatBaseDigits checks a few fixed digit expansions in non-decimal
// bases.
func TestFloatBaseDigits(t *testing.T) {
	for _, test := range []struct {
		x    string
		base int
		prec int
		want string
	}{
		{"255", 16, 2, "f.f@+01"},
		{"0.5", 2, 1, "1@-01"},
		{"3", 2, 2, "1.1@+01"},
		{"61", 62, 1, "Z@+00"},
		{"0.25", 4, 1, "1@-01"},
		{"10", 10, 3, "1@+01"}, // exact in one digit: no padding
		{"-2.5", 10, 2, "-2.5@+00"},
	} {
		x, _, err := new(Float).SetPrec(64).Parse(test.x, 10)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(x.AppendBase(nil, test.base, test.prec)); got != test.want {
			t.Errorf("AppendBase(%s, base %d, prec %d) = %q, want %q",
				test.x, test.base, test.prec, got, test.want)
		}
	}
}

func TestParseFloatRounding(t *testing.T) {
	// 0.1 is not a binary fraction: directed parses bracket the value
	lo, _, err := ParseFloat("0.1", 10, 24, ToNegativeInf)
	if err != nil {
		t.Fatal(err)
	}
	hi, _, err := ParseFloat("0.1", 10, 24, ToPositiveInf)
	if err != nil {
		t.Fatal(err)
	}
	if lo.Cmp(hi) >= 0 {
		t.Fatalf("directed parses of 0.1: lo %g >= hi %g", lo, hi)
	}
	if lo.Acc() != Below || hi.Acc() != Above {
		t.Fatalf("directed parse acc: lo %s, hi %s", lo.Acc(), hi.Acc())
	}
}
