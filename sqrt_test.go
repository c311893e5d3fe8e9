// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"fmt"
	"math/rand"
	"testing"
	"time"
)

func TestFloatSqrt(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	for i := 0; i < 1000; i++ {
		prec := uint(rnd.Intn(300) + 1)
		x := new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 100))
		x.Abs(x)

		got := new(Float).SetPrec(prec).Sqrt(x)

		// If got holds the square root of x to precision p, then
		//   got = √x·(1 + k)
		// for some relative error k with |k| < 2**(1-p). Thus
		//   got² = x·(1 + k)² ≈ x·(1 + 2k)
		// and the error must satisfy
		//   err = |got² - x| ≈ |2k|·x < 2**(2-p)·x
		// Ignoring the k² term for simplicity.
		sq := new(Float).SetPrec(prec + 64).Mul(got, got)
		diff := new(Float).Sub(sq, x)
		err := diff.Abs(diff)

		maxErr := new(Float).SetPrec(prec + 64).SetMantExp(x, 2-int(prec))

		if !err.IsZero() && err.Cmp(maxErr) >= 0 {
			t.Fatalf("SEED %x: prec %d, Sqrt(%g) = %g: err %g >= maxErr %g",
				seed, prec, x, got, err, maxErr)
		}
	}
}

func TestFloatSqrtExact(t *testing.T) {
	// perfect squares of exactly representable values stay exact
	for _, test := range []struct {
		x    string
		want string
	}{
		{"4", "2"},
		{"0.25", "0.5"},
		{"2.25", "1.5"},
		{"9", "3"},
		{"10000", "100"},
	} {
		x := new(Float).SetPrec(64)
		if _, ok := x.SetString(test.x); !ok {
			t.Fatal("SetString failed")
		}
		z := new(Float).SetPrec(64).Sqrt(x)
		want := new(Float).SetPrec(64)
		want.SetString(test.want)
		if z.Cmp(want) != 0 || z.Acc() != Exact {
			t.Errorf("Sqrt(%s) = %g (%s), want %s (Exact)", test.x, z, z.Acc(), test.want)
		}
	}
}

func TestFloatSqrtSpecial(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	for _, test := range []struct {
		x    *Float
		want string
	}{
		{new(Float).SetZero(false), "0"},
		{new(Float).SetZero(true), "-0"},
		{new(Float).SetInf(false), "+Inf"},
	} {
		got := new(Float).Sqrt(test.x)
		if s := got.Text('g', -1); s != test.want {
			t.Errorf("Sqrt(%v) = %s, want %s", test.x, s, test.want)
		}
	}

	ClearFlags(AllFlags)
	z := new(Float).Sqrt(new(Float).SetInf(true))
	if !z.IsNaN() || TestFlags(AllFlags) != NaN {
		t.Errorf("Sqrt(-Inf) = %g, flags %s; want NaN, NaN", z, TestFlags(AllFlags))
	}
}

func BenchmarkFloatSqrt(b *testing.B) {
	for _, prec := range []uint{64, 500, 5000, 50000} {
		x := NewFloat(2, 0)
		z := new(Float).SetPrec(prec)
		b.Run(fmt.Sprintf("%v", prec), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				z.Sqrt(x)
			}
		})
	}
}
