// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
	"time"
)

var bigModes = map[RoundingMode]big.RoundingMode{
	ToNearestEven: big.ToNearestEven,
	ToNearestAway: big.ToNearestAway,
	ToZero:        big.ToZero,
	AwayFromZero:  big.AwayFromZero,
	ToNegativeInf: big.ToNegativeInf,
	ToPositiveInf: big.ToPositiveInf,
}

// randBig returns a random finite big.Float with a prec-bit mantissa and
// an exponent in [-emag, emag].
func randBig(rnd *rand.Rand, prec uint, emag int) *big.Float {
	lo := new(big.Int).Lsh(big.NewInt(1), prec-1)
	m := new(big.Int).Rand(rnd, lo)
	m.Add(m, lo) // msb set
	f := new(big.Float).SetPrec(prec).SetInt(m)
	f.SetMantExp(f, rnd.Intn(2*emag+1)-emag)
	if rnd.Intn(2) == 1 {
		f.Neg(f)
	}
	return f
}

// TestFloatArithRandom cross-checks Add, Sub, Mul, Quo and Sqrt against
// math/big at the same precision and rounding mode, including the
// reported accuracy, with mixed operand precisions.
func TestFloatArithRandom(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	precs := []uint{1, 2, 24, 53, 64, 65, 100, 128, 129, 500}
	for mode, bmode := range bigModes {
		t.Run(mode.String(), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				xprec := precs[rnd.Intn(len(precs))]
				yprec := precs[rnd.Intn(len(precs))]
				zprec := precs[rnd.Intn(len(precs))]

				bx := randBig(rnd, xprec, 60)
				by := randBig(rnd, yprec, 60)
				x := new(Float).SetPrec(xprec).SetFloat(bx)
				y := new(Float).SetPrec(yprec).SetFloat(by)

				for _, op := range []struct {
					name string
					want func(z *big.Float) *big.Float
					got  func(z *Float) *Float
				}{
					{"Add", func(z *big.Float) *big.Float { return z.Add(bx, by) },
						func(z *Float) *Float { return z.Add(x, y) }},
					{"Sub", func(z *big.Float) *big.Float { return z.Sub(bx, by) },
						func(z *Float) *Float { return z.Sub(x, y) }},
					{"Mul", func(z *big.Float) *big.Float { return z.Mul(bx, by) },
						func(z *Float) *Float { return z.Mul(x, y) }},
					{"Quo", func(z *big.Float) *big.Float { return z.Quo(bx, by) },
						func(z *Float) *Float { return z.Quo(x, y) }},
				} {
					want := op.want(new(big.Float).SetPrec(zprec).SetMode(bmode))
					got := op.got(new(Float).SetPrec(zprec).SetMode(mode))
					ref := new(Float).SetPrec(zprec).SetFloat(want)
					if got.Cmp(ref) != 0 {
						t.Fatalf("SEED %x: %s(%g, %g) at prec %d:\ngot  %g\nwant %g",
							seed, op.name, x, y, zprec, got, ref)
					}
					if got.Acc() != Accuracy(want.Acc()) {
						t.Fatalf("SEED %x: %s(%g, %g) at prec %d: got acc %s, want %s",
							seed, op.name, x, y, zprec, got.Acc(), Accuracy(want.Acc()))
					}
				}

				// Sqrt on |x|
				bx.Abs(bx)
				x.Abs(x)
				want := new(big.Float).SetPrec(zprec).SetMode(bmode).Sqrt(bx)
				got := new(Float).SetPrec(zprec).SetMode(mode).Sqrt(x)
				ref := new(Float).SetPrec(zprec).SetFloat(want)
				if got.Cmp(ref) != 0 {
					t.Fatalf("SEED %x: Sqrt(%g) at prec %d:\ngot  %g\nwant %g",
						seed, x, zprec, got, ref)
				}
			}
		})
	}
}

// TestFloatFMA checks the single rounding of FMA against an exact
// double-width multiply-add.
func TestFloatFMA(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	for i := 0; i < 1000; i++ {
		prec := uint(rnd.Intn(200) + 1)
		bx := randBig(rnd, prec, 40)
		by := randBig(rnd, prec, 40)
		bu := randBig(rnd, prec, 40)
		x := new(Float).SetPrec(prec).SetFloat(bx)
		y := new(Float).SetPrec(prec).SetFloat(by)
		u := new(Float).SetPrec(prec).SetFloat(bu)

		// wide enough for the multiply-add to be exact, so the final
		// conversion performs the one rounding
		want := new(big.Float).SetPrec(3*prec + 200)
		want.Mul(bx, by)
		want.Add(want, bu)
		ref := new(Float).SetPrec(prec).SetFloat(want)

		got := new(Float).SetPrec(prec).FMA(x, y, u)
		if got.Cmp(ref) != 0 {
			t.Fatalf("SEED %x: FMA(%g, %g, %g) at prec %d:\ngot  %g\nwant %g",
				seed, x, y, u, prec, got, ref)
		}
	}
}

func TestFloatSpecials(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	inf := new(Float).SetInf(false)
	ninf := new(Float).SetInf(true)
	zero := new(Float).SetZero(false)
	nzero := new(Float).SetZero(true)
	one := new(Float).SetInt64(1)
	none := new(Float).SetInt64(-1)
	nan, _ := New(64)

	for _, test := range []struct {
		name  string
		op    func(z *Float) *Float
		want  string
		flags Flags
	}{
		{"Add(+Inf, +Inf)", func(z *Float) *Float { return z.Add(inf, inf) }, "+Inf", 0},
		{"Add(+Inf, -Inf)", func(z *Float) *Float { return z.Add(inf, ninf) }, "NaN", NaN},
		{"Sub(+Inf, +Inf)", func(z *Float) *Float { return z.Sub(inf, inf) }, "NaN", NaN},
		{"Mul(0, +Inf)", func(z *Float) *Float { return z.Mul(zero, inf) }, "NaN", NaN},
		{"Mul(-Inf, -Inf)", func(z *Float) *Float { return z.Mul(ninf, ninf) }, "+Inf", 0},
		{"Quo(1, 0)", func(z *Float) *Float { return z.Quo(one, zero) }, "+Inf", DivByZero},
		{"Quo(1, -0)", func(z *Float) *Float { return z.Quo(one, nzero) }, "-Inf", DivByZero},
		{"Quo(0, 0)", func(z *Float) *Float { return z.Quo(zero, zero) }, "NaN", NaN},
		{"Quo(+Inf, +Inf)", func(z *Float) *Float { return z.Quo(inf, inf) }, "NaN", NaN},
		{"Quo(1, +Inf)", func(z *Float) *Float { return z.Quo(one, inf) }, "0", 0},
		{"Quo(1, -Inf)", func(z *Float) *Float { return z.Quo(one, ninf) }, "-0", 0},
		{"Add(NaN, 1)", func(z *Float) *Float { return z.Add(nan, one) }, "NaN", NaN},
		{"Sqrt(-1)", func(z *Float) *Float { return z.Sqrt(none) }, "NaN", NaN},
		{"Sqrt(-0)", func(z *Float) *Float { return z.Sqrt(nzero) }, "-0", 0},
		{"FMA(0, +Inf, 1)", func(z *Float) *Float { return z.FMA(zero, inf, one) }, "NaN", NaN},
		{"FMA(+Inf, 1, -Inf)", func(z *Float) *Float { return z.FMA(inf, one, ninf) }, "NaN", NaN},
	} {
		t.Run(test.name, func(t *testing.T) {
			ClearFlags(AllFlags)
			z := test.op(new(Float))
			if s := z.Text('g', -1); s != test.want {
				t.Fatalf("got %s, want %s", s, test.want)
			}
			if f := TestFlags(AllFlags); f != test.flags {
				t.Fatalf("raised %s, want %s", f, test.flags)
			}
		})
	}

	// signed zero sign under the rounding mode: x - x
	for _, test := range []struct {
		mode RoundingMode
		want string
	}{
		{ToNearestEven, "0"},
		{ToNegativeInf, "-0"},
		{ToPositiveInf, "0"},
	} {
		z := new(Float).SetMode(test.mode).Sub(one, one)
		if s := z.Text('g', -1); s != test.want {
			t.Errorf("%s: 1 - 1 = %s, want %s", test.mode, s, test.want)
		}
	}
}

func TestFloatSpecialFlags(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	one := new(Float).SetInt64(1)
	zero := new(Float).SetZero(false)
	inf := new(Float).SetInf(false)

	ClearFlags(AllFlags)
	new(Float).Quo(one, zero)
	if f := TestFlags(AllFlags); f != DivByZero {
		t.Errorf("Quo(1, 0) raised %s, want DivByZero", f)
	}

	ClearFlags(AllFlags)
	new(Float).Mul(zero, inf)
	if f := TestFlags(AllFlags); f != NaN {
		t.Errorf("Mul(0, +Inf) raised %s, want NaN", f)
	}

	// flags are sticky: they accumulate until cleared
	new(Float).Quo(one, zero)
	if f := TestFlags(AllFlags); f != NaN|DivByZero {
		t.Errorf("sticky flags: got %s, want NaN|DivByZero", f)
	}
}

func TestFloatRounding(t *testing.T) {
	// all values are exact in 5 bits, rounded to 3
	for _, test := range []struct {
		x    string
		mode RoundingMode
		want string
		acc  Accuracy
	}{
		// 25 = 0b11001: halfway between 24 and 26 at prec 3
		{"25", ToNearestEven, "24", Below},
		{"25", ToNearestAway, "26", Above},
		{"27", ToNearestEven, "28", Above}, // ties to even, away
		{"25", ToZero, "24", Below},
		{"25", AwayFromZero, "26", Above},
		{"25", ToNegativeInf, "24", Below},
		{"25", ToPositiveInf, "26", Above},
		{"-25", ToNearestEven, "-24", Above},
		{"-25", ToZero, "-24", Above},
		{"-25", AwayFromZero, "-26", Below},
		{"-25", ToNegativeInf, "-26", Below},
		{"-25", ToPositiveInf, "-24", Above},
		{"24", ToNearestEven, "24", Exact},
		// 31 rounds up to 32: the mantissa overflows into a new bit
		{"31", ToNearestEven, "32", Above},
	} {
		t.Run(fmt.Sprintf("%s/%s", test.x, test.mode), func(t *testing.T) {
			x := new(Float).SetPrec(5).SetMode(test.mode)
			if _, ok := x.SetString(test.x); !ok {
				t.Fatal("SetString failed")
			}
			z := new(Float).SetPrec(3).SetMode(test.mode).Set(x)
			if s := z.Text('f', 0); s != test.want {
				t.Fatalf("got %s (acc %s), want %s", s, z.Acc(), test.want)
			}
			if z.Acc() != test.acc {
				t.Fatalf("got acc %s, want %s", z.Acc(), test.acc)
			}
		})
	}
}

// TestFloatFaithful checks that Faithful rounding returns one of the two
// representable neighbors of the exact result.
func TestFloatFaithful(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	for i := 0; i < 1000; i++ {
		prec := uint(rnd.Intn(100) + 1)
		bx := randBig(rnd, prec, 30)
		by := randBig(rnd, prec, 30)
		x := new(Float).SetPrec(prec).SetFloat(bx)
		y := new(Float).SetPrec(prec).SetFloat(by)

		z := new(Float).SetPrec(prec).SetMode(Faithful).Add(x, y)
		lo := new(Float).SetPrec(prec).SetMode(ToNegativeInf).Add(x, y)
		hi := new(Float).SetPrec(prec).SetMode(ToPositiveInf).Add(x, y)
		if z.Cmp(lo) != 0 && z.Cmp(hi) != 0 {
			t.Fatalf("SEED %x: Faithful Add(%g, %g) = %g, want %g or %g",
				seed, x, y, z, lo, hi)
		}
	}
}

func TestFloatExpRange(t *testing.T) {
	defer RestoreFlags(SaveFlags())
	defer func() {
		if err := SetExpRange(MinExp, MaxExp); err != nil {
			t.Fatal(err)
		}
	}()
	if err := SetExpRange(-16, 16); err != nil {
		t.Fatal(err)
	}

	large := new(Float).SetPrec(10)
	large.SetMantExp(large.SetInt64(3), 14) // 0.75 × 2^16

	ClearFlags(AllFlags)
	z := new(Float).SetPrec(10).Mul(large, large)
	if !z.IsInf() || z.Signbit() {
		t.Fatalf("overflowing Mul = %g, want +Inf", z)
	}
	if f := TestFlags(AllFlags); f != Overflow|Inexact {
		t.Fatalf("overflowing Mul raised %s, want Overflow|Inexact", f)
	}

	// ToZero clips overflow to the largest finite value instead
	ClearFlags(AllFlags)
	z = new(Float).SetPrec(10).SetMode(ToZero).Mul(large, large)
	if z.IsInf() || z.MantExp(nil) != 16 {
		t.Fatalf("overflowing Mul (ToZero) = %g, want largest finite", z)
	}
	if f := TestFlags(AllFlags); f != Overflow|Inexact {
		t.Fatalf("overflowing Mul (ToZero) raised %s, want Overflow|Inexact", f)
	}

	small := new(Float).SetPrec(10)
	small.SetMantExp(small.SetInt64(1), -15)

	ClearFlags(AllFlags)
	z = new(Float).SetPrec(10).Mul(small, small)
	if !z.IsZero() {
		t.Fatalf("underflowing Mul = %g, want 0", z)
	}
	if f := TestFlags(AllFlags); f != Underflow|Inexact {
		t.Fatalf("underflowing Mul raised %s, want Underflow|Inexact", f)
	}

	// AwayFromZero clips underflow to the smallest nonzero value
	ClearFlags(AllFlags)
	z = new(Float).SetPrec(10).SetMode(AwayFromZero).Mul(small, small)
	if z.IsZero() || z.MantExp(nil) != -16 {
		t.Fatalf("underflowing Mul (AwayFromZero) = %g, want smallest nonzero", z)
	}
}

func TestFloatCmpNaN(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	nan, _ := New(64)
	one := new(Float).SetInt64(1)

	ClearFlags(AllFlags)
	if c := nan.Cmp(one); c != 0 {
		t.Errorf("Cmp(NaN, 1) = %d, want 0", c)
	}
	if f := TestFlags(AllFlags); f != ERange {
		t.Errorf("Cmp(NaN, 1) raised %s, want ERange", f)
	}
}

func TestFloatConversions(t *testing.T) {
	for _, test := range []struct {
		x    string
		u64  uint64
		uacc Accuracy
		i64  int64
		iacc Accuracy
	}{
		{"0", 0, Exact, 0, Exact},
		{"1", 1, Exact, 1, Exact},
		{"-1", 0, Above, -1, Exact},
		{"1.5", 1, Below, 1, Below},
		{"-1.5", 0, Above, -1, Above},
		{"18446744073709551615", math.MaxUint64, Exact, math.MaxInt64, Below},
		{"-9223372036854775808", 0, Above, math.MinInt64, Exact},
		{"1e30", math.MaxUint64, Below, math.MaxInt64, Below},
		{"+Inf", math.MaxUint64, Below, math.MaxInt64, Below},
		{"-Inf", 0, Above, math.MinInt64, Above},
	} {
		t.Run(test.x, func(t *testing.T) {
			x := new(Float).SetPrec(128)
			if _, ok := x.SetString(test.x); !ok {
				t.Fatal("SetString failed")
			}
			if u, acc := x.Uint64(); u != test.u64 || acc != test.uacc {
				t.Errorf("Uint64() = %d (%s), want %d (%s)", u, acc, test.u64, test.uacc)
			}
			if i, acc := x.Int64(); i != test.i64 || acc != test.iacc {
				t.Errorf("Int64() = %d (%s), want %d (%s)", i, acc, test.i64, test.iacc)
			}
		})
	}
}

func TestFloatFloat64(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	for i := 0; i < 1000; i++ {
		bx := randBig(rnd, 80, 100)
		x := new(Float).SetPrec(80).SetFloat(bx)
		want, wacc := bx.Float64()
		got, gacc := x.Float64()
		if got != want || Accuracy(wacc) != gacc {
			t.Fatalf("SEED %x: Float64(%g) = %g (%s), want %g (%s)",
				seed, x, got, gacc, want, Accuracy(wacc))
		}
	}

	// Float64 saturates to ±Inf outside the float64 range
	x := new(Float).SetPrec(64)
	x.SetMantExp(x.SetInt64(1), 2000)
	if f, acc := x.Float64(); !math.IsInf(f, +1) || acc != Above {
		t.Errorf("Float64(2^1999) = %g (%s), want +Inf (Above)", f, acc)
	}
}

func TestFloatMantExp(t *testing.T) {
	x := new(Float).SetPrec(24).SetFloat64(0.75)
	m := new(Float).SetPrec(24)
	if e := x.MantExp(m); e != 0 {
		t.Fatalf("MantExp(0.75) exp = %d, want 0", e)
	}
	if f, _ := m.Float64(); f != 0.75 {
		t.Fatalf("MantExp(0.75) mant = %g, want 0.75", f)
	}

	z := new(Float).SetPrec(24).SetMantExp(m, 4)
	if f, _ := z.Float64(); f != 12 {
		t.Fatalf("SetMantExp(0.75, 4) = %g, want 12", f)
	}

	// MantExp and SetMantExp are inverses for any finite x
	for _, s := range []string{"1", "-0.5", "3.25", "1e-30", "-7e20"} {
		x.SetString(s)
		e := x.MantExp(m)
		if z.SetMantExp(m, e).Cmp(x) != 0 || z.Signbit() != x.Signbit() {
			t.Errorf("SetMantExp(MantExp(%s)) = %g", s, z)
		}
	}
}

func TestFloatIsInt(t *testing.T) {
	for _, test := range []struct {
		x    string
		want bool
	}{
		{"0", true},
		{"-0", true},
		{"1", true},
		{"-16384", true},
		{"1e100", true},
		{"0.5", false},
		{"1.5", false},
		{"+Inf", false},
		{"1e-100", false},
	} {
		x := new(Float).SetPrec(64)
		if _, ok := x.SetString(test.x); !ok {
			t.Fatalf("SetString(%s) failed", test.x)
		}
		if got := x.IsInt(); got != test.want {
			t.Errorf("IsInt(%s) = %v, want %v", test.x, got, test.want)
		}
	}
}

func TestFloatMinPrec(t *testing.T) {
	for _, test := range []struct {
		x    string
		want uint
	}{
		{"0", 0},
		{"1", 1},
		{"3", 2},
		{"0.5", 1},
		{"24", 2}, // 0b11 << 3
		{"25", 5},
	} {
		x := new(Float).SetPrec(100)
		x.SetString(test.x)
		if got := x.MinPrec(); got != test.want {
			t.Errorf("MinPrec(%s) = %d, want %d", test.x, got, test.want)
		}
	}
}

func TestFloatSetPrec(t *testing.T) {
	// rounding on precision reduction
	x := new(Float).SetPrec(10).SetInt64(25)
	x.SetPrec(3)
	if s := x.Text('f', 0); s != "24" || x.Acc() != Below {
		t.Errorf("SetPrec(3) on 25 = %s (%s), want 24 (Below)", s, x.Acc())
	}

	// SetPrec(0) maps the value to 0
	x.SetInt64(25).SetPrec(0)
	if !x.IsZero() || x.Prec() != 0 {
		t.Errorf("SetPrec(0) = %g, prec %d", x, x.Prec())
	}
}

func TestNew(t *testing.T) {
	z, err := New(100)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsNaN() || z.Prec() != 100 {
		t.Fatalf("New(100) = %g with prec %d, want NaN with prec 100", z, z.Prec())
	}
	if _, err := New(0); err == nil {
		t.Fatal("New(0) did not fail")
	}

	z = NewDefault()
	if !z.IsNaN() || z.Prec() != DefaultPrec() {
		t.Fatalf("NewDefault() = %g with prec %d", z, z.Prec())
	}

	x := NewFloat(3, -1)
	if f, _ := x.Float64(); f != 1.5 {
		t.Fatalf("NewFloat(3, -1) = %g, want 1.5", f)
	}
}

func TestFloatNegAbsDirected(t *testing.T) {
	// Neg and Abs round in the direction of the result, not the operand
	x := new(Float).SetPrec(5).SetInt64(25)
	z := new(Float).SetPrec(3).SetMode(ToNegativeInf).Neg(x)
	if s := z.Text('f', 0); s != "-26" {
		t.Errorf("Neg(25) ToNegativeInf at prec 3 = %s, want -26", s)
	}
	z = new(Float).SetPrec(3).SetMode(ToNegativeInf).Abs(new(Float).Neg(x))
	if s := z.Text('f', 0); s != "24" {
		t.Errorf("Abs(-25) ToNegativeInf at prec 3 = %s, want 24", s)
	}
}

// Equal and Hash compare representations, not values.
func TestFloatEqualHash(t *testing.T) {
	defer RestoreFlags(SaveFlags())

	third := func(prec uint) *Float {
		z := new(Float).SetPrec(prec)
		return z.Quo(z.SetInt64(1), new(Float).SetInt64(3))
	}
	nan53 := new(Float).SetPrec(53).SetNaN()

	for _, test := range []struct {
		name string
		x, y *Float
		eq   bool
	}{
		{"same value same prec", third(100), third(100), true},
		{"same value different prec", new(Float).SetPrec(53).SetInt64(1), new(Float).SetPrec(64).SetInt64(1), false},
		{"same mantissa different exp", new(Float).SetPrec(53).SetInt64(3), NewFloat(3, -1).SetPrec(53), false},
		{"plus and minus zero", new(Float).SetPrec(53), new(Float).SetPrec(53).SetZero(true), false},
		{"opposite signs", new(Float).SetPrec(53).SetInt64(2), new(Float).SetPrec(53).SetInt64(-2), false},
		{"NaN and NaN", nan53, new(Float).SetPrec(53).SetNaN(), true},
		{"infinities", new(Float).SetInf(false), new(Float).SetInf(false), true},
		{"copy", third(200), new(Float).Copy(third(200)), true},
	} {
		t.Run(test.name, func(t *testing.T) {
			if eq := test.x.Equal(test.y); eq != test.eq {
				t.Fatalf("Equal(%v, %v) = %v, want %v", test.x, test.y, eq, test.eq)
			}
			hx, hy := test.x.Hash(), test.y.Hash()
			if test.eq && hx != hy {
				t.Fatalf("Equal values hash to %#x and %#x", hx, hy)
			}
			if !test.eq && hx == hy {
				t.Fatalf("distinct representations %v and %v collide on %#x", test.x, test.y, hx)
			}
		})
	}

	// Equal is structural where Cmp is numeric: it neither consults nor
	// raises flags, even for NaNs
	ClearFlags(AllFlags)
	if !nan53.Equal(nan53) {
		t.Fatal("NaN must Equal itself")
	}
	if f := TestFlags(AllFlags); f != 0 {
		t.Fatalf("Equal raised %s", f)
	}
	x := new(Float).SetPrec(53).SetInt64(1)
	y := new(Float).SetPrec(100).SetInt64(1)
	if x.Cmp(y) != 0 || x.Equal(y) {
		t.Fatal("want Cmp equal but not Equal across precisions")
	}
}

func BenchmarkFloatAdd(b *testing.B) {
	for _, prec := range []uint{64, 500, 5000, 50000} {
		rnd := rand.New(rand.NewSource(1))
		x := new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 10))
		y := new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 10))
		z := new(Float).SetPrec(prec)
		b.Run(fmt.Sprintf("%v", prec), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				z.Add(x, y)
			}
		})
	}
}

func BenchmarkFloatMul(b *testing.B) {
	for _, prec := range []uint{64, 500, 5000, 50000} {
		rnd := rand.New(rand.NewSource(1))
		x := new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 10))
		y := new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 10))
		z := new(Float).SetPrec(prec)
		b.Run(fmt.Sprintf("%v", prec), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				z.Mul(x, y)
			}
		})
	}
}
