package math

import (
	"strconv"
	"sync"
	"testing"

	"github.com/db47h/mpfloat"
)

// 200 decimal digits, enough for reference values up to 600 bits.
const piStr = "3.1415926535897932384626433832795028841971693993751058209749445923" +
	"0781640628620899862803482534211706798214808651328230664709384460955058223172" +
	"53594081284811174502841027019385211055596446229489549303819"

func TestPi(t *testing.T) {
	for _, prec := range []uint{1, 24, 53, 64, 100, 333, 600} {
		t.Run(strconv.Itoa(int(prec)), func(t *testing.T) {
			want, _, err := mpfloat.ParseFloat(piStr, 10, prec, mpfloat.ToNearestEven)
			if err != nil {
				t.Fatal(err)
			}
			z := Pi(new(mpfloat.Float).SetPrec(prec))
			if z.Cmp(want) != 0 {
				t.Fatalf("Pi at prec %d:\ngot  %g\nwant %g", prec, z, want)
			}
		})
	}
}

func TestPiCache(t *testing.T) {
	// the initial _pi value must agree with the reference digits; the
	// cache may have grown past its initial precision by now, so compare
	// at the initial precision only
	prec := uint(2 * wordBits)
	want, _, err := mpfloat.ParseFloat(piStr, 10, prec, mpfloat.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	got := new(mpfloat.Float).SetPrec(prec).Set(_pi)
	if got.Cmp(want) != 0 {
		t.Fatalf("bad value for _pi\ngot  %g\nwant %g", got, want)
	}

	// growing the cache keeps it consistent
	p := pi(512)
	if p.Prec() < 512 {
		t.Fatalf("pi(512) has precision %d", p.Prec())
	}
	want, _, _ = mpfloat.ParseFloat(piStr, 10, 512, mpfloat.ToNearestEven)
	if new(mpfloat.Float).SetPrec(512).Set(p).Cmp(want) != 0 {
		t.Fatal("pi(512) disagrees with the reference digits")
	}
}

// Growing the cache under a narrowed exponent range must not clip the
// Gauss-Legendre intermediates nor store a clipped value.
func TestPiNarrowRange(t *testing.T) {
	defer mpfloat.RestoreFlags(mpfloat.SaveFlags())
	defer func() {
		if err := mpfloat.SetExpRange(mpfloat.MinExp, mpfloat.MaxExp); err != nil {
			t.Fatal(err)
		}
	}()
	if err := mpfloat.SetExpRange(-16, 16); err != nil {
		t.Fatal(err)
	}

	// prec 2100 forces a fresh cache fill under the narrowed range
	z := Pi(new(mpfloat.Float).SetPrec(2100))

	want, _, err := mpfloat.ParseFloat(piStr, 10, 600, mpfloat.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	diff := new(mpfloat.Float).SetPrec(64).Sub(new(mpfloat.Float).SetPrec(600).Set(z), want)
	if !diff.IsZero() && diff.MantExp(nil) > -596 {
		t.Fatalf("Pi at prec 2100 with range [-16,16]:\ngot  %g", z)
	}

	// the cache must hold the true value once the range is restored
	if err := mpfloat.SetExpRange(mpfloat.MinExp, mpfloat.MaxExp); err != nil {
		t.Fatal(err)
	}
	if z := Pi(new(mpfloat.Float).SetPrec(600)); z.Cmp(want) != 0 {
		t.Fatalf("Pi after range restore:\ngot  %g\nwant %g", z, want)
	}
}

func TestPiConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		prec := uint(256 + 64*i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p := pi(prec); p.Prec() < prec {
				t.Errorf("pi(%d) has precision %d", prec, p.Prec())
			}
		}()
	}
	wg.Wait()

	want, _, err := mpfloat.ParseFloat(piStr, 10, 600, mpfloat.ToNearestEven)
	if err != nil {
		t.Fatal(err)
	}
	if z := Pi(new(mpfloat.Float).SetPrec(600)); z.Cmp(want) != 0 {
		t.Fatal("Pi disagrees with the reference digits after concurrent growth")
	}
}

func TestPiFlagNeutral(t *testing.T) {
	defer mpfloat.RestoreFlags(mpfloat.SaveFlags())

	mpfloat.ClearFlags(mpfloat.AllFlags)
	Pi(new(mpfloat.Float).SetPrec(200))
	if f := mpfloat.TestFlags(mpfloat.AllFlags); f != mpfloat.Inexact {
		t.Errorf("Pi raised %s, want Inexact only", f)
	}
}

func BenchmarkPi(b *testing.B) {
	for _, prec := range []uint{64, 500, 5000} {
		z := new(mpfloat.Float).SetPrec(prec)
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				piT(z.SetPrec(prec))
			}
		})
	}
}
