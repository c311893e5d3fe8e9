// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"math/rand"
	"testing"
	"time"
)

func TestFloatGobEncoding(t *testing.T) {
	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))

	var cases []*Float
	for _, s := range []string{"0", "-0", "1", "-1.5", "+Inf", "-Inf", "NaN", "0.1", "1e1000", "-3e-1000"} {
		x := new(Float).SetPrec(100).SetMode(ToNegativeInf)
		if _, _, err := x.Parse(s, 10); err != nil {
			t.Fatal(err)
		}
		cases = append(cases, x)
	}
	for i := 0; i < 100; i++ {
		prec := uint(rnd.Intn(300) + 1)
		cases = append(cases, new(Float).SetPrec(prec).SetFloat(randBig(rnd, prec, 100)))
	}

	for _, x := range cases {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(x); err != nil {
			t.Fatalf("encoding %g: %v", x, err)
		}
		z := new(Float)
		if err := gob.NewDecoder(&buf).Decode(z); err != nil {
			t.Fatalf("decoding %g: %v", x, err)
		}
		if z.Prec() != x.Prec() || z.Mode() != x.Mode() {
			t.Fatalf("SEED %x: decoding %g: prec/mode %d/%s, want %d/%s",
				seed, x, z.Prec(), z.Mode(), x.Prec(), x.Mode())
		}
		if x.IsNaN() {
			if !z.IsNaN() {
				t.Fatalf("decoding NaN gave %g", z)
			}
			continue
		}
		if z.Cmp(x) != 0 || z.Signbit() != x.Signbit() {
			t.Fatalf("SEED %x: gob round trip of %s gave %s",
				seed, x.Text('p', 0), z.Text('p', 0))
		}
	}
}

// Decoding into a Float of smaller precision rounds the transmitted
// value.
func TestFloatGobDecodeRound(t *testing.T) {
	x := new(Float).SetPrec(100)
	x.Quo(new(Float).SetInt64(2), new(Float).SetInt64(3))

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(x); err != nil {
		t.Fatal(err)
	}
	z := new(Float).SetPrec(10)
	if err := gob.NewDecoder(&buf).Decode(z); err != nil {
		t.Fatal(err)
	}
	if z.Prec() != 10 {
		t.Fatalf("decode changed the receiver precision to %d", z.Prec())
	}
	want := new(Float).SetPrec(10).Set(x)
	if z.Cmp(want) != 0 {
		t.Fatalf("decoded %g, want %g", z, want)
	}
}

func TestFloatGobDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		buf  []byte
	}{
		{"bad version", []byte{2, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"short finite", []byte{1, 1 << 1, 0, 0, 0, 1}},
		{"short header", []byte{1, 0}},
	} {
		z := new(Float)
		if err := z.GobDecode(test.buf); err == nil {
			t.Errorf("%s: decode did not fail", test.name)
		}
	}

	// nonzero mantissa bits below the precision are not canonical and
	// must be rejected, not smuggled past the decoder
	buf, err := new(Float).SetPrec(10).SetInt64(3).GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	if err := new(Float).GobDecode(buf); err != nil {
		t.Fatal(err)
	}
	buf[len(buf)-1] |= 1
	if err := new(Float).GobDecode(buf); err == nil {
		t.Error("bad padding: decode did not fail")
	}

	// an empty buffer stands for a nil or default value and decodes as
	// the zero Float
	z := new(Float).SetInt64(5)
	if err := z.GobDecode(nil); err != nil {
		t.Fatal(err)
	}
	if !z.IsZero() {
		t.Errorf("decoding an empty buffer gave %g", z)
	}
}

func TestFloatJSONEncoding(t *testing.T) {
	for _, s := range []string{"0", "-1.5", "3.14159", "1e100", "+Inf", "-Inf", "NaN"} {
		x := new(Float).SetPrec(80)
		if _, _, err := x.Parse(s, 10); err != nil {
			t.Fatal(err)
		}
		b, err := json.Marshal(x)
		if err != nil {
			t.Fatalf("marshaling %s: %v", s, err)
		}
		z := new(Float).SetPrec(80)
		if err := json.Unmarshal(b, z); err != nil {
			t.Fatalf("unmarshaling %s: %v", string(b), err)
		}
		if x.IsNaN() {
			if !z.IsNaN() {
				t.Fatalf("JSON round trip of NaN gave %g", z)
			}
			continue
		}
		if z.Cmp(x) != 0 || z.Signbit() != x.Signbit() {
			t.Fatalf("JSON round trip of %s through %s gave %g", s, string(b), z)
		}
	}
}

func TestFloatUnmarshalTextError(t *testing.T) {
	z := new(Float)
	if err := z.UnmarshalText([]byte("12..5")); err == nil {
		t.Error("UnmarshalText(12..5) did not fail")
	}
}
