// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Float-to-string conversion functions.

package mpfloat

import (
	"fmt"
	"math"
	"strconv"
)

var _ fmt.Formatter = &floatZero

// Text converts the floating-point number x to a string according to the
// given format and precision prec. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//	'x'	-0x1.hhhhp±dd, hexadecimal mantissa, decimal power of two exponent
//	'b'	-ddddddp±dd, decimal mantissa, decimal power of two exponent
//	'p'	-0x.hhhhp±dd, hexadecimal mantissa, decimal power of two exponent
//
// For the decimal formats, prec is the number of digits after the decimal
// point ('e', 'E', 'f'), or the total number of significant digits ('g',
// 'G'). A negative precision selects the smallest number of digits
// necessary to represent the value x uniquely: reading the result back
// with the same precision and to-nearest-even rounding reproduces x. The
// prec value is ignored for the 'b' and 'p' formats.
//
// Text raises no flags.
func (x *Float) Text(format byte, prec int) string {
	cap := 10 // TODO(db47h) adjust along the lines of strconv
	if prec > 0 {
		cap += prec
	}
	return string(x.Append(make([]byte, 0, cap), format, prec))
}

// String formats x like x.Text('g', 10).
func (x *Float) String() string {
	return x.Text('g', 10)
}

// Append appends to buf the string form of the floating-point number x,
// as generated by x.Text, and returns the extended buffer.
func (x *Float) Append(buf []byte, format byte, prec int) []byte {
	// sign
	if x.neg {
		buf = append(buf, '-')
	}

	switch x.form {
	case inf:
		if !x.neg {
			buf = append(buf, '+')
		}
		return append(buf, "Inf"...)
	case nan:
		return append(buf, "NaN"...)
	}

	// x is zero or finite
	switch format {
	case 'b':
		return x.fmtB(buf)
	case 'p':
		return x.fmtP(buf)
	case 'x':
		return x.fmtX(buf, prec)
	case 'e', 'E', 'f', 'g', 'G', 'v':
		// handled below
	default:
		// unknown format
		if x.neg {
			buf = buf[:len(buf)-1] // sign was added prematurely
		}
		return append(buf, '%', format)
	}
	if format == 'v' {
		format = 'g'
	}
	if (format == 'g' || format == 'G') && prec == 0 {
		prec = 1
	}

	// internal trial conversions must not disturb the flag register
	defer RestoreFlags(SaveFlags())

	// compute digits: |x| = 0.<ds> × 10^exp
	var ds []byte
	var exp int
	shortest := prec < 0
	if x.form == finite {
		if shortest {
			ds, exp = x.fmtShortest(10)
		} else {
			switch format {
			case 'e', 'E':
				ds, exp, _ = x.fmtRound(10, prec+1, x.mode, x.neg)
			case 'g', 'G':
				ds, exp, _ = x.fmtRound(10, prec, x.mode, x.neg)
			case 'f':
				ds, exp, _ = x.fmtRoundPlace(10, prec, x.mode, x.neg)
			}
		}
		// normalize: no trailing zero digits
		for len(ds) > 0 && ds[len(ds)-1] == '0' {
			ds = ds[:len(ds)-1]
		}
	}
	if shortest {
		// precision for shortest representation mode
		switch format {
		case 'e', 'E':
			prec = len(ds) - 1
		case 'f':
			prec = max(len(ds)-exp, 0)
		case 'g', 'G':
			prec = len(ds)
		}
	}

	switch format {
	case 'e', 'E':
		return fmtE(buf, format, prec, ds, exp)
	case 'f':
		return fmtF(buf, prec, ds, exp)
	}
	// format == 'g' || format == 'G'

	// trim trailing fractional zeros in %e format
	eprec := prec
	if eprec > len(ds) && len(ds) >= exp {
		eprec = len(ds)
	}
	// %e is used if the exponent from the conversion is less than -4 or
	// greater than or equal to the precision. If precision was the
	// shortest possible, use eprec = 6 for this decision.
	if shortest {
		eprec = 6
	}
	if e := exp - 1; e < -4 || e >= eprec {
		if prec > len(ds) {
			prec = len(ds)
		}
		return fmtE(buf, format+'e'-'g', max(prec-1, 0), ds, exp)
	}
	if prec > exp {
		prec = len(ds)
	}
	return fmtF(buf, max(prec-exp, 0), ds, exp)
}

// AppendBase appends to buf the string form of x in the given base, 2
// through MaxBase, and returns the extended buffer. The result uses
// positional "d.ddd" notation with an "@±dd" exponent scaling by powers
// of the base, the one exponent form Parse accepts in every base. prec
// is the number of significant digits; a negative prec selects the
// smallest digit count such that reading the result back at x's
// precision with to-nearest-even rounding reproduces x.
//
// AppendBase raises no flags.
func (x *Float) AppendBase(buf []byte, base, prec int) []byte {
	if base < 2 || base > MaxBase {
		panic("invalid base " + strconv.Itoa(base))
	}
	if x.neg {
		buf = append(buf, '-')
	}
	switch x.form {
	case inf:
		if !x.neg {
			buf = append(buf, '+')
		}
		return append(buf, "Inf"...)
	case nan:
		return append(buf, "NaN"...)
	case zero:
		return append(buf, '0')
	}

	defer RestoreFlags(SaveFlags())

	var ds []byte
	var exp int
	if prec < 0 {
		ds, exp = x.fmtShortest(base)
	} else {
		ds, exp, _ = x.fmtRound(base, max(prec, 1), x.mode, x.neg)
	}

	// d.ddd@±exp
	buf = append(buf, ds[0])
	if len(ds) > 1 {
		buf = append(buf, '.')
		buf = append(buf, ds[1:]...)
	}
	buf = append(buf, '@')
	e := int64(exp) - 1
	var sign byte = '+'
	if e < 0 {
		sign = '-'
		e = -e
	}
	buf = append(buf, sign)
	if e < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, e, 10)
}

// fmtRound returns the first n significant base-b digits of the finite
// nonzero |x|, rounded according to mode and the sign neg, the exponent
// exp such that the digits ds satisfy |x| ≈ 0.<ds> × base^exp, and the
// accuracy of the digits relative to x. Fewer than n digits are returned
// if they represent x exactly.
func (x *Float) fmtRound(base, n int, mode RoundingMode, neg bool) (ds []byte, exp int, acc Accuracy) {
	if debugFloat && x.form != finite {
		panic("fmtRound: non-finite operand")
	}
	m := x.mant
	s := x.scale()

	// Materialize |x|·base^k as the integer quotient N/2^u, with k large
	// enough that the quotient carries at least n significant digits.
	var N nat
	var u uint
	var k int
	if s >= 0 {
		N = nat(nil).shl(m, uint(s))
	} else {
		u = uint(-s)
		e2 := s + int64(m.bitLen())
		est := int64(math.Floor(float64(e2) * (math.Ln2 / math.Log(float64(base)))))
		kk := int64(n) + 2 - est
		if kk < 0 {
			kk = 0
		}
		k = int(kk)
		N = nat(nil).mul(m, natPow(Word(base), kk))
	}
	t := nat(nil).shr(N, u)
	ds = natDigits(t, base)
	for u > 0 && len(ds) < n && N.sticky(u) != 0 {
		// the estimate fell short; materialize more fraction digits
		extra := n - len(ds) + 1
		N = nat(nil).mul(N, natPow(Word(base), int64(extra)))
		k += extra
		t = nat(nil).shr(N, u)
		ds = natDigits(t, base)
	}

	exp = len(ds) - k
	g := len(ds) - n // digits to drop
	sticky := u > 0 && N.sticky(u) != 0
	if g < 0 || g == 0 && !sticky {
		return ds, exp, Exact
	}

	// Round the quotient at digit n: divide N by base^g·2^u; the
	// remainder carries the exact tail, so every mode (ties included)
	// decides exactly, in any base.
	D := nat(nil).shl(natPow(Word(base), int64(g)), u)
	q, r := nat(nil).div(nil, N, D)
	if len(r) == 0 {
		return q.utoa(base), exp, Exact
	}
	var inc bool
	switch mode {
	case ToNearestEven, ToNearestAway:
		switch nat(nil).shl(r, 1).cmp(D) {
		case +1:
			inc = true
		case 0:
			if mode == ToNearestAway {
				inc = true
			} else {
				// round the tie so that the last kept digit is even
				_, last := nat(nil).divW(q, Word(base))
				inc = last&1 != 0
			}
		}
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
		q = q.add(q, natOne)
	}
	acc = makeAcc(inc != neg)
	ds = q.utoa(base)
	if len(ds) > n {
		// rounding carried into a new leading digit
		ds = ds[:n]
		exp++
	}
	return ds, exp, acc
}

func natDigits(t nat, base int) []byte {
	if len(t) == 0 {
		return nil
	}
	return t.utoa(base)
}

// fmtRoundPlace rounds |x| at the fraction place base^-frac and returns
// digits, exponent, and accuracy as fmtRound does.
func (x *Float) fmtRoundPlace(base, frac int, mode RoundingMode, neg bool) (ds []byte, exp int, acc Accuracy) {
	_, exp, _ = x.fmtRound(base, 1, ToZero, neg)
	if n := exp + frac; n >= 1 {
		return x.fmtRound(base, n, mode, neg)
	}
	// |x| < base^-frac: the result is either 0 or one unit in the last
	// place, depending on the mode and a comparison with half a unit.
	shift, odd := splitBase(uint(base))
	mm := x.mant
	if odd > 1 && frac > 0 {
		mm = nat(nil).mul(mm, natPow(odd, int64(frac)))
	}
	c := cmpOne(mm, x.scale()+1+int64(shift)*int64(frac)) // 2·|x|·base^frac vs 1
	var up bool
	switch mode {
	case ToNearestEven:
		up = c > 0
	case ToNearestAway:
		up = c >= 0
	case ToZero, Faithful:
		// truncate
	case AwayFromZero:
		up = true
	case ToNegativeInf:
		up = neg
	case ToPositiveInf:
		up = !neg
	}
	if up {
		return []byte{'1'}, 1 - frac, makeAcc(!neg)
	}
	return nil, 0, makeAcc(neg)
}

// cmpOne compares m·2^e with 1, for a normalized nonzero m.
func cmpOne(m nat, e int64) int {
	bl := int64(m.bitLen())
	switch {
	case bl+e <= 0:
		return -1
	case bl+e > 1:
		return +1
	}
	// value in [1, 2): equal to 1 iff m is a power of two
	if uint(bl-1) == m.trailingZeroBits() {
		return 0
	}
	return +1
}

// fmtShortest returns the smallest number of base-b digits, and the
// corresponding exponent, that reproduce x when read back at x's
// precision with to-nearest-even rounding.
func (x *Float) fmtShortest(base int) (ds []byte, exp int) {
	bound := int(float64(x.prec)/math.Log2(float64(base))) + 2
	for n := 1; ; n++ {
		var acc Accuracy
		ds, exp, acc = x.fmtRound(base, n, ToNearestEven, x.neg)
		if acc == Exact {
			for len(ds) > 1 && ds[len(ds)-1] == '0' {
				ds = ds[:len(ds)-1]
			}
			return ds, exp
		}
		if n >= bound || x.parseBackEqual(ds, exp, base) {
			return ds, exp
		}
	}
}

// parseBackEqual reports whether the digits 0.<ds> × base^exp round to
// exactly x at x's precision with to-nearest-even rounding.
func (x *Float) parseBackEqual(ds []byte, exp, base int) bool {
	var m nat
	b1 := Word(base)
	for _, c := range ds {
		var d Word
		switch {
		case '0' <= c && c <= '9':
			d = Word(c - '0')
		case 'a' <= c && c <= 'z':
			d = Word(c - 'a' + 10)
		default:
			d = Word(c-'A') + maxBaseSmall
		}
		m = m.mulAddWW(m, b1, d)
	}
	// value = m × base^(exp - len(ds))
	e := int64(exp - len(ds))
	shift, odd := splitBase(uint(base))
	var y Float
	y.prec = x.prec
	s := e * int64(shift)
	switch {
	case odd == 1 || e == 0:
		y.setFromNat(x.neg, m, s, 0)
	case e > 0:
		y.setFromNat(x.neg, nat(nil).mul(m, natPow(odd, e)), s, 0)
	default:
		y.quoBits(x.neg, m, s, natPow(odd, -e), 0)
	}
	return y.form == finite && y.exp == x.exp && y.mant.cmp(x.mant) == 0
}

// %e: d.ddddde±dd
func fmtE(buf []byte, format byte, prec int, ds []byte, exp int) []byte {
	// first digit
	ch := byte('0')
	if len(ds) > 0 {
		ch = ds[0]
	}
	buf = append(buf, ch)

	// .moredigits
	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(len(ds), prec+1)
		if i < m {
			buf = append(buf, ds[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	// exponent
	buf = append(buf, format)
	var e int64
	if len(ds) > 0 {
		e = int64(exp) - 1 // -1 because first digit is printed before '.'
	}
	var sign byte = '+'
	if e < 0 {
		sign = '-'
		e = -e
	}
	buf = append(buf, sign)
	if e < 10 {
		buf = append(buf, '0') // at least 2 exponent digits
	}
	return strconv.AppendInt(buf, e, 10)
}

// %f: ddddddd.ddddd
func fmtF(buf []byte, prec int, ds []byte, exp int) []byte {
	// integer, padded with zeros as needed
	if exp > 0 {
		m := min(len(ds), exp)
		buf = append(buf, ds[:m]...)
		for ; m < exp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	// fraction
	if prec > 0 {
		buf = append(buf, '.')
		for i := 0; i < prec; i++ {
			ch := byte('0')
			if j := exp + i; 0 <= j && j < len(ds) {
				ch = ds[j]
			}
			buf = append(buf, ch)
		}
	}

	return buf
}

// fmtB appends the string of x in the format mantissa "p" exponent with a
// decimal mantissa and a binary exponent, or "0" if x is zero, and
// returns the extended buffer. The mantissa is normalized such that it
// uses exactly x.Prec() bits.
func (x *Float) fmtB(buf []byte) []byte {
	if x.form == zero {
		return append(buf, '0')
	}
	// x != 0

	// adjust mantissa to exactly x.prec bits
	m := x.mant
	if w := uint32(len(x.mant)) * _W; w > x.prec {
		m = nat(nil).shr(m, uint(w-x.prec))
	}

	buf = append(buf, m.utoa(10)...)
	buf = append(buf, 'p')
	e := int64(x.exp) - int64(x.prec)
	if e >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, e, 10)
}

// fmtP appends the string of x in the format "0x." mantissa "p" exponent
// with a hexadecimal mantissa and a binary exponent, or "0" if x is
// zero, and returns the extended buffer. The mantissa is normalized such
// that 0.5 <= 0.mantissa < 1.0.
func (x *Float) fmtP(buf []byte) []byte {
	if x.form == zero {
		return append(buf, '0')
	}
	// x != 0

	m := x.mant

	// remove trailing 0 words early
	i := 0
	for i < len(m) && m[i] == 0 {
		i++
	}
	m = m[i:]

	buf = append(buf, "0x."...)
	hm := m.utoa(16)
	// trim trailing zeros
	n := len(hm)
	for n > 0 && hm[n-1] == '0' {
		n--
	}
	buf = append(buf, hm[:n]...)

	buf = append(buf, 'p')
	if x.exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(x.exp), 10)
}

// fmtX appends the string of x in the format "0x1." mantissa "p"
// exponent with a hexadecimal mantissa and a binary exponent, or
// "0x0p+00" if x is zero, and returns the extended buffer. A non-negative
// prec gives the number of mantissa digits after the radix point; for
// prec < 0 the smallest number of digits representing x exactly is used.
func (x *Float) fmtX(buf []byte, prec int) []byte {
	if x.form == zero {
		buf = append(buf, "0x0"...)
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
		return append(buf, "p+00"...)
	}

	if debugFloat && x.form != finite {
		panic("non-finite float")
	}

	// round mantissa to n bits
	var n uint
	if prec < 0 {
		n = 1 + (x.MinPrec()-1+3)/4*4 // round MinPrec up to 1 mod 4
	} else {
		n = 1 + 4*uint(prec)
	}
	// n%4 == 1

	defer RestoreFlags(SaveFlags())
	var r Float
	r.prec = uint32(n)
	r.mode = x.mode
	r.setFromNat(x.neg, x.mant, x.scale(), 0)

	var e int64
	if r.form == finite {
		e = int64(r.exp) - 1
		// adjust mantissa to exactly n bits
		m := r.mant
		if w := uint(len(r.mant)) * _W; w > n {
			m = nat(nil).shr(m, w-n)
		}
		hm := m.utoa(16)
		if debugFloat && hm[0] != '1' {
			panic("incorrect mantissa: " + string(hm))
		}
		buf = append(buf, "0x"...)
		buf = append(buf, hm[0])
		if len(hm) > 1 {
			buf = append(buf, '.')
			buf = append(buf, hm[1:]...)
		}
	} else {
		// rounding to n bits carried past the exponent range:
		// the result is exactly 2^emax
		_, emax := ExpRange()
		e = int64(emax)
		buf = append(buf, "0x1"...)
		if prec > 0 {
			buf = append(buf, '.')
			for i := 0; i < prec; i++ {
				buf = append(buf, '0')
			}
		}
	}

	buf = append(buf, 'p')
	var sign byte = '+'
	if e < 0 {
		sign = '-'
		e = -e
	}
	buf = append(buf, sign)
	if e < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, e, 10)
}

// Format implements fmt.Formatter. It accepts all the regular formats
// for floating-point numbers ('b', 'e', 'E', 'f', 'F', 'g', 'G', 'x')
// as well as 'p' and 'v'. See (*Float).Text for the interpretation of
// 'p'. The 'v' format is handled like 'g'. Format also supports
// specification of the minimum precision in digits, the output field
// width, as well as the format flags '+' and ' ' for sign control, '0'
// for space or zero padding, and '-' for left or right justification.
func (x *Float) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f', 'x'
	}

	switch format {
	case 'e', 'E', 'f', 'b', 'p', 'x':
		// nothing to do
	case 'F':
		// (*Float).Text doesn't support 'F'; handle like 'f'
		format = 'f'
	case 'v':
		// handle like 'g'
		format = 'g'
		fallthrough
	case 'g', 'G':
		if !hasPrec {
			prec = -1 // default precision for 'g', 'G'
		}
	default:
		fmt.Fprintf(s, "%%!%c(*mpfloat.Float=%s)", format, x.String())
		return
	}
	var buf []byte
	buf = x.Append(buf, byte(format), prec)
	if len(buf) == 0 {
		buf = []byte("?") // should never happen, but don't crash
	}
	// len(buf) > 0

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case buf[0] == '+':
		// +Inf
		sign = "+"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x.form == finite:
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

// writeMultiple writes text n times to s.
func writeMultiple(s fmt.State, text string, n int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; n > 0; n-- {
			s.Write(b)
		}
	}
}
