// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "math/bits"

const debugFloat = true

// nat is an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// stored in a little-endian Word slice of length n. A number is normalized
// if the slice contains no leading (i.e. trailing in slice order) zero
// words. The normalized representation of 0 is the empty or nil slice.
//
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result.
type nat []Word

var (
	natOne = nat{1}
	natTwo = nat{2}
)

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	// _W == 32
	z = z.make(2)
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z
}

// norm truncates leading zero words.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// bitLen returns the length of x in bits. The result is 0 for x == 0.
func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len(uint(x[i]))
	}
	return 0
}

// bit returns the value of the i'th bit of x, with lsb == bit 0.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// sticky returns 1 if there is a 1 bit in the i least significant bits of
// x, and 0 otherwise.
func (x nat) sticky(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		for _, w := range x {
			if w != 0 {
				return 1
			}
		}
		return 0
	}
	for _, w := range x[:j] {
		if w != 0 {
			return 1
		}
	}
	if x[j]<<(_W-i%_W) != 0 {
		return 1
	}
	return 0
}

func (x nat) trailingZeroBits() uint {
	if len(x) == 0 {
		return 0
	}
	var i uint
	for x[i] == 0 {
		i++
	}
	return i*_W + uint(bits.TrailingZeros(uint(x[i])))
}

func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}
	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	// m > 0
	z = z.make(m + 1)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z to the difference x-y; x must be >= y.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		panic("mpfloat: underflow")
	case m == 0:
		return z[:0]
	case n == 0:
		return z.set(x)
	}
	// m > 0
	z = z.make(m)
	c := subVV(z[:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("mpfloat: underflow")
	}
	return z.norm()
}

// shl sets z to x<<s.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0
	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	for i := 0; i < n-m; i++ {
		z[i] = 0
	}
	return z.norm()
}

// shr sets z to x>>s, truncating the shifted-out bits.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)
	return z.norm()
}

func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	// m > 0
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// mul sets z to the product x*y using schoolbook multiplication.
// z must not alias x or y.
func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)
	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1
	if debugFloat && (alias(z, x) || alias(z, y)) {
		panic("mul: invalid aliasing")
	}
	z = z.make(m + n)
	for i := range z {
		z[i] = 0
	}
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}
	return z.norm()
}

// div sets q = u/v and r = u%v. v must not be zero, and q and r must not
// alias u or v.
func (q nat) div(r, u, v nat) (nat, nat) {
	if len(v) == 0 {
		panic("mpfloat: division by zero")
	}
	if u.cmp(v) < 0 {
		return q[:0], r.set(u)
	}
	if len(v) == 1 {
		var r2 Word
		q, r2 = q.divW(u, v[0])
		return q, r.setWord(r2)
	}
	return q.divLarge(r, u, v)
}

func (q nat) divW(x nat, y Word) (nat, Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("mpfloat: division by zero")
	case y == 1:
		return q.set(x), 0
	case m == 0:
		return q[:0], 0
	}
	// m > 0
	q = q.make(m)
	r := divWVW(q, x, y, 0)
	return q.norm(), r
}

// divLarge implements Knuth's algorithm D for len(v) > 1.
func (q nat) divLarge(r, uIn, vIn nat) (nat, nat) {
	n := len(vIn)
	m := len(uIn) - n

	// D1: normalize v so that its top bit is set.
	shift := nlz(vIn[n-1])
	v := make(nat, n)
	shlVU(v, vIn, shift)
	u := make(nat, len(uIn)+1)
	u[len(uIn)] = shlVU(u[:len(uIn)], uIn, shift)

	q = q.make(m + 1)
	qhatv := make(nat, n+1)
	vn1, vn2 := v[n-1], v[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words of u and the top word
		// of v, then correct it using the third word.
		qhat := Word(_M)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)
			x1, x2 := mulWW(qhat, vn2)
			for greaterThan(x1, x2, rhat, u[j+n-2]) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break // rhat overflow, qhat*vn2 now fits
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], v, qhat, 0)
		if c := subVV(u[j:j+n+1], u[j:j+n+1], qhatv); c != 0 {
			// D6: qhat was one too large, add back.
			c := addVV(u[j:j+n], u[j:j+n], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: denormalize the remainder.
	r = r.shr(u.norm(), shift)
	return q.norm(), r
}

// sqrt sets z to ⌊√x⌋ using Newton's method and returns z. The number of
// iterations is bounded by log2 of x's bit length. z must not alias x.
func (z nat) sqrt(x nat) nat {
	if x.cmp(natOne) <= 0 {
		return z.set(x)
	}

	// Start with a value known to be >= ⌊√x⌋, then iterate
	//   z_{k+1} = ⌊(z_k + ⌊x/z_k⌋)/2⌋
	// which converges monotonically from above; stop as soon as it stops
	// decreasing.
	var z1, z2 nat
	z1 = z1.setWord(1)
	z1 = z1.shl(z1, uint(x.bitLen()+1)/2) // z1 = 2^ceil(bitLen(x)/2)
	for {
		z2, _ = z2.div(nil, x, z1)
		z2 = z2.add(z2, z1)
		z2 = z2.shr(z2, 1)
		if z2.cmp(z1) >= 0 {
			// z1 is answer
			return z.set(z1)
		}
		z1, z2 = z2, z1
	}
}

// bytes writes the big-endian representation of x to buf and returns the
// number of bytes written. buf must be large enough to hold all of x.
func (x nat) bytes(buf []byte) (i int) {
	i = len(buf)
	for _, d := range x {
		for j := 0; j < _S; j++ {
			i--
			if i >= 0 {
				buf[i] = byte(d)
			} else if byte(d) != 0 {
				panic("mpfloat: buffer too small to fit value")
			}
			d >>= 8
		}
	}
	if i < 0 {
		i = 0
	}
	for len(buf) > i && buf[i] == 0 {
		i++
	}
	return
}

// setBytes interprets buf as big-endian bytes and sets z to that value.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)
	i := len(buf)
	for k := 0; i >= _S; k++ {
		z[k] = Word(bigEndianWord(buf[i-_S : i]))
		i -= _S
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			d |= Word(buf[i-1]) << s
			i--
		}
		z[len(z)-1] = d
	}
	return z.norm()
}

func bigEndianWord(buf []byte) uint {
	if _W == 64 {
		return uint(uint64(buf[7]) | uint64(buf[6])<<8 | uint64(buf[5])<<16 |
			uint64(buf[4])<<24 | uint64(buf[3])<<32 | uint64(buf[2])<<40 |
			uint64(buf[1])<<48 | uint64(buf[0])<<56)
	}
	return uint(uint32(buf[3]) | uint32(buf[2])<<8 | uint32(buf[1])<<16 | uint32(buf[0])<<24)
}
