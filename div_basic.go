// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Long division by Knuth's Algorithm D (TAOCP vol 2, 4.3.1), the
// binary-radix counterpart of dec.go's divBasic: normalize both
// operands so the divisor's top word has its high bit set, estimate
// each quotient word from the top two dividend words, then refine and
// correct with at most one add-back.
package bigfloat

const wordBase = uint64(1) << _W

// divBasic computes q, r such that u = q*v + r, 0 <= r < v, for a
// divisor v with two or more words. Single-word divisors are handled
// more cheaply by the caller (see mantissa.go's division dispatch).
func divBasic(u, v limbs) (q, r limbs) {
	u, v = u.norm(), v.norm()
	n := len(v)
	m := len(u) - n
	if m < 0 {
		return limbs{}, u.clone()
	}
	if n == 1 {
		qq := make(limbs, len(u))
		rr := divWVW(qq, 0, u, v[0])
		return qq.norm(), limbs{rr}.norm()
	}

	shift := leadingZeros(v[n-1])
	vn := make(limbs, n)
	shlVU(vn, v, shift)

	un := make(limbs, len(u)+1)
	c := shlVU(un[:len(u)], u, shift)
	un[len(u)] = c

	qs := make(limbs, m+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat uint64
		top := uint64(un[j+n])<<_W | uint64(un[j+n-1])
		if un[j+n] == vn[n-1] {
			qhat = wordBase - 1
			rhat = top - qhat*uint64(vn[n-1])
		} else {
			qq, rr := divWW(un[j+n], un[j+n-1], vn[n-1])
			qhat, rhat = uint64(qq), uint64(rr)
		}

		for rhat < wordBase && qhat*uint64(vn[n-2]) > rhat*wordBase+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
		}

		borrow := mulSubVWW(un[j:j+n+1], vn, Word(qhat))
		if borrow != 0 {
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
		}
		qs[j] = Word(qhat)
	}

	r = make(limbs, n)
	shrVU(r, un[:n], shift)
	return qs.norm(), r.norm()
}

// mulSubVWW computes z -= v*q for an (n+1)-word z and n-word v, q a
// single Word multiplier, returning the borrow produced if the
// subtraction underflows z's top word.
func mulSubVWW(z, v limbs, q Word) Word {
	var carry Word
	var borrow Word
	for i, vi := range v {
		hi, lo := mulAddWWW(vi, q, carry)
		carry = hi
		d, b := subWW(z[i], lo, borrow)
		z[i] = d
		borrow = b
	}
	d, b := subWW(z[len(v)], carry, borrow)
	z[len(v)] = d
	return b
}
