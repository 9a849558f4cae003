// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Unbalanced division, for dividends much larger than the divisor:
// chunk the dividend from the most significant end down into
// divisor-sized blocks, solving each block (carrying the previous
// block's remainder into the next) with the recursive divider, and
// falling back to divBasic once a block is small. This is the strategy
// astro-float's mantissa/div.rs module uses for its own unbalanced
// case, adapted here into dec.go's recursive-division code shape.
package bigfloat

// divUnbalanced computes q, r such that u = q*v + r, 0 <= r < v, for
// any dividend length, by chunking u into blocks the size of v.
func divUnbalanced(u, v limbs) (q, r limbs) {
	u, v = u.norm(), v.norm()
	n := len(v)
	if n == 0 {
		return limbs{}, limbs{}
	}
	if n == 1 {
		qq := make(limbs, len(u))
		rr := divWVW(qq, 0, u, v[0])
		return qq.norm(), limbs{rr}.norm()
	}
	if len(u) <= 2*n {
		return divRecursive(u, v)
	}

	total := len(u)
	lead := total % n
	if lead == 0 {
		lead = n
	}

	pos := total - lead
	rem := u[pos:].norm()

	var qChunks []limbs // most significant block first
	qi, ri := divStep(rem, v)
	qChunks = append(qChunks, qi)
	rem = ri

	for pos > 0 {
		pos -= n
		combined := uadd(shiftWords(rem, n), u[pos:pos+n].norm())
		qi, ri := divStep(combined, v)
		qChunks = append(qChunks, qi)
		rem = ri
	}

	acc := snat{}
	for i, c := range qChunks {
		shift := (len(qChunks) - 1 - i) * n
		acc = acc.add(snat{abs: shiftWords(c, shift)})
	}
	return acc.abs.norm(), rem
}

// divStep divides a block sized for the recursive divider (at most
// 2*len(v) words), falling back to plain long division for anything
// that ends up smaller than the recursive threshold.
func divStep(u, v limbs) (q, r limbs) {
	if len(u) < len(v) {
		return limbs{}, u.norm()
	}
	return divRecursive(u, v)
}
