// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Toom-2 (Karatsuba) multiplication, the binary-radix counterpart of
// dec.go's decKaratsuba/decKaratsubaAdd/decKaratsubaSub trio, with the
// decimal-specific carry/borrow-by-power-of-ten logic replaced by plain
// Word carries since base 2**32 needs no rescaling.
package bigfloat

// mulToom2 returns the product of x and y using one level of Karatsuba
// splitting, recursing into mulBasic for the three half-size products
// once they fall below the schoolbook threshold.
func mulToom2(x, y limbs) limbs {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return limbs{}
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < toom2Threshold {
		return mulBasic(x, y)
	}

	k := (len(x) + 1) / 2
	if k > len(y) {
		// very unbalanced: split only x, into len(y)-word chunks each multiplied by all of y
		return mulUnbalanced(x, y, mulDispatch)
	}

	x0, x1 := splitAt(x, k)
	y0, y1 := splitAt(y, k)

	z0 := mulDispatch(x0, y0)
	z2 := mulDispatch(x1, y1)

	// z1 = (x0+x1)*(y0+y1) - z0 - z2
	xs := uadd(x0, x1)
	ys := uadd(y0, y1)
	zm := mulDispatch(xs, ys)
	zm = usub(zm, z0)
	zm = usub(zm, z2)

	z := make(limbs, len(x)+len(y))
	copy(z, z0)
	addAt(z, z2, 2*k)
	addAt(z, zm, k)
	return limbs(z).norm()
}

// splitAt splits x into a low part holding its first k words and a high
// part holding the rest, each with leading zero words stripped (so the
// low part may be shorter than k).
func splitAt(x limbs, k int) (lo, hi limbs) {
	if k > len(x) {
		k = len(x)
	}
	lo = x[:k].norm()
	hi = x[k:].norm()
	return
}

// addAt adds y into z starting at word offset off, growing no further
// than len(z) (the caller is expected to have sized z generously
// enough that no overflow beyond len(z) occurs).
func addAt(z limbs, y limbs, off int) {
	if len(y) == 0 {
		return
	}
	c := addVV(z[off:off+len(y)], z[off:off+len(y)], y)
	i := off + len(y)
	for c != 0 && i < len(z) {
		s, cc := addWW(z[i], 0, c)
		z[i] = s
		c = cc
		i++
	}
}

// mulUnbalanced handles x much longer than y by splitting x into
// len(y)-sized (or smaller) chunks and accumulating chunk*y via algo.
func mulUnbalanced(x, y limbs, algo func(a, b limbs) limbs) limbs {
	z := make(limbs, len(x)+len(y))
	chunk := len(y)
	if chunk == 0 {
		return limbs{}
	}
	for off := 0; off < len(x); off += chunk {
		end := off + chunk
		if end > len(x) {
			end = len(x)
		}
		p := algo(x[off:end], y)
		addAt(z, p, off)
	}
	return z.norm()
}
