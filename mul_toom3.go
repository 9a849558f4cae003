// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Toom-3 multiplication: neither the teacher nor any other example in
// the corpus implements a Toom-Cook-3 step (db47h/decimal tops out at
// Karatsuba), so this is built directly from the standard 5-point
// evaluate/pointwise-multiply/interpolate scheme, evaluating at
// {0, 1, -1, 2, infinity} as described by Bodrato's Toom-Cook exposition
// and used by GMP's mpn_toom3_mul, in the split/combine code shape
// established by mul_toom2.go.
package bigfloat

// mulToom3 returns the product of x and y using one level of Toom-Cook-3
// splitting, falling back to Toom-2 for sub-products and for operand
// shapes Toom-3 is not a good fit for (very unbalanced lengths, or
// lengths too short to split into three parts usefully).
func mulToom3(x, y limbs) limbs {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return limbs{}
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < toom3Threshold || len(x) > 2*len(y) {
		return mulToom2(x, y)
	}

	k := (len(x) + 2) / 3
	x0, x1, x2 := split3(x, k)
	y0, y1, y2 := split3(y, k)

	px := toom3Points(x0, x1, x2)
	py := toom3Points(y0, y1, y2)

	var r [5]snat
	for i := range r {
		r[i] = mulSnat(px[i], py[i])
	}

	c := toom3Interpolate(r)

	acc := snat{}
	for i := 4; i >= 0; i-- {
		acc = acc.add(snat{neg: c[i].neg, abs: shiftWords(c[i].abs, i*k)})
	}
	return acc.abs.norm()
}

// split3 splits x at word offsets k and 2k into three parts, least
// significant first, each with leading zero words stripped (so any part
// may be shorter than k).
func split3(x limbs, k int) (p0, p1, p2 limbs) {
	n := len(x)
	at := func(lo, hi int) limbs {
		if lo > n {
			lo = n
		}
		if hi > n {
			hi = n
		}
		if lo >= hi {
			return limbs{}
		}
		return x[lo:hi].norm()
	}
	p0 = at(0, k)
	p1 = at(k, 2*k)
	p2 = at(2*k, 3*k)
	return
}

// toom3Points evaluates the degree-2 polynomial p0 + p1*t + p2*t**2 at
// t = 0, 1, -1, 2, infinity.
func toom3Points(p0, p1, p2 limbs) [5]snat {
	a0 := snat{abs: p0}
	a1 := snat{abs: p1}
	a2 := snat{abs: p2}
	sum02 := a0.add(a2)
	return [5]snat{
		a0,                     // t=0
		sum02.add(a1),          // t=1
		sum02.sub(a1),          // t=-1
		a0.add(a1.mulSmall(2)).add(a2.mulSmall(4)), // t=2
		a2,                     // t=infinity
	}
}

// mulSmall returns x*c for a small non-negative constant c.
func (x snat) mulSmall(c Word) snat {
	if x.isZero() || c == 0 {
		return snat{}
	}
	z := make(limbs, len(x.abs)+1)
	carry := mulAddVWW(z[:len(x.abs)], x.abs, c, 0)
	z[len(x.abs)] = carry
	return snat{neg: x.neg, abs: z.norm()}
}

// mulSnat returns the exact signed product of two snat values.
func mulSnat(a, b snat) snat {
	if a.isZero() || b.isZero() {
		return snat{}
	}
	return snat{neg: a.neg != b.neg, abs: mulDispatch(a.abs, b.abs)}
}

// shiftWords returns x shifted left by k whole Words (i.e. x * B**k).
func shiftWords(x limbs, k int) limbs {
	if x.isZero() || k == 0 {
		return x.norm()
	}
	z := make(limbs, len(x)+k)
	copy(z[k:], x)
	return z
}

// divExact2 returns x/2, assuming x is even.
func divExact2(x snat) snat {
	return snat{neg: x.neg, abs: x.abs.shr(1)}
}

// divExact3 returns x/3, assuming x is a multiple of 3.
func divExact3(x snat) snat {
	if x.isZero() {
		return snat{}
	}
	z := make(limbs, len(x.abs))
	divWVW(z, 0, x.abs, 3)
	return snat{neg: x.neg, abs: z.norm()}
}

// toom3Interpolate recovers the five coefficients c0..c4 of
// c0 + c1*t + c2*t**2 + c3*t**3 + c4*t**4 from its values at
// t = 0, 1, -1, 2, infinity, following the standard Toom-Cook-3
// interpolation formulas.
func toom3Interpolate(v [5]snat) [5]snat {
	v0, v1, vm1, v2, vinf := v[0], v[1], v[2], v[3], v[4]

	c0 := v0
	c4 := vinf

	// A = (v1 - vm1) / 2 = c1 + c3
	a := divExact2(v1.sub(vm1))
	// c2 = (v1 + vm1)/2 - c0 - c4
	c2 := divExact2(v1.add(vm1)).sub(c0).sub(c4)
	// B = (v2-v0)/2 - A = 2*c2 + 3*c3 + 8*c4, so c3 = (B - 2*c2 - 8*c4) / 3
	b := divExact2(v2.sub(v0)).sub(a)
	c3 := divExact3(b.sub(c2.mulSmall(2)).sub(c4.mulSmall(8)))
	c1 := a.sub(c3)

	return [5]snat{c0, c1, c2, c3, c4}
}
