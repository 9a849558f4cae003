// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ConstantsCache computes and caches the transcendental constants
// (pi, ln 2) that the transcend package's kernels need internally,
// generalizing math/pi.go's computePi (Gauss-Legendre AGM) and
// math/log.go's recompute-on-higher-precision-request pattern. Unlike
// the teacher, which keeps these as package-level var _pi/_log10
// caches, every ConstantsCache here is caller-owned: nothing is shared
// across callers unless they explicitly share one, so there is no
// global mutable state and no need for a guarding mutex as long as a
// single cache instance isn't shared across goroutines without one.
package bigfloat

// ConstantsCache holds the highest-precision value of each constant
// computed so far. The zero value is ready to use.
type ConstantsCache struct {
	pi  *Number
	ln2 *Number
}

// NewConstantsCache returns an empty cache. Constants are computed
// lazily, at whichever precision is first requested.
func NewConstantsCache() *ConstantsCache {
	return &ConstantsCache{}
}

// Pi returns pi rounded to prec bits. If the cache does not already
// hold pi to at least that many bits, it is recomputed (at a word of
// guard precision beyond prec) and the cache is updated.
func (c *ConstantsCache) Pi(prec uint32) *Number {
	if c.pi == nil || c.pi.Prec() < prec {
		c.pi = computePi(prec + _W)
	}
	z, _ := NewNumber().SetPrec(prec).SetMode(ToNearestEven).roundExisting("Pi", c.pi)
	return z
}

// Ln2 returns ln(2) rounded to prec bits, computed via 2*atanh(1/3)
// (since (1+1/3)/(1-1/3) = 2), the same series shape transcend.Ln uses
// for its atanh reduction step and the fastest-converging of the
// elementary ln(2) series at x = 1/3.
func (c *ConstantsCache) Ln2(prec uint32) *Number {
	if c.ln2 == nil || c.ln2.Prec() < prec {
		c.ln2 = computeLn2(prec + _W)
	}
	z, _ := NewNumber().SetPrec(prec).SetMode(ToNearestEven).roundExisting("Ln2", c.ln2)
	return z
}

// ratNumber returns num/den evaluated at the given precision.
func ratNumber(num, den int64, prec uint32) *Number {
	n := NewNumber().SetPrec(prec).SetMode(ToNearestEven).SetInt64(num)
	d := NewNumber().SetPrec(prec).SetMode(ToNearestEven).SetInt64(den)
	z, _ := NewNumber().SetPrec(prec).SetMode(ToNearestEven).Quo(n, d)
	return z
}

// computeLn2 computes ln(2) to prec bits via the atanh series
// atanh(x) = x + x**3/3 + x**5/5 + ..., evaluated at x = 1/3.
func computeLn2(prec uint32) *Number {
	mode := ToNearestEven
	x := ratNumber(1, 3, prec)
	x2, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(x, x)
	sum := NewNumber().SetPrec(prec).SetMode(mode)
	SumSeries(sum, x, prec, func(term *Number, n int) {
		t, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(term, x2)
		num := NewNumber().SetPrec(prec).SetMode(mode).SetInt64(int64(2*n - 1))
		den := NewNumber().SetPrec(prec).SetMode(mode).SetInt64(int64(2*n + 1))
		t, _ = t.Mul(t, num)
		t, _ = t.Quo(t, den)
		term.Set(t)
	})
	two := NewNumber().SetPrec(prec).SetMode(mode).SetUint64(2)
	result, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(two, sum)
	return result
}

// computePi computes pi to prec bits with the Gauss-Legendre AGM
// iteration, the same algorithm as the teacher's computePi. Unlike the
// teacher's version, which carefully reuses a small set of
// pre-allocated temporaries to minimize garbage, this one allocates a
// fresh Number per step: a clarity-over-micro-optimization tradeoff
// acceptable here since constants are computed once per precision
// increase and cached, not on every transcend call.
func computePi(prec uint32) *Number {
	mode := ToNearestEven
	one := NewNumber().SetPrec(prec).SetMode(mode).SetUint64(1)
	two := NewNumber().SetPrec(prec).SetMode(mode).SetUint64(2)
	four := NewNumber().SetPrec(prec).SetMode(mode).SetUint64(4)
	half := ratNumber(1, 2, prec)
	quarter := ratNumber(1, 4, prec)
	epsilon := epsilonAt(prec)

	a := NewNumber().SetPrec(prec).SetMode(mode).Set(one)
	u, _ := NewNumber().SetPrec(prec).SetMode(mode).Sqrt(two)
	b, _ := NewNumber().SetPrec(prec).SetMode(mode).Quo(one, u)
	t := quarter.Clone()
	p := NewNumber().SetPrec(prec).SetMode(mode).Set(one)

	for {
		aPrev := a.Clone()
		sum, _ := NewNumber().SetPrec(prec).SetMode(mode).Add(a, b)
		a, _ = NewNumber().SetPrec(prec).SetMode(mode).Mul(sum, half)

		prod, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(aPrev, b)
		b, _ = NewNumber().SetPrec(prec).SetMode(mode).Sqrt(prod)

		diff, _ := NewNumber().SetPrec(prec).SetMode(mode).Sub(aPrev, a)
		sq, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(diff, diff)
		term, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(sq, p)
		t, _ = NewNumber().SetPrec(prec).SetMode(mode).Sub(t, term)

		delta, _ := NewNumber().SetPrec(prec).SetMode(mode).Sub(a, b)
		if NewNumber().SetPrec(prec).SetMode(mode).Abs(delta).Cmp(epsilon) <= 0 {
			break
		}
		p, _ = NewNumber().SetPrec(prec).SetMode(mode).Mul(p, two)
	}

	sum, _ := NewNumber().SetPrec(prec).SetMode(mode).Add(a, b)
	numerator, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(sum, sum)
	denom, _ := NewNumber().SetPrec(prec).SetMode(mode).Mul(t, four)
	result, _ := NewNumber().SetPrec(prec).SetMode(mode).Quo(numerator, denom)
	return result
}
