// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// Exp sets z to e**x, rounded to z's precision and mode, and reports
// z. It follows
// bigExpOptimized's three-stage reduction: split x = n*ln2 + r with r
// small, halve r bigfloat.ReductionDepth more times so the Taylor
// series below converges in a bounded number of terms, sum the series,
// then undo both reductions: squaring to undo the halving (the
// doubling identity exp(2t) = exp(t)**2), then an exact Ldexp by n to
// undo the ln2 split (exp(x) = exp(r') * 2**n).
func Exp(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	mode := z.Mode()

	if x.IsZero() {
		z.SetPrec(prec).SetMode(mode)
		return z.SetUint64(1)
	}

	wp := prec + uint32(x.LeadingOnes()) + _guardWords*_wordBits

	ln2 := cache.Ln2(wp)
	nf, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(x, ln2)
	n := roundToInt64(nf)

	nNum := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(n)
	nLn2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(nNum, ln2)
	r, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(x, nLn2)

	s := bigfloat.ReductionDepth(r)
	rr := bigfloat.ReduceByPow2(r, s)
	rr.SetPrec(wp).SetMode(bigfloat.ToNearestEven)

	// Taylor series: exp(rr) = 1 + rr + rr**2/2! + rr**3/3! + ...
	// SumSeries accumulates the rr, rr**2/2!, ... tail (term_0 = rr); the
	// leading 1 is added back in afterward.
	one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	first := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Set(rr)
	tail := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	bigfloat.SumSeries(tail, first, wp, func(term *bigfloat.Number, k int) {
		t, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(term, rr)
		kk := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(int64(k + 1))
		t, _ = t.Quo(t, kk)
		term.Set(t)
	})
	sum, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(one, tail)

	restored := bigfloat.RestoreByPow2(sum, s)

	scaled, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(restored, int(n))
	z.SetPrec(prec).SetMode(mode)
	zz, _ := z.Add(scaled, bigfloat.NewNumber())
	return zz
}

// roundToInt64 rounds x to the nearest int64, ties away from zero.
func roundToInt64(x *bigfloat.Number) int64 {
	f, _ := x.Float64()
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}
