// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// Atan sets z to atan(x), rounded to z's precision and mode, and
// reports z.
//
// |x| > 1 is first folded to [0,1) via atan(x) = sign(x)*pi/2 -
// atan(1/x); what remains is then repeatedly halved with the
// half-angle identity atan(t) = 2*atan(t/(1+sqrt(1+t**2))), the same
// reduce-then-restore-by-doubling shape bigfloat.ReductionDepth and
// bigfloat.Ldexp serve for Exp, before the Taylor series is summed.
func Atan(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	mode := z.Mode()
	z.SetPrec(prec).SetMode(mode)

	if x.IsZero() {
		return z.SetUint64(0)
	}

	wp := prec + uint32(x.LeadingOnes()) + _guardWords*_wordBits

	one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	absX := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Abs(x)
	if absX.Cmp(one) > 0 {
		inv, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(one, absX)
		atanInv := atanSmallRange(inv, wp)
		halfPi, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(cache.Pi(wp), -1)
		result, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(halfPi, atanInv)
		if x.Sign() < 0 {
			result.Neg(result)
		}
		zz, _ := z.Add(result, bigfloat.NewNumber())
		return zz
	}

	result := atanSmallRange(absX, wp)
	if x.Sign() < 0 {
		result.Neg(result)
	}
	zz, _ := z.Add(result, bigfloat.NewNumber())
	return zz
}

// atanSmallRange computes atan(t) for t >= 0 (Atan passes t <= 1, Asin
// may pass larger ratios) at working precision wp via half-angle
// reduction followed by the Leibniz/Gregory series.
func atanSmallRange(t *bigfloat.Number, wp uint32) *bigfloat.Number {
	if t.IsZero() {
		return bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	}

	n := bigfloat.ReductionDepth(t)
	if n > 64 {
		n = 64 // the first half-angle step already maps any t below 1; the recurrence converges far faster than ReductionDepth's generic exp-oriented bound assumes
	}

	one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	r := t.Clone()
	r.SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	for i := 0; i < n; i++ {
		r2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(r, r)
		onePlusR2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(one, r2)
		sq, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sqrt(onePlusR2)
		denom, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(one, sq)
		next, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(r, denom)
		r = next
	}

	r2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(r, r)
	sum := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	bigfloat.SumSeries(sum, r, wp, func(term *bigfloat.Number, k int) {
		tt, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(term, r2)
		nm := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(int64(2*k - 1))
		d := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(int64(2*k + 1))
		tt, _ = tt.Mul(tt, nm)
		tt, _ = tt.Quo(tt, d)
		tt.Neg(tt)
		term.Set(tt)
	})

	result, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(sum, n)
	return result
}

// Asin sets z to asin(x), rounded to z's precision and mode, and
// reports z and any error (InvalidArgument if |x| > 1), via
// asin(x) = atan(x / sqrt(1-x**2)), with the x == +-1 boundary handled
// directly as +-pi/2.
func Asin(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	mode := z.Mode()
	wp := prec + _guardWords*_wordBits

	one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	absX := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Abs(x)
	c := absX.Cmp(one)
	if c > 0 {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Asin", "argument out of range [-1, 1]")
	}
	z.SetPrec(prec).SetMode(mode)
	if c == 0 {
		halfPi, _ := bigfloat.NewNumber().SetPrec(prec).SetMode(mode).Ldexp(cache.Pi(prec), -1)
		if x.Sign() < 0 {
			halfPi.Neg(halfPi)
		}
		return z.Set(halfPi), nil
	}
	if x.IsZero() {
		return z.SetUint64(0), nil
	}

	x2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(absX, absX)
	oneMinusX2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(one, x2)
	denom, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sqrt(oneMinusX2)
	ratio, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(absX, denom)

	result := atanSmallRange(ratio, wp)
	if x.Sign() < 0 {
		result.Neg(result)
	}
	return z.Add(result, bigfloat.NewNumber())
}

// Acos sets z to acos(x) = pi/2 - asin(x), rounded to z's precision and
// mode, and reports z and any error (InvalidArgument if |x| > 1).
func Acos(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	mode := z.Mode()
	wp := prec + _guardWords*_wordBits

	asinX, err := Asin(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	if err != nil {
		return z, err
	}
	halfPi, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(cache.Pi(wp), -1)
	z.SetPrec(prec).SetMode(mode)
	return z.Sub(halfPi, asinX)
}
