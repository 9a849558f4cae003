// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// reduceQuadrant reduces x to a quadrant index k and a remainder r with
// |r| <= pi/4, such that x == k*(pi/2) + r, by subtracting the nearest
// multiple of pi/2 found via a single division at the working
// precision wp. sin and cos both need the same reduction, differing
// only in how k's residue mod 4 selects a sign and a swap of sin(r)
// and cos(r).
func reduceQuadrant(x *bigfloat.Number, wp uint32, cache *bigfloat.ConstantsCache) (k int64, r *bigfloat.Number) {
	pi := cache.Pi(wp)
	halfPi, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(pi, -1)
	kf, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(x, halfPi)
	k = roundToInt64(kf)
	kNum := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(k)
	kHalfPi, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(kNum, halfPi)
	r, _ = bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(x, kHalfPi)
	return k, r
}

// sinSeries and cosSeries evaluate their Taylor series about 0 at
// working precision wp, valid for any r but only fast-converging for
// the small |r| <= pi/4 that reduceQuadrant produces.
func sinSeries(r *bigfloat.Number, wp uint32) *bigfloat.Number {
	r2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(r, r)
	sum := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	bigfloat.SumSeries(sum, r, wp, func(term *bigfloat.Number, k int) {
		t, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(term, r2)
		denom := int64(2*k) * int64(2*k+1)
		d := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(denom)
		t, _ = t.Quo(t, d)
		t.Neg(t)
		term.Set(t)
	})
	return sum
}

func cosSeries(r *bigfloat.Number, wp uint32) *bigfloat.Number {
	r2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(r, r)
	one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	first := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Set(one)
	tail := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	bigfloat.SumSeries(tail, first, wp, func(term *bigfloat.Number, k int) {
		t, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(term, r2)
		denom := int64(2*k-1) * int64(2*k)
		d := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(denom)
		t, _ = t.Quo(t, d)
		t.Neg(t)
		term.Set(t)
	})
	return tail
}

// sinCosAtQuadrant returns sin(x) and cos(x) for the true angle
// x = k*(pi/2) + r, combining the small-angle series values sr =
// sin(r), cr = cos(r) via the quadrant's sign and swap pattern:
//
//	k mod 4   sin(x)   cos(x)
//	  0        sr       cr
//	  1        cr      -sr
//	  2       -sr      -cr
//	  3       -cr       sr
func sinCosAtQuadrant(k int64, sr, cr *bigfloat.Number, wp uint32) (sinX, cosX *bigfloat.Number) {
	quad := ((k % 4) + 4) % 4
	neg := func(n *bigfloat.Number) *bigfloat.Number {
		return bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Neg(n)
	}
	switch quad {
	case 0:
		return sr, cr
	case 1:
		return cr, neg(sr)
	case 2:
		return neg(sr), neg(cr)
	default: // 3
		return neg(cr), sr
	}
}

// Sin sets z to sin(x), rounded to z's precision and mode, and reports
// z.
func Sin(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	sinX, _ := sinCos(x, z, cache)
	return z.Set(sinX)
}

// Cos sets z to cos(x), rounded to z's precision and mode, and reports
// z.
func Cos(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	_, cosX := sinCos(x, z, cache)
	return z.Set(cosX)
}

// Tan sets z to tan(x) = sin(x)/cos(x), rounded to z's precision and
// mode, and reports z and any error (DivisionByZero if x is an odd
// multiple of pi/2 to within the working precision).
func Tan(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	wp := prec + _guardWords*_wordBits
	sinX, cosX := sinCos(x, bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), cache)
	if cosX.IsZero() {
		return z, bigfloat.NewError(bigfloat.DivisionByZero, "Tan", "argument is an odd multiple of pi/2")
	}
	q, err := z.Quo(sinX, cosX)
	return q, err
}

// sinCos is the shared implementation behind Sin, Cos and Tan: it
// reduces x to a quadrant via reduceQuadrant, evaluates sin and cos of
// the small remainder via their Taylor series, then combines them per
// the quadrant into sin(x) and cos(x), both rounded to z's requested
// precision and mode.
func sinCos(x, z *bigfloat.Number, cache *bigfloat.ConstantsCache) (sinX, cosX *bigfloat.Number) {
	prec := z.Prec()
	if prec == 0 {
		prec = defaultWorkPrec
	}
	mode := z.Mode()
	if x.IsZero() {
		return bigfloat.NewNumber().SetPrec(prec).SetMode(mode).SetUint64(0),
			bigfloat.NewNumber().SetPrec(prec).SetMode(mode).SetUint64(1)
	}

	wp := prec + uint32(x.LeadingOnes()) + _guardWords*_wordBits
	k, r := reduceQuadrant(x, wp, cache)
	sr := sinSeries(r, wp)
	cr := cosSeries(r, wp)
	s, c := sinCosAtQuadrant(k, sr, cr, wp)

	zero := bigfloat.NewNumber()
	sinX, _ = bigfloat.NewNumber().SetPrec(prec).SetMode(mode).Add(s, zero)
	cosX, _ = bigfloat.NewNumber().SetPrec(prec).SetMode(mode).Add(c, zero)
	return sinX, cosX
}

// defaultWorkPrec is the fallback should z.Prec report 0, so Sin/Cos/Tan
// never silently operate at precision 0.
const defaultWorkPrec = 64
