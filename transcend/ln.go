// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// Ln sets z to the natural logarithm of x, rounded to z's precision and
// mode, and reports z and any error (InvalidArgument if x <= 0). cache supplies ln(2) at
// whatever guard precision the reduction settles on; a fresh
// *bigfloat.ConstantsCache works, but callers evaluating many logarithms
// should share one across calls to avoid recomputing ln(2) each time.
func Ln(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	if x.Sign() <= 0 {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Ln", "argument must be positive")
	}

	prec := z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	mode := z.Mode()

	// 1. Factor x = f * 2**e with f in [0.5, 1).
	f := bigfloat.NewNumber()
	e := x.MantExp(f)

	// f == 1/2 exactly only when x is itself a power of two,
	// x == 2**(e-1); ln(x) is then (e-1)*ln(2), exactly 0 for x == 1,
	// and the series step can be skipped entirely.
	one := bigfloat.NewNumber().SetUint64(1)
	if f.Cmp(ratAt(1, 2, prec)) == 0 {
		ln2 := cache.Ln2(prec + 2)
		result := bigfloat.NewNumber().SetPrec(prec + 2).SetMode(bigfloat.ToNearestEven).SetInt64(int64(e - 1))
		result, _ = result.Mul(result, ln2)
		zero := bigfloat.NewNumber()
		z.SetPrec(prec).SetMode(mode)
		return z.Add(result, zero)
	}

	// 2. Extra precision to counter cancellation from (f-1)/(f+1) when
	// f sits close to 1 (equivalently, x close to a power of two).
	pp := prec + uint32(f.LeadingOnes()) + 2
	wp := pp + _guardWords*_wordBits

	work := f.Clone()
	work.SetPrec(wp).SetMode(bigfloat.ToNearestEven)

	// 3. Repeated sqrt reduction: pull work toward 1 so the atanh
	// series below converges in few terms, counting the reductions so
	// their effect can be undone by doubling at the end
	// (ln(t) == 2**n * ln(t reduced n times)).
	n := 0
	threshold := ratAt(3, 4, wp)
	for work.Cmp(threshold) < 0 {
		work, _ = bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sqrt(work)
		n++
	}

	// 4. atanh series: ln(t) = 2*atanh((t-1)/(t+1))
	//                        = 2 * ( y + y**3/3 + y**5/5 + ... ), y = (t-1)/(t+1)
	num, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(work, one)
	den, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(work, one)
	y, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(num, den)
	y2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(y, y)

	sum := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	bigfloat.SumSeries(sum, y, wp, func(term *bigfloat.Number, k int) {
		t, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(term, y2)
		ratio := ratAt(int64(2*k-1), int64(2*k+1), wp)
		tm, _ := t.Mul(t, ratio)
		term.Set(tm)
	})

	lnWork := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	two := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(2)
	lnWork.Mul(two, sum)

	// Undo the n sqrt reductions: ln(f) = 2**n * ln(work).
	lnF, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(lnWork, n)

	// 5. Combine: ln(x) = ln(f) + e*ln(2).
	ln2 := cache.Ln2(wp)
	eTerm := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetInt64(int64(e))
	eTerm.Mul(eTerm, ln2)

	z.SetPrec(prec).SetMode(mode)
	return z.Add(lnF, eTerm)
}

// ratAt returns num/den evaluated at the given precision, rounded to
// nearest even; ln's series coefficients and reduction threshold are
// all small exact rationals.
func ratAt(num, den int64, prec uint32) *bigfloat.Number {
	n := bigfloat.NewNumber().SetPrec(prec).SetMode(bigfloat.ToNearestEven).SetInt64(num)
	d := bigfloat.NewNumber().SetPrec(prec).SetMode(bigfloat.ToNearestEven).SetInt64(den)
	r, _ := bigfloat.NewNumber().SetPrec(prec).SetMode(bigfloat.ToNearestEven).Quo(n, d)
	return r
}

// _guardWords and _wordBits size the extra working precision added on
// top of the cancellation guard from LeadingOnes, giving the repeated
// sqrt reduction and the final rounding down to prec bits a cushion of
// whole words rather than a handful of bits.
const (
	_guardWords = 2
	_wordBits   = 32
)
