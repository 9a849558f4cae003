// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// Sinh sets z to sinh(x) = (e**x - e**-x)/2, rounded to z's precision
// and mode, and reports z.
func Sinh(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	prec, mode, wp := workPrec(z, x)
	ep := Exp(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	negX := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Neg(x)
	en := Exp(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), negX, cache)
	diff, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(ep, en)
	half, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(diff, -1)
	z.SetPrec(prec).SetMode(mode)
	zz, _ := z.Add(half, bigfloat.NewNumber())
	return zz
}

// Cosh sets z to cosh(x) = (e**x + e**-x)/2, rounded to z's precision
// and mode, and reports z.
func Cosh(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	prec, mode, wp := workPrec(z, x)
	ep := Exp(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	negX := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Neg(x)
	en := Exp(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), negX, cache)
	sum, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(ep, en)
	half, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(sum, -1)
	z.SetPrec(prec).SetMode(mode)
	zz, _ := z.Add(half, bigfloat.NewNumber())
	return zz
}

// Tanh sets z to tanh(x) = sinh(x)/cosh(x), rounded to z's precision
// and mode, and reports z. cosh(x) is never zero for real x, so this
// never fails.
func Tanh(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) *bigfloat.Number {
	prec, mode, wp := workPrec(z, x)
	s := Sinh(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	c := Cosh(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	q, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(s, c)
	z.SetPrec(prec).SetMode(mode)
	zz, _ := z.Add(q, bigfloat.NewNumber())
	return zz
}

// Asinh sets z to asinh(x) = ln(x + sqrt(x**2+1)), rounded to z's
// precision and mode, and reports z and any error from the underlying
// Ln call (never triggered here, since x + sqrt(x**2+1) > 0 for every
// real x). A negative x is evaluated as -asinh(|x|), so the sum never
// cancels.
func Asinh(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	prec, mode, wp := workPrec(z, x)
	absX := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Abs(x)
	x2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(absX, absX)
	one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	x2p1, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(x2, one)
	root, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sqrt(x2p1)
	arg, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(absX, root)
	lnArg, err := Ln(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), arg, cache)
	if err != nil {
		return z, err
	}
	if x.Sign() < 0 {
		lnArg.Neg(lnArg)
	}
	z.SetPrec(prec).SetMode(mode)
	return z.Add(lnArg, bigfloat.NewNumber())
}

// Acosh sets z to acosh(x) = ln(x + sqrt(x**2-1)), rounded to z's
// precision and mode, and reports z and any error (InvalidArgument if
// x < 1).
func Acosh(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	one := bigfloat.NewNumber().SetUint64(1)
	if x.Cmp(one) < 0 {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Acosh", "argument must be >= 1")
	}
	prec, mode, wp := workPrec(z, x)
	oneWp := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	x2, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(x, x)
	x2m1, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(x2, oneWp)
	root, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sqrt(x2m1)
	arg, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(x, root)
	z.SetPrec(prec).SetMode(mode)
	return Ln(z, arg, cache)
}

// Atanh sets z to atanh(x) = ln((1+x)/(1-x))/2, rounded to z's
// precision and mode, and reports z and any error (InvalidArgument if
// |x| >= 1).
func Atanh(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	one := bigfloat.NewNumber().SetUint64(1)
	absX := bigfloat.NewNumber().Abs(x)
	if absX.Cmp(one) >= 0 {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Atanh", "argument must be in (-1, 1)")
	}
	prec, mode, wp := workPrec(z, x)
	oneWp := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	num, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Add(oneWp, x)
	den, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Sub(oneWp, x)
	ratio, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(num, den)
	lnRatio, err := Ln(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), ratio, cache)
	if err != nil {
		return z, err
	}
	half, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Ldexp(lnRatio, -1)
	z.SetPrec(prec).SetMode(mode)
	return z.Add(half, bigfloat.NewNumber())
}

// workPrec resolves the precision and mode a kernel should compute at
// (z's own; z.Prec never reports 0) and derives a guarded working
// precision wide enough to absorb the rounding error of a small,
// fixed number of chained operations.
func workPrec(z, x *bigfloat.Number) (prec uint32, mode bigfloat.RoundingMode, wp uint32) {
	prec = z.Prec()
	if prec == 0 {
		prec = x.Prec()
	}
	mode = z.Mode()
	wp = prec + _guardWords*_wordBits
	return prec, mode, wp
}
