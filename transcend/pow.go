// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// Pow sets z to x**y, rounded to z's precision and mode, and reports z
// and any error.
//
// A y that is an exact integer of modest size is evaluated by repeated
// squaring (binary exponentiation), exact apart from the rounding each
// Mul performs at the working precision, and works for negative x. Any
// other y requires x > 0 and is evaluated as exp(y * ln(x)), the
// general real-exponent definition.
func Pow(z, x, y *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	prec, mode, wp := workPrec(z, x)

	if y.IsZero() {
		z.SetPrec(prec).SetMode(mode)
		return z.SetUint64(1), nil
	}
	if x.IsZero() {
		if y.Sign() < 0 {
			return z, bigfloat.NewError(bigfloat.DivisionByZero, "Pow", "zero raised to a negative power")
		}
		z.SetPrec(prec).SetMode(mode)
		return z.SetUint64(0), nil
	}

	if n, ok := smallInt(y); ok {
		return powInt(z, x, n, prec, mode, wp), nil
	}

	if x.Sign() < 0 {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Pow", "negative base requires an integer exponent")
	}

	lnX, err := Ln(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	if err != nil {
		return z, err
	}
	exponent, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(y, lnX)
	z.SetPrec(prec).SetMode(mode)
	return Exp(z, exponent, cache), nil
}

// smallInt reports whether y holds an exact integer value representable
// in an int64, and if so, returns it.
func smallInt(y *bigfloat.Number) (int64, bool) {
	f, acc := y.Float64()
	if acc != bigfloat.Exact {
		return 0, false
	}
	if f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// powInt computes x**n by binary exponentiation at working precision
// wp, then rounds down to prec/mode. n == 0 is handled by Pow before
// powInt is ever called.
func powInt(z, x *bigfloat.Number, n int64, prec uint32, mode bigfloat.RoundingMode, wp uint32) *bigfloat.Number {
	neg := n < 0
	if neg {
		n = -n
	}
	base := x.Clone()
	base.SetPrec(wp).SetMode(bigfloat.ToNearestEven)
	result := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
	for n > 0 {
		if n&1 == 1 {
			result, _ = bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base, _ = bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Mul(base, base)
		}
	}
	z.SetPrec(prec).SetMode(mode)
	if neg {
		one := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).SetUint64(1)
		inv, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(one, result)
		zz, _ := z.Add(inv, bigfloat.NewNumber())
		return zz
	}
	zz, _ := z.Add(result, bigfloat.NewNumber())
	return zz
}
