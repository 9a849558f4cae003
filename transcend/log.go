// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend

import "github.com/go-bigfloat/bigfloat"

// Log sets z to log base b of x, computed as ln(x)/ln(b), rounded to
// z's precision and mode, and reports z and any error (InvalidArgument if x <= 0 or
// b <= 0 or b == 1).
func Log(z, x, base *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	one := bigfloat.NewNumber().SetUint64(1)
	if base.Sign() <= 0 || base.Cmp(one) == 0 {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Log", "base must be positive and != 1")
	}

	prec, mode, wp := workPrec(z, x)

	lnX, err := Ln(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), x, cache)
	if err != nil {
		return z, err
	}
	lnBase, err := Ln(bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven), base, cache)
	if err != nil {
		return z, err
	}
	z.SetPrec(prec).SetMode(mode)
	result, _ := bigfloat.NewNumber().SetPrec(wp).SetMode(bigfloat.ToNearestEven).Quo(lnX, lnBase)
	return z.Add(result, bigfloat.NewNumber())
}

// Log2 sets z to log base 2 of x and reports z and any error, via
// Log(z, x, 2, cache). It is a convenience wrapper: log base 2 comes up
// often enough in reduction code (LeadingOnes-style bit counting at
// arbitrary precision) to deserve its own entry point.
func Log2(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	two := bigfloat.NewNumber().SetUint64(2)
	return Log(z, x, two, cache)
}

// Log10 sets z to log base 10 of x and reports z and any error, via
// Log(z, x, 10, cache).
func Log10(z, x *bigfloat.Number, cache *bigfloat.ConstantsCache) (*bigfloat.Number, error) {
	ten := bigfloat.NewNumber().SetUint64(10)
	return Log(z, x, ten, cache)
}
