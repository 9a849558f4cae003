// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import "github.com/go-bigfloat/bigfloat"

// Neg sets z = -x and reports z.
func (z *Float) Neg(x *Float) *Float {
	*z = *x
	z.neg = !x.neg
	return z
}

// Abs sets z = |x| and reports z.
func (z *Float) Abs(x *Float) *Float {
	*z = *x
	z.neg = false
	return z
}

// binaryOp runs a two-operand core operation after handling every
// NaN/Inf combination at the wrapper boundary, per spec.md §6: the
// core bigfloat.Number layer never sees a non-finite value.
func binaryOp(z, x, y *Float, op func(a, b *bigfloat.Number) (*bigfloat.Number, error), infRule func(x, y *Float) *Float) (*Float, error) {
	if x.form == isNaN || y.form == isNaN {
		return z.SetNaN(), nil
	}
	if x.form == isInf || y.form == isInf {
		return infRule(x, y), nil
	}
	a, b := x.toNumber(), y.toNumber()
	n, err := op(a, b)
	if err != nil {
		return z, err
	}
	z.setFromNumber(n)
	return z, nil
}

// Add sets z = x + y and reports z and any error.
func (z *Float) Add(x, y *Float) (*Float, error) {
	return binaryOp(z, x, y, func(a, b *bigfloat.Number) (*bigfloat.Number, error) {
		return bigfloat.NewNumber().SetPrec(corePrec).Add(a, b)
	}, func(x, y *Float) *Float {
		if x.form == isInf && y.form == isInf && x.neg != y.neg {
			return z.SetNaN() // +Inf + -Inf
		}
		if x.form == isInf {
			return z.SetInf(x.neg)
		}
		return z.SetInf(y.neg)
	})
}

// Sub sets z = x - y and reports z and any error.
func (z *Float) Sub(x, y *Float) (*Float, error) {
	return binaryOp(z, x, y, func(a, b *bigfloat.Number) (*bigfloat.Number, error) {
		return bigfloat.NewNumber().SetPrec(corePrec).Sub(a, b)
	}, func(x, y *Float) *Float {
		if x.form == isInf && y.form == isInf && x.neg == y.neg {
			return z.SetNaN() // Inf - Inf of the same sign
		}
		if x.form == isInf {
			return z.SetInf(x.neg)
		}
		return z.SetInf(!y.neg)
	})
}

// Mul sets z = x * y and reports z and any error.
func (z *Float) Mul(x, y *Float) (*Float, error) {
	return binaryOp(z, x, y, func(a, b *bigfloat.Number) (*bigfloat.Number, error) {
		return bigfloat.NewNumber().SetPrec(corePrec).Mul(a, b)
	}, func(x, y *Float) *Float {
		if x.form == isZero || y.form == isZero {
			return z.SetNaN() // 0 * Inf
		}
		return z.SetInf(x.Sign() < 0 != (y.Sign() < 0))
	})
}

// Quo sets z = x / y and reports z and any error (x/0 with x finite
// nonzero reports +-Inf through the wrapper's own form, not an error;
// 0/0 reports NaN; the core DivisionByZero error is never surfaced
// here since the wrapper intercepts exact-zero divisors itself).
func (z *Float) Quo(x, y *Float) (*Float, error) {
	if x.form == isNaN || y.form == isNaN {
		return z.SetNaN(), nil
	}
	if y.form == isZero {
		if x.form == isZero {
			return z.SetNaN(), nil
		}
		return z.SetInf(x.Sign() < 0 != (y.neg)), nil
	}
	if x.form == isInf && y.form == isInf {
		return z.SetNaN(), nil
	}
	if x.form == isInf {
		return z.SetInf(x.neg != y.neg), nil
	}
	if y.form == isInf {
		*z = Float{form: isZero, neg: x.neg != y.neg}
		return z, nil
	}
	a, b := x.toNumber(), y.toNumber()
	n, err := bigfloat.NewNumber().SetPrec(corePrec).Quo(a, b)
	if err != nil {
		return z, err
	}
	z.setFromNumber(n)
	return z, nil
}

// Sqrt sets z = sqrt(x) and reports z and any error (InvalidArgument
// for a negative finite x).
func (z *Float) Sqrt(x *Float) (*Float, error) {
	switch x.form {
	case isNaN:
		return z.SetNaN(), nil
	case isInf:
		if x.neg {
			return z.SetNaN(), nil
		}
		return z.SetInf(false), nil
	case isZero:
		return z.SetFloat64(0), nil
	}
	if x.neg {
		return z, bigfloat.NewError(bigfloat.InvalidArgument, "Sqrt", "square root of negative number")
	}
	n, err := bigfloat.NewNumber().SetPrec(corePrec).Sqrt(x.toNumber())
	if err != nil {
		return z, err
	}
	z.setFromNumber(n)
	return z, nil
}

// Cmp compares x and y: -1 if x < y, 0 if equal, +1 if x > y. NaN
// operands compare unordered and report 2, mirroring math/big.Float's
// documented approach of never silently picking a relation with a NaN
// operand.
func (x *Float) Cmp(y *Float) int {
	if x.form == isNaN || y.form == isNaN {
		return 2
	}
	xInf, yInf := x.form == isInf, y.form == isInf
	switch {
	case xInf && yInf:
		switch {
		case x.neg == y.neg:
			return 0
		case x.neg:
			return -1
		default:
			return 1
		}
	case xInf:
		if x.neg {
			return -1
		}
		return 1
	case yInf:
		if y.neg {
			return 1
		}
		return -1
	}
	return x.toNumber().Cmp(y.toNumber())
}
