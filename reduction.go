// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Argument-reduction depth estimation for the transcend package's
// series-based kernels, grounded on the other_examples bigmath
// package's bigExpOptimized: it estimates, from a float64 approximation
// of the reduced argument, how many repeated-halving/repeated-squaring
// steps keep a Taylor series' term count bounded at a given precision.
// Since a Number's mantissa is already binary, halving or doubling by a
// power of two here is an exact exponent adjustment, never a rounded
// Mul/Quo the way the teacher's decimal-radix code would need.
package bigfloat

import "math"

// ReductionDepth estimates the number of halving steps to apply to r
// before running a Taylor series at the given precision, so that the
// series converges in a bounded number of terms. It mirrors
// bigExpOptimized's S = ceil(log2(|r|) + 14): each halving roughly
// doubles the number of leading bits contributed by the first series
// term, so log2(|r|) more halvings are needed per bit of target
// precision beyond a small fixed margin.
func ReductionDepth(r *Number) int {
	if r.IsZero() {
		return 0
	}
	rf, _ := r.Float64()
	rf = math.Abs(rf)
	if rf == 0 {
		return int(r.Prec())
	}
	s := int(math.Ceil(math.Log2(rf) + 14))
	if s < 0 {
		s = 0
	}
	return s
}

// ReduceByPow2 returns x / 2**s as a new Number. Unlike a decimal
// mantissa, a binary one divides exactly by any power of two: only the
// exponent field changes, with no rounding and no guard bits.
func ReduceByPow2(x *Number, s int) *Number {
	z := x.Clone()
	if s == 0 || z.IsZero() {
		return z
	}
	z.exp -= int32(s)
	return z
}

// RestoreByPow2 undoes ReduceByPow2 for functions satisfying the
// doubling identity f(2t) = f(t)**2 (exp, cosh, sinh via exp), by
// squaring x exactly s times at x's own precision and mode.
func RestoreByPow2(x *Number, s int) *Number {
	z := x
	for i := 0; i < s; i++ {
		next := NewNumber().SetPrec(z.Prec()).SetMode(z.Mode())
		next.Mul(z, z)
		z = next
	}
	return z
}
