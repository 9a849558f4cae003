// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Integer/mantissa square root via Newton's method, generalizing
// decimal_sqrt.go's Sqrt (which solves 1/t**2 - x = 0 via sqrtInverse)
// to plain integer square root over limbs: solving t**2 - x = 0
// directly is simpler in binary radix since there is no decimal
// rescaling to track through the iteration, and a final certification
// loop corrects the last Newton step's rounding either way.
package bigfloat

// isqrt returns s = floor(sqrt(x)) for a non-negative integer x given
// as a normalized limbs value.
func isqrt(x limbs) limbs {
	x = x.norm()
	if len(x) == 0 {
		return limbs{}
	}
	bl := x.bitLen()
	guessBits := uint((bl + 1) / 2)
	s := oneShiftedBy(guessBits)

	for {
		q, _ := divDispatch(x, s)
		sum := uadd(s, q)
		next := sum.shr(1)
		if next.cmp(s) >= 0 {
			break
		}
		s = next
	}

	// Certify: Newton's method for integer sqrt can under- or
	// overshoot by one in the last bit; correct in either direction.
	for !s.isZero() && mulDispatch(s, s).cmp(x) > 0 {
		s = usubWord(s, 1)
	}
	for {
		next := uaddWord(s, 1)
		if mulDispatch(next, next).cmp(x) <= 0 {
			s = next
			continue
		}
		break
	}
	return s
}

// oneShiftedBy returns the value 1<<n as a normalized limbs value.
func oneShiftedBy(n uint) limbs {
	z := make(limbs, n/_W+1)
	z[n/_W] = 1 << (n % _W)
	return z.norm()
}
