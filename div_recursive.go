// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Recursive (Burnikel-Ziegler-style) division for balanced operands:
// split the divisor in half, solve the leading part against the high
// half recursively, then correct the remainder against the low half
// with a short decrement loop. This generalizes dec.go's
// divRecursive/divRecursiveStep pair to binary radix; the decimal
// version's base-10**9 rescaling is gone since no digit-count scaling
// is needed here.
package bigfloat

// divRecursiveThreshold is the operand length, in Words, below which
// divBasic is cheaper than the recursion's bookkeeping overhead.
const divRecursiveThreshold = 80

// divRecursive computes q, r such that u = q*v + r, 0 <= r < v, for a
// divisor v and dividend u with len(v) <= len(u) <= 2*len(v). Wider
// dividends are handled by divUnbalanced, which chunks down to this
// shape.
func divRecursive(u, v limbs) (q, r limbs) {
	u, v = u.norm(), v.norm()
	n := len(v)
	if n <= divRecursiveThreshold || len(u) <= n {
		return divBasic(u, v)
	}
	if len(u) > 2*n {
		return divUnbalanced(u, v)
	}

	k := n / 2
	vHi, vLo := v[k:].norm(), v[:k].norm()

	var uLo limbs
	uTop := u
	if len(u) > k {
		uLo = u[:k].norm()
		uTop = u[k:].norm()
	}

	qHat, rHat := divRecursive(uTop, vHi)

	rem := snat{abs: shiftWords(rHat, k)}
	rem = rem.add(snat{abs: uLo})
	rem = rem.sub(snat{abs: mulDispatch(qHat, vLo)})

	// Burnikel & Ziegler show this loop runs at most twice; written as
	// a general loop for robustness against any rounding slack above.
	for rem.neg {
		qHat = usubWord(qHat, 1)
		rem = rem.add(snat{abs: v})
	}

	return qHat.norm(), rem.abs
}
