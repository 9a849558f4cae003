// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// snat is a non-owning signed view over a limbs magnitude: sign plus
// magnitude, the layer decimal.go's uadd/usub/ucmp unsigned-magnitude
// helpers occupy in the teacher, generalized here into its own named
// type rather than left as free functions on *Decimal, since the
// mantissa engine needs this view independently of the Number layer.
package bigfloat

// snat is a signed natural number view: neg is the sign (true for
// negative, ignored when abs is zero) and abs its magnitude, always
// normalized.
type snat struct {
	neg bool
	abs limbs
}

func (x snat) isZero() bool { return x.abs.isZero() }

// cmp returns -1, 0 or +1 for x<y, x==y, x>y as signed values.
func (x snat) cmp(y snat) int {
	xz, yz := x.isZero(), y.isZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		if y.neg {
			return 1
		}
		return -1
	case yz:
		if x.neg {
			return -1
		}
		return 1
	}
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.abs.cmp(y.abs)
	if x.neg {
		c = -c
	}
	return c
}

// add returns x+y.
func (x snat) add(y snat) snat {
	if x.isZero() {
		return y
	}
	if y.isZero() {
		return x
	}
	if x.neg == y.neg {
		return snat{neg: x.neg, abs: uadd(x.abs, y.abs)}
	}
	// opposite signs: subtract the smaller magnitude from the larger
	switch x.abs.cmp(y.abs) {
	case 0:
		return snat{}
	case 1:
		return snat{neg: x.neg, abs: usub(x.abs, y.abs)}
	default:
		return snat{neg: y.neg, abs: usub(y.abs, x.abs)}
	}
}

// sub returns x-y.
func (x snat) sub(y snat) snat {
	return x.add(snat{neg: !y.neg, abs: y.abs})
}

// incrementAbs returns x with its magnitude increased by one, sign
// unchanged.
func (x snat) incrementAbs() snat {
	return snat{neg: x.neg, abs: uaddWord(x.abs, 1)}
}

// decrementAbs returns x with its magnitude decreased by one, sign
// unchanged. x must not be zero.
func (x snat) decrementAbs() snat {
	return snat{neg: x.neg, abs: usubWord(x.abs, 1)}
}

// uadd returns the unsigned sum x+y, both already normalized.
func uadd(x, y limbs) limbs {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(limbs, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return z.norm()
}

// usub returns the unsigned difference x-y, requiring x >= y.
func usub(x, y limbs) limbs {
	z := make(limbs, len(x))
	c := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = subVW(z[len(y):], x[len(y):], c)
	}
	return z.norm()
}

func uaddWord(x limbs, y Word) limbs {
	z := make(limbs, len(x)+1)
	c := addVW(z[:len(x)], x, y)
	z[len(x)] = c
	return z.norm()
}

func usubWord(x limbs, y Word) limbs {
	z := make(limbs, len(x))
	subVW(z, x, y)
	return z.norm()
}
