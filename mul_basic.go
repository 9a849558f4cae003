// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Schoolbook multiplication, the binary-radix counterpart of dec.go's
// basicMul: an O(n*m) accumulate-by-row algorithm built on addMulVVW.
package bigfloat

// mulBasic returns the product of x and y computed by the classic
// O(len(x)*len(y)) schoolbook algorithm.
func mulBasic(x, y limbs) limbs {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return limbs{}
	}
	z := make(limbs, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		c := addMulVVW(z[i:i+len(x)], x, yi)
		z[i+len(x)] = c
	}
	return z.norm()
}
