// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transcend_test

import (
	"math"
	"testing"

	"github.com/go-bigfloat/bigfloat"
	"github.com/go-bigfloat/bigfloat/transcend"
)

func TestSinCos(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.5, 1, 2, 3, -1, 10, 100} {
		s := transcend.Sin(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		c := transcend.Cos(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		closeEnough(t, "Sin", f64(s), math.Sin(x))
		closeEnough(t, "Cos", f64(c), math.Cos(x))
	}
}

func TestTan(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.5, 1, -1, 1.2} {
		z, err := transcend.Tan(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Tan(%g): %v", x, err)
		}
		closeEnough(t, "Tan", f64(z), math.Tan(x))
	}
}

func TestSinPiHalf(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	halfPi, _ := bigfloat.NewNumber().SetPrec(testPrec).Ldexp(cache.Pi(testPrec), -1)
	s := transcend.Sin(bigfloat.NewNumber().SetPrec(testPrec), halfPi, cache)
	closeEnough(t, "Sin(pi/2)", f64(s), 1)
}

func TestCosPi(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	pi := cache.Pi(testPrec)
	c := transcend.Cos(bigfloat.NewNumber().SetPrec(testPrec), pi, cache)
	closeEnough(t, "Cos(pi)", f64(c), -1)
}
