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

func TestSinhCoshTanh(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.5, 1, -1, 2, -3} {
		s := transcend.Sinh(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		closeEnough(t, "Sinh", f64(s), math.Sinh(x))
		c := transcend.Cosh(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		closeEnough(t, "Cosh", f64(c), math.Cosh(x))
		th := transcend.Tanh(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		closeEnough(t, "Tanh", f64(th), math.Tanh(x))
	}
}

func TestInverseHyperbolic(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.5, 1, -1, 5} {
		z, err := transcend.Asinh(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Asinh(%g): %v", x, err)
		}
		closeEnough(t, "Asinh", f64(z), math.Asinh(x))
	}

	for _, x := range []float64{1, 1.5, 10} {
		z, err := transcend.Acosh(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Acosh(%g): %v", x, err)
		}
		closeEnough(t, "Acosh", f64(z), math.Acosh(x))
	}
	if _, err := transcend.Acosh(bigfloat.NewNumber().SetPrec(testPrec), num(0.5), cache); err == nil {
		t.Error("Acosh(0.5): want error, got nil")
	}

	for _, x := range []float64{0, 0.5, -0.5, 0.9} {
		z, err := transcend.Atanh(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Atanh(%g): %v", x, err)
		}
		closeEnough(t, "Atanh", f64(z), math.Atanh(x))
	}
	if _, err := transcend.Atanh(bigfloat.NewNumber().SetPrec(testPrec), num(1), cache); err == nil {
		t.Error("Atanh(1): want error, got nil")
	}
}
