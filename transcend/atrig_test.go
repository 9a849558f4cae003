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

func TestAtan(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.5, 1, 2, -2, 10, -10} {
		z := transcend.Atan(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		closeEnough(t, "Atan", f64(z), math.Atan(x))
	}
}

func TestAsinAcos(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.5, -0.5, 0.999, -1, 1} {
		s, err := transcend.Asin(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Asin(%g): %v", x, err)
		}
		closeEnough(t, "Asin", f64(s), math.Asin(x))

		c, err := transcend.Acos(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Acos(%g): %v", x, err)
		}
		closeEnough(t, "Acos", f64(c), math.Acos(x))
	}
}

func TestAsinAcosDomainError(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{1.5, -2} {
		if _, err := transcend.Asin(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache); err == nil {
			t.Errorf("Asin(%g): want error, got nil", x)
		}
		if _, err := transcend.Acos(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache); err == nil {
			t.Errorf("Acos(%g): want error, got nil", x)
		}
	}
}

func TestAtanTanRoundtrip(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 0.1, 0.7, 1.4, -1.4} {
		tn, err := transcend.Tan(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatal(err)
		}
		at := transcend.Atan(bigfloat.NewNumber().SetPrec(testPrec), tn, cache)
		closeEnough(t, "Atan(Tan(x))", f64(at), x)
	}
}

func TestPiViaAtan(t *testing.T) {
	// 6 * atan(1/sqrt(3)) == pi
	cache := bigfloat.NewConstantsCache()
	three := num(3)
	sq, _ := bigfloat.NewNumber().SetPrec(testPrec).Sqrt(three)
	one := bigfloat.NewNumber().SetPrec(testPrec).SetUint64(1)
	inv, _ := bigfloat.NewNumber().SetPrec(testPrec).Quo(one, sq)
	at := transcend.Atan(bigfloat.NewNumber().SetPrec(testPrec), inv, cache)
	six := bigfloat.NewNumber().SetPrec(testPrec).SetUint64(6)
	got, _ := bigfloat.NewNumber().SetPrec(testPrec).Mul(six, at)
	closeEnough(t, "6*atan(1/sqrt(3))", f64(got), math.Pi)
}
