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

func TestPowInteger(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, tc := range []struct{ x, y float64 }{
		{2, 3}, {2, -3}, {-2, 3}, {-2, 4}, {5, 0},
	} {
		z, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), num(tc.x), num(tc.y), cache)
		if err != nil {
			t.Fatalf("Pow(%g, %g): %v", tc.x, tc.y, err)
		}
		closeEnough(t, "Pow", f64(z), math.Pow(tc.x, tc.y))
	}
}

func TestPowReal(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, tc := range []struct{ x, y float64 }{
		{2, 0.5}, {10, 2.5}, {4, -0.5},
	} {
		z, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), num(tc.x), num(tc.y), cache)
		if err != nil {
			t.Fatalf("Pow(%g, %g): %v", tc.x, tc.y, err)
		}
		closeEnough(t, "Pow", f64(z), math.Pow(tc.x, tc.y))
	}
}

func TestPowNegativeBaseNonIntegerExponent(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	if _, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), num(-2), num(0.5), cache); err == nil {
		t.Error("Pow(-2, 0.5): want error, got nil")
	}
}

func TestPowZeroToNegative(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	if _, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), num(0), num(-1), cache); err == nil {
		t.Error("Pow(0, -1): want error, got nil")
	}
}

func TestPowRoundtrip(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, tc := range []struct{ a, b float64 }{
		{2, 3}, {5, 2}, {7, -2},
	} {
		p, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), num(tc.a), num(tc.b), cache)
		if err != nil {
			t.Fatal(err)
		}
		invB := bigfloat.NewNumber().SetPrec(testPrec).SetFloat64(1 / tc.b)
		r, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), p, invB, cache)
		if err != nil {
			t.Fatal(err)
		}
		closeEnough(t, "(a^b)^(1/b)", f64(r), tc.a)
	}
}
