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

func TestLog2Log10(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{1, 2, 8, 100, 1000, 0.5} {
		l2, err := transcend.Log2(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Log2(%g): %v", x, err)
		}
		closeEnough(t, "Log2", f64(l2), math.Log2(x))

		l10, err := transcend.Log10(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatalf("Log10(%g): %v", x, err)
		}
		closeEnough(t, "Log10", f64(l10), math.Log10(x))
	}
}

func TestLogBaseConsistency(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	base := num(3)
	for _, x := range []float64{1, 9, 27, 0.5} {
		l, err := transcend.Log(bigfloat.NewNumber().SetPrec(testPrec), num(x), base, cache)
		if err != nil {
			t.Fatal(err)
		}
		got, err := transcend.Pow(bigfloat.NewNumber().SetPrec(testPrec), base, l, cache)
		if err != nil {
			t.Fatal(err)
		}
		closeEnough(t, "base^log_base(x)", f64(got), x)
	}
}

func TestLogInvalidBase(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, base := range []float64{0, 1, -2} {
		if _, err := transcend.Log(bigfloat.NewNumber().SetPrec(testPrec), num(2), num(base), cache); err == nil {
			t.Errorf("Log(2, base=%g): want error, got nil", base)
		}
	}
}
