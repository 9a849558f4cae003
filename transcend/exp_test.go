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

func TestExp(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0, 1, -1, 2, 10, -10, 0.5, 20} {
		z := transcend.Exp(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		closeEnough(t, "Exp", f64(z), math.Exp(x))
	}
}

func TestExpZero(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	z := transcend.Exp(bigfloat.NewNumber().SetPrec(testPrec), bigfloat.NewNumber(), cache)
	if got, _ := z.Float64(); got != 1 {
		t.Fatalf("Exp(0) = %g, want 1", got)
	}
}

func TestLnExpRoundtrip(t *testing.T) {
	cache := bigfloat.NewConstantsCache()
	for _, x := range []float64{0.01, 1, 5, 100, 1e6} {
		l, err := transcend.Ln(bigfloat.NewNumber().SetPrec(testPrec), num(x), cache)
		if err != nil {
			t.Fatal(err)
		}
		e := transcend.Exp(bigfloat.NewNumber().SetPrec(testPrec), l, cache)
		closeEnough(t, "Exp(Ln(x))", f64(e), x)
	}
}
