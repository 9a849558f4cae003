// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/go-bigfloat/bigfloat/fixed"
)

func TestSetFloat64Float64RoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 3.14159, 123456.789, -0.0001} {
		z := fixed.NewFloat().SetFloat64(f)
		got, _ := z.Float64()
		if math.Abs(got-f) > 1e-9*math.Max(1, math.Abs(f)) {
			t.Fatalf("SetFloat64(%g).Float64() = %g", f, got)
		}
	}
}

func TestSetFloat64NaNInf(t *testing.T) {
	if z := fixed.NewFloat().SetFloat64(math.NaN()); !z.IsNaN() {
		t.Fatal("SetFloat64(NaN): want IsNaN")
	}
	if z := fixed.NewFloat().SetFloat64(math.Inf(1)); !z.IsInf() || z.Signbit() {
		t.Fatal("SetFloat64(+Inf): want +Inf")
	}
	if z := fixed.NewFloat().SetFloat64(math.Inf(-1)); !z.IsInf() || !z.Signbit() {
		t.Fatal("SetFloat64(-Inf): want -Inf")
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "3.25", "1e10", "-1e-10"} {
		z, err := fixed.NewFloat().Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		wantF, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := fixed.NewFloat().SetFloat64(wantF).Float64()
		got, _ := z.Float64()
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("Parse(%q).Float64() = %g, want %g", s, got, want)
		}
	}
}

func TestParseSentinels(t *testing.T) {
	if z, err := fixed.NewFloat().Parse("NaN"); err != nil || !z.IsNaN() {
		t.Fatalf("Parse(NaN) = %v, %v; want IsNaN, nil", z, err)
	}
	if z, err := fixed.NewFloat().Parse("+Inf"); err != nil || !z.IsInf() || z.Signbit() {
		t.Fatalf("Parse(+Inf) = %v, %v; want +Inf, nil", z, err)
	}
	if z, err := fixed.NewFloat().Parse("-Inf"); err != nil || !z.IsInf() || !z.Signbit() {
		t.Fatalf("Parse(-Inf) = %v, %v; want -Inf, nil", z, err)
	}
}
