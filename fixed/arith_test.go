// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"testing"

	"github.com/go-bigfloat/bigfloat/fixed"
)

func TestAddSub(t *testing.T) {
	a := fixed.NewFloat().SetInt64(123)
	b := fixed.NewFloat().SetInt64(456)
	z, err := fixed.NewFloat().Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := z.Float64(); f != 579 {
		t.Fatalf("123 + 456 = %g, want 579", f)
	}
	z, err = fixed.NewFloat().Sub(z, b)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := z.Float64(); f != 123 {
		t.Fatalf("579 - 456 = %g, want 123", f)
	}
}

func TestMulQuo(t *testing.T) {
	a := fixed.NewFloat().SetInt64(7)
	b := fixed.NewFloat().SetInt64(6)
	z, err := fixed.NewFloat().Mul(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := z.Float64(); f != 42 {
		t.Fatalf("7 * 6 = %g, want 42", f)
	}
	q, err := fixed.NewFloat().Quo(z, b)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := q.Float64(); f != 7 {
		t.Fatalf("42 / 6 = %g, want 7", f)
	}
}

func TestQuoByZero(t *testing.T) {
	x := fixed.NewFloat().SetInt64(123)
	zero := fixed.NewFloat()
	z, err := fixed.NewFloat().Quo(x, zero)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsInf() || z.Signbit() {
		t.Fatalf("123/0 = %v, want +Inf", z)
	}

	z, err = fixed.NewFloat().Quo(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsNaN() {
		t.Fatalf("0/0 = %v, want NaN", z)
	}
}

func TestSqrt(t *testing.T) {
	x := fixed.NewFloat().SetInt64(4)
	z, err := fixed.NewFloat().Sqrt(x)
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := z.Float64(); f != 2 {
		t.Fatalf("sqrt(4) = %g, want 2", f)
	}

	neg := fixed.NewFloat().SetInt64(-1)
	if _, err := fixed.NewFloat().Sqrt(neg); err == nil {
		t.Fatal("Sqrt(-1): want error, got nil")
	}
}

func TestCmp(t *testing.T) {
	a := fixed.NewFloat().SetInt64(-5)
	b := fixed.NewFloat().SetInt64(3)
	if a.Cmp(b) >= 0 {
		t.Fatalf("-5 vs 3: Cmp = %d, want < 0", a.Cmp(b))
	}
	if b.Cmp(a) <= 0 {
		t.Fatalf("3 vs -5: Cmp = %d, want > 0", b.Cmp(a))
	}
	nan := fixed.NewFloat().SetNaN()
	if c := nan.Cmp(b); c != 2 {
		t.Fatalf("NaN.Cmp(3) = %d, want 2", c)
	}
}

func TestOverflowToInf(t *testing.T) {
	x, err := fixed.NewFloat().Parse("1e100")
	if err != nil {
		t.Fatal(err)
	}
	z, err := fixed.NewFloat().Mul(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsInf() {
		t.Fatalf("1e100 * 1e100 = %v, want +Inf (overflow)", z)
	}
}

func TestUnderflowToZero(t *testing.T) {
	x, err := fixed.NewFloat().Parse("1e-60")
	if err != nil {
		t.Fatal(err)
	}
	z, err := fixed.NewFloat().Mul(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsZero() {
		t.Fatalf("1e-60 * 1e-60 = %v, want 0 (underflow)", z)
	}
}

func TestInfArithmetic(t *testing.T) {
	pinf := fixed.NewFloat().SetInf(false)
	ninf := fixed.NewFloat().SetInf(true)

	z, err := fixed.NewFloat().Add(pinf, ninf)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsNaN() {
		t.Fatalf("+Inf + -Inf = %v, want NaN", z)
	}

	z, err = fixed.NewFloat().Sub(pinf, pinf)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsNaN() {
		t.Fatalf("+Inf - +Inf = %v, want NaN", z)
	}

	one := fixed.NewFloat().SetInt64(1)
	z, err = fixed.NewFloat().Add(pinf, one)
	if err != nil {
		t.Fatal(err)
	}
	if !z.IsInf() || z.Signbit() {
		t.Fatalf("+Inf + 1 = %v, want +Inf", z)
	}
}

func TestNegAbs(t *testing.T) {
	x := fixed.NewFloat().SetInt64(5)
	neg := fixed.NewFloat().Neg(x)
	if f, _ := neg.Float64(); f != -5 {
		t.Fatalf("Neg(5) = %g, want -5", f)
	}
	abs := fixed.NewFloat().Abs(neg)
	if f, _ := abs.Float64(); f != 5 {
		t.Fatalf("Abs(-5) = %g, want 5", f)
	}
}
