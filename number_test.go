// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestNumberZeroValue(t *testing.T) {
	var z Number
	if !z.IsZero() {
		t.Fatal("zero value Number is not IsZero")
	}
	if z.Sign() != 0 {
		t.Fatalf("zero value Sign() = %d, want 0", z.Sign())
	}
	if p := z.Prec(); p != defaultPrec {
		t.Fatalf("zero value Prec() = %d, want %d", p, defaultPrec)
	}
}

func TestNumberAddSub(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(123)
	y := NewNumber().SetPrec(64).SetInt64(456)
	z, _ := NewNumber().SetPrec(64).Add(x, y)
	if got, _ := z.Int64(); got != 579 {
		t.Fatalf("123 + 456 = %d, want 579", got)
	}
	z, _ = z.Sub(z, y)
	if got, _ := z.Int64(); got != 123 {
		t.Fatalf("579 - 456 = %d, want 123", got)
	}
}

func TestNumberMulQuo(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(7)
	y := NewNumber().SetPrec(64).SetInt64(6)
	z, _ := NewNumber().SetPrec(64).Mul(x, y)
	if got, _ := z.Int64(); got != 42 {
		t.Fatalf("7 * 6 = %d, want 42", got)
	}
	q, err := NewNumber().SetPrec(64).Quo(z, y)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := q.Int64(); got != 7 {
		t.Fatalf("42 / 6 = %d, want 7", got)
	}
}

func TestNumberQuoByZero(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(1)
	zero := NewNumber().SetPrec(64)
	if _, err := NewNumber().SetPrec(64).Quo(x, zero); err == nil {
		t.Fatal("Quo by zero: want error, got nil")
	}
}

func TestNumberSqrt(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(4)
	z, err := NewNumber().SetPrec(64).Sqrt(x)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := z.Int64(); got != 2 {
		t.Fatalf("sqrt(4) = %d, want 2", got)
	}
	neg := NewNumber().SetPrec(64).SetInt64(-1)
	if _, err := NewNumber().SetPrec(64).Sqrt(neg); err == nil {
		t.Fatal("sqrt(-1): want error, got nil")
	}
}

func TestNumberLdexpMantExp(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(6) // 6 == 0.75 * 2**3
	mant := NewNumber()
	e := x.MantExp(mant)
	half := NewNumber().SetPrec(64).SetFloat64(0.5)
	if mant.Cmp(half) < 0 {
		t.Fatalf("MantExp mantissa %v not in [0.5, 1)", mant)
	}

	z, _ := NewNumber().SetPrec(64).SetMantExp(mant, e)
	if z.Cmp(x) != 0 {
		t.Fatalf("SetMantExp(MantExp(x)) = %v, want %v", z, x)
	}

	d, _ := NewNumber().SetPrec(64).Ldexp(x, 2)
	if got, _ := d.Int64(); got != 24 {
		t.Fatalf("Ldexp(6, 2) = %d, want 24", got)
	}
	d, _ = NewNumber().SetPrec(64).Ldexp(x, -1)
	if got, _ := d.Int64(); got != 3 {
		t.Fatalf("Ldexp(6, -1) = %d, want 3", got)
	}
}

func TestNumberLeadingOnes(t *testing.T) {
	// mantissa of 3 (normalized) is 0b11000...0: 2 leading ones.
	x := NewNumber().SetPrec(64).SetInt64(3)
	if n := x.LeadingOnes(); n != 2 {
		t.Fatalf("LeadingOnes(3) = %d, want 2", n)
	}
	// mantissa of 2 is 0b10000...0: 1 leading one.
	y := NewNumber().SetPrec(64).SetInt64(2)
	if n := y.LeadingOnes(); n != 1 {
		t.Fatalf("LeadingOnes(2) = %d, want 1", n)
	}
	zero := NewNumber()
	if n := zero.LeadingOnes(); n != 0 {
		t.Fatalf("LeadingOnes(0) = %d, want 0", n)
	}
}

func TestNumberFMA(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(3)
	y := NewNumber().SetPrec(64).SetInt64(4)
	u := NewNumber().SetPrec(64).SetInt64(5)
	z, _ := NewNumber().SetPrec(64).FMA(x, y, u)
	if got, _ := z.Int64(); got != 17 {
		t.Fatalf("FMA(3, 4, 5) = %d, want 17", got)
	}
}

func TestNumberCmp(t *testing.T) {
	a := NewNumber().SetPrec(64).SetInt64(-5)
	b := NewNumber().SetPrec(64).SetInt64(3)
	if a.Cmp(b) >= 0 {
		t.Fatalf("-5 vs 3: Cmp = %d, want < 0", a.Cmp(b))
	}
	if b.Cmp(a) <= 0 {
		t.Fatalf("3 vs -5: Cmp = %d, want > 0", b.Cmp(a))
	}
	if a.Cmp(a) != 0 {
		t.Fatal("Cmp(x, x) != 0")
	}
}

func TestNumberRoundingToNearestEven(t *testing.T) {
	// 0b101 (5) rounded to 2 bits of precision: halfway case rounds to
	// the even mantissa 0b10 (== 4... but 5's top two bits are 10, with
	// a trailing 1 guard bit exactly halfway, so ties-to-even keeps the
	// mantissa's low bit 0), i.e. result 4.
	x := NewNumber().SetPrec(64).SetInt64(5)
	z := NewNumber().Set(x).SetPrec(2).SetMode(ToNearestEven)
	z.round("test", limbs(z.mant), z.scale(), z.neg)
	if got, _ := z.Int64(); got != 4 {
		t.Fatalf("round(5, prec=2, ToNearestEven) = %d, want 4", got)
	}
}

// Int64 is a small test helper converting a Number to an int64 via its
// Int method, since the package itself only exposes the bigger
// Int/Float/Rat bridges.
func (x *Number) Int64() (int64, Accuracy) {
	i, acc := x.Int(nil)
	return i.Int64(), acc
}
