// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixed wraps bigfloat.Number in a fixed-layout, NaN/Inf-aware
// type suitable for persistence and interop, generalizing decimal.go's
// Decimal (which carries its own NaN-by-panic and arbitrary precision)
// into a value type with a constant-size mantissa and a constant-size
// exponent. bigfloat.Number itself never represents NaN or an
// infinity: every fixed.Float operation intercepts those cases at the
// boundary and short-circuits before ever constructing a Number.
package fixed

import (
	"math/big"

	"github.com/go-bigfloat/bigfloat"
)

// mantissaDigits is the number of decimal digits of mantissa a Float
// carries: 40, chosen (per DefaultDecimalPrec's own over-provisioning
// comment in the teacher) so that ceil(40*log2(10)) = 133 significant
// bits comfortably fit in a 5-word, 160-bit core mantissa.
const mantissaDigits = 40

// corePrec is the bigfloat.Number precision used for every arithmetic
// operation performed at the Number layer: enough bits for the full
// 40-digit mantissa plus guard bits for a correctly-rounded final
// truncation back down to mantissaDigits.
const corePrec = 192

// form classifies a Float's value the way decimal.go's own finite/inf/
// nan form field does, except nan and inf are real, representable
// states here instead of a panic path.
type form byte

const (
	finite form = iota
	isZero
	isInf
	isNaN
)

// Float is a fixed-layout, arbitrary-but-bounded-precision decimal
// floating point value: sign x mantissa x 10**exponent, with the
// mantissa held to exactly mantissaDigits decimal digits and exponent
// confined to an int8. Operations convert to a bigfloat.Number at
// corePrec, compute, and convert back, renormalizing the result into
// mantissaDigits digits and clamping the exponent into int8's range
// (producing +-Inf on overflow and 0 on underflow; there are no
// subnormal values).
//
// The zero value is not ready to use; call NewFloat.
type Float struct {
	form form
	neg  bool
	mant [5]bigfloat.Word // integer value of the mantissaDigits-digit decimal mantissa, packed as a 160-bit binary integer
	exp  int8             // value == mant * 10**exp, for form == finite
}

// NewFloat returns a new Float set to +0.
func NewFloat() *Float {
	return &Float{form: isZero}
}

// IsNaN reports whether z is NaN.
func (z *Float) IsNaN() bool { return z.form == isNaN }

// IsInf reports whether z is +-Inf.
func (z *Float) IsInf() bool { return z.form == isInf }

// IsZero reports whether z is +-0.
func (z *Float) IsZero() bool { return z.form == isZero }

// Signbit reports whether z is negative or negative zero.
func (z *Float) Signbit() bool { return z.neg }

// Sign returns -1, 0 or +1 depending on z's sign; NaN reports 0.
func (z *Float) Sign() int {
	switch z.form {
	case isZero, isNaN:
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// SetNaN sets z to NaN and reports z.
func (z *Float) SetNaN() *Float {
	*z = Float{form: isNaN}
	return z
}

// SetInf sets z to +Inf (neg == false) or -Inf (neg == true) and
// reports z.
func (z *Float) SetInf(neg bool) *Float {
	*z = Float{form: isInf, neg: neg}
	return z
}

// SetInt64 sets z to the exact value of x and reports z.
func (z *Float) SetInt64(x int64) *Float {
	n := bigfloat.NewNumber().SetPrec(corePrec).SetInt64(x)
	z.setFromNumber(n)
	return z
}

// mantissaInt returns z's mantissa as a *big.Int, reassembling the
// [5]bigfloat.Word packed integer via the same big-endian byte
// convention bigconv.go uses to bridge Number to math/big.
func (z *Float) mantissaInt() *big.Int {
	buf := make([]byte, 4*len(z.mant))
	for i, w := range z.mant {
		off := (len(z.mant) - 1 - i) * 4
		buf[off] = byte(w >> 24)
		buf[off+1] = byte(w >> 16)
		buf[off+2] = byte(w >> 8)
		buf[off+3] = byte(w)
	}
	return new(big.Int).SetBytes(buf)
}

// setMantissaInt packs m (which must satisfy 0 <= m < 10**mantissaDigits)
// into z.mant.
func (z *Float) setMantissaInt(m *big.Int) {
	buf := make([]byte, 4*len(z.mant))
	b := m.Bytes()
	copy(buf[len(buf)-len(b):], b)
	for i := range z.mant {
		off := (len(z.mant) - 1 - i) * 4
		z.mant[i] = bigfloat.Word(buf[off])<<24 | bigfloat.Word(buf[off+1])<<16 | bigfloat.Word(buf[off+2])<<8 | bigfloat.Word(buf[off+3])
	}
}

// toRat returns z's exact value as a *big.Rat. z must be finite.
func (z *Float) toRat() *big.Rat {
	m := z.mantissaInt()
	if z.neg {
		m.Neg(m)
	}
	r := new(big.Rat).SetInt(m)
	if z.exp >= 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(z.exp)), nil)
		r.Mul(r, new(big.Rat).SetInt(pow))
	} else {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-z.exp)), nil)
		r.Quo(r, new(big.Rat).SetInt(pow))
	}
	return r
}

// toNumber converts z to a bigfloat.Number at corePrec. z must be
// finite.
func (z *Float) toNumber() *bigfloat.Number {
	n, _ := bigfloat.NewNumber().SetPrec(corePrec).SetRat(z.toRat())
	return n
}

// setFromNumber renormalizes the exact value of n into a
// mantissaDigits-digit decimal mantissa and an int8 exponent, clamping
// to +-Inf on overflow and to 0 on underflow, the boundary behaviour
// spec.md's wrapper layer requires of every arithmetic result.
func (z *Float) setFromNumber(n *bigfloat.Number) {
	if n.IsZero() {
		*z = Float{form: isZero, neg: n.Signbit()}
		return
	}

	digits, decExp, neg := decimalDigits(n, mantissaDigits)

	// decExp is the power of ten attached to the leading digit; the
	// wrapper's own exponent convention attaches to the trailing digit
	// of the mantissaDigits-digit integer, so shift by the digit count.
	exp := decExp - (mantissaDigits - 1)
	if exp > 127 {
		*z = Float{form: isInf, neg: neg}
		return
	}
	if exp < -128 {
		*z = Float{form: isZero, neg: neg}
		return
	}

	m, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		*z = Float{form: isNaN}
		return
	}
	*z = Float{form: finite, neg: neg, exp: int8(exp)}
	z.setMantissaInt(m)
}
