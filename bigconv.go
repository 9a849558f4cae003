// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Conversions to and from the standard library's math/big types,
// generalizing decimal.go's Float/SetFloat/Rat/SetRat/Int/SetInt family.
// The teacher's versions there exist mainly to bridge a base-10**9
// mantissa onto big.Float's base-2 one, and spend most of their body on
// a Mul/Quo-by-powers-of-two dance to do so. None of that is needed
// here: both sides of the bridge already share radix 2, so a Number's
// mantissa maps onto a big.Int's bit pattern directly once reinterpreted
// through big-endian bytes.
package bigfloat

import "math/big"

// limbsToBytes returns the big-endian byte representation of the
// integer held in ls, suitable for big.Int.SetBytes. The zero value
// (an empty or all-zero ls) yields a nil slice.
func limbsToBytes(ls limbs) []byte {
	ls = ls.norm()
	if len(ls) == 0 {
		return nil
	}
	buf := make([]byte, len(ls)*4)
	for i, w := range ls {
		off := (len(ls) - 1 - i) * 4
		buf[off] = byte(w >> 24)
		buf[off+1] = byte(w >> 16)
		buf[off+2] = byte(w >> 8)
		buf[off+3] = byte(w)
	}
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// bytesToLimbs is the inverse of limbsToBytes: it reassembles a
// big-endian byte slice (as returned by big.Int.Bytes) into a
// normalized limbs value.
func bytesToLimbs(b []byte) limbs {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) == 0 {
		return limbs{}
	}
	n := (len(b) + 3) / 4
	pad := n*4 - len(b)
	ls := make(limbs, n)
	for i := 0; i < n; i++ {
		var w Word
		for j := 0; j < 4; j++ {
			idx := i*4 + j - pad
			var bv byte
			if idx >= 0 {
				bv = b[idx]
			}
			w = w<<8 | Word(bv)
		}
		ls[n-1-i] = w
	}
	return ls.norm()
}

// hasLowBits reports whether any of mag's low n bits are set.
func hasLowBits(mag limbs, n uint) bool {
	wordShift := n / _W
	bitShift := n % _W
	for i := uint(0); i < wordShift && int(i) < len(mag); i++ {
		if mag[i] != 0 {
			return true
		}
	}
	idx := int(wordShift)
	if bitShift != 0 && idx < len(mag) {
		if mag[idx]&(Word(1)<<bitShift-1) != 0 {
			return true
		}
	}
	return false
}

// foldSticky ORs a sticky bit into the low bit of mag when rem is
// non-zero, the same trick Quo and SetRat use to carry a dropped
// remainder through to the rounder's guard/sticky logic without
// widening the magnitude.
func foldSticky(mag limbs, remNonZero bool) limbs {
	if !remNonZero {
		return mag
	}
	if len(mag) == 0 {
		return limbs{1}
	}
	mag = mag.clone()
	mag[0] |= 1
	return mag
}

// Float returns x as a big.Float, storing the result in z (or a
// freshly allocated one if z is nil). If z's precision is 0, it is set
// to x's own precision; unlike decimal.go's Float, no unit conversion
// is needed since both Number and big.Float measure precision in bits.
func (x *Number) Float(z *big.Float) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	p := z.Prec()
	if p == 0 {
		p = uint(x.Prec())
	}
	z.SetPrec(p)
	if x.IsZero() {
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
		return z
	}
	i := new(big.Int).SetBytes(limbsToBytes(limbs(x.mant)))
	z.SetInt(i)
	if x.neg {
		z.Neg(z)
	}
	z.SetMantExp(z, x.scale())
	return z
}

// Float32 returns the float32 value nearest to x and the accuracy of
// the conversion.
func (x *Number) Float32() (float32, Accuracy) {
	z := x.Float(new(big.Float).SetPrec(32))
	f, a := z.Float32()
	if a == big.Exact {
		return f, Exact
	}
	return f, Accuracy(a)
}

// Float64 returns the float64 value nearest to x and the accuracy of
// the conversion.
func (x *Number) Float64() (float64, Accuracy) {
	z := x.Float(new(big.Float).SetPrec(64))
	f, a := z.Float64()
	if a == big.Exact {
		return f, Exact
	}
	return f, Accuracy(a)
}

// SetFloat sets z to the value of x, rounded to z's precision (the
// default precision if z's is still 0), and reports z and an error if
// x is an infinity.
func (z *Number) SetFloat(x *big.Float) (*Number, error) {
	z.ensureDefaults()
	if x.IsInf() {
		return z, errInvalidArgument("SetFloat", "value is an infinity")
	}
	neg := x.Signbit()
	if x.Sign() == 0 {
		z.neg, z.mant, z.exp, z.acc = neg, nil, 0, Exact
		return z, nil
	}
	f := new(big.Float).Copy(x)
	exp2 := f.MantExp(f) // f == original * 2**(-exp2), in [0.5, 1)
	fprec := f.MinPrec()
	f.SetMantExp(f, int(fprec))
	i, _ := f.Int(nil)
	mag := bytesToLimbs(new(big.Int).Abs(i).Bytes())
	scale := exp2 - int(fprec)
	return z.round("SetFloat", mag, scale, neg)
}

// SetFloat64 sets z to the value of x and reports z.
func (z *Number) SetFloat64(x float64) *Number {
	z.ensureDefaults()
	zz, _ := z.SetFloat(big.NewFloat(x))
	return zz
}

// Rat returns x as an exact *big.Rat, storing the result in z (or a
// freshly allocated one if z is nil).
func (x *Number) Rat(z *big.Rat) *big.Rat {
	if z == nil {
		z = new(big.Rat)
	}
	if x.IsZero() {
		return z.SetInt64(0)
	}
	sc := x.scale()
	num := new(big.Int)
	den := big.NewInt(1)
	if sc >= 0 {
		num.SetBytes(limbsToBytes(limbs(x.mant).shl(uint(sc))))
	} else {
		num.SetBytes(limbsToBytes(limbs(x.mant)))
		den.Lsh(den, uint(-sc))
	}
	if x.neg {
		num.Neg(num)
	}
	return z.SetFrac(num, den)
}

// SetRat sets z to the value of x, rounded to z's precision, and
// reports z. A non-terminating binary expansion (any x whose
// denominator has a prime factor other than 2) is rounded according to
// z's mode, the same guard-bit-plus-sticky-bit technique Quo uses for
// inexact quotients.
func (z *Number) SetRat(x *big.Rat) (*Number, error) {
	z.ensureDefaults()
	if x.Sign() == 0 {
		z.neg, z.mant, z.exp, z.acc = false, nil, 0, Exact
		return z, nil
	}
	neg := x.Sign() < 0
	num := new(big.Int).Abs(x.Num())
	den := x.Denom()
	guard := int(z.prec) + 2
	shiftBits := guard + den.BitLen()
	shifted := new(big.Int).Lsh(num, uint(shiftBits))
	q, r := new(big.Int).QuoRem(shifted, den, new(big.Int))
	mag := foldSticky(bytesToLimbs(q.Bytes()), r.Sign() != 0)
	scale := -shiftBits
	return z.round("SetRat", mag, scale, neg)
}

// Int returns the result of truncating x towards zero, storing it in z
// (or a freshly allocated *big.Int if z is nil), along with the
// resulting Accuracy.
func (x *Number) Int(z *big.Int) (*big.Int, Accuracy) {
	if z == nil {
		z = new(big.Int)
	}
	if x.IsZero() {
		return z.SetInt64(0), Exact
	}
	sc := x.scale()
	mag := limbs(x.mant)
	acc := Exact
	switch {
	case sc > 0:
		mag = mag.shl(uint(sc))
	case sc < 0:
		n := uint(-sc)
		if hasLowBits(mag, n) {
			acc = makeAcc(x.neg)
		}
		mag = mag.shr(n)
	}
	z.SetBytes(limbsToBytes(mag))
	if x.neg {
		z.Neg(z)
	}
	return z, acc
}

// SetInt sets z to the exact value of x and reports z.
func (z *Number) SetInt(x *big.Int) *Number {
	z.ensureDefaults()
	if x.Sign() == 0 {
		z.neg, z.mant, z.exp, z.acc = false, nil, 0, Exact
		return z
	}
	neg := x.Sign() < 0
	mag := bytesToLimbs(new(big.Int).Abs(x).Bytes())
	zz, _ := z.round("SetInt", mag, 0, neg)
	return zz
}
