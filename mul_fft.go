// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// FFT-based cyclic convolution multiplication. No example in the
// corpus implements this; it is built from the spec's own description
// of a power-of-two-length complex convolution, using math/cmplx for
// the complex butterfly arithmetic (the corpus's Go-zh-go.old snapshot
// confirms math/cmplx is a real stdlib package contemporaries of this
// codebase use, not a fabricated dependency). Each 32-bit Word is split
// into two 16-bit half-digits before transforming, which keeps every
// partial product and column sum within float64's 53-bit mantissa and
// gives an exact-rounding precision floor for operand sizes up to
// several million half-digits.
package bigfloat

import "math/cmplx"

// mulFFT returns the product of x and y computed via a cyclic
// convolution over 16-bit half-digits.
func mulFFT(x, y limbs) limbs {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return limbs{}
	}
	// below the FFT crossover this is just extra overhead; the
	// dispatcher already guards this, but mulUnbalanced or a direct
	// call could still reach here with small operands.
	if len(x) < fftThreshold && len(y) < fftThreshold {
		return mulToom3(x, y)
	}

	hx := toHalfDigits(x)
	hy := toHalfDigits(y)

	n := 1
	for n < 2*(len(hx)+len(hy)) {
		n <<= 1
	}

	fx := make([]complex128, n)
	fy := make([]complex128, n)
	for i, v := range hx {
		fx[i] = complex(float64(v), 0)
	}
	for i, v := range hy {
		fy[i] = complex(float64(v), 0)
	}

	fft(fx, false)
	fft(fy, false)
	for i := range fx {
		fx[i] *= fy[i]
	}
	fft(fx, true)

	conv := make([]uint64, n)
	for i := range conv {
		conv[i] = uint64(real(fx[i]) + 0.5)
	}

	return carryPropagateHalfDigits(conv)
}

// toHalfDigits splits a limbs value into little-endian 16-bit digits.
func toHalfDigits(x limbs) []uint32 {
	h := make([]uint32, 0, len(x)*2)
	for _, w := range x {
		h = append(h, uint32(w&0xffff), uint32(w>>16))
	}
	for len(h) > 0 && h[len(h)-1] == 0 {
		h = h[:len(h)-1]
	}
	return h
}

// carryPropagateHalfDigits reassembles a convolution result expressed
// in 16-bit columns (each column potentially far exceeding 16 bits)
// back into normalized 32-bit Words.
func carryPropagateHalfDigits(conv []uint64) limbs {
	var carry uint64
	half := make([]uint64, len(conv))
	for i, c := range conv {
		c += carry
		half[i] = c & 0xffff
		carry = c >> 16
	}
	for carry != 0 {
		half = append(half, carry&0xffff)
		carry >>= 16
	}
	words := make(limbs, (len(half)+1)/2)
	for i := 0; i < len(half); i += 2 {
		lo := half[i]
		var hi uint64
		if i+1 < len(half) {
			hi = half[i+1]
		}
		words[i/2] = Word(lo | hi<<16)
	}
	return words.norm()
}

// fft computes the (inverse, if inv) discrete Fourier transform of a in
// place. len(a) must be a power of two.
func fft(a []complex128, inv bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		ang := -2 * 3.141592653589793238462643383279502884 / float64(length)
		if inv {
			ang = -ang
		}
		wlen := cmplx.Exp(complex(0, ang))
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			for j := 0; j < length/2; j++ {
				u := a[i+j]
				v := a[i+j+length/2] * w
				a[i+j] = u + v
				a[i+j+length/2] = u - v
				w *= wlen
			}
		}
	}
	if inv {
		for i := range a {
			a[i] /= complex(float64(n), 0)
		}
	}
}
