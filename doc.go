// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigfloat implements arbitrary-but-bounded-precision binary
// floating point numbers.
//
// A Number represents a signed value
//
//	sign × mantissa × 2**exponent
//
// where mantissa is a normalized sequence of base 2**32 digits with its
// top bit set. The implementation is organized in layers, from the
// bottom up:
//
//	limbs     owning digit buffer, allocation-fallible
//	snat      signed, non-owning view over a limbs buffer
//	mantissa  normalized digit sequence with a multiplication and
//	          division ladder (schoolbook, Toom-2, Toom-3, FFT;
//	          basic, recursive and unbalanced division; Newton sqrt)
//	Number    sign + exponent + mantissa + precision + rounding mode
//
// The package also provides a generic series runner, an argument
// -reduction depth heuristic and a constants cache, all consumed by the
// transcendental kernels in the transcend subpackage. Package fixed
// wraps Number with NaN/Inf handling and a fixed-width binary layout
// for interchange; package context gives Number IEEE-754-style
// precision/rounding-mode ergonomics.
//
// Each Number method follows the convention
//
//	z.Op(x, y)  // z = x op y, receiver z may alias x or y
//
// in the style of math/big.Float, from which this package borrows its
// naming conventions and its general approach to bounded-precision
// rounding and accuracy tracking.
package bigfloat
