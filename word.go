// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// A Word is a single base-2**W digit of a mantissa. W is fixed at 32
// bits regardless of the host's native word size so that the on-disk
// and wire representations of a Number are platform independent.
type Word uint32

const (
	_W = 32       // bits per Word
	_B = 1 << _W  // digit base, as an untyped constant
)

// Exponent and precision limits.
const (
	MaxExp  = 1<<31 - 1  // largest supported exponent
	MinExp  = -(1 << 31) // smallest supported exponent
	MaxPrec = 1<<32 - 1  // largest supported precision, in bits
)
