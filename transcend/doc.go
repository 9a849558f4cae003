// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transcend implements the transcendental kernels (ln, exp,
// the trigonometric and hyperbolic families, pow and log-base-b) on
// top of the bigfloat package's Number, ConstantsCache, SumSeries and
// ReductionDepth. Every kernel follows the same template: factor or
// reduce the argument into a range where a Taylor (or atanh) series
// converges quickly, evaluate that series at a guard precision beyond
// what the caller asked for, then undo the reduction and round down to
// the caller's requested precision and mode.
//
// None of this has a grounding in the teacher package itself beyond
// math/exp.go's expm1T helper (whose own Exp is an unimplemented
// stub): the algorithms here instead follow the reduction identities
// the functions are traditionally built from, in the code shape
// math/pi.go and math/exp.go establish (workspace-local temporaries,
// an epsilon cutoff, SetMode(ToNearestEven) at an inflated guard
// precision for the internal computation).
package transcend
