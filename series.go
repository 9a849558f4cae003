// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A generic Taylor-series runner shared by the transcend package's
// exp, ln, trig and hyperbolic kernels, generalizing the teacher's
// math/exp.go expm1T helper (which inlines one specific series: the
// q/fact/t/xe/s workspace variables there are this file's term/sum
// pair, specialized to e^x-1) into a reusable loop parameterized by an
// arbitrary term-advance rule. The convergence threshold and
// iteration cap mirror the other_examples bigmath package's
// workspace-plus-threshold-buffer shape.
package bigfloat

// seriesWorkspace holds the buffers a running series evaluation
// mutates term by term, so that repeated calls during argument
// reduction do not reallocate on every term the way a naive
// accumulate-into-a-fresh-Number loop would.
type seriesWorkspace struct {
	term    *Number
	sum     *Number
	scratch *Number
	epsilon *Number
}

// epsilonAt returns a Number holding 2**-prec, the convergence
// threshold for a series evaluated at the given working precision.
func epsilonAt(prec uint32) *Number {
	e := NewNumber().SetPrec(prec).SetMode(ToNearestEven).SetUint64(1)
	e.exp -= int32(prec)
	return e
}

func newSeriesWorkspace(prec uint32) *seriesWorkspace {
	return &seriesWorkspace{
		term:    NewNumber().SetPrec(prec).SetMode(ToNearestEven),
		sum:     NewNumber().SetPrec(prec).SetMode(ToNearestEven),
		scratch: NewNumber().SetPrec(prec).SetMode(ToNearestEven),
		epsilon: epsilonAt(prec),
	}
}

// maxSeriesTerms bounds a series evaluation against a mis-specified
// advance function that never converges; any series this package
// actually evaluates converges in far fewer terms once properly
// range-reduced.
const maxSeriesTerms = 100000

// SumSeries evaluates a power series term_0 + term_1 + term_2 + ...
// into dst at the given precision, where first is term_0 and advance
// mutates its term argument from term_(n-1) into term_n (the common
// multiplicative-recurrence shape of the exp, sin, cos and atanh
// series: term_n = term_(n-1) * ratio(n)). Evaluation stops once a
// term's magnitude drops below 2**-prec, or after maxSeriesTerms
// terms, whichever comes first.
func SumSeries(dst *Number, first *Number, prec uint32, advance func(term *Number, n int)) *Number {
	ws := newSeriesWorkspace(prec)
	ws.term.Set(first)
	ws.sum.Set(first)
	for n := 1; n < maxSeriesTerms; n++ {
		advance(ws.term, n)
		ws.sum.Add(ws.sum, ws.term)
		if ws.scratch.Abs(ws.term).Cmp(ws.epsilon) < 0 {
			break
		}
	}
	return dst.Set(ws.sum)
}
