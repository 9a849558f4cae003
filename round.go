// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "strconv"

// RoundingMode determines how a Number is rounded to its target
// precision. Rounding may change the Number's value; the rounding
// error is described by the Number's Accuracy.
type RoundingMode byte

// The supported rounding modes. None skips rounding and keeps every bit
// an operation computed, for callers that need extra precision at one
// step and round only once at the end.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	Up                                // away from zero
	Down                              // toward zero, alias of ToZero for unsigned magnitudes
	ToPosInf                          // == IEEE 754-2008 roundTowardPositive
	ToNegInf                          // == IEEE 754-2008 roundTowardNegative
	None                              // do not round; keep guard bits
)

//go:generate stringer -type=RoundingMode

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToNearestAway:
		return "ToNearestAway"
	case ToZero:
		return "ToZero"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case ToPosInf:
		return "ToPosInf"
	case ToNegInf:
		return "ToNegInf"
	case None:
		return "None"
	default:
		return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Number value, relative to the exact
// value that operation would have produced at infinite precision.
type Accuracy int8

// The three possible accuracies of a Number.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate stringer -type=Accuracy

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	default:
		return "Accuracy(" + strconv.Itoa(int(a)) + ")"
	}
}

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}
