// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Numbers.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *bigfloat.Number
//
// create a new bigfloat.Number set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to a function of other Number arguments:
//
//	func (c *Context) UnaryOp(z, x *bigfloat.Number) *bigfloat.Number
//	func (c *Context) BinaryOp(z, x, y *bigfloat.Number) *bigfloat.Number
//
// set z to the result of z.Op(args), rounded using c's precision and
// rounding mode, and return z.
//
// A Context latches errors: if an operation returns an error (DivisionByZero
// from Quo, InvalidArgument from Sqrt), the error is recorded and further
// operations through the context become no-ops (returning their receiver
// unchanged) until (*Context).Err is called. Unlike the teacher's Context,
// which wraps a panic-carrying ErrNaN with a deferred recover(), every
// bigfloat.Number operation that can fail already returns its error as a
// normal Go value, so latching it is a plain assignment, not a recover.
package context

import (
	"math/big"

	"github.com/go-bigfloat/bigfloat"
)

// A Context is a wrapper around Numbers that facilitates management of
// rounding mode, precision and error handling.
type Context struct {
	prec uint32
	mode bigfloat.RoundingMode
	err  error
}

// New creates a new context with the given precision, in bits, and
// rounding mode.
func New(prec uint32, mode bigfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns c's rounding mode.
func (c *Context) Mode() bigfloat.RoundingMode { return c.mode }

// Prec returns c's precision, in bits.
func (c *Context) Prec() uint32 { return c.prec }

// SetMode sets c's rounding mode and returns c.
func (c *Context) SetMode(mode bigfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision, in bits, and returns c. Values above
// bigfloat.MaxPrec are clamped to it.
func (c *Context) SetPrec(prec uint32) *Context {
	if prec > bigfloat.MaxPrec {
		prec = bigfloat.MaxPrec
	}
	c.prec = prec
	return c
}

// New returns a new Number with the value 0, at c's precision and mode.
func (c *Context) New() *bigfloat.Number {
	return bigfloat.NewNumber().SetMode(c.mode).SetPrec(c.prec)
}

// NewInt returns a new Number set to the (possibly rounded) value of x.
func (c *Context) NewInt(x *big.Int) *bigfloat.Number { return c.New().SetInt(x) }

// NewInt64 returns a new Number set to the (possibly rounded) value of x.
func (c *Context) NewInt64(x int64) *bigfloat.Number { return c.New().SetInt64(x) }

// NewUint64 returns a new Number set to the (possibly rounded) value of x.
func (c *Context) NewUint64(x uint64) *bigfloat.Number { return c.New().SetUint64(x) }

// NewFloat64 returns a new Number set to the (possibly rounded) value of x.
func (c *Context) NewFloat64(x float64) *bigfloat.Number { return c.New().SetFloat64(x) }

// NewFloat returns a new Number set to the (possibly rounded) value of
// x. An error (an infinite x) is latched into c.
func (c *Context) NewFloat(x *big.Float) *bigfloat.Number {
	z, err := c.New().SetFloat(x)
	c.latch(err)
	return z
}

// NewRat returns a new Number set to the (possibly rounded) value of x.
func (c *Context) NewRat(x *big.Rat) *bigfloat.Number {
	z, err := c.New().SetRat(x)
	c.latch(err)
	return z
}

// NewString returns a new Number with the value of s and a boolean
// indicating success, at c's precision and mode.
func (c *Context) NewString(s string) (*bigfloat.Number, bool) {
	return c.New().SetString(s)
}

// Err returns the first error encountered since the last call to Err,
// clearing the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) latch(err error) {
	if c.err == nil {
		c.err = err
	}
}

// apply sets z's precision and rounding mode to c's and returns z.
func (c *Context) apply(z *bigfloat.Number) *bigfloat.Number {
	z.SetMode(c.mode)
	if z.Prec() != c.prec {
		z.SetPrec(c.prec)
	}
	return z
}

// Add sets z to the rounded sum x+y and returns z. An ExponentOverflow
// error is latched into c.
func (c *Context) Add(z, x, y *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	r, err := c.apply(z).Add(x, y)
	c.latch(err)
	return r
}

// Sub sets z to the rounded difference x-y and returns z. An
// ExponentOverflow error is latched into c.
func (c *Context) Sub(z, x, y *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	r, err := c.apply(z).Sub(x, y)
	c.latch(err)
	return r
}

// Mul sets z to the rounded product x*y and returns z. An
// ExponentOverflow error is latched into c.
func (c *Context) Mul(z, x, y *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	r, err := c.apply(z).Mul(x, y)
	c.latch(err)
	return r
}

// FMA sets z to x*y+u, computed with only one rounding, and returns z.
// An ExponentOverflow error is latched into c.
func (c *Context) FMA(z, x, y, u *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	r, err := c.apply(z).FMA(x, y, u)
	c.latch(err)
	return r
}

// Quo sets z to the rounded quotient x/y and returns z. A
// DivisionByZero error is latched into c.
func (c *Context) Quo(z, x, y *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	r, err := c.apply(z).Quo(x, y)
	c.latch(err)
	return r
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	return c.apply(z).Neg(x)
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	return c.apply(z).Abs(x)
}

// Sqrt sets z to the rounded square root of x and returns z. An
// InvalidArgument error (x negative) is latched into c.
func (c *Context) Sqrt(z, x *bigfloat.Number) *bigfloat.Number {
	if c.err != nil {
		return z
	}
	r, err := c.apply(z).Sqrt(x)
	c.latch(err)
	return r
}
