// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Text parsing and formatting, generalizing dec_conv.go/decconv.go's
// digit-accumulation scanner. That scanner's fast path for long inputs
// (convertWords) is itself a panic("not implemented") stub in the
// teacher, and text I/O carries no interesting algorithmics of its
// own here either, so rather than hand-roll a binary-radix scanner
// this bridges through math/big.Float's parser and formatter the same
// way bigconv.go bridges Float/SetFloat.
package bigfloat

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse parses s as a floating-point number in the given base (0
// detects a 0x/0b/0o prefix, defaulting to base 10) and sets z to the
// result, rounded to z's precision and mode. It reports z, the base
// actually used, and any parse error.
func (z *Number) Parse(s string, base int) (*Number, int, error) {
	z.ensureDefaults()
	f, b, err := new(big.Float).SetPrec(uint(z.prec) + 1).Parse(s, base)
	if err != nil {
		return z, b, err
	}
	zz, convErr := z.SetFloat(f)
	if convErr != nil {
		return z, b, convErr
	}
	return zz, b, nil
}

// SetString is like z.Parse(s, 10) but reports success as a bool
// instead of an error.
func (z *Number) SetString(s string) (*Number, bool) {
	zz, _, err := z.Parse(s, 10)
	if err != nil {
		return nil, false
	}
	return zz, true
}

// Text returns a string representation of x in the given format ('f',
// 'e', 'E', 'g' or 'G') with prec significant digits (prec < 0 selects
// the smallest number of digits necessary to recover x exactly).
func (x *Number) Text(format byte, prec int) string {
	return x.Float(nil).Text(format, prec)
}

// String returns x formatted like math/big.Float's default String
// method, i.e. as Text('g', 10).
func (x *Number) String() string {
	return x.Text('g', 10)
}

// Format implements fmt.Formatter, generalizing decimal_toa.go's
// (*Decimal).Format: it accepts the usual floating-point verbs 'e',
// 'E', 'f', 'F', 'g', 'G', treats 'v' and 's' like 'g', and otherwise
// falls back to the "%!verb(bigfloat.Number=...)" error form fmt
// itself uses for an unsupported verb. Width and the '+'/' ' sign
// flags are honored; '0' padding and left-justification ('-') are not,
// since neither kernel in this package ever formats at a fixed width.
func (x *Number) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()

	switch format {
	case 'e', 'E', 'f':
		if !hasPrec {
			prec = 6
		}
	case 'F':
		format = 'f'
		if !hasPrec {
			prec = 6
		}
	case 's':
		format = 'g'
		if !hasPrec {
			prec = 10
		}
	case 'v':
		format = 'g'
		if !hasPrec {
			prec = -1
		}
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(bigfloat.Number=%s)", format, x.String())
		return
	}

	text := x.Text(byte(format), prec)
	sign := ""
	switch {
	case strings.HasPrefix(text, "-"):
		sign, text = "-", text[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	out := sign + text
	if width, hasWidth := s.Width(); hasWidth && width > len(out) {
		fmt.Fprint(s, strings.Repeat(" ", width-len(out)), out)
		return
	}
	fmt.Fprint(s, out)
}
