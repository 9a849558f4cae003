// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-bigfloat/bigfloat"
)

// decimalDigits renders |n| as exactly ndigits significant decimal
// digits plus the decimal exponent of its leading digit, via
// bigfloat.Number.Text's math/big.Float bridge: text I/O carries no
// interesting algorithmics of its own (per the core package's own
// textio.go), so the decimal-digit extraction a fixed-mantissa
// renormalization needs is done by formatting rather than by a
// hand-rolled long-division digit scanner.
func decimalDigits(n *bigfloat.Number, ndigits int) (digits string, exp int, neg bool) {
	neg = n.Signbit()
	abs := bigfloat.NewNumber().SetPrec(n.Prec()).Abs(n)
	s := abs.Text('e', ndigits-1)

	eIdx := strings.IndexByte(s, 'e')
	mantPart := s[:eIdx]
	e, _ := strconv.Atoi(s[eIdx+1:])
	mantPart = strings.Replace(mantPart, ".", "", 1)
	for len(mantPart) < ndigits {
		mantPart += "0"
	}
	return mantPart[:ndigits], e, neg
}

// Float64 returns the float64 value nearest to z and the accuracy of
// the conversion. NaN and +-Inf map onto their float64 counterparts
// exactly.
func (z *Float) Float64() (float64, bigfloat.Accuracy) {
	switch z.form {
	case isNaN:
		return math.NaN(), bigfloat.Exact
	case isInf:
		if z.neg {
			return math.Inf(-1), bigfloat.Exact
		}
		return math.Inf(1), bigfloat.Exact
	case isZero:
		if z.neg {
			return math.Copysign(0, -1), bigfloat.Exact
		}
		return 0, bigfloat.Exact
	}
	return z.toNumber().Float64()
}

// Float32 returns the float32 value nearest to z and the accuracy of
// the conversion.
func (z *Float) Float32() (float32, bigfloat.Accuracy) {
	f, acc := z.Float64()
	return float32(f), acc
}

// SetFloat64 sets z to the value of x and reports z. NaN and +-Inf
// inputs set z to the corresponding sentinel form.
func (z *Float) SetFloat64(x float64) *Float {
	switch {
	case math.IsNaN(x):
		return z.SetNaN()
	case math.IsInf(x, 0):
		return z.SetInf(x < 0)
	}
	n := bigfloat.NewNumber().SetPrec(corePrec).SetFloat64(x)
	z.setFromNumber(n)
	return z
}

// String returns z formatted in scientific notation with
// mantissaDigits significant digits, or "NaN"/"+Inf"/"-Inf" for the
// non-finite forms.
func (z *Float) String() string {
	switch z.form {
	case isNaN:
		return "NaN"
	case isInf:
		if z.neg {
			return "-Inf"
		}
		return "+Inf"
	case isZero:
		if z.neg {
			return "-0"
		}
		return "0"
	}
	return z.toNumber().Text('e', mantissaDigits-1)
}

// Parse parses s as a decimal floating-point number and sets z to the
// nearest representable Float, reporting z and any parse error.
// "NaN", "+Inf" and "-Inf" (case-insensitively) are recognized
// directly; anything else is parsed through bigfloat.Number's own
// big.Float-backed parser.
func (z *Float) Parse(s string) (*Float, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nan":
		return z.SetNaN(), nil
	case "+inf", "inf":
		return z.SetInf(false), nil
	case "-inf":
		return z.SetInf(true), nil
	}
	n, _, err := bigfloat.NewNumber().SetPrec(corePrec).Parse(s, 10)
	if err != nil {
		return z, err
	}
	z.setFromNumber(n)
	return z, nil
}
