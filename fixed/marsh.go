// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// fixedMarshalVersion mirrors decimal_marsh.go's decimalGobVersion: a
// leading version byte permits backward-compatible layout changes.
const fixedMarshalVersion byte = 1

// Canonical binary layout (after the version byte):
//
//	flags byte:   form<<1 | sign bit
//	(finite only, in order:)
//	  digit count: 1 byte (always mantissaDigits here; the teacher's
//	               decimal_marsh.go similarly always encodes the full
//	               mantissa length it allocated, not a compressed one)
//	  mantissa:    10 x uint16, little-endian, base-10000 digits (most
//	               significant declet first)
//	  exponent:    1 signed byte
//
// NaN/Inf/zero values encode to just the version and flags bytes.
func (z *Float) MarshalBinary() ([]byte, error) {
	flags := byte(z.form) << 1
	if z.neg {
		flags |= 1
	}
	if z.form != finite {
		return []byte{fixedMarshalVersion, flags}, nil
	}

	buf := make([]byte, 2+1+20+1)
	buf[0] = fixedMarshalVersion
	buf[1] = flags
	buf[2] = mantissaDigits

	declets, err := mantissaDeclets(z.mantissaInt())
	if err != nil {
		return nil, err
	}
	for i, d := range declets {
		binary.LittleEndian.PutUint16(buf[3+2*i:], d)
	}
	buf[len(buf)-1] = byte(z.exp)
	return buf, nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (z *Float) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("fixed: UnmarshalBinary: buffer too short")
	}
	if data[0] != fixedMarshalVersion {
		return fmt.Errorf("fixed: UnmarshalBinary: encoding version %d not supported", data[0])
	}
	flags := data[1]
	f := form(flags >> 1)
	neg := flags&1 != 0
	if f != finite {
		*z = Float{form: f, neg: neg}
		return nil
	}
	if len(data) != 2+1+20+1 {
		return fmt.Errorf("fixed: UnmarshalBinary: invalid buffer length %d for a finite value", len(data))
	}
	count := data[2]
	if count != mantissaDigits {
		return fmt.Errorf("fixed: UnmarshalBinary: unsupported mantissa digit count %d", count)
	}

	declets := make([]uint16, 10)
	for i := range declets {
		declets[i] = binary.LittleEndian.Uint16(data[3+2*i:])
	}
	m, err := decletsToMantissaInt(declets)
	if err != nil {
		return err
	}

	exp := int8(data[len(data)-1])
	*z = Float{form: finite, neg: neg, exp: exp}
	z.setMantissaInt(m)
	return nil
}

// mantissaDeclets splits m (0 <= m < 10**mantissaDigits) into 10
// base-10000 declets, most significant first; MarshalBinary writes
// them in that same order.
func mantissaDeclets(m *big.Int) ([]uint16, error) {
	s := m.String()
	if len(s) > mantissaDigits {
		return nil, fmt.Errorf("fixed: mantissa %s exceeds %d digits", s, mantissaDigits)
	}
	for len(s) < mantissaDigits {
		s = "0" + s
	}
	declets := make([]uint16, 10)
	for i := 0; i < 10; i++ {
		chunk := s[i*4 : i*4+4]
		var v uint16
		for _, c := range chunk {
			v = v*10 + uint16(c-'0')
		}
		declets[i] = v
	}
	return declets, nil
}

// decletsToMantissaInt is the inverse of mantissaDeclets.
func decletsToMantissaInt(declets []uint16) (*big.Int, error) {
	s := ""
	for _, d := range declets {
		if d > 9999 {
			return nil, fmt.Errorf("fixed: declet %d out of base-10000 range", d)
		}
		s += fmt.Sprintf("%04d", d)
	}
	m, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("fixed: invalid mantissa digit string %q", s)
	}
	return m, nil
}
