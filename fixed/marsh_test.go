// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed_test

import (
	"testing"

	"github.com/go-bigfloat/bigfloat/fixed"
)

func TestMarshalUnmarshalBinaryFinite(t *testing.T) {
	x := fixed.NewFloat().SetInt64(-123456789)
	data, err := x.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	z := fixed.NewFloat()
	if err := z.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if z.Cmp(x) != 0 {
		t.Fatalf("round-tripped value %v != original %v", z, x)
	}
}

func TestMarshalUnmarshalBinarySentinels(t *testing.T) {
	for _, x := range []*fixed.Float{
		fixed.NewFloat(),
		fixed.NewFloat().SetNaN(),
		fixed.NewFloat().SetInf(false),
		fixed.NewFloat().SetInf(true),
	} {
		data, err := x.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		z := fixed.NewFloat()
		if err := z.UnmarshalBinary(data); err != nil {
			t.Fatal(err)
		}
		if z.IsNaN() != x.IsNaN() || z.IsInf() != x.IsInf() || z.IsZero() != x.IsZero() || z.Signbit() != x.Signbit() {
			t.Fatalf("round-tripped sentinel %v != original %v", z, x)
		}
	}
}

func TestUnmarshalBinaryBadVersion(t *testing.T) {
	z := fixed.NewFloat()
	if err := z.UnmarshalBinary([]byte{0xff, 0}); err == nil {
		t.Fatal("UnmarshalBinary with bad version: want error, got nil")
	}
}

func TestUnmarshalBinaryTooShort(t *testing.T) {
	z := fixed.NewFloat()
	if err := z.UnmarshalBinary([]byte{1}); err == nil {
		t.Fatal("UnmarshalBinary with short buffer: want error, got nil")
	}
}
