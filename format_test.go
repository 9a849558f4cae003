// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"fmt"
	"testing"
)

func TestNumberFormat(t *testing.T) {
	x := NewNumber().SetPrec(64).SetInt64(-3)
	cases := []struct {
		format string
		want   string
	}{
		{"%g", "-3"},
		{"%d", "%!d(bigfloat.Number=-3)"},
	}
	for _, c := range cases {
		if got := fmt.Sprintf(c.format, x); got != c.want {
			t.Errorf("Sprintf(%q, -3) = %q, want %q", c.format, got, c.want)
		}
	}

	if got := fmt.Sprintf("%+g", NewNumber().SetPrec(64).SetInt64(3)); got != "+3" {
		t.Errorf("Sprintf(%%+g, 3) = %q, want +3", got)
	}
}
