// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanGroup(t *testing.T) {
	tests := []struct {
		i      string
		end    int
		inner  string
		closed bool
	}{
		{"(a)", 3, "a", true},
		{"(a(b)c)d", 7, "a(b)c", true},
		{"(a[b)c]", 5, "a[b", true},
		{"{x{y}}", 6, "x{y}", true},
		{"[]", 2, "", true},
		{"(a(b", 4, "a(b", false},
		{"(", 1, "", false},
	}
	for _, test := range tests {
		end, inner, closed := ScanGroup(test.i)
		assert.Equal(t, test.end, end, test.i)
		assert.Equal(t, test.inner, inner, test.i)
		assert.Equal(t, test.closed, closed, test.i)
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		i string
		e []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{",", []string{"", ""}},
		{"a,,b,", []string{"a", "", "b", ""}},
		{"a,(b,c),d", []string{"a", "(b,c)", "d"}},
		{"f[x,y],{1,2}", []string{"f[x,y]", "{1,2}"}},
		{"f(a,b", []string{"f(a,b"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.e, SplitArgs(test.i), test.i)
	}
}
