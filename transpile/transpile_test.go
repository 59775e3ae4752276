// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"strings"
	"sync"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exIn struct {
	i string
	e string
}

func TestParse(t *testing.T) {
	tests := []exIn{
		{`1/23/4^5^67`, `\frac{\frac{1}{23}}{4^{5^{67}}}`},
		{`int(a,b)e^x dx`, `\int_{a}^{b}e^{x} dx`},
		{"matrix(1 2 3\n4 5 6\n7 8 9)", `\begin{matrix}1&2&3\\4&5&6\\7&8&9\end{matrix}`},
		{`1/2 + (\l3/4)`, `\frac{1}{2} + 3/4`},
		{`a^b^c`, `a^{b^{c}}`},
		{`a_b_c`, `a_{b_{c}}`},
		{`x_1^2`, `x_{1^{2}}`},
		{`a/b/c`, `\frac{\frac{a}{b}}{c}`},
		{`a^b/c`, `\frac{a^{b}}{c}`},
		{`2x/3`, `\frac{2x}{3}`},
		{`(a+b)^2`, `\left(a+b\right)^{2}`},
		{`e^(x+1)`, `e^{x+1}`},
		{`x^-2`, `x^{-2}`},
		{`1/-2`, `\frac{1}{-2}`},
		{`(a+b)/(c-d)`, `\frac{a+b}{c-d}`},
		{`sin(x)`, `\sin \left(x\right)`},
		{`sin^2(x)`, `\sin ^{2}\left(x\right)`},
		{`sinx`, `\sin x`},
		{`2pi`, `2\pi `},
		{`alp`, `\alpha `},
		{`arc`, `arc`},
		{`infinity`, `\infty `},
		{`nin`, `\notin `},
		{`sqrt(x,3)`, `\sqrt[3]{x}`},
		{`sqrt(x)`, `\sqrt[]{x}`},
		{`sqrtx(2)`, `\sqrt[]{}x\left(2\right)`},
		{`text(a/b)`, `\text{a/b}`},
		{`hat(x)`, `\hat{x}`},
		{`hat(x)^2`, `\hat{x}^{2}`},
		{`binom(n,k)`, `\binom{n}{k}`},
		{`a<=b`, `a\leq b`},
		{`a!=b`, `a\neq b`},
		{`a    b`, `a\quad b`},
		{`\R`, `\mathbb{R}`},
		{`90°`, `90\degree `},
		{`{a}`, `\left\{a\right\}`},
		{`(a`, `\left(a\right)`},
		{`a)`, `a)`},
		{"cases(x\ny,1)", `\begin{cases}{1}x\\y\end{cases}`},
		{`vmatrix(a b\\c d)`, `\begin{vmatrix}a&b\\c&d\end{vmatrix}`},
		{"matrix(1  2 \n\n 3)", `\begin{matrix}1&2\\3\end{matrix}`},
		{`matrix((a+b) c)`, `\begin{matrix}a+b&c\end{matrix}`},
		{`matrix`, `\begin{matrix}\end{matrix}`},
		{`sum(i=1,n) i^2`, `\sum_{i=1}^{n} i^{2}`},
		{`lim(x->0) f(x)`, `\lim_{x->0} f\left(x\right)`},
		{`  a + b  `, `a + b`},
		{`\lx/y`, `x/y`},
		{`  \lx^2`, `x^2`},
		{`(\lx)`, `x`},
		{`( \lx)`, `x`},
		{"aligned(a\r\nb)", `\begin{aligned}{}a\\b\end{aligned}`},
		{"matrix(1\t2\r3)", `\begin{matrix}1&2\\3\end{matrix}`},
		{"a\u0308", "ä"},
		{`matrix(a^ b)`, `\begin{matrix}a^{}&b\end{matrix}`},
		{`matrix(a ^b)`, `\begin{matrix}a&^b\end{matrix}`},
		{`matrix(a/ b)`, `\begin{matrix}\frac{a}{}&b\end{matrix}`},
		{``, ``},
		{`   `, ``},
	}
	for _, test := range tests {
		o, err := Parse(test.i)
		if assert.NoError(t, err, test.i) {
			assert.Equal(t, test.e, o, test.i)
		}
	}
}

func TestParseTable(t *testing.T) {
	tr := New(Options{Table: newTable(t, "sine", "sinh", "cosine")})
	tests := []exIn{
		{`sin`, `sin`},
		{`sinh`, `\sinh `},
		{`cos`, `\cosine `},
		{`pi`, `pi`},
	}
	for _, test := range tests {
		o, err := tr.Parse(test.i)
		if assert.NoError(t, err, test.i) {
			assert.Equal(t, test.e, o, test.i)
		}
	}
	assert.Same(t, tr.Table(), tr.Table())
}

func TestRecursionLimit(t *testing.T) {
	tr := New(Options{MaxDepth: 2})
	o, err := tr.Parse("(a)")
	require.NoError(t, err)
	assert.Equal(t, `\left(a\right)`, o)

	_, err = tr.Parse("((a))")
	assert.ErrorIs(t, err, ErrRecursionLimitExceeded)
	var rerr *RecursionLimitError
	if assert.ErrorAs(t, err, &rerr) {
		assert.Equal(t, 2, rerr.Limit)
	}

	_, err = tr.Parse("hat(hat(x))")
	assert.ErrorIs(t, err, ErrRecursionLimitExceeded)

	deep := strings.Repeat("(", 300) + "x" + strings.Repeat(")", 300)
	_, err = Parse(deep)
	assert.ErrorIs(t, err, ErrRecursionLimitExceeded)

	ok := strings.Repeat("(", 100) + "x" + strings.Repeat(")", 100)
	o, err = Parse(ok)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(`\left(`, 100)+"x"+strings.Repeat(`\right)`, 100), o)
}

func TestParseConcurrent(t *testing.T) {
	inputs := []string{`a^b^c`, `sum(i=1,n) i^2`, "matrix(1 2\n3 4)", `sqrt(x,3)/2`}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = errors.Must1(Parse(in))
	}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				o, err := Parse(in)
				assert.NoError(t, err)
				assert.Equal(t, want[i], o)
			}
		}()
	}
	wg.Wait()
}

func TestPassthrough(t *testing.T) {
	for _, x := range []string{"a/b", "x^2_3", "matrix(1 2)", "{", "", " sin "} {
		o, err := Parse(RawMarker + x)
		require.NoError(t, err)
		assert.Equal(t, x, o, x)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		sc Scope
		e  string
	}{
		{Scope{Text: " a\r\nb\t "}, "a\r\nb"},
		{Scope{Text: "a\r\nb\rc", Array: true}, "a\nb\nc"},
		{Scope{Text: "1\t2", Array: true}, "1\t2"},
		{Scope{Text: "1\t2\r3", Array: true, Matrix: true}, "1 2\n3"},
	}
	for _, test := range tests {
		assert.Equal(t, test.e, test.sc.normalize().Text, test.sc.Text)
	}
	composed, err := Parse("90o\u0308")
	require.NoError(t, err)
	assert.Equal(t, "90ö", composed)
}

func TestBracketRoundTrip(t *testing.T) {
	for _, x := range []string{"a+b", "1 - 2", "a/b", "x^2", "(y)"} {
		inner, err := Parse(x)
		require.NoError(t, err)
		o, err := Parse("(" + x + ")")
		require.NoError(t, err)
		assert.Equal(t, `\left(`+inner+`\right)`, o, x)
	}
}

func TestAmbiguitySafety(t *testing.T) {
	tr := New(Options{Table: newTable(t, "sin", "sinh")})
	for _, in := range []string{"si", "s"} {
		o, err := tr.Parse(in)
		require.NoError(t, err)
		assert.Equal(t, in, o)
	}
}
