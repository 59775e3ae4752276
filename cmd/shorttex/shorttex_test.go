// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/shorttex/notation"
	"cogentcore.org/shorttex/render"
	"cogentcore.org/shorttex/transpile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocks(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Blocks("a\n\n\nb\n"))
	assert.Equal(t, []string{"a\n\nb"}, Blocks("a\n\nb"))
	assert.Equal(t, []string{"a", "b"}, Blocks("a\r\n\r\n\r\nb"))
	assert.Equal(t, []string{""}, Blocks(""))
}

func TestTranspileText(t *testing.T) {
	c := &Config{Check: true}
	tr, _, err := newTranspiler(c)
	require.NoError(t, err)
	var b bytes.Buffer
	err = transpileText(c, tr, &b, "a^2\n\n\n\\l}\n")
	assert.Equal(t, "a^{2}\n}\n", b.String())
	assert.ErrorIs(t, err, render.ErrUnbalanced)
	assert.ErrorContains(t, err, "block 2")

	c = &Config{MaxDepth: 1}
	tr, _, err = newTranspiler(c)
	require.NoError(t, err)
	b.Reset()
	err = transpileText(c, tr, &b, "(a)\n\n\nb")
	assert.Equal(t, "\nb\n", b.String())
	assert.ErrorIs(t, err, transpile.ErrRecursionLimitExceeded)
}

const userTable = `
templates = ['\mathbf{<arg:p>}']

[[groups]]
name = "bold"
template = 0
names = ["bf"]

[aliases]
sine = "sin"
`

func TestUserTable(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "table.toml")
	require.NoError(t, os.WriteFile(fname, []byte(userTable), 0666))
	c := &Config{Table: fname}
	tr, f, err := newTranspiler(c)
	require.NoError(t, err)
	assert.Equal(t, notation.BuiltinFile().Version, f.Version)
	o, err := tr.Parse("bf(x)+sine")
	require.NoError(t, err)
	assert.Equal(t, `\mathbf{x}+\sin `, o)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[aliases]\nfoo = \"nothing\"\n"), 0666))
	_, _, err = newTranspiler(&Config{Table: bad})
	assert.ErrorIs(t, err, notation.ErrInvalidTable)

	_, _, err = newTranspiler(&Config{Table: filepath.Join(dir, "missing.toml")})
	assert.Error(t, err)
}

func TestSource(t *testing.T) {
	s, err := source(&Config{Expr: "x", Input: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = source(&Config{})
	assert.Error(t, err)
	_, err = source(&Config{Input: filepath.Join(t.TempDir(), "missing.stx")})
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	tr, _, err := newTranspiler(&Config{})
	require.NoError(t, err)
	var b bytes.Buffer
	for _, nm := range []string{"sin", "alp", "arc", "nin", "zzq"} {
		lookup(tr, &b, nm)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `sin: ExactMatch sin at [0:3]: \sin `, lines[0])
	assert.Equal(t, `alp: InferredMatch alpha at [0:3]: \alpha `, lines[1])
	assert.Equal(t, `arc: "arc" is ambiguous: arccos, arcctg, arcsin, arctan, arctg`, lines[2])
	assert.Equal(t, `nin: ExactMatch nin (alias of notin) at [0:3]: \notin `, lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "zzq: no match"), lines[4])
}

func TestInteract(t *testing.T) {
	c := &Config{Color: true}
	tr, _, err := newTranspiler(c)
	require.NoError(t, err)
	var b bytes.Buffer
	in := "a^2\n:highlight off\n:lookup sin\n:bogus\n:highlight maybe\n:quit\nx^2\n"
	require.NoError(t, interact(c, tr, strings.NewReader(in), &b))
	out := b.String()
	assert.False(t, c.Color)
	assert.Contains(t, out, "> a^{2}\n")
	assert.Contains(t, out, `sin: ExactMatch sin`)
	assert.Contains(t, out, `error: unknown command "bogus"`)
	assert.Contains(t, out, `error: usage: :highlight on|off`)
	assert.NotContains(t, out, "x^{2}")
	assert.Equal(t, 6, strings.Count(out, "> "))

	b.Reset()
	require.NoError(t, interact(c, tr, strings.NewReader("sqrt(x,3)"), &b))
	assert.Equal(t, "> \\sqrt[3]{x}\n> \n", b.String())
}

func TestCheatsheet(t *testing.T) {
	tr, f, err := newTranspiler(&Config{})
	require.NoError(t, err)
	md, err := cheatsheet(tr, f)
	require.NoError(t, err)
	s := string(md)
	assert.Contains(t, s, "## letters")
	assert.Contains(t, s, "| `` hat(a,b) `` | `` \\hat{a,b} `` |")
	assert.Contains(t, s, "| `` nin `` | `` notin `` |")
	htm := string(toHTML(md))
	assert.Contains(t, htm, "<table>")
	assert.Contains(t, htm, "<h2")
}

func TestDVIFilename(t *testing.T) {
	assert.Equal(t, "notes.dvi", dviFilename(&Config{Input: "notes.stx"}, 0, 1))
	assert.Equal(t, "notes-2.dvi", dviFilename(&Config{Input: "notes.stx"}, 1, 3))
	assert.Equal(t, "out.dvi", dviFilename(&Config{Input: "notes.stx", Output: "out.dvi"}, 0, 1))
	assert.Equal(t, "shorttex.dvi", dviFilename(&Config{Input: "notes.stx", Expr: "x"}, 0, 1))
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

func TestWatch(t *testing.T) {
	if testing.Short() {
		t.Skip("watching files is slow")
	}
	fname := filepath.Join(t.TempDir(), "notes.stx")
	require.NoError(t, os.WriteFile(fname, []byte("a^2\n"), 0666))
	c := &Config{Input: fname}
	tr, _, err := newTranspiler(c)
	require.NoError(t, err)

	var out syncBuffer
	done := make(chan struct{})
	result := make(chan error)
	go func() {
		result <- watchFile(c, tr, &out, done)
	}()
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "a^{2}")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(fname, []byte("b_1\n"), 0666))
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "b_{1}")
	}, 5*time.Second, 20*time.Millisecond)

	close(done)
	assert.NoError(t, <-result)
}
