// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile() *File {
	return &File{
		Version:   "1.0.0",
		Templates: []string{`\<func> `, `\<func>{<arg:p>}`},
		Groups: []Group{
			{Name: "functions", Template: 0, Names: []string{"sin", "sinh", "cos"}},
			{Name: "accents", Template: 1, Names: []string{"hat"}},
		},
		Literals: map[string]string{"<=": `\leq `, "~": "~ "},
		Aliases:  map[string]string{"cosine": "cos"},
	}
}

func TestNew(t *testing.T) {
	tb, err := New(testFile())
	require.NoError(t, err)

	assert.Equal(t, []string{"<=", "cos", "cosine", "hat", "sin", "sinh", "~"}, tb.Keys())
	assert.Equal(t, []string{"<=", "~"}, tb.Symbols())
	assert.True(t, tb.Has("cosine"))
	assert.False(t, tb.Has("tan"))
	assert.Equal(t, 6, tb.MaxKeyLen())

	d, ok := tb.Lookup("cosine")
	require.True(t, ok)
	assert.Equal(t, "cos", d.Name)
	target, ok := tb.Alias("cosine")
	assert.True(t, ok)
	assert.Equal(t, "cos", target)

	d, ok = tb.Lookup("<=")
	require.True(t, ok)
	assert.True(t, d.IsLiteral())
	assert.Nil(t, tb.Template(d))

	assert.True(t, tb.TakesArgument("hat"))
	assert.False(t, tb.TakesArgument("sin"))
	assert.False(t, tb.TakesArgument("nothing"))
}

func TestKeysWithPrefix(t *testing.T) {
	tb, err := New(testFile())
	require.NoError(t, err)
	assert.Equal(t, []string{"sinh"}, tb.KeysWithPrefix("sin"))
	assert.Equal(t, []string{"sin", "sinh"}, tb.KeysWithPrefix("si"))
	assert.Equal(t, []string{"cosine"}, tb.KeysWithPrefix("cos"))
	assert.Empty(t, tb.KeysWithPrefix("tan"))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(f *File)
	}{
		{"template range", func(f *File) { f.Groups[0].Template = 5 }},
		{"bad template", func(f *File) { f.Templates[1] = `\<func>{<arg:x>}` }},
		{"conflicting duplicate", func(f *File) { f.Literals["sin"] = `\sin` }},
		{"alias chain", func(f *File) { f.Aliases["cs"] = "cosine" }},
		{"alias undefined", func(f *File) { f.Aliases["tg"] = "tan" }},
		{"alias shadows name", func(f *File) { f.Aliases["sin"] = "cos" }},
		{"empty name", func(f *File) { f.Groups[1].Names = append(f.Groups[1].Names, "") }},
		{"bad version", func(f *File) { f.Version = "one" }},
		{"unsatisfied requires", func(f *File) { f.Requires = ">= 2" }},
		{"bad requires", func(f *File) { f.Requires = "soon" }},
	}
	for _, test := range tests {
		f := testFile()
		test.edit(f)
		_, err := New(f)
		assert.ErrorIs(t, err, ErrInvalidTable, test.name)
	}
}

func TestIdenticalDuplicate(t *testing.T) {
	f := testFile()
	f.Groups = append(f.Groups, Group{Name: "again", Template: 0, Names: []string{"sin"}})
	tb, err := New(f)
	require.NoError(t, err)
	assert.Equal(t, 7, tb.Len())
}

func TestIsWord(t *testing.T) {
	assert.True(t, IsWord("sin"))
	assert.True(t, IsWord("90°"))
	assert.True(t, IsWord("n!"))
	assert.False(t, IsWord(""))
	assert.False(t, IsWord(`\N`))
	assert.False(t, IsWord("    "))
	assert.False(t, IsWord("=="))
}
