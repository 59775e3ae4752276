// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/Masterminds/semver/v3"
)

// Descriptor describes the expansion of one canonical name.
type Descriptor struct {

	// Name is the canonical table key.
	Name string

	// Template is the index into [Table.Templates],
	// or -1 if the name expands to [Descriptor.Literal].
	Template int

	// Literal is the fixed replacement text when Template is -1.
	Literal string
}

// IsLiteral returns whether the descriptor has a fixed replacement.
func (d *Descriptor) IsLiteral() bool {
	return d.Template < 0
}

// Table is a validated, read-only notation table.
// It is safe for concurrent use.
type Table struct {

	// Version is the version of the table contents.
	Version string

	// Templates is the compiled template table.
	Templates []*Template

	// descriptors are keyed by canonical name.
	descriptors map[string]*Descriptor

	// aliases map a name to its canonical name.
	aliases map[string]string

	// keys are all names, canonical and alias, sorted.
	keys []string

	// symbols are the keys that are not words,
	// longest first.
	symbols []string

	// maxKeyLen is the length in bytes of the longest key.
	maxKeyLen int
}

// New builds and validates a [Table] from the given file.
// All validation problems are returned together.
func New(f *File) (*Table, error) {
	t := &Table{
		Version:     f.Version,
		descriptors: map[string]*Descriptor{},
		aliases:     map[string]string{},
	}
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTable}, args...)...))
	}
	if f.Version != "" {
		if _, err := semver.NewVersion(f.Version); err != nil {
			invalid("version %q: %v", f.Version, err)
		}
	}
	if f.Requires != "" {
		c, err := semver.NewConstraint(f.Requires)
		switch {
		case err != nil:
			invalid("requires %q: %v", f.Requires, err)
		case !c.Check(semver.MustParse(FormatVersion)):
			invalid("requires format %s, have %s", f.Requires, FormatVersion)
		}
	}
	for _, pat := range f.Templates {
		tp, err := ParseTemplate(pat)
		if err != nil {
			errs = append(errs, err)
			tp = &Template{Pattern: pat}
		}
		t.Templates = append(t.Templates, tp)
	}

	define := func(d *Descriptor) {
		if d.Name == "" {
			invalid("empty name")
			return
		}
		if old, has := t.descriptors[d.Name]; has {
			if *old != *d {
				invalid("%q is defined twice with different expansions", d.Name)
			}
			return
		}
		t.descriptors[d.Name] = d
	}
	for _, g := range f.Groups {
		if g.Template < 0 || g.Template >= len(f.Templates) {
			invalid("group %q: template index %d out of range", g.Name, g.Template)
			continue
		}
		for _, nm := range g.Names {
			define(&Descriptor{Name: nm, Template: g.Template})
		}
	}
	for _, nm := range slices.Sorted(maps.Keys(f.Literals)) {
		define(&Descriptor{Name: nm, Template: -1, Literal: f.Literals[nm]})
	}
	for _, nm := range slices.Sorted(maps.Keys(f.Aliases)) {
		target := f.Aliases[nm]
		_, chained := f.Aliases[target]
		switch {
		case t.descriptors[nm] != nil:
			invalid("alias %q is also defined as a name", nm)
		case chained:
			invalid("alias %q refers to alias %q", nm, target)
		case t.descriptors[target] == nil:
			invalid("alias %q refers to undefined name %q", nm, target)
		default:
			t.aliases[nm] = target
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	t.keys = slices.Sorted(maps.Keys(t.descriptors))
	for nm := range t.aliases {
		t.keys = append(t.keys, nm)
	}
	slices.Sort(t.keys)
	for _, k := range t.keys {
		t.maxKeyLen = max(t.maxKeyLen, len(k))
		if !IsWord(k) {
			t.symbols = append(t.symbols, k)
		}
	}
	slices.SortFunc(t.symbols, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return t, nil
}

// Has returns whether name is a key of the table, canonical or alias.
func (t *Table) Has(name string) bool {
	if _, ok := t.descriptors[name]; ok {
		return true
	}
	_, ok := t.aliases[name]
	return ok
}

// Lookup returns the descriptor for the given name,
// following an alias to its canonical name.
func (t *Table) Lookup(name string) (*Descriptor, bool) {
	if target, ok := t.aliases[name]; ok {
		name = target
	}
	d, ok := t.descriptors[name]
	return d, ok
}

// Alias returns the canonical name an alias refers to.
func (t *Table) Alias(name string) (string, bool) {
	target, ok := t.aliases[name]
	return target, ok
}

// Template returns the template of the given descriptor,
// or nil for literals.
func (t *Table) Template(d *Descriptor) *Template {
	if d.IsLiteral() {
		return nil
	}
	return t.Templates[d.Template]
}

// TakesArgument returns whether the expansion of name
// consumes a following bracketed argument list.
func (t *Table) TakesArgument(name string) bool {
	d, ok := t.Lookup(name)
	if !ok {
		return false
	}
	tp := t.Template(d)
	return tp != nil && tp.TakesArgument()
}

// Keys returns all keys in sorted order. The result must not be modified.
func (t *Table) Keys() []string {
	return t.keys
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// MaxKeyLen returns the length in bytes of the longest key.
// No substring longer than this can be a key or a key prefix.
func (t *Table) MaxKeyLen() int {
	return t.maxKeyLen
}

// Symbols returns the keys containing non-word characters,
// longest first. The result must not be modified.
func (t *Table) Symbols() []string {
	return t.symbols
}

// KeysWithPrefix returns the keys that strictly extend the given prefix,
// in sorted order.
func (t *Table) KeysWithPrefix(prefix string) []string {
	i, _ := slices.BinarySearch(t.keys, prefix)
	var res []string
	for ; i < len(t.keys) && strings.HasPrefix(t.keys[i], prefix); i++ {
		if t.keys[i] != prefix {
			res = append(res, t.keys[i])
		}
	}
	return res
}
