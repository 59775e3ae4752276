// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the serializable description of a notation [Table].
type File struct {

	// Version is the semantic version of the table contents.
	Version string `toml:"version" yaml:"version"`

	// Requires is an optional semantic version constraint
	// on [FormatVersion], such as ">= 1.0, < 2".
	Requires string `toml:"requires,omitempty" yaml:"requires,omitempty"`

	// Templates is the ordered template table that
	// groups refer to by index.
	Templates []string `toml:"templates" yaml:"templates"`

	// Groups assign a template to lists of names.
	Groups []Group `toml:"groups" yaml:"groups"`

	// Literals map names to fixed replacement text.
	Literals map[string]string `toml:"literals,omitempty" yaml:"literals,omitempty"`

	// Aliases map names to other names, which must not
	// themselves be aliases.
	Aliases map[string]string `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Group is a list of names that share one template.
type Group struct {

	// Name documents the group (accents, letters, ...).
	Name string `toml:"name" yaml:"name"`

	// Template is the index into [File.Templates].
	Template int `toml:"template" yaml:"template"`

	// Names are the shorthand names in the group.
	Names []string `toml:"names" yaml:"names"`
}

// Open reads a table file, in TOML or YAML format according
// to its extension. A leading ~ is expanded to the home directory.
func Open(filename string) (*File, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		return ReadTOML(b)
	case ".yaml", ".yml":
		return ReadYAML(b)
	}
	return nil, fmt.Errorf("notation.Open: unsupported table file extension %q", filepath.Ext(fn))
}

// ReadTOML decodes a table file from TOML.
func ReadTOML(b []byte) (*File, error) {
	f := &File{}
	if err := toml.Unmarshal(b, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadYAML decodes a table file from YAML.
func ReadYAML(b []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Clone returns a deep copy of the file.
func (f *File) Clone() *File {
	nf := &File{}
	errors.Log(copier.CopyWithOption(nf, f, copier.Option{DeepCopy: true}))
	return nf
}

// Names returns all names defined by the file, in sorted order.
func (f *File) Names() []string {
	seen := map[string]bool{}
	for _, g := range f.Groups {
		for _, nm := range g.Names {
			seen[nm] = true
		}
	}
	for nm := range f.Literals {
		seen[nm] = true
	}
	for nm := range f.Aliases {
		seen[nm] = true
	}
	return slices.Sorted(maps.Keys(seen))
}

// Merge returns a copy of f overlaid with over. Names defined in over
// replace the definitions in f, the templates of over are appended
// and its group template indexes shifted accordingly.
// The receiver and over are not modified.
func (f *File) Merge(over *File) *File {
	nf := f.Clone()
	ov := over.Clone()
	redefined := map[string]bool{}
	for _, nm := range ov.Names() {
		redefined[nm] = true
	}
	groups := make([]Group, 0, len(nf.Groups)+len(ov.Groups))
	for _, g := range nf.Groups {
		g.Names = slices.DeleteFunc(g.Names, func(nm string) bool { return redefined[nm] })
		if len(g.Names) > 0 {
			groups = append(groups, g)
		}
	}
	offset := len(nf.Templates)
	nf.Templates = append(nf.Templates, ov.Templates...)
	for _, g := range ov.Groups {
		g.Template += offset
		groups = append(groups, g)
	}
	nf.Groups = groups
	nf.Literals = overlay(nf.Literals, ov.Literals, redefined)
	nf.Aliases = overlay(nf.Aliases, ov.Aliases, redefined)
	if ov.Version != "" {
		nf.Version = ov.Version
	}
	if ov.Requires != "" {
		nf.Requires = ov.Requires
	}
	return nf
}

// overlay removes the redefined names from base and adds all of over.
func overlay(base, over map[string]string, redefined map[string]bool) map[string]string {
	res := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		if !redefined[k] {
			res[k] = v
		}
	}
	maps.Copy(res, over)
	return res
}
