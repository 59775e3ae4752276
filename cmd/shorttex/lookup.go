// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/shorttex/transpile"
)

// NumSuggestions is the maximum number of suggested names
// for a name with no match.
var NumSuggestions = 5

// Lookup shows how the given names resolve in the notation table,
// suggesting close names for those that do not resolve.
func Lookup(c *Config) error {
	tr, _, err := newTranspiler(c)
	if err != nil {
		return err
	}
	var names []string
	if c.Input != "" {
		names = append(names, c.Input)
	}
	names = append(names, c.Names...)
	if len(names) == 0 {
		return errors.New("lookup requires at least one name")
	}
	for _, nm := range names {
		lookup(tr, os.Stdout, nm)
	}
	return nil
}

// lookup writes one line describing how name resolves.
func lookup(tr *transpile.Transpiler, w io.Writer, name string) {
	tb := tr.Table()
	m := transpile.FindMatch(tb, name)
	switch m.Kind {
	case transpile.ExactMatch, transpile.InferredMatch:
		target := m.Name
		if canon, ok := tb.Alias(m.Name); ok {
			target = fmt.Sprintf("%s (alias of %s)", m.Name, canon)
		}
		ex, err := tr.Expand(m.Name, "", 0)
		if err != nil {
			ex = err.Error()
		}
		fmt.Fprintf(w, "%s: %v %s at [%d:%d]: %s\n", name, m.Kind, target, m.Start, m.End, ex)
	case transpile.Ambiguous:
		fmt.Fprintf(w, "%s: %q is ambiguous: %s\n", name, name[m.Start:m.End], strings.Join(m.Candidates, ", "))
	default:
		fmt.Fprintf(w, "%s: no match", name)
		if sugg := tb.Suggest(name, NumSuggestions); len(sugg) > 0 {
			fmt.Fprintf(w, "; did you mean %s?", strings.Join(sugg, ", "))
		}
		fmt.Fprintln(w)
	}
}
