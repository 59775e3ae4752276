// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"strings"

	"cogentcore.org/shorttex/notation"
)

// Expand returns the expansion of the given table name with the given
// raw argument text, which is empty if no argument list follows.
// Aliases are followed to their canonical name, which is what <func>
// is replaced with. depth is the depth of the calling scope.
func (tr *Transpiler) Expand(name, arg string, depth int) (string, error) {
	d, ok := tr.table.Lookup(name)
	if !ok {
		return name, nil
	}
	tp := tr.table.Template(d)
	if tp == nil {
		return d.Literal, nil
	}
	var sb strings.Builder
	var args []string
	for _, seg := range tp.Segments {
		var sub string
		switch seg.Kind {
		case notation.LiteralText:
			sb.WriteString(seg.Text)
			continue
		case notation.Func:
			sb.WriteString(d.Name)
			continue
		case notation.Arg:
			sub = arg
		case notation.Args:
			if args == nil {
				args = SplitArgs(arg)
			}
			if seg.Index < len(args) {
				sub = args[seg.Index]
			}
		}
		out, err := tr.substitute(sub, seg.Mode, depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// substitute processes placeholder text according to its mode.
func (tr *Transpiler) substitute(sub string, mode notation.Mode, depth int) (string, error) {
	switch mode {
	case notation.Parse:
		return tr.parse(Scope{Text: sub}, depth+1)
	case notation.Array:
		return tr.parse(Scope{Text: sub, Array: true}, depth+1)
	case notation.Matrix:
		return tr.parse(Scope{Text: sub, Array: true, Matrix: true}, depth+1)
	}
	return sub, nil
}
