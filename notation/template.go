// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is the kind of a [Segment] in a compiled [Template].
type Placeholder int32 //enums:enum -transform lower

const (
	// LiteralText is plain template text, copied as is.
	LiteralText Placeholder = iota

	// Func is replaced by the canonical function name.
	Func

	// Arg is replaced by the whole raw argument text.
	Arg

	// Args is replaced by one comma-separated argument,
	// selected by [Segment.Index].
	Args
)

// Mode selects how the text substituted for a placeholder
// is processed before it is inserted.
type Mode int32 //enums:enum -transform lower

const (
	// Verbatim inserts the text unparsed.
	Verbatim Mode = iota

	// Parse transpiles the text as a plain scope.
	Parse

	// Array transpiles the text with line breaks as row separators.
	Array

	// Matrix transpiles the text with line breaks as row separators
	// and spaces as column separators.
	Matrix
)

// Segment is one piece of a compiled [Template].
type Segment struct {

	// Kind is the placeholder kind, or [LiteralText].
	Kind Placeholder

	// Text is the literal text for [LiteralText] segments.
	Text string

	// Index is the argument index for [Args] segments.
	Index int

	// Mode is the recursion mode for placeholder segments.
	Mode Mode
}

// Template is a compiled expansion pattern. Placeholders are written
// as <func>, <arg> or <argsN>, optionally followed by a recursion mode:
// <arg:p>, <args1:a>, <arg:m>.
type Template struct {

	// Pattern is the source text of the template.
	Pattern string

	// Segments is the compiled sequence of literal text and placeholders.
	Segments []Segment
}

// ParseTemplate compiles the given pattern into a [Template].
func ParseTemplate(pattern string) (*Template, error) {
	tp := &Template{Pattern: pattern}
	rest := pattern
	for rest != "" {
		lt := strings.IndexByte(rest, '<')
		if lt < 0 {
			tp.addText(rest)
			break
		}
		tp.addText(rest[:lt])
		gt := strings.IndexByte(rest[lt:], '>')
		if gt < 0 {
			return nil, fmt.Errorf("%w: template %q: unterminated placeholder", ErrInvalidTable, pattern)
		}
		seg, err := parsePlaceholder(rest[lt+1 : lt+gt])
		if err != nil {
			return nil, fmt.Errorf("%w: template %q: %v", ErrInvalidTable, pattern, err)
		}
		tp.Segments = append(tp.Segments, seg)
		rest = rest[lt+gt+1:]
	}
	return tp, nil
}

func (tp *Template) addText(s string) {
	if s == "" {
		return
	}
	tp.Segments = append(tp.Segments, Segment{Kind: LiteralText, Text: s})
}

// parsePlaceholder parses the interior of a <...> placeholder.
func parsePlaceholder(s string) (Segment, error) {
	name, mode, _ := strings.Cut(s, ":")
	var seg Segment
	switch mode {
	case "":
		seg.Mode = Verbatim
	case "p":
		seg.Mode = Parse
	case "a":
		seg.Mode = Array
	case "m":
		seg.Mode = Matrix
	default:
		return seg, fmt.Errorf("unknown mode %q in <%s>", mode, s)
	}
	switch {
	case name == "func":
		seg.Kind = Func
		if seg.Mode != Verbatim {
			return seg, fmt.Errorf("<func> does not take a mode")
		}
	case name == "arg":
		seg.Kind = Arg
	case strings.HasPrefix(name, "args"):
		idx, err := strconv.Atoi(name[len("args"):])
		if err != nil || idx < 0 {
			return seg, fmt.Errorf("invalid argument index in <%s>", s)
		}
		seg.Kind = Args
		seg.Index = idx
	default:
		return seg, fmt.Errorf("unknown placeholder <%s>", s)
	}
	return seg, nil
}

// TakesArgument returns whether the template refers to the argument
// text, which means a following bracketed group is consumed as its
// argument list.
func (tp *Template) TakesArgument() bool {
	for _, seg := range tp.Segments {
		if seg.Kind == Arg || seg.Kind == Args {
			return true
		}
	}
	return false
}

func (tp *Template) String() string {
	return tp.Pattern
}
