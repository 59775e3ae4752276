// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"strings"
)

// Kind is the structural classification of a [Token].
type Kind int32 //enums:enum

const (
	// Word is an alphanumeric run, not yet resolved into functions.
	Word Kind = iota

	// Text is rendered word text, which merges with adjacent Text.
	Text

	// Symbol is a table key made of non-word characters, such as <=.
	Symbol

	// Group is a bracketed span. Before expansion Inner is the raw
	// interior; after expansion it is the rendered interior.
	Group

	// Raw is a bracketed span starting with the passthrough marker,
	// emitted verbatim. Inner keeps the raw interior including the marker.
	Raw

	// Op is any other single character, including the structural
	// markers ^ _ and /.
	Op

	// Row is an array row break.
	Row

	// Column is a matrix column break.
	Column

	// Fragment is rendered output that is not merged with its neighbors,
	// such as an expanded symbol or a folded script or fraction.
	Fragment
)

// Token is one unit of a scope.
type Token struct {

	// Kind is the structural classification.
	Kind Kind

	// Str is the text of the token: the source text for words, symbols,
	// operators and unexpanded groups, and the rendered text otherwise.
	Str string

	// Inner is the interior of a [Group] or [Raw] token.
	Inner string

	// Open and Close are the brackets of a [Group] or [Raw] token.
	Open, Close byte
}

// Tokens is a sequence of tokens in one scope.
type Tokens []Token

// IsOp returns whether the token is the given single character operator.
func (tk *Token) IsOp(op string) bool {
	return tk.Kind == Op && tk.Str == op
}

// IsScript returns whether the token is a ^ or _ marker.
func (tk *Token) IsScript() bool {
	return tk.IsOp("^") || tk.IsOp("_")
}

// IsBracketed returns whether the token is a bracketed span that can
// be consumed as a function argument list.
func (tk *Token) IsBracketed() bool {
	return tk.Kind == Group || tk.Kind == Raw
}

// IsBreak returns whether the token is a row or column break.
func (tk *Token) IsBreak() bool {
	return tk.Kind == Row || tk.Kind == Column
}

// Stripped returns the token text with the brackets of
// a group removed.
func (tk *Token) Stripped() string {
	if tk.Kind == Group {
		return tk.Inner
	}
	return tk.Str
}

// Decorated returns the token text with the brackets of a group
// replaced by size-adjusting \left and \right delimiters.
func (tk *Token) Decorated() string {
	if tk.Kind != Group {
		return tk.Str
	}
	return `\left` + delimiter(tk.Open) + tk.Inner + `\right` + delimiter(tk.Close)
}

// delimiter returns the LaTeX form of a bracket,
// escaping braces.
func delimiter(c byte) string {
	if c == '{' || c == '}' {
		return `\` + string(c)
	}
	return string(c)
}

func (tk Token) String() string {
	return "[" + tk.Kind.String() + "] " + tk.Str
}

// String returns the tokens with their kinds, for debugging.
func (tk Tokens) String() string {
	strs := make([]string, len(tk))
	for i, t := range tk {
		strs[i] = t.String()
	}
	return strings.Join(strs, " ")
}

// Render concatenates the tokens into the output of a scope.
// In matrix mode the brackets of groups are stripped, otherwise
// they are decorated.
func (tk Tokens) Render(matrix bool) string {
	var sb strings.Builder
	for i := range tk {
		if matrix {
			sb.WriteString(tk[i].Stripped())
		} else {
			sb.WriteString(tk[i].Decorated())
		}
	}
	return sb.String()
}

// mergeText joins adjacent [Text] tokens.
func mergeText(toks Tokens) Tokens {
	out := make(Tokens, 0, len(toks))
	for _, tok := range toks {
		if n := len(out); n > 0 && tok.Kind == Text && out[n-1].Kind == Text {
			out[n-1].Str += tok.Str
			continue
		}
		out = append(out, tok)
	}
	return out
}
