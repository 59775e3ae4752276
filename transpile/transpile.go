// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transpile converts compact, hand-typed math shorthand into
// LaTeX markup. Each call is a pure function of its input and the
// notation table: the text is tokenized, words are resolved into table
// functions whose templates are expanded, bracketed groups are
// transpiled recursively as their own scopes, and finally ^ _ and /
// markers are folded into scripts and fractions.
package transpile

import (
	"strings"
	"sync"
	"unicode"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/shorttex/notation"
	"golang.org/x/text/unicode/norm"
)

//go:generate core generate

// DefaultMaxDepth is the default maximum number of nested scopes.
const DefaultMaxDepth = 256

// Options configure a [Transpiler].
type Options struct {

	// Table is the notation table; the builtin table if nil.
	Table *notation.Table

	// MaxDepth is the maximum number of nested scopes:
	// brackets, function arguments and sub-grammars.
	// [DefaultMaxDepth] if zero.
	MaxDepth int
}

// Transpiler transpiles shorthand using one notation table.
// It holds no state between calls and is safe for concurrent use.
type Transpiler struct {
	table    *notation.Table
	maxDepth int
}

// New returns a new [Transpiler] with the given options.
func New(opts Options) *Transpiler {
	tr := &Transpiler{table: opts.Table, maxDepth: opts.MaxDepth}
	if tr.table == nil {
		tr.table = notation.Builtin()
	}
	if tr.maxDepth <= 0 {
		tr.maxDepth = DefaultMaxDepth
	}
	return tr
}

// Table returns the notation table used by the transpiler.
func (tr *Transpiler) Table() *notation.Table {
	return tr.table
}

var defaultTranspiler = sync.OnceValue(func() *Transpiler {
	return New(Options{})
})

// Parse transpiles one line of shorthand into LaTeX using the builtin
// table. Malformed input never fails; the only error is a
// [RecursionLimitError] for pathologically nested input.
func Parse(text string) (string, error) {
	return defaultTranspiler().Parse(text)
}

// Parse transpiles one line of shorthand into LaTeX.
// See the package-level [Parse].
func (tr *Transpiler) Parse(text string) (string, error) {
	return tr.parse(Scope{Text: norm.NFC.String(text)}, 1)
}

// Scope is one unit of work: a text and its sub-grammar flags.
type Scope struct {

	// Text is the source text of the scope.
	Text string

	// Array makes line breaks and \\ row separators.
	Array bool

	// Matrix makes spaces and & column separators.
	// It only applies together with Array.
	Matrix bool
}

// normalize trims the scope text and normalizes its separators.
func (sc Scope) normalize() Scope {
	sc.Text = strings.TrimSpace(sc.Text)
	if sc.Array {
		sc.Text = strings.ReplaceAll(sc.Text, "\r\n", "\n")
		sc.Text = strings.ReplaceAll(sc.Text, "\r", "\n")
		if sc.Matrix {
			sc.Text = strings.ReplaceAll(sc.Text, "\t", " ")
		}
	}
	return sc
}

// parse transpiles one scope at the given depth.
func (tr *Transpiler) parse(sc Scope, depth int) (string, error) {
	if depth > tr.maxDepth {
		return "", &RecursionLimitError{Limit: tr.maxDepth}
	}
	if raw, ok := strings.CutPrefix(strings.TrimLeftFunc(sc.Text, unicode.IsSpace), RawMarker); ok {
		return raw, nil
	}
	sc = sc.normalize()
	if sc.Text == "" {
		return "", nil
	}
	toks := Tokenize(tr.table, sc)
	logx.PrintlnDebug("scope", depth, "array:", sc.Array, "matrix:", sc.Matrix, "tokens:", toks.String())
	toks, err := tr.resolveFunctions(toks, depth)
	if err != nil {
		return "", err
	}
	toks, err = tr.expandGroups(toks, depth)
	if err != nil {
		return "", err
	}
	toks = mergeText(toks)
	toks = FoldScripts(toks)
	toks = FoldFractions(toks)
	return toks.Render(sc.Array && sc.Matrix), nil
}

// resolveFunctions replaces words and symbols with their expansions.
// A function that ends a word, or a symbol, consumes the following
// bracketed token as its argument list if its template takes one.
func (tr *Transpiler) resolveFunctions(toks Tokens, depth int) (Tokens, error) {
	out := make(Tokens, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		var pieces []Piece
		kind := Text
		switch tok.Kind {
		case Word:
			pieces = Resolve(tr.table, tok.Str)
		case Symbol:
			pieces = []Piece{{Name: tok.Str}}
			kind = Fragment
		default:
			out = append(out, tok)
			continue
		}
		var sb strings.Builder
		for pi, p := range pieces {
			if !p.IsFunction() {
				sb.WriteString(p.Text)
				continue
			}
			arg := ""
			if pi == len(pieces)-1 && tr.table.TakesArgument(p.Name) && i+1 < len(toks) && toks[i+1].IsBracketed() {
				i++
				arg = toks[i].Inner
			}
			ex, err := tr.Expand(p.Name, arg, depth)
			if err != nil {
				return nil, err
			}
			sb.WriteString(ex)
		}
		out = append(out, Token{Kind: kind, Str: sb.String()})
	}
	return out, nil
}

// expandGroups transpiles the interior of each remaining group
// as a plain scope of its own.
func (tr *Transpiler) expandGroups(toks Tokens, depth int) (Tokens, error) {
	out := make(Tokens, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == Group {
			inner, err := tr.parse(Scope{Text: tok.Inner}, depth+1)
			if err != nil {
				return nil, err
			}
			tok.Inner = inner
			tok.Str = string(tok.Open) + inner + string(tok.Close)
		}
		out = append(out, tok)
	}
	return out, nil
}
