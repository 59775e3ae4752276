// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render checks, highlights and typesets
// the LaTeX produced by the transpiler.
package render

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/tdewolff/parse/v2"
)

// ErrUnbalanced is returned by [Check] for LaTeX
// with unbalanced groups.
var ErrUnbalanced = errors.New("unbalanced LaTeX")

// opener is an open group on the [Check] stack.
type opener struct {

	// closing is the text that closes the group.
	closing string

	// offset is the byte offset of the opening text.
	offset int
}

// Check verifies that the braces, \left and \right delimiters and
// \begin and \end environments of the given LaTeX are balanced and
// properly nested. Escaped braces such as \{ are not groups.
func Check(latex string) error {
	lx := newLexer(latex)
	var stack []opener
	next := func() string {
		tok, _ := lx.next()
		return tok
	}
	pop := func(closing string, at int) error {
		if len(stack) == 0 {
			return fmt.Errorf("%w: unexpected %q at offset %d", ErrUnbalanced, closing, at)
		}
		last := stack[len(stack)-1]
		if last.closing != closing {
			return fmt.Errorf("%w: unexpected %q at offset %d, expected %q to close offset %d", ErrUnbalanced, closing, at, last.closing, last.offset)
		}
		stack = stack[:len(stack)-1]
		return nil
	}
	for {
		tok, at := lx.next()
		if tok == "" {
			break
		}
		switch tok {
		case "{":
			stack = append(stack, opener{"}", at})
		case "}":
			if err := pop("}", at); err != nil {
				return err
			}
		case `\left`:
			next()
			stack = append(stack, opener{`\right`, at})
		case `\right`:
			next()
			if err := pop(`\right`, at); err != nil {
				return err
			}
		case `\begin`, `\end`:
			name, err := environment(next)
			if err != nil {
				return fmt.Errorf("%w: %s at offset %d", ErrUnbalanced, err, at)
			}
			closing := `\end{` + name + "}"
			if tok == `\begin` {
				stack = append(stack, opener{closing, at})
			} else if err := pop(closing, at); err != nil {
				return err
			}
		}
	}
	if len(stack) > 0 {
		last := stack[len(stack)-1]
		return fmt.Errorf("%w: unexpected end, expected %q to close offset %d", ErrUnbalanced, last.closing, last.offset)
	}
	return nil
}

// environment reads the braced name following \begin or \end.
func environment(next func() string) (string, error) {
	if next() != "{" {
		return "", fmt.Errorf("missing environment name")
	}
	var name strings.Builder
	for {
		tok := next()
		switch tok {
		case "":
			return "", fmt.Errorf("unterminated environment name")
		case "}":
			return name.String(), nil
		}
		name.WriteString(tok)
	}
}

// lexer splits LaTeX into tokens: a control word, a control symbol
// such as \{, a run of letters, a comment to the end of the line, or
// any other single byte.
type lexer struct {
	r *parse.Input

	// offset is the byte offset of the next token.
	offset int
}

func newLexer(latex string) *lexer {
	return &lexer{r: parse.NewInputString(latex)}
}

// next returns the next token and its byte offset,
// or "" at the end of the input.
func (lx *lexer) next() (string, int) {
	r := lx.r
	if r.Err() != nil {
		return "", lx.offset
	}
	switch c := r.Peek(0); {
	case c == '\\':
		r.Move(1)
		if isLetter(r.Peek(0)) {
			lx.moveWhile(isLetter)
		} else if r.Err() == nil {
			r.Move(1)
		}
	case isLetter(c):
		lx.moveWhile(isLetter)
	case c == '%':
		lx.moveWhile(func(b byte) bool { return b != '\n' })
	default:
		r.Move(1)
	}
	at := lx.offset
	tok := string(r.Shift())
	lx.offset += len(tok)
	return tok, at
}

// moveWhile moves over the bytes satisfying test.
func (lx *lexer) moveWhile(test func(byte) bool) {
	for lx.r.Err() == nil && test(lx.r.Peek(0)) {
		lx.r.Move(1)
	}
}

func isLetter(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z'
}
