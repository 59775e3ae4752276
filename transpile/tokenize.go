// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/shorttex/notation"
)

// RawMarker at the start of a scope or bracketed group emits the rest
// of it verbatim. Leading whitespace before the marker is ignored in
// both places, so (\lx) and ( \lx) both give x.
const RawMarker = `\l`

// Tokenize splits the text of a scope into tokens. Symbol keys of the
// table are taken first, longest first; bracketed groups become single
// tokens; alphanumeric runs become [Word] tokens; in array mode line
// breaks and \\ become [Row] tokens, and in matrix mode spaces and &
// become [Column] tokens. Everything else is a one character [Op].
func Tokenize(tb *notation.Table, sc Scope) Tokens {
	s := sc.Text
	matrix := sc.Array && sc.Matrix
	var toks Tokens
	wordStart := -1
	flush := func(end int) {
		if wordStart >= 0 {
			toks = append(toks, Token{Kind: Word, Str: s[wordStart:end]})
			wordStart = -1
		}
	}
	for i := 0; i < len(s); {
		if sym := matchSymbol(tb, s[i:], matrix); sym != "" {
			flush(i)
			toks = append(toks, Token{Kind: Symbol, Str: sym})
			i += len(sym)
			continue
		}
		c := s[i]
		switch {
		case IsOpenBracket(c):
			flush(i)
			end, inner, closed := ScanGroup(s[i:])
			if !closed {
				logx.PrintlnDebug("unclosed", string(c), "in", s)
			}
			tok := Token{Kind: Group, Str: s[i : i+end], Inner: inner, Open: c, Close: MatchingBracket(c)}
			if raw, ok := strings.CutPrefix(strings.TrimLeftFunc(inner, unicode.IsSpace), RawMarker); ok {
				tok.Kind = Raw
				tok.Str = raw
			}
			toks = append(toks, tok)
			i += end
		case sc.Array && c == '\n':
			flush(i)
			toks = addBreak(toks, Row)
			i++
		case sc.Array && strings.HasPrefix(s[i:], `\\`):
			flush(i)
			toks = addBreak(toks, Row)
			i += 2
		case matrix && (c == ' ' || c == '&'):
			flush(i)
			toks = addBreak(toks, Column)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if notation.IsWordRune(r) {
				if wordStart < 0 {
					wordStart = i
				}
			} else {
				flush(i)
				toks = append(toks, Token{Kind: Op, Str: s[i : i+size]})
			}
			i += size
		}
	}
	flush(len(s))
	for len(toks) > 0 && toks[len(toks)-1].IsBreak() {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// matchSymbol returns the longest symbol key of the table at
// the start of s. In matrix mode whitespace keys are skipped,
// as spaces separate columns there.
func matchSymbol(tb *notation.Table, s string, matrix bool) string {
	for _, sym := range tb.Symbols() {
		if matrix && strings.TrimSpace(sym) == "" {
			continue
		}
		if strings.HasPrefix(s, sym) {
			return sym
		}
	}
	return ""
}

// addBreak adds a row or column break. Breaks before any token are
// dropped, consecutive breaks collapse into one, and a column break
// directly followed by a row break becomes a row break.
func addBreak(toks Tokens, kind Kind) Tokens {
	n := len(toks)
	if n == 0 {
		return toks
	}
	if toks[n-1].IsBreak() {
		if kind == Row {
			toks[n-1] = breakToken(Row)
		}
		return toks
	}
	return append(toks, breakToken(kind))
}

func breakToken(kind Kind) Token {
	if kind == Row {
		return Token{Kind: Row, Str: `\\`}
	}
	return Token{Kind: Column, Str: "&"}
}
