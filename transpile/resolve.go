// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"strconv"
	"unicode/utf8"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/shorttex/notation"
)

// MatchKind is the outcome of [FindMatch].
type MatchKind int32 //enums:enum

const (
	// NoMatch means the word contains no table key.
	NoMatch MatchKind = iota

	// ExactMatch means a substring of the word is a table key.
	ExactMatch

	// InferredMatch means a substring of more than two characters
	// is a prefix of exactly one table key.
	InferredMatch

	// Ambiguous means a substring of more than two characters is
	// a prefix of several table keys, so the word is left as is.
	Ambiguous
)

// MinInferredLen is the minimum number of characters
// a truncated name must have to be inferred.
const MinInferredLen = 3

// Match is the result of looking up the function names in a word.
type Match struct {

	// Kind is the outcome.
	Kind MatchKind

	// Name is the selected table key, for exact and inferred matches.
	Name string

	// Start and End are the byte offsets in the word of the matched
	// text, which is preceded by a literal prefix and followed by
	// a suffix that is resolved again.
	Start, End int

	// Candidates are the keys sharing the matched prefix,
	// for ambiguous matches.
	Candidates []string
}

// FindMatch finds the function name in the given word. All substrings
// are tried, by increasing start and decreasing end, for an exact key.
// If there is none, the same scan looks for a substring of at least
// [MinInferredLen] characters that is a prefix of table keys: the first
// such substring gives an inferred match if it has exactly one key, and
// an ambiguous match otherwise. Substrings longer than the longest key
// are skipped, so the cost is linear in the length of the word.
func FindMatch(tb *notation.Table, word string) Match {
	if m := scanMatch(tb, word, true); m.Kind != NoMatch {
		return m
	}
	return scanMatch(tb, word, false)
}

// scanMatch does one scan of [FindMatch], for exact keys
// or for key prefixes.
func scanMatch(tb *notation.Table, word string, exact bool) Match {
	maxLen := tb.MaxKeyLen()
	ends := make([]int, 0, maxLen)
	for si := range word {
		ends = ends[:0]
		for e := si; e < len(word); {
			_, size := utf8.DecodeRuneInString(word[e:])
			e += size
			if e-si > maxLen {
				break
			}
			ends = append(ends, e)
		}
		for j := len(ends) - 1; j >= 0; j-- {
			sub := word[si:ends[j]]
			if exact {
				if tb.Has(sub) {
					return Match{Kind: ExactMatch, Name: sub, Start: si, End: ends[j]}
				}
				continue
			}
			if j+1 < MinInferredLen {
				break
			}
			cands := tb.KeysWithPrefix(sub)
			switch {
			case len(cands) == 1:
				return Match{Kind: InferredMatch, Name: cands[0], Start: si, End: ends[j]}
			case len(cands) > 1:
				return Match{Kind: Ambiguous, Start: si, End: ends[j], Candidates: cands}
			}
		}
	}
	return Match{Kind: NoMatch}
}

// Piece is one part of a resolved word: literal text or a function name.
type Piece struct {

	// Text is the literal text, when Name is empty.
	Text string

	// Name is the table key of a function.
	Name string
}

// IsFunction returns whether the piece is a function name.
func (p Piece) IsFunction() bool {
	return p.Name != ""
}

// Resolve splits a word into literal text and function names.
// The text before a match is kept literal and the text after
// it is resolved again. An ambiguous or missing match leaves
// the remaining text literal.
func Resolve(tb *notation.Table, word string) []Piece {
	var pieces []Piece
	exact := true
	for word != "" {
		var m Match
		if exact {
			m = scanMatch(tb, word, true)
		}
		if m.Kind == NoMatch {
			// no key occurs in word, so none occurs in its suffixes
			exact = false
			m = scanMatch(tb, word, false)
		}
		if m.Kind != ExactMatch && m.Kind != InferredMatch {
			if m.Kind == Ambiguous {
				logx.PrintlnDebug("ambiguous name", strconv.Quote(word[m.Start:m.End]), "could be any of", m.Candidates)
			}
			pieces = append(pieces, Piece{Text: word})
			break
		}
		if m.Start > 0 {
			pieces = append(pieces, Piece{Text: word[:m.Start]})
		}
		pieces = append(pieces, Piece{Name: m.Name})
		word = word[m.End:]
	}
	return pieces
}
