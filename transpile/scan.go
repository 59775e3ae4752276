// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

// IsOpenBracket returns whether c opens a bracketed group.
func IsOpenBracket(c byte) bool {
	return c == '(' || c == '[' || c == '{'
}

// MatchingBracket returns the closing bracket for the given
// opening bracket, or 0.
func MatchingBracket(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}
	return 0
}

// ScanGroup scans the bracketed group at the start of s, whose first byte
// must be an opening bracket. It returns the index just past the matching
// closing bracket and the raw interior. Only brackets of the same kind are
// counted. If the group is never closed, the rest of s is the interior,
// end is len(s) and closed is false.
func ScanGroup(s string) (end int, interior string, closed bool) {
	opener := s[0]
	closer := MatchingBracket(opener)
	depth := 1
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i + 1, s[1:i], true
			}
		}
	}
	return len(s), s[1:], false
}

// SplitArgs splits a raw argument list on commas that are not
// inside a bracketed group. Empty arguments are kept, so that
// argument positions are preserved: "" gives one empty argument.
func SplitArgs(s string) []string {
	var args []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch {
		case IsOpenBracket(s[i]):
			end, _, _ := ScanGroup(s[i:])
			i += end - 1
		case s[i] == ',':
			args = append(args, s[start:i])
			start = i + 1
		}
	}
	return append(args, s[start:])
}
