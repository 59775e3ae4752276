// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation provides the table of shorthand names and symbols
// that are expanded into LaTeX by the transpiler. A table maps each
// name to either a literal replacement or a [Template], possibly
// through a single alias hop. Tables are described by a [File],
// which can be read from TOML or YAML, and are read-only once built.
package notation

import (
	"cogentcore.org/core/base/errors"
)

//go:generate core generate

// FormatVersion is the version of the table file format
// understood by this package. A [File] can require a range
// of format versions with its Requires constraint.
const FormatVersion = "1.0.0"

// ErrInvalidTable is wrapped by all table validation errors.
var ErrInvalidTable = errors.New("invalid notation table")

// IsWordRune returns whether r can be part of an alphanumeric run:
// ASCII letters and digits, and the ! and ° signs.
func IsWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '!', r == '°':
		return true
	}
	return false
}

// IsWord returns whether s is non-empty and made only of word runes.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsWordRune(r) {
			return false
		}
	}
	return true
}
