// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	_ "embed"
	"sync"

	"cogentcore.org/core/base/errors"
)

//go:embed builtin.toml
var builtinTOML []byte

var (
	builtinFile  *File
	builtinTable *Table
	builtinOnce  sync.Once
)

func loadBuiltin() {
	builtinFile = errors.Must1(ReadTOML(builtinTOML))
	builtinTable = errors.Must1(New(builtinFile))
}

// Builtin returns the builtin notation table.
func Builtin() *Table {
	builtinOnce.Do(loadBuiltin)
	return builtinTable
}

// BuiltinFile returns a copy of the file the builtin table is built from,
// which can be used as the base of a [File.Merge].
func BuiltinFile() *File {
	builtinOnce.Do(loadBuiltin)
	return builtinFile.Clone()
}
