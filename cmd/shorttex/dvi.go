// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/shorttex/render"
)

// DVI typesets each block of the Input file, or the Expr expression,
// with plain TeX into a DVI file. The file is named by Output, or
// after the Input file, with the block number added if there are
// several blocks.
func DVI(c *Config) error {
	tr, _, err := newTranspiler(c)
	if err != nil {
		return err
	}
	src, err := source(c)
	if err != nil {
		return err
	}
	blocks := Blocks(src)
	var errs []error
	for i, b := range blocks {
		latex, err := tr.Parse(b)
		if err != nil {
			errs = append(errs, fmt.Errorf("block %d: %w", i+1, err))
			continue
		}
		dvi, err := render.DVI(latex)
		if err != nil {
			errs = append(errs, fmt.Errorf("block %d: %w", i+1, err))
			continue
		}
		fname := dviFilename(c, i, len(blocks))
		if err := os.WriteFile(fname, dvi, 0666); err != nil {
			return err
		}
		fmt.Println(fname)
	}
	return errors.Join(errs...)
}

// dviFilename returns the output file name for block i of n.
func dviFilename(c *Config, i, n int) string {
	fname := c.Output
	if fname == "" {
		fname = "shorttex.dvi"
		if c.Expr == "" && c.Input != "" {
			fname = strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".dvi"
		}
	}
	if n > 1 {
		ext := filepath.Ext(fname)
		fname = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(fname, ext), i+1, ext)
	}
	return fname
}
