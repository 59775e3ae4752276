// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shorttex transpiles compact, hand-typed math shorthand into LaTeX.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/cli"
	"cogentcore.org/shorttex/notation"
	"cogentcore.org/shorttex/render"
	"cogentcore.org/shorttex/transpile"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the shorttex cli.
type Config struct {

	// Input is the input file of shorthand. Blocks in it are separated
	// by two blank lines and each produce one line of LaTeX.
	// For the lookup command, it is the first name to look up.
	Input string `posarg:"0" required:"-"`

	// Expr is a shorthand expression to transpile
	// instead of the Input file.
	Expr string `flag:"e,expr"`

	// Names are further names to look up, after Input.
	// These are automatically processed from any leftover arguments.
	Names []string `cmd:"lookup" posarg:"leftover" required:"-"`

	// Table is an optional notation table file, in TOML or YAML,
	// whose definitions are merged over the builtin table.
	Table string `flag:"t,table"`

	// Color highlights the LaTeX output when writing to a terminal.
	Color bool `flag:"color"`

	// Check verifies that the braces and environments
	// of the LaTeX output are balanced.
	Check bool `flag:"check"`

	// Output is the output file. The transpile command writes LaTeX to it
	// instead of standard output, the doc command writes HTML or, for
	// a .md file, markdown, and the dvi command writes DVI.
	Output string `flag:"o,output"`

	// MaxDepth is the maximum number of nested scopes.
	MaxDepth int `default:"256"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("shorttex", "Shorttex transpiles compact math shorthand into LaTeX.")
	cli.Run(opts, &Config{}, Transpile, Watch, Interactive, Lookup, Doc, DVI)
}

// Transpile transpiles the Input file, or the Expr expression,
// printing one line of LaTeX per block.
func Transpile(c *Config) error { //cli:cmd -root
	tr, _, err := newTranspiler(c)
	if err != nil {
		return err
	}
	src, err := source(c)
	if err != nil {
		return err
	}
	if c.Output == "" {
		return transpileText(c, tr, os.Stdout, src)
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	c.Color = false
	err = transpileText(c, tr, f, src)
	return errors.Join(err, f.Close())
}

// source returns the shorthand to process: the Expr expression
// if any, otherwise the contents of the Input file.
func source(c *Config) (string, error) {
	if c.Expr != "" {
		return c.Expr, nil
	}
	if c.Input == "" {
		return "", errors.New("an input file or an expression (-e) is required")
	}
	if !errors.Log1(fsx.FileExists(c.Input)) {
		return "", fmt.Errorf("input file %q does not exist", c.Input)
	}
	b, err := os.ReadFile(c.Input)
	return string(b), err
}

// newTranspiler returns a transpiler for the configured table, along
// with the table file it was built from.
func newTranspiler(c *Config) (*transpile.Transpiler, *notation.File, error) {
	f := notation.BuiltinFile()
	tb := notation.Builtin()
	if c.Table != "" {
		user, err := notation.Open(c.Table)
		if err != nil {
			return nil, nil, err
		}
		f = f.Merge(user)
		tb, err = notation.New(f)
		if err != nil {
			return nil, nil, fmt.Errorf("table %q: %w", c.Table, err)
		}
	}
	return transpile.New(transpile.Options{Table: tb, MaxDepth: c.MaxDepth}), f, nil
}

// Blocks splits shorthand text into blocks on triple line breaks,
// after removing a trailing line break.
func Blocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n\n\n")
}

// transpileText transpiles each block of text, writing one line per
// block. All errors are returned together, after processing every block.
func transpileText(c *Config, tr *transpile.Transpiler, w io.Writer, text string) error {
	var errs []error
	for i, b := range Blocks(text) {
		latex, err := tr.Parse(b)
		if err != nil {
			errs = append(errs, fmt.Errorf("block %d: %w", i+1, err))
			fmt.Fprintln(w)
			continue
		}
		if c.Check {
			if err := render.Check(latex); err != nil {
				errs = append(errs, fmt.Errorf("block %d: %w", i+1, err))
			}
		}
		if err := writeLaTeX(w, latex, c.Color); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

// writeLaTeX writes one line of LaTeX, highlighted if color is on.
func writeLaTeX(w io.Writer, latex string, color bool) error {
	if color {
		if err := render.HighlightTerminal(w, latex); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, latex)
	return err
}
