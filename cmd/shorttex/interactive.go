// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/shorttex/transpile"
	"github.com/mattn/go-shellwords"
)

// Interactive runs an interactive prompt that transpiles each line
// of shorthand that is entered. Lines starting with : are commands:
// :lookup names..., :highlight on|off, :help and :quit.
func Interactive(c *Config) error {
	tr, _, err := newTranspiler(c)
	if err != nil {
		return err
	}
	if c.Expr != "" {
		if err := transpileText(c, tr, os.Stdout, c.Expr); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return interact(c, tr, os.Stdin, os.Stdout)
}

const interactiveHelp = `Enter shorthand to transpile it, or one of these commands:
  :lookup name...     show how names resolve in the notation table
  :highlight on|off   turn syntax highlighting on or off
  :help               show this help
  :quit               exit
`

// interact runs the prompt loop, reading lines from r
// until it ends or :quit is entered.
func interact(c *Config, tr *transpile.Transpiler, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !sc.Scan() {
			fmt.Fprintln(w)
			return sc.Err()
		}
		line := sc.Text()
		if cmd, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
			quit, err := metaCommand(c, tr, w, cmd)
			if err != nil {
				fmt.Fprintln(w, "error:", err)
			}
			if quit {
				return nil
			}
			continue
		}
		latex, err := tr.Parse(line)
		if err != nil {
			fmt.Fprintln(w, "error:", err)
			continue
		}
		if err := writeLaTeX(w, latex, c.Color); err != nil {
			return err
		}
	}
}

// metaCommand runs one : command, returning whether to quit.
func metaCommand(c *Config, tr *transpile.Transpiler, w io.Writer, cmd string) (bool, error) {
	args, err := shellwords.Parse(cmd)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, fmt.Errorf("missing command; see :help")
	}
	switch args[0] {
	case "quit", "q", "exit":
		return true, nil
	case "help", "h":
		fmt.Fprint(w, interactiveHelp)
	case "lookup", "l":
		if len(args) == 1 {
			return false, fmt.Errorf(":lookup requires at least one name")
		}
		for _, nm := range args[1:] {
			lookup(tr, w, nm)
		}
	case "highlight":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return false, fmt.Errorf("usage: :highlight on|off")
		}
		c.Color = args[1] == "on"
	default:
		return false, fmt.Errorf("unknown command %q; see :help", args[0])
	}
	return false, nil
}
