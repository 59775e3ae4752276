// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/shorttex/notation"
	"cogentcore.org/shorttex/transpile"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Doc writes a cheatsheet of the notation table to the Output file,
// as HTML, or as markdown for a .md file. It is written to standard
// output as HTML if there is no Output file.
func Doc(c *Config) error {
	tr, f, err := newTranspiler(c)
	if err != nil {
		return err
	}
	md, err := cheatsheet(tr, f)
	if err != nil {
		return err
	}
	if c.Output != "" && filepath.Ext(c.Output) == ".md" {
		return os.WriteFile(c.Output, md, 0666)
	}
	htm := toHTML(md)
	if c.Output == "" {
		_, err := os.Stdout.Write(htm)
		return err
	}
	return os.WriteFile(c.Output, htm, 0666)
}

// cheatsheet returns the markdown cheatsheet of the given table file,
// with the expansion of each name for example arguments.
func cheatsheet(tr *transpile.Transpiler, f *notation.File) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Notation table %s\n\n", f.Version)
	b.WriteString("Names are expanded to LaTeX inside words; ^ _ and / make scripts and fractions.\n")
	tb := tr.Table()
	row := func(name string) error {
		arg := ""
		if tb.TakesArgument(name) {
			arg = "a,b"
		}
		ex, err := tr.Expand(name, arg, 0)
		if err != nil {
			return err
		}
		example := name
		if arg != "" {
			example += "(" + arg + ")"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", cell(example), cell(ex))
		return nil
	}
	header := func(title string) {
		fmt.Fprintf(&b, "\n## %s\n\n| Shorthand | LaTeX |\n| --- | --- |\n", title)
	}
	for _, g := range f.Groups {
		header(g.Name)
		for _, nm := range g.Names {
			if err := row(nm); err != nil {
				return nil, err
			}
		}
	}
	if len(f.Literals) > 0 {
		header("literals")
		for _, nm := range slices.Sorted(maps.Keys(f.Literals)) {
			if err := row(nm); err != nil {
				return nil, err
			}
		}
	}
	if len(f.Aliases) > 0 {
		fmt.Fprintf(&b, "\n## aliases\n\n| Alias | Name |\n| --- | --- |\n")
		for _, nm := range slices.Sorted(maps.Keys(f.Aliases)) {
			fmt.Fprintf(&b, "| %s | %s |\n", cell(nm), cell(f.Aliases[nm]))
		}
	}
	return []byte(b.String()), nil
}

// cell formats text as a code span in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if strings.TrimSpace(s) == "" {
		return "`" + strings.ReplaceAll(s, " ", "␣") + "`"
	}
	return "`` " + s + " ``"
}

// toHTML renders markdown to HTML.
func toHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Attributes)
	doc := p.Parse(md)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage, Title: "Shorttex notation"})
	return markdown.Render(doc, renderer)
}
