// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Highlighting style names for dark and light terminal backgrounds.
var (
	DarkStyle  = "monokai"
	LightStyle = "friendly"
)

// Highlight writes the given LaTeX to w with ANSI syntax highlighting
// for the given color profile. The [termenv.Ascii] profile writes the
// text unchanged.
func Highlight(w io.Writer, latex string, profile termenv.Profile, dark bool) error {
	var fname string
	switch profile {
	case termenv.TrueColor:
		fname = "terminal16m"
	case termenv.ANSI256:
		fname = "terminal256"
	case termenv.ANSI:
		fname = "terminal16"
	default:
		_, err := io.WriteString(w, latex)
		return err
	}
	lexer := lexers.Get("tex")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	sname := LightStyle
	if dark {
		sname = DarkStyle
	}
	iterator, err := lexer.Tokenise(nil, latex)
	if err != nil {
		return err
	}
	return formatters.Get(fname).Format(w, styles.Get(sname), iterator)
}

// HighlightTerminal writes the given LaTeX to w, highlighted according
// to the capabilities and background of the terminal w refers to.
// Output that is not a terminal gets the text unchanged.
func HighlightTerminal(w io.Writer, latex string) error {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return Highlight(w, latex, termenv.Ascii, false)
	}
	return Highlight(w, latex, out.Profile, out.HasDarkBackground())
}
