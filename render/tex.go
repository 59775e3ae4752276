// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"cogentcore.org/core/base/logx"
	"star-tex.org/x/tex"
)

var (
	texEngine *tex.Engine
	texMu     sync.Mutex

	preamble = `\nopagenumbers

\def\frac#1#2{{{#1}\over{#2}}}
\def\degree{^\circ}
\def\text#1{\hbox{#1}}
`
)

// DVI typesets the given formula in inline math mode and returns
// the resulting DVI document. The engine is plain TeX, NOT LaTeX:
// only \frac, \degree and \text are defined in addition to the plain
// TeX macros, so environments such as \begin{matrix} fail.
// To activate display math mode, add an additional $ $ surrounding
// the formula.
func DVI(formula string) ([]byte, error) {
	texMu.Lock()
	defer texMu.Unlock()

	r := strings.NewReader(fmt.Sprintf(`%s $%s$
\bye
`, preamble, formula))
	w := &bytes.Buffer{}
	stdout := &bytes.Buffer{}
	if texEngine == nil {
		texEngine = tex.New()
	}
	texEngine.Stdout = stdout
	if err := texEngine.Process(w, r); err != nil {
		logx.PrintlnDebug(stdout.String())
		return nil, fmt.Errorf("typesetting %q: %w", formula, err)
	}
	return w.Bytes(), nil
}
