// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import "slices"

// FoldScripts combines each ^ and _ marker with its left neighbor, the
// base, and its right neighbor, the script, into one [Fragment]. The
// base is decorated and the script stripped of its brackets, since the
// inserted braces group it. A minus sign before the script is kept
// inside the braces. The scan runs right to left, so a^b^c gives
// a^{b^{c}}. A marker with no base, or with a row or column break
// before it, is left as is.
func FoldScripts(toks Tokens) Tokens {
	// right is a stack of the already processed tokens to the right,
	// with the nearest one on top.
	right := make(Tokens, 0, len(toks))
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		if i == 0 || !tok.IsScript() || toks[i-1].IsBreak() {
			right = append(right, tok)
			continue
		}
		sign, script := popOperand(&right)
		base := toks[i-1]
		right = append(right, Token{Kind: Fragment, Str: base.Decorated() + tok.Str + "{" + sign + script + "}"})
		i--
	}
	slices.Reverse(right)
	return right
}

// popOperand pops the operand on top of the stack, with a minus sign
// before it, returning the sign and the stripped operand. A row or
// column break is not an operand and stays on the stack.
func popOperand(stack *Tokens) (sign, operand string) {
	st := *stack
	if n := len(st); n > 0 && st[n-1].IsOp("-") {
		sign = "-"
		st = st[:n-1]
	}
	if n := len(st); n > 0 && !st[n-1].IsBreak() {
		operand = st[n-1].Stripped()
		st = st[:n-1]
	}
	*stack = st
	return
}

// FoldFractions combines each / marker with its left neighbor, the
// numerator, and its right neighbor, the denominator, into a \frac
// [Fragment], stripping the brackets of both. A minus sign before the
// denominator is kept. The scan runs left to right, so a/b/c gives
// \frac{\frac{a}{b}}{c}.
func FoldFractions(toks Tokens) Tokens {
	out := make(Tokens, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if !tok.IsOp("/") {
			out = append(out, tok)
			continue
		}
		num := ""
		if n := len(out); n > 0 && !out[n-1].IsBreak() {
			num = out[n-1].Stripped()
			out = out[:n-1]
		}
		// the operands after the marker, in reverse order
		var after Tokens
		for j := min(i+2, len(toks)-1); j > i; j-- {
			after = append(after, toks[j])
		}
		nafter := len(after)
		sign, den := popOperand(&after)
		i += nafter - len(after)
		out = append(out, Token{Kind: Fragment, Str: `\frac{` + num + "}{" + sign + den + "}"})
	}
	return out
}
