// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transpile

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrRecursionLimitExceeded is returned, wrapped in a
// [RecursionLimitError], when scopes nest deeper than
// [Options.MaxDepth].
var ErrRecursionLimitExceeded = errors.New("transpile: recursion limit exceeded")

// RecursionLimitError is the error returned when the nesting
// of brackets and function arguments exceeds the limit.
type RecursionLimitError struct {

	// Limit is the maximum scope depth that was exceeded.
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("%v: more than %d nested scopes", ErrRecursionLimitExceeded, e.Limit)
}

func (e *RecursionLimitError) Unwrap() error {
	return ErrRecursionLimitExceeded
}
