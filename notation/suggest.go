// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"cmp"
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// SuggestThreshold is the minimum similarity, between 0 and 1,
// for a key to be returned by [Table.Suggest].
var SuggestThreshold = 0.5

// Suggest returns up to n keys that are most similar to the given
// name, for reporting unknown or ambiguous names. Keys sharing the
// name as a prefix rank first.
func (t *Table) Suggest(name string, n int) []string {
	if name == "" || n <= 0 {
		return nil
	}
	type scored struct {
		key   string
		score float64
	}
	lev := metrics.NewLevenshtein()
	var res []scored
	for _, k := range t.keys {
		if k == name {
			continue
		}
		s := strutil.Similarity(name, k, lev)
		if len(k) > len(name) && k[:len(name)] == name {
			s += 1
		}
		if s >= SuggestThreshold {
			res = append(res, scored{k, s})
		}
	}
	slices.SortStableFunc(res, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	if len(res) > n {
		res = res[:n]
	}
	keys := make([]string, len(res))
	for i, r := range res {
		keys[i] = r.key
	}
	return keys
}
