// ReelMatch Core
// Copyright (c) 2026 The ReelMatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ReelMatch Core.
//
// ReelMatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ReelMatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ReelMatch Core.  If not, see <http://www.gnu.org/licenses/>.

package matcher

import (
	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
)

// TokenIndex maps each title word to the ascending indices of the entries
// whose normalized title contains it.
//
// A title sharing no word with the query has a Jaccard term of 0, so its
// blended score is at most SequenceWeight and can never clear the fuzzy
// threshold. Scoring only the titles returned by Candidates therefore finds
// the same best match as scoring the whole catalog.
type TokenIndex struct {
	postings map[string][]int
	size     int
}

// NewTokenIndex builds the index over entries, which must be in index order.
func NewTokenIndex(entries []catalog.Entry) *TokenIndex {
	idx := &TokenIndex{
		postings: make(map[string][]int),
		size:     len(entries),
	}
	for i := range entries {
		for token := range entries[i].TitleTokens {
			idx.postings[token] = append(idx.postings[token], entries[i].Index)
		}
	}
	return idx
}

// Candidates returns, in ascending order and without duplicates, the indices
// of every entry sharing at least one word with tokens.
func (idx *TokenIndex) Candidates(tokens textnorm.TokenSet) []int {
	seen := make([]bool, idx.size)
	count := 0
	for token := range tokens {
		for _, i := range idx.postings[token] {
			if !seen[i] {
				seen[i] = true
				count++
			}
		}
	}

	out := make([]int, 0, count)
	for i, ok := range seen {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Len returns the number of distinct words indexed.
func (idx *TokenIndex) Len() int {
	return len(idx.postings)
}
