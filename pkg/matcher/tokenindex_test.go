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
	"slices"
	"strings"
	"testing"

	"github.com/reelmatch/reelmatch-core/pkg/testing/fixtures"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTokenIndex_Candidates(t *testing.T) {
	t.Parallel()

	idx := NewTokenIndex(fixtures.MovieCatalog().Entries())

	tests := []struct {
		name     string
		tokens   string
		expected []int
	}{
		{name: "single word", tokens: "matrix", expected: []int{fixtures.IdxMatrix, fixtures.IdxMatrixReloaded}},
		{
			name:     "union is ascending",
			tokens:   "toy chapter",
			expected: []int{fixtures.IdxKGF1, fixtures.IdxKGF2, fixtures.IdxToyStory},
		},
		{name: "single letters", tokens: "c", expected: []int{fixtures.IdxCSI}},
		{name: "unknown word", tokens: "nope", expected: []int{}},
		{name: "no words", tokens: "", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, idx.Candidates(textnorm.Tokens(tt.tokens)))
		})
	}
}

// Every entry left out of the candidate list must have no word in common
// with the query, so its Jaccard term is zero.
func TestPropertyTokenIndexCoversOverlap(t *testing.T) {
	t.Parallel()

	entries := fixtures.MovieCatalog().Entries()
	idx := NewTokenIndex(entries)

	vocab := []string{
		"the", "matrix", "reloaded", "inception", "k", "g", "f", "chapter", "1", "2",
		"amelie", "spider", "man", "toy", "story", "c", "s", "i", "zzz",
	}

	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.SampledFrom(vocab), 0, 6).Draw(t, "words")
		q := NewQuery(textnorm.Normalize(strings.Join(words, " ")))

		candidates := idx.Candidates(q.Tokens)
		if !slices.IsSorted(candidates) {
			t.Fatalf("candidates not ascending: %v", candidates)
		}
		for i := range entries {
			in := slices.Contains(candidates, i)
			overlap := Jaccard(q.Tokens, entries[i].TitleTokens) > 0
			if in != overlap {
				t.Fatalf("entry %d: candidate=%v overlap=%v", i, in, overlap)
			}
		}
	})
}
