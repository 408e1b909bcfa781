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

// Package matcher scores catalog titles against a normalized query.
package matcher

import (
	"github.com/pmezard/go-difflib/difflib"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
)

const (
	// JaccardWeight is the share of the blended score that comes from token
	// overlap.
	JaccardWeight = 0.7
	// SequenceWeight is the share that comes from character sequence
	// similarity.
	SequenceWeight = 0.3
)

// Query is a normalized query with the derived forms the scorers need.
type Query struct {
	// Tokens holds the query words plus every word of the acronym form, so a
	// single letter of the query can overlap a single-letter title word.
	Tokens     textnorm.TokenSet
	Normalized string
	Acronym    string
}

// NewQuery prepares an already normalized query for scoring.
func NewQuery(normalized string) Query {
	acronym := textnorm.Acronym(normalized)
	return Query{
		Normalized: normalized,
		Acronym:    acronym,
		Tokens:     textnorm.Tokens(normalized).Union(textnorm.Tokens(acronym)),
	}
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when either set is empty.
func Jaccard(a, b textnorm.TokenSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	shared := 0
	for t := range small {
		if large.Has(t) {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}

// SequenceRatio returns the longest-matching-blocks ratio 2*M/T of two
// strings, compared rune by rune. Two empty strings score 1.
func SequenceRatio(a, b string) float64 {
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// BlendedScore is the fuzzy score of a title for q:
//
//	0.7 * Jaccard(q.Tokens, titleTokens) + 0.3 * SequenceRatio(q, title)
func BlendedScore(q Query, normalizedTitle string, titleTokens textnorm.TokenSet) float64 {
	return JaccardWeight*Jaccard(q.Tokens, titleTokens) +
		SequenceWeight*SequenceRatio(q.Normalized, normalizedTitle)
}
