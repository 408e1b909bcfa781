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

// Package ranker turns a row of the similarity matrix into an ordered list
// of recommendations.
package ranker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/reelmatch/reelmatch-core/pkg/catalog"
)

// DefaultTopN is used when a caller asks for zero or fewer results.
const DefaultTopN = 10

// ErrIndexOutOfRange is returned for an index that is not in the catalog.
var ErrIndexOutOfRange = errors.New("catalog index out of range")

// Recommendation is the projection of a catalog entry returned to callers.
type Recommendation struct {
	Title     string  `json:"title"`
	Genres    string  `json:"genres"`
	PosterURL string  `json:"poster_url"`
	Index     int     `json:"index"`
	Rating    float64 `json:"rating"`
	Score     float64 `json:"score"`
}

type scored struct {
	index int
	score float64
}

// TopIndices returns the indices of the topN entries most similar to index i,
// best first. Entry i itself is always left out and equal scores keep
// ascending index order. It returns min(topN, N-1) indices.
func TopIndices(m *catalog.SimilarityMatrix, i, topN int) []int {
	row := m.Row(i)
	pairs := make([]scored, 0, len(row))
	for j, s := range row {
		if j == i {
			continue
		}
		pairs = append(pairs, scored{index: j, score: s})
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].score > pairs[b].score
	})

	if topN < len(pairs) {
		pairs = pairs[:topN]
	}
	out := make([]int, len(pairs))
	for k, p := range pairs {
		out[k] = p.index
	}
	return out
}

// Rank returns up to topN recommendations for the entry at matchedIndex.
// A topN of zero or less means DefaultTopN.
func Rank(cat *catalog.Catalog, matchedIndex, topN int) ([]Recommendation, error) {
	if matchedIndex < 0 || matchedIndex >= cat.Len() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, matchedIndex, cat.Len())
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	m := cat.Matrix()
	top := TopIndices(m, matchedIndex, topN)
	recs := make([]Recommendation, 0, len(top))
	for _, j := range top {
		e, _ := cat.Entry(j)
		recs = append(recs, Recommendation{
			Index:     j,
			Title:     e.Title,
			Genres:    e.Genres,
			Rating:    e.Rating,
			PosterURL: e.PosterURL,
			Score:     m.At(matchedIndex, j),
		})
	}
	return recs, nil
}
