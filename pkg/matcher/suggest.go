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
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSuggestions is how many "did you mean" titles are offered.
	DefaultSuggestions = 5
	// MinSuggestionSimilarity is the Jaro-Winkler floor for a suggestion.
	MinSuggestionSimilarity float32 = 0.75
)

// Suggestion is a catalog title that is close to a query that did not resolve.
type Suggestion struct {
	Title      string  `json:"title"`
	Index      int     `json:"index"`
	Similarity float32 `json:"similarity"`
}

// ClosestTitles ranks entries by Jaro-Winkler similarity between their
// normalized title and the normalized query, best first, catalog order on
// ties. It only feeds "did you mean" hints and never changes what a query
// resolves to.
func ClosestTitles(normalizedQuery string, entries []catalog.Entry, limit int, minSimilarity float32) []Suggestion {
	if normalizedQuery == "" || limit <= 0 {
		return []Suggestion{}
	}

	matches := make([]Suggestion, 0)
	for i := range entries {
		e := &entries[i]
		similarity := edlib.JaroWinklerSimilarity(normalizedQuery, e.NormalizedTitle)
		if similarity < minSimilarity {
			continue
		}
		matches = append(matches, Suggestion{
			Title:      e.Title,
			Index:      e.Index,
			Similarity: similarity,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	log.Debug().
		Str("query", normalizedQuery).
		Int("suggestions", len(matches)).
		Msg("computed title suggestions")

	return matches
}
