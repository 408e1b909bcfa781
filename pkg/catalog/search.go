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

package catalog

import (
	"strings"

	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
)

const (
	// SearchLimit caps search-as-you-type results.
	SearchLimit = 10
	// SuggestLimit caps autocomplete suggestions.
	SuggestLimit = 8
)

// SearchResult is a title with its poster, for search-as-you-type lists.
type SearchResult struct {
	Title     string `json:"title"`
	PosterURL string `json:"poster_url"`
}

// Search returns up to limit entries, in catalog order, whose normalized title
// contains the normalized query. It is plain substring containment, not fuzzy.
func (c *Catalog) Search(query string, limit int) []SearchResult {
	results := make([]SearchResult, 0)
	c.scanContaining(query, limit, func(e *Entry) {
		results = append(results, SearchResult{Title: e.Title, PosterURL: e.PosterURL})
	})
	return results
}

// Suggest is the lighter sibling of Search and only returns titles.
func (c *Catalog) Suggest(query string, limit int) []string {
	titles := make([]string, 0)
	c.scanContaining(query, limit, func(e *Entry) {
		titles = append(titles, e.Title)
	})
	return titles
}

func (c *Catalog) scanContaining(query string, limit int, fn func(*Entry)) {
	q := textnorm.Normalize(query)
	if q == "" || limit <= 0 {
		return
	}

	found := 0
	for i := range c.entries {
		if !strings.Contains(c.entries[i].NormalizedTitle, q) {
			continue
		}
		fn(&c.entries[i])
		found++
		if found == limit {
			return
		}
	}
}
