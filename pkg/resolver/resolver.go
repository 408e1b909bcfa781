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

// Package resolver maps a free-text title query to a single catalog entry.
//
// Resolution runs four tiers in a fixed order and stops at the first one that
// finds something:
//
//  1. exact match on the normalized title
//  2. containment of the query, most popular entry wins
//  3. prefix match of the query's acronym form ("kgf" → "k g f")
//  4. fuzzy fallback on a blend of token overlap and sequence similarity
//
// Every tier scans the catalog in index order, so ties always go to the
// entry seen first and the same query always resolves to the same entry.
package resolver

import (
	"errors"
	"fmt"

	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/matcher"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when no tier matches the query.
var ErrNotFound = errors.New("no matching title found")

// Match is a resolved catalog entry.
type Match struct {
	Entry    *catalog.Entry
	Strategy string
	// Score is the blended fuzzy score. It is only set by the fuzzy tier.
	Score float64
}

// Resolver resolves queries against one catalog. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	cat   *catalog.Catalog
	index *matcher.TokenIndex
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTokenIndex toggles the inverted token index used to prune fuzzy
// candidates. Results are identical either way.
func WithTokenIndex(enabled bool) Option {
	return func(r *Resolver) {
		if enabled {
			r.index = matcher.NewTokenIndex(r.cat.Entries())
		} else {
			r.index = nil
		}
	}
}

// New returns a Resolver over cat. The token index is enabled by default.
func New(cat *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{cat: cat}
	opts = append([]Option{WithTokenIndex(true)}, opts...)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog the resolver reads.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.cat
}

// Resolve returns the catalog entry query refers to, or ErrNotFound.
func (r *Resolver) Resolve(query string) (Match, error) {
	q := textnorm.Normalize(query)
	if q == "" {
		// an empty string is contained in, and a prefix of, every title
		return Match{}, fmt.Errorf("%w: empty query", ErrNotFound)
	}

	if len(q) <= ShortQueryMaxLen {
		log.Debug().Str("query", q).Msg("resolving short title")
	}

	if m, ok := r.tryExact(q); ok {
		return m, nil
	}
	if m, ok := r.tryContainment(q); ok {
		return m, nil
	}
	if m, ok := r.tryAcronymPrefix(q); ok {
		return m, nil
	}
	if m, ok := r.tryFuzzy(q); ok {
		return m, nil
	}

	log.Debug().Str("query", q).Msg("no strategy matched")
	return Match{}, fmt.Errorf("%w: %q", ErrNotFound, query)
}
