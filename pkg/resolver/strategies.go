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

package resolver

import (
	"strings"

	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/matcher"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
	"github.com/rs/zerolog/log"
)

func (r *Resolver) tryExact(q string) (Match, bool) {
	entries := r.cat.Entries()
	for i := range entries {
		if entries[i].NormalizedTitle != q {
			continue
		}
		log.Debug().
			Str("strategy", StrategyExactMatch).
			Str("query", q).
			Str("match", entries[i].Title).
			Msg("match found via exact strategy")
		return Match{Entry: &entries[i], Strategy: StrategyExactMatch}, true
	}
	return Match{}, false
}

func (r *Resolver) tryContainment(q string) (Match, bool) {
	e := mostPopular(r.cat.Entries(), func(e *catalog.Entry) bool {
		return strings.Contains(e.NormalizedTitle, q)
	})
	if e == nil {
		return Match{}, false
	}
	log.Debug().
		Str("strategy", StrategyContainment).
		Str("query", q).
		Str("match", e.Title).
		Float64("popularity", e.Popularity).
		Msg("match found via containment strategy")
	return Match{Entry: e, Strategy: StrategyContainment}, true
}

func (r *Resolver) tryAcronymPrefix(q string) (Match, bool) {
	acronym := textnorm.Acronym(q)
	e := mostPopular(r.cat.Entries(), func(e *catalog.Entry) bool {
		return strings.HasPrefix(e.NormalizedTitle, acronym)
	})
	if e == nil {
		return Match{}, false
	}
	log.Debug().
		Str("strategy", StrategyAcronymPrefix).
		Str("query", q).
		Str("acronym", acronym).
		Str("match", e.Title).
		Msg("match found via acronym prefix strategy")
	return Match{Entry: e, Strategy: StrategyAcronymPrefix}, true
}

func (r *Resolver) tryFuzzy(q string) (Match, bool) {
	query := matcher.NewQuery(q)
	entries := r.cat.Entries()

	var best *catalog.Entry
	var bestScore float64
	score := func(e *catalog.Entry) {
		s := matcher.BlendedScore(query, e.NormalizedTitle, e.TitleTokens)
		if accepts(s, bestScore) {
			best = e
			bestScore = s
		}
	}

	if r.index != nil {
		for _, i := range r.index.Candidates(query.Tokens) {
			score(&entries[i])
		}
	} else {
		for i := range entries {
			score(&entries[i])
		}
	}

	if best == nil {
		return Match{}, false
	}
	log.Debug().
		Str("strategy", StrategyFuzzyFallback).
		Str("query", q).
		Strs("tokens", query.Tokens.Sorted()).
		Str("match", best.Title).
		Float64("score", bestScore).
		Msg("match found via fuzzy strategy")
	return Match{Entry: best, Strategy: StrategyFuzzyFallback, Score: bestScore}, true
}

// accepts reports whether a fuzzy score replaces the running best. Both
// comparisons are strict: the first entry to reach a maximum keeps it, and a
// score equal to FuzzyMinScore never matches.
func accepts(score, best float64) bool {
	return score > best && score > FuzzyMinScore
}

// mostPopular returns the matching entry with the highest popularity, the
// first one in catalog order on ties.
func mostPopular(entries []catalog.Entry, match func(*catalog.Entry) bool) *catalog.Entry {
	var best *catalog.Entry
	for i := range entries {
		e := &entries[i]
		if !match(e) {
			continue
		}
		if best == nil || e.Popularity > best.Popularity {
			best = e
		}
	}
	return best
}
