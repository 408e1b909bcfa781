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

const (
	// FuzzyMinScore is the blended score a fuzzy candidate must exceed. A
	// score of exactly FuzzyMinScore is rejected.
	FuzzyMinScore = 0.5

	// ShortQueryMaxLen is the normalized length at or below which a query is
	// treated as a short title. Short titles go through the same tiers in the
	// same order; the distinction only shows up in logs.
	ShortQueryMaxLen = 4

	// Strategy identifiers, in the order they are tried
	StrategyExactMatch    = "strategy_exact_match"
	StrategyContainment   = "strategy_containment"
	StrategyAcronymPrefix = "strategy_acronym_prefix"
	StrategyFuzzyFallback = "strategy_fuzzy_fallback"
)
