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

package models

const (
	MethodHealth    = "health"
	MethodRecommend = "recommend"
	MethodSearch    = "search"
	MethodSuggest   = "suggest"
)

// RecommendParams are the query parameters of /recommend. A zero TopN means
// the configured default.
type RecommendParams struct {
	Title string `json:"title" validate:"required,title"`
	TopN  int    `json:"top_n" validate:"gte=0"`
}

// QueryParams are the query parameters of /search and /suggest. An empty
// query is allowed and yields no results.
type QueryParams struct {
	Query string `json:"query"`
}
