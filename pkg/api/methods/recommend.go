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

package methods

import (
	"fmt"

	"github.com/reelmatch/reelmatch-core/pkg/api/models"
	"github.com/reelmatch/reelmatch-core/pkg/api/models/requests"
	"github.com/reelmatch/reelmatch-core/pkg/api/validation"
	"github.com/reelmatch/reelmatch-core/pkg/engine"
	"github.com/reelmatch/reelmatch-core/pkg/matcher"
	"github.com/rs/zerolog/log"
)

// NotFoundError reports a title that did not resolve, with the closest
// titles the caller may have meant.
type NotFoundError struct {
	Query       string
	Suggestions []matcher.Suggestion
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie not found: %q", e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return engine.ErrNotFound
}

//nolint:gocritic // single-use parameter in API handler
func HandleRecommend(env requests.RequestEnv) (any, error) {
	var params models.RecommendParams
	if err := validation.DecodeQuery(env.Query, &params); err != nil {
		return nil, err
	}

	recs, err := env.Engine.Recommend(params.Title, params.TopN)
	if engine.IsNotFound(err) {
		suggestions := env.Engine.DidYouMean(params.Title)
		log.Info().
			Str("title", params.Title).
			Int("suggestions", len(suggestions)).
			Msg("title not found")
		return nil, &NotFoundError{Query: params.Title, Suggestions: suggestions}
	} else if err != nil {
		return nil, fmt.Errorf("recommendation failed: %w", err)
	}

	log.Debug().
		Str("title", params.Title).
		Str("matched", recs.MatchedTitle).
		Str("strategy", recs.Strategy).
		Int("results", len(recs.Results)).
		Msg("recommendations ready")

	return recs, nil
}
