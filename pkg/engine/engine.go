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

// Package engine bundles a loaded catalog with its resolver and serves every
// read operation the request layers need. An Engine is immutable once built
// and is shared by all requests.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/evaluation"
	"github.com/reelmatch/reelmatch-core/pkg/matcher"
	"github.com/reelmatch/reelmatch-core/pkg/metrics"
	"github.com/reelmatch/reelmatch-core/pkg/ranker"
	"github.com/reelmatch/reelmatch-core/pkg/resolver"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
)

// ErrNotFound is returned when a query does not resolve to a catalog entry.
var ErrNotFound = resolver.ErrNotFound

// Options configure an Engine.
type Options struct {
	// DefaultTopN applies when a request asks for zero or fewer results.
	DefaultTopN int
	// MaxTopN caps the number of results a request can ask for. Zero means
	// no cap.
	MaxTopN int
	// EvaluationWorkers bounds the evaluation worker pool.
	EvaluationWorkers int
	// TokenIndex enables the fuzzy candidate index.
	TokenIndex bool
}

// DefaultOptions mirror the shipped configuration defaults.
func DefaultOptions() Options {
	return Options{
		DefaultTopN: ranker.DefaultTopN,
		TokenIndex:  true,
	}
}

// Recommendations is the answer to a recommendation query.
type Recommendations struct {
	MatchedTitle string                  `json:"matched_title"`
	Strategy     string                  `json:"strategy"`
	Results      []ranker.Recommendation `json:"results"`
	MatchedIndex int                     `json:"matched_index"`
}

// Engine answers resolution, recommendation, search and evaluation requests
// against one catalog.
type Engine struct {
	cat  *catalog.Catalog
	res  *resolver.Resolver
	opts Options
}

// New builds an Engine over cat.
func New(cat *catalog.Catalog, opts Options) *Engine {
	if opts.DefaultTopN <= 0 {
		opts.DefaultTopN = ranker.DefaultTopN
	}
	metrics.SetCatalogSize(cat.Len())
	return &Engine{
		cat:  cat,
		res:  resolver.New(cat, resolver.WithTokenIndex(opts.TokenIndex)),
		opts: opts,
	}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Resolve maps a free-text query to a catalog entry.
func (e *Engine) Resolve(query string) (resolver.Match, error) {
	started := time.Now()
	m, err := e.res.Resolve(query)
	metrics.RecordResolution(m.Strategy, time.Since(started))
	if err != nil {
		return resolver.Match{}, fmt.Errorf("failed to resolve title: %w", err)
	}
	return m, nil
}

// Recommend resolves query and ranks the entries most similar to it.
func (e *Engine) Recommend(query string, topN int) (Recommendations, error) {
	m, err := e.Resolve(query)
	if err != nil {
		return Recommendations{}, err
	}

	results, err := e.RecommendByIndex(m.Entry.Index, topN)
	if err != nil {
		return Recommendations{}, err
	}

	return Recommendations{
		MatchedTitle: m.Entry.Title,
		MatchedIndex: m.Entry.Index,
		Strategy:     m.Strategy,
		Results:      results,
	}, nil
}

// RecommendByIndex ranks the entries most similar to the entry at index.
func (e *Engine) RecommendByIndex(index, topN int) ([]ranker.Recommendation, error) {
	recs, err := ranker.Rank(e.cat, index, e.clampTopN(topN))
	if err != nil {
		return nil, fmt.Errorf("failed to rank recommendations: %w", err)
	}
	return recs, nil
}

func (e *Engine) clampTopN(topN int) int {
	if topN <= 0 {
		topN = e.opts.DefaultTopN
	}
	if e.opts.MaxTopN > 0 && topN > e.opts.MaxTopN {
		topN = e.opts.MaxTopN
	}
	return topN
}

// Search returns titles and posters of entries containing query.
func (e *Engine) Search(query string) []catalog.SearchResult {
	return e.cat.Search(query, catalog.SearchLimit)
}

// Suggest returns titles of entries containing query, for autocomplete.
func (e *Engine) Suggest(query string) []string {
	return e.cat.Suggest(query, catalog.SuggestLimit)
}

// DidYouMean returns close titles for a query that did not resolve.
func (e *Engine) DidYouMean(query string) []matcher.Suggestion {
	return matcher.ClosestTitles(
		textnorm.Normalize(query),
		e.cat.Entries(),
		matcher.DefaultSuggestions,
		matcher.MinSuggestionSimilarity,
	)
}

// Evaluate runs the evaluation harness at cut-off k and publishes the scores.
func (e *Engine) Evaluate(ctx context.Context, k int) (evaluation.Report, error) {
	report, err := evaluation.Evaluate(ctx, e.res, evaluation.Options{
		K:       k,
		Workers: e.opts.EvaluationWorkers,
	})
	if err != nil {
		return evaluation.Report{}, fmt.Errorf("failed to evaluate catalog: %w", err)
	}
	metrics.RecordEvaluation(report.K, report.Precision, report.Recall, report.F1,
		report.GenrePrecision, report.Skipped)
	return report, nil
}

// IsNotFound reports whether err means a query did not resolve.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
