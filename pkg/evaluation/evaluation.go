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

// Package evaluation measures how well title-driven recommendations agree
// with the raw similarity matrix.
//
// Every catalog entry is used as a query by its own display title. The
// resolved entry is ranked and the result is compared with the entry's true
// top-k neighbours. Because titles go through the resolver, duplicate or
// ambiguous titles can resolve elsewhere and show up as misses; that is the
// point of the exercise.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/ranker"
	"github.com/reelmatch/reelmatch-core/pkg/resolver"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultK is the cut-off used when none is given.
const DefaultK = 10

// epsilon keeps the ratios defined when a count is zero.
const epsilon = 1e-6

// Report is the outcome of one evaluation run.
type Report struct {
	K              int     `json:"k"`
	Evaluated      int     `json:"evaluated"`
	Skipped        int     `json:"skipped"`
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	GenreHits      int     `json:"genre_hits"`
	GenreTotal     int     `json:"genre_total"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
	GenrePrecision float64 `json:"genre_precision"`
}

// Options tune an evaluation run.
type Options struct {
	// K is the cut-off for both ground truth and predictions. Zero or less
	// means DefaultK.
	K int
	// Workers bounds the number of entries evaluated at once. Zero or less
	// means GOMAXPROCS.
	Workers int
}

// counts holds the integer tallies of one entry.
type counts struct {
	tp, fp, fn int
	genreHits  int
	genreTotal int
	skipped    bool
}

// Evaluate scores every entry of the resolver's catalog. Entries are spread
// over a bounded worker pool; their tallies are summed afterwards, so the
// report is the same as a sequential pass.
func Evaluate(ctx context.Context, res *resolver.Resolver, opts Options) (Report, error) {
	k := opts.K
	if k <= 0 {
		k = DefaultK
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cat := res.Catalog()
	started := time.Now()
	perEntry := make([]counts, cat.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cat.Len() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := evaluateEntry(cat, res, i, k)
			if err != nil {
				return err
			}
			perEntry[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("evaluation aborted: %w", err)
	}

	report := Report{K: k}
	for _, c := range perEntry {
		if c.skipped {
			report.Skipped++
			continue
		}
		report.Evaluated++
		report.TruePositives += c.tp
		report.FalsePositives += c.fp
		report.FalseNegatives += c.fn
		report.GenreHits += c.genreHits
		report.GenreTotal += c.genreTotal
	}
	report.finish()

	log.Info().Msgf("Precision@%d: %.4f", k, report.Precision)
	log.Info().Msgf("Recall@%d: %.4f", k, report.Recall)
	log.Info().Msgf("F1@%d: %.4f", k, report.F1)
	log.Info().Msgf("Genre Precision@%d: %.4f", k, report.GenrePrecision)
	log.Info().
		Int("evaluated", report.Evaluated).
		Int("skipped", report.Skipped).
		Dur("took", time.Since(started)).
		Msg("evaluation finished")

	return report, nil
}

func (r *Report) finish() {
	tp := float64(r.TruePositives)
	r.Precision = tp / (tp + float64(r.FalsePositives) + epsilon)
	r.Recall = tp / (tp + float64(r.FalseNegatives) + epsilon)
	r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall + epsilon)
	if r.GenreTotal > 0 {
		r.GenrePrecision = float64(r.GenreHits) / float64(r.GenreTotal)
	}
}

func evaluateEntry(cat *catalog.Catalog, res *resolver.Resolver, i, k int) (counts, error) {
	source, _ := cat.Entry(i)

	m, err := res.Resolve(source.Title)
	if errors.Is(err, resolver.ErrNotFound) {
		log.Debug().Int("index", i).Str("title", source.Title).Msg("evaluation skipped unresolved title")
		return counts{skipped: true}, nil
	} else if err != nil {
		return counts{}, fmt.Errorf("failed to resolve %q: %w", source.Title, err)
	}

	preds, err := ranker.Rank(cat, m.Entry.Index, k)
	if err != nil {
		return counts{}, fmt.Errorf("failed to rank entry %d: %w", m.Entry.Index, err)
	}

	truth := make(map[int]struct{}, k)
	for _, j := range ranker.TopIndices(cat.Matrix(), i, k) {
		truth[j] = struct{}{}
	}

	var c counts
	baseGenres := source.GenreTokens()
	for _, p := range preds {
		if _, ok := truth[p.Index]; ok {
			c.tp++
		} else {
			c.fp++
		}

		c.genreTotal++
		predicted, _ := cat.Entry(p.Index)
		if baseGenres.Intersects(predicted.GenreTokens()) {
			c.genreHits++
		}
	}
	c.fn = len(truth) - c.tp
	return c, nil
}
