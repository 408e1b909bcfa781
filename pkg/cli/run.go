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

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/reelmatch/reelmatch-core/pkg/config"
	"github.com/reelmatch/reelmatch-core/pkg/engine"
	"github.com/reelmatch/reelmatch-core/pkg/evaluation"
	"github.com/reelmatch/reelmatch-core/pkg/mcpserver"
	"github.com/rs/zerolog/log"
)

// Post runs the one-shot action flags against a loaded engine. It reports
// whether an action ran, in which case the program should exit.
func (f *Flags) Post(
	ctx context.Context,
	cfg *config.Instance,
	eng *engine.Engine,
	in io.Reader,
	out io.Writer,
) (handled bool, err error) {
	switch {
	case f.queryPassed:
		return true, printRecommendations(eng, *f.Query, *f.TopN, out)
	case *f.Evaluate:
		k := *f.K
		if k <= 0 {
			k = cfg.EvaluationK()
		}
		report, err := eng.Evaluate(ctx, k)
		if err != nil {
			return true, err
		}
		printReport(report, out)
		return true, nil
	case *f.MCP:
		return true, mcpserver.New(eng).Serve(ctx, in, out)
	}
	return false, nil
}

func printRecommendations(eng *engine.Engine, query string, topN int, out io.Writer) error {
	recs, err := eng.Recommend(query, topN)
	if engine.IsNotFound(err) {
		_, _ = fmt.Fprintf(out, "No movie found for %q.\n", query)
		if suggestions := eng.DidYouMean(query); len(suggestions) > 0 {
			_, _ = fmt.Fprintln(out, "Did you mean:")
			for _, s := range suggestions {
				_, _ = fmt.Fprintf(out, "  %s\n", s.Title)
			}
		}
		return err
	} else if err != nil {
		return err
	}

	log.Info().Str("query", query).Str("matched", recs.MatchedTitle).Msg("recommendations requested")

	_, _ = fmt.Fprintf(out, "Matched: %s (%s)\n", recs.MatchedTitle, recs.Strategy)
	for i, r := range recs.Results {
		_, _ = fmt.Fprintf(out, "%2d. %s [%s] %.1f\n", i+1, r.Title, r.Genres, r.Rating)
	}
	return nil
}

func printReport(r evaluation.Report, out io.Writer) {
	_, _ = fmt.Fprintf(out, "Evaluated %d entries (%d skipped)\n", r.Evaluated, r.Skipped)
	_, _ = fmt.Fprintf(out, "Precision@%d: %.4f\n", r.K, r.Precision)
	_, _ = fmt.Fprintf(out, "Recall@%d: %.4f\n", r.K, r.Recall)
	_, _ = fmt.Fprintf(out, "F1@%d: %.4f\n", r.K, r.F1)
	_, _ = fmt.Fprintf(out, "Genre Precision@%d: %.4f\n", r.K, r.GenrePrecision)
}
