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

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Metrics are process globals, so these tests don't run in parallel and
// compare deltas rather than absolute values.

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "200"))

	RecordAPIRequest("GET", "/recommend", 200, 15*time.Millisecond)
	RecordAPIRequest("GET", "/recommend", 200, 5*time.Millisecond)
	RecordAPIRequest("GET", "/recommend", 404, time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "200"))
	assert.InDelta(t, 2, after-before, 1e-9)
	assert.GreaterOrEqual(t, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/recommend", "404")), 1.0)
}

func TestRecordResolution(t *testing.T) {
	beforeFuzzy := testutil.ToFloat64(ResolutionsTotal.WithLabelValues("strategy_fuzzy_fallback"))
	beforeMissing := testutil.ToFloat64(ResolutionsTotal.WithLabelValues(OutcomeNotFound))

	RecordResolution("strategy_fuzzy_fallback", time.Millisecond)
	RecordResolution("", time.Millisecond)
	RecordResolution("", time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(ResolutionsTotal.WithLabelValues("strategy_fuzzy_fallback"))-beforeFuzzy, 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(ResolutionsTotal.WithLabelValues(OutcomeNotFound))-beforeMissing, 1e-9)
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(APIRateLimited)
	RecordRateLimited()
	assert.InDelta(t, 1, testutil.ToFloat64(APIRateLimited)-before, 1e-9)
}

func TestSetCatalogSize(t *testing.T) {
	SetCatalogSize(4803)
	assert.InDelta(t, 4803, testutil.ToFloat64(CatalogEntries), 1e-9)
}

func TestRecordEvaluation(t *testing.T) {
	RecordEvaluation(10, 0.42, 0.41, 0.415, 0.9, 3)

	assert.InDelta(t, 0.42, testutil.ToFloat64(EvaluationScore.WithLabelValues("precision", "10")), 1e-9)
	assert.InDelta(t, 0.41, testutil.ToFloat64(EvaluationScore.WithLabelValues("recall", "10")), 1e-9)
	assert.InDelta(t, 0.415, testutil.ToFloat64(EvaluationScore.WithLabelValues("f1", "10")), 1e-9)
	assert.InDelta(t, 0.9, testutil.ToFloat64(EvaluationScore.WithLabelValues("genre_precision", "10")), 1e-9)
	assert.InDelta(t, 3, testutil.ToFloat64(EvaluationSkipped), 1e-9)
}
