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

// Package metrics exposes Prometheus instrumentation for title resolution,
// recommendation requests and evaluation runs.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeNotFound is the strategy label used for queries nothing matched.
const OutcomeNotFound = "not_found"

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_api_rate_limited_total",
			Help: "Total number of API requests rejected by the rate limiter",
		},
	)

	// Resolution Metrics
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_resolutions_total",
			Help: "Total number of title resolutions by winning strategy",
		},
		[]string{"strategy"}, // one of the resolver strategies or "not_found"
	)

	ResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_resolution_duration_seconds",
			Help:    "Time taken to resolve a title query",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Catalog Metrics
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_entries",
			Help: "Number of entries in the loaded catalog",
		},
	)

	// Evaluation Metrics
	EvaluationScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmatch_evaluation_score",
			Help: "Scores of the most recent evaluation run",
		},
		[]string{"metric", "k"}, // "precision", "recall", "f1", "genre_precision"
	)

	EvaluationSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_evaluation_skipped_entries",
			Help: "Entries skipped by the most recent evaluation run because their title did not resolve",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimited counts a request rejected by the rate limiter.
func RecordRateLimited() {
	APIRateLimited.Inc()
}

// RecordResolution records which strategy resolved a query. An empty strategy
// means the query was not found.
func RecordResolution(strategy string, duration time.Duration) {
	if strategy == "" {
		strategy = OutcomeNotFound
	}
	ResolutionsTotal.WithLabelValues(strategy).Inc()
	ResolutionDuration.Observe(duration.Seconds())
}

// SetCatalogSize publishes the number of loaded entries.
func SetCatalogSize(n int) {
	CatalogEntries.Set(float64(n))
}

// RecordEvaluation publishes the scores of an evaluation run at cut-off k.
func RecordEvaluation(k int, precision, recall, f1, genrePrecision float64, skipped int) {
	label := strconv.Itoa(k)
	EvaluationScore.WithLabelValues("precision", label).Set(precision)
	EvaluationScore.WithLabelValues("recall", label).Set(recall)
	EvaluationScore.WithLabelValues("f1", label).Set(f1)
	EvaluationScore.WithLabelValues("genre_precision", label).Set(genrePrecision)
	EvaluationSkipped.Set(float64(skipped))
}
