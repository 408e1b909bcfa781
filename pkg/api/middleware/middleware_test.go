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

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reelmatch/reelmatch-core/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen uuid.UUID
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

		require.NotEqual(t, uuid.Nil, seen)
		assert.Equal(t, seen.String(), w.Header().Get(RequestIDHeader))
	})

	t.Run("client id reused", func(t *testing.T) {
		id := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
		req.Header.Set(RequestIDHeader, id.String())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, id, seen)
		assert.Equal(t, id.String(), w.Header().Get(RequestIDHeader))
	})

	t.Run("invalid client id replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.NotEqual(t, uuid.Nil, seen)
		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uuid.Nil, GetRequestID(context.Background()))
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/metrics-test/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/metrics-silent", func(http.ResponseWriter, *http.Request) {})

	created := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/{id}", "201")
	silent := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-silent", "200")
	unmatched := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	createdBefore := testutil.ToFloat64(created)
	silentBefore := testutil.ToFloat64(silent)
	unmatchedBefore := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/metrics-test/1", "/metrics-test/2", "/metrics-silent", "/no-such-route"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	assert.InDelta(t, createdBefore+2, testutil.ToFloat64(created), 0)
	assert.InDelta(t, silentBefore+1, testutil.ToFloat64(silent), 0)
	assert.InDelta(t, unmatchedBefore+1, testutil.ToFloat64(unmatched), 0)
}
