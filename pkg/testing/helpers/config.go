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

package helpers

import (
	"fmt"

	"github.com/reelmatch/reelmatch-core/pkg/config"
)

// NewTestConfig saves config.BaseDefaults, changed by each opt, as a new
// config file in dir and loads it back.
func NewTestConfig(dir string, opts ...func(*config.Values)) (*config.Instance, error) {
	vals := config.BaseDefaults
	vals.LogDir = dir
	for _, opt := range opts {
		opt(&vals)
	}
	cfg, err := config.NewConfig(dir, vals)
	if err != nil {
		return nil, fmt.Errorf("failed to create test config: %w", err)
	}
	return cfg, nil
}

// WithListen sets the API listen address, "127.0.0.1:0" for a free port.
func WithListen(addr string) func(*config.Values) {
	return func(v *config.Values) {
		v.Service.APIListen = addr
	}
}

// WithRateLimit sets the per-client API rate limit.
func WithRateLimit(perSecond float64, burst int) func(*config.Values) {
	return func(v *config.Values) {
		v.Service.RateLimit = config.RateLimit{
			RequestsPerSecond: &perSecond,
			Burst:             &burst,
		}
	}
}

// WithAllowedOrigins sets the CORS origins.
func WithAllowedOrigins(origins ...string) func(*config.Values) {
	return func(v *config.Values) {
		v.Service.AllowedOrigins = origins
	}
}

// WithArtifacts points the config at explicit catalog and matrix files.
func WithArtifacts(catalogPath, matrixPath string) func(*config.Values) {
	return func(v *config.Values) {
		v.Artifacts.Catalog = catalogPath
		v.Artifacts.Matrix = matrixPath
	}
}
