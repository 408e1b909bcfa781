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

package config

const (
	DefaultTopN           = 10
	DefaultMaxTopN        = 0
	DefaultEvaluationK    = 10
	DefaultTokenIndexFlag = true
)

type Recommend struct {
	DefaultTopN *int `toml:"default_top_n,omitempty" validate:"omitempty,gte=1"`
	MaxTopN     *int `toml:"max_top_n,omitempty" validate:"omitempty,gte=0"`
}

type Resolver struct {
	TokenIndex *bool `toml:"token_index,omitempty"`
}

type Evaluation struct {
	K       *int `toml:"k,omitempty" validate:"omitempty,gte=1"`
	Workers int  `toml:"workers,omitempty" validate:"gte=0"`
}

func (c *Instance) DefaultTopN() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Recommend.DefaultTopN == nil {
		return DefaultTopN
	}
	return *c.vals.Recommend.DefaultTopN
}

func (c *Instance) SetDefaultTopN(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Recommend.DefaultTopN = &n
}

// MaxTopN returns the result cap for a single request, 0 for no cap.
func (c *Instance) MaxTopN() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Recommend.MaxTopN == nil {
		return DefaultMaxTopN
	}
	return *c.vals.Recommend.MaxTopN
}

// TokenIndex reports whether fuzzy matching prunes candidates through the
// inverted token index.
func (c *Instance) TokenIndex() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Resolver.TokenIndex == nil {
		return DefaultTokenIndexFlag
	}
	return *c.vals.Resolver.TokenIndex
}

func (c *Instance) SetTokenIndex(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Resolver.TokenIndex = &enabled
}

func (c *Instance) EvaluationK() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Evaluation.K == nil {
		return DefaultEvaluationK
	}
	return *c.vals.Evaluation.K
}

// EvaluationWorkers returns the evaluation pool size, 0 for one per CPU.
func (c *Instance) EvaluationWorkers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Evaluation.Workers
}
