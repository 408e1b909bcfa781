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

import (
	"strconv"
	"time"
)

const (
	DefaultAPIPort           = 5000
	DefaultRequestsPerSecond = 10
	DefaultRequestBurst      = 20
	DefaultRequestTimeout    = 30 * time.Second
)

type Service struct {
	APIPort        *int      `toml:"api_port,omitempty" validate:"omitempty,gte=1,lte=65535"`
	RateLimit      RateLimit `toml:"rate_limit,omitempty"`
	APIListen      string    `toml:"api_listen,omitempty" validate:"listen"`
	RequestTimeout string    `toml:"request_timeout,omitempty" validate:"omitempty,duration"`
	AllowedOrigins []string  `toml:"allowed_origins,omitempty" validate:"dive,required"`
}

type RateLimit struct {
	RequestsPerSecond *float64 `toml:"requests_per_second,omitempty" validate:"omitempty,gt=0"`
	Burst             *int     `toml:"burst,omitempty" validate:"omitempty,gte=1"`
}

func (c *Instance) APIPort() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiPortLocked()
}

// apiPortLocked returns the API port. Caller must hold mu (read or write).
func (c *Instance) apiPortLocked() int {
	if c.vals.Service.APIPort == nil {
		return DefaultAPIPort
	}
	return *c.vals.Service.APIPort
}

func (c *Instance) SetAPIPort(port int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Service.APIPort = &port
}

// APIListen returns the HTTP listen address. An explicit api_listen wins over
// api_port.
func (c *Instance) APIListen() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Service.APIListen == "" {
		return ":" + strconv.Itoa(c.apiPortLocked())
	}
	return c.vals.Service.APIListen
}

func (c *Instance) AllowedOrigins() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Service.AllowedOrigins
}

// RateLimit returns the per-client request rate and burst.
func (c *Instance) RateLimit() (perSecond float64, burst int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	perSecond, burst = DefaultRequestsPerSecond, DefaultRequestBurst
	if c.vals.Service.RateLimit.RequestsPerSecond != nil {
		perSecond = *c.vals.Service.RateLimit.RequestsPerSecond
	}
	if c.vals.Service.RateLimit.Burst != nil {
		burst = *c.vals.Service.RateLimit.Burst
	}
	return perSecond, burst
}

// RequestTimeout returns how long a single HTTP request may run.
func (c *Instance) RequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Service.RequestTimeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.vals.Service.RequestTimeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}
