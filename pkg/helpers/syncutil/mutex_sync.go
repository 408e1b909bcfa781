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

//go:build !deadlock

// Package syncutil wraps the sync lock types so that builds tagged with
// "deadlock" swap in go-deadlock's detector. Catalog config and rate limiter
// state lock through these types.
package syncutil

import "sync"

// DeadlockEnabled reports whether lock ordering is being checked.
const DeadlockEnabled = false

// Mutex is a plain sync.Mutex in untagged builds.
//
//nolint:gocritic // the wrapper exists to be embedded
type Mutex struct {
	sync.Mutex //nolint:forbidigo // only this package may use sync.Mutex
}

// RWMutex is a plain sync.RWMutex in untagged builds.
//
//nolint:gocritic // the wrapper exists to be embedded
type RWMutex struct {
	sync.RWMutex //nolint:forbidigo // only this package may use sync.RWMutex
}
