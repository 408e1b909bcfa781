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

//go:build deadlock

// Package syncutil wraps the sync lock types so that builds tagged with
// "deadlock" swap in go-deadlock's detector. Catalog config and rate limiter
// state lock through these types.
package syncutil

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether lock ordering is being checked.
const DeadlockEnabled = true

// LockTimeout is how long a lock may be waited on before it is reported.
const LockTimeout = 30 * time.Second

func init() {
	deadlock.Opts.DeadlockTimeout = LockTimeout
	deadlock.Opts.LogBuf = os.Stderr
	deadlock.Opts.OnPotentialDeadlock = func() {
		log.Error().Dur("timeout", LockTimeout).Msg("potential deadlock detected")
		os.Exit(2)
	}
}

// Mutex is a sync.Mutex checked by the deadlock detector.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex is a sync.RWMutex checked by the deadlock detector.
type RWMutex struct {
	deadlock.RWMutex
}
