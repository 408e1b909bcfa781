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
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/reelmatch/reelmatch-core/internal/telemetry"
	"github.com/reelmatch/reelmatch-core/pkg/config"
	"github.com/reelmatch/reelmatch-core/pkg/helpers"
	"github.com/rs/zerolog/log"
)

// ErrConflictingFlags is returned when more than one action flag is set.
var ErrConflictingFlags = errors.New("only one of -query, -evaluate and -mcp may be set")

type Flags struct {
	Query    *string
	TopN     *int
	K        *int
	Version  *bool
	Evaluate *bool
	MCP      *bool
	Daemon   *bool

	queryPassed bool
}

// SetupFlags defines the command line flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Query: fs.String(
			"query",
			"",
			"print recommendations for a movie title and exit",
		),
		TopN: fs.Int(
			"top-n",
			0,
			"number of recommendations for -query, 0 for the configured default",
		),
		K: fs.Int(
			"k",
			0,
			"cut-off for -evaluate, 0 for the configured default",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Evaluate: fs.Bool(
			"evaluate",
			false,
			"run the offline evaluation over the whole catalog and exit",
		),
		MCP: fs.Bool(
			"mcp",
			false,
			"serve MCP tools on stdin and stdout",
		),
		Daemon: fs.Bool(
			"daemon",
			false,
			"run the HTTP service in the foreground, logging to stderr",
		),
	}
}

func isFlagPassed(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and handles flags that need no environment. It reports
// whether the program should exit straight away.
func (f *Flags) Pre(fs *flag.FlagSet, args []string, out io.Writer) (exit bool, err error) {
	if err := fs.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "ReelMatch v%s\n", config.AppVersion)
		return true, nil
	}

	f.queryPassed = isFlagPassed(fs, "query")

	actions := 0
	if f.queryPassed {
		actions++
	}
	if *f.Evaluate {
		actions++
	}
	if *f.MCP {
		actions++
	}
	if actions > 1 {
		return true, ErrConflictingFlags
	}

	return false, nil
}

// Setup loads the user config and starts logging and error reporting.
//
//nolint:gocritic // config struct copied for immutability
func Setup(defaultConfig config.Values, writers []io.Writer) (*config.Instance, error) {
	cfg, err := config.NewConfig(helpers.ConfigDir(), defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := helpers.InitLogging(cfg, writers); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if err := telemetry.Init(telemetry.Options{
		Enabled:     cfg.ErrorReporting(),
		DSN:         cfg.TelemetryDSN(),
		Release:     config.AppVersion,
		Environment: config.Environment(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	log.Info().Str("config", cfg.Path()).Msg("config loaded")
	return cfg, nil
}
