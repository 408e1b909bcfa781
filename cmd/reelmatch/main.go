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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/reelmatch/reelmatch-core/internal/telemetry"
	"github.com/reelmatch/reelmatch-core/pkg/cli"
	"github.com/reelmatch/reelmatch-core/pkg/config"
	"github.com/reelmatch/reelmatch-core/pkg/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	flags := cli.SetupFlags(fs)

	exit, err := flags.Pre(fs, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	} else if exit {
		return nil
	}

	var logWriters []io.Writer
	if *flags.Daemon {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg, err := cli.Setup(config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			telemetry.Flush()
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	eng, err := service.LoadEngine(cfg, afero.NewOsFs())
	if err != nil {
		log.Error().Err(err).Msg("error loading catalog")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handled, err := flags.Post(ctx, cfg, eng, os.Stdin, os.Stdout)
	if handled {
		return err
	}

	stopSvc, done, err := service.Start(cfg, eng)
	if err != nil {
		log.Error().Msgf("error starting service: %s", err)
		return fmt.Errorf("error starting service: %w", err)
	}
	defer func() {
		if err := stopSvc(); err != nil {
			log.Error().Msgf("error stopping service: %s", err)
		}
	}()

	if *flags.Daemon {
		log.Info().Msg("started in daemon mode")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "ReelMatch v%s listening on %s\n", config.AppVersion, cfg.APIListen())
	}

	select {
	case <-ctx.Done():
	case <-done:
	}

	return nil
}
