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

// Package service wires config, catalog artifacts and the engine into a
// running HTTP service.
package service

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/reelmatch/reelmatch-core/pkg/api"
	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/config"
	"github.com/reelmatch/reelmatch-core/pkg/engine"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// EngineOptions maps the config onto engine options.
func EngineOptions(cfg *config.Instance) engine.Options {
	return engine.Options{
		DefaultTopN:       cfg.DefaultTopN(),
		MaxTopN:           cfg.MaxTopN(),
		EvaluationWorkers: cfg.EvaluationWorkers(),
		TokenIndex:        cfg.TokenIndex(),
	}
}

// ArtifactPaths returns the catalog and matrix files to load. Paths set in
// the config are used as is, otherwise the newest file of each kind under
// the artifacts directory is picked.
func ArtifactPaths(cfg *config.Instance, loader *catalog.Loader) (catalogPath, matrixPath string, err error) {
	catalogPath = cfg.CatalogPath()
	if catalogPath == "" {
		catalogPath, err = loader.FindLatest(cfg.ArtifactsDir(), catalog.CatalogFile)
		if err != nil {
			return "", "", fmt.Errorf("failed to locate catalog: %w", err)
		}
	}

	matrixPath = cfg.MatrixPath()
	if matrixPath == "" {
		matrixPath, err = loader.FindLatest(cfg.ArtifactsDir(), catalog.MatrixFile)
		if err != nil {
			return "", "", fmt.Errorf("failed to locate similarity matrix: %w", err)
		}
	}

	return catalogPath, matrixPath, nil
}

// LoadEngine reads the configured artifacts from fs and builds an engine.
// Any error here is fatal.
func LoadEngine(cfg *config.Instance, fs afero.Fs) (*engine.Engine, error) {
	loader := catalog.NewLoader(fs)

	catalogPath, matrixPath, err := ArtifactPaths(cfg, loader)
	if err != nil {
		return nil, err
	}

	cat, err := loader.Load(catalogPath, matrixPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog artifacts: %w", err)
	}

	return engine.New(cat, EngineOptions(cfg)), nil
}

// Start serves eng over HTTP. stop shuts the service down and waits for it;
// done is closed once the service has stopped for any reason.
func Start(cfg *config.Instance, eng *engine.Engine) (stop func() error, done <-chan struct{}, err error) {
	log.Info().Msgf("version: %s", config.AppVersion)
	log.Info().
		Int("entries", eng.Catalog().Len()).
		Str("environment", config.Environment()).
		Msg("starting API service")

	srv, err := api.Start(cfg, eng, clockwork.NewRealClock())
	if err != nil {
		log.Error().Err(err).Msg("error starting API service")
		return nil, nil, fmt.Errorf("api start failed: %w", err)
	}

	doneCh := make(chan struct{})
	go func() {
		<-srv.Done()
		if serveErr := srv.Err(); serveErr != nil {
			log.Error().Err(serveErr).Msg("API service failed")
		}
		log.Info().Msg("service stopped")
		close(doneCh)
	}()

	stop = func() error {
		stopErr := srv.Stop()
		<-doneCh
		return stopErr
	}
	return stop, doneCh, nil
}
