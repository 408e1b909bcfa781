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

package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/sbinet/npyio"
	"github.com/spf13/afero"
)

const (
	// CatalogFile is the file name the ingestion pipeline gives the catalog.
	CatalogFile = "movies.csv"
	// MatrixFile is the file name the trainer gives the similarity matrix.
	MatrixFile = "cosine_similarity.npy"
)

// RequiredColumns must all be present in the catalog CSV header.
var RequiredColumns = []string{"title", "genres", "rating", "vote_count", "poster_url"}

// Loader reads catalog artifacts from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a Loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads the catalog CSV and similarity matrix and checks that they line
// up. Any error is fatal for the caller.
func (l *Loader) Load(catalogPath, matrixPath string) (*Catalog, error) {
	started := time.Now()

	rows, err := l.ReadRows(catalogPath)
	if err != nil {
		return nil, err
	}

	matrix, err := l.ReadMatrix(matrixPath)
	if err != nil {
		return nil, err
	}

	cat, err := New(rows, matrix)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog from %s and %s: %w", catalogPath, matrixPath, err)
	}

	log.Info().
		Str("catalog", catalogPath).
		Str("matrix", matrixPath).
		Int("entries", cat.Len()).
		Dur("took", time.Since(started)).
		Msg("catalog loaded")

	return cat, nil
}

// ReadRows parses the catalog CSV at path.
func (l *Loader) ReadRows(path string) ([]Row, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := checkHeader(data); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	rows := make([]Row, 0)
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal catalog CSV %s: %w", ErrMalformedArtifact, path, err)
	}

	return rows, nil
}

// checkHeader makes sure every required column is present. gocsv on its own
// leaves fields of missing columns empty instead of failing.
func checkHeader(data []byte) error {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty catalog file", ErrMalformedArtifact)
	}
	if err != nil {
		return fmt.Errorf("%w: unreadable CSV header: %w", ErrMalformedArtifact, err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required columns %v", ErrMalformedArtifact, missing)
	}
	return nil
}

// ReadMatrix parses a square float64 or float32 NumPy array.
func (l *Loader) ReadMatrix(path string) (*SimilarityMatrix, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open similarity matrix: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close similarity matrix")
		}
	}()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read npy header from %s: %w", ErrMalformedArtifact, path, err)
	}

	shape := r.Header.Descr.Shape
	if len(shape) != 2 || shape[0] != shape[1] {
		return nil, fmt.Errorf("%w: %s has shape %v, want a square 2-D array",
			ErrMalformedArtifact, path, shape)
	}
	n := shape[0]

	var data []float64
	switch r.Header.Descr.Type {
	case "<f8", "f8":
		if err := r.Read(&data); err != nil {
			return nil, fmt.Errorf("%w: failed to read %s: %w", ErrMalformedArtifact, path, err)
		}
	case "<f4", "f4":
		var narrow []float32
		if err := r.Read(&narrow); err != nil {
			return nil, fmt.Errorf("%w: failed to read %s: %w", ErrMalformedArtifact, path, err)
		}
		data = make([]float64, len(narrow))
		for i, v := range narrow {
			data[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("%w: %s has dtype %q, want <f8 or <f4",
			ErrMalformedArtifact, path, r.Header.Descr.Type)
	}

	if r.Header.Descr.Fortran {
		data = transpose(data, n)
	}

	return NewSimilarityMatrix(n, data)
}

func transpose(data []float64, n int) []float64 {
	if len(data) != n*n {
		return data
	}
	out := make([]float64, len(data))
	for i := range n {
		for j := range n {
			out[i*n+j] = data[j*n+i]
		}
	}
	return out
}

// FindLatest walks dir and returns the most recently modified file named
// name. Training runs write into timestamped folders, so the newest file is
// the current artifact; equal modification times fall back to the
// lexically greater path.
func (l *Loader) FindLatest(dir, name string) (string, error) {
	var (
		latest     string
		latestTime time.Time
	)

	err := afero.Walk(l.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Base(path) != name {
			return nil
		}
		mod := info.ModTime()
		if latest == "" || mod.After(latestTime) || (mod.Equal(latestTime) && path > latest) {
			latest = path
			latestTime = mod
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search %s for %s: %w", dir, name, err)
	}
	if latest == "" {
		return "", fmt.Errorf("%s not found in %s: %w", name, dir, os.ErrNotExist)
	}

	log.Debug().Str("name", name).Str("path", latest).Msg("found artifact")
	return latest, nil
}
