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

// Package catalog holds the immutable movie table and its similarity matrix.
//
// A Catalog is built once at startup from the artifacts produced by the
// offline training pipeline and is then shared, without locking, by every
// resolver, ranker and evaluation run in the process.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
)

// MissingPopularity is the vote count given to entries without one. It sorts
// below any real count, so such entries lose popularity tie-breaks but are
// still matchable.
const MissingPopularity = -1

// Row is one record of the catalog CSV as written by the ingestion pipeline.
// Numeric columns are kept as text so that blanks and "nan" can be told
// apart from zero.
type Row struct {
	Title     string `csv:"title"`
	Genres    string `csv:"genres"`
	Rating    string `csv:"rating"`
	VoteCount string `csv:"vote_count"`
	PosterURL string `csv:"poster_url"`
	Overview  string `csv:"overview"`
	Keywords  string `csv:"keywords"`
	Cast      string `csv:"cast"`
	Director  string `csv:"director"`
}

// Entry is a catalog movie with its derived matching fields.
type Entry struct {
	TitleTokens     textnorm.TokenSet
	Title           string
	NormalizedTitle string
	Genres          string
	PosterURL       string
	Overview        string
	Keywords        string
	Cast            string
	Director        string
	Index           int
	Popularity      float64
	Rating          float64
}

// GenreTokens returns the entry's genres split on whitespace.
func (e *Entry) GenreTokens() textnorm.TokenSet {
	return textnorm.Tokens(e.Genres)
}

// Catalog is the ordered entry table. Entry i corresponds to row and column i
// of the similarity matrix.
type Catalog struct {
	matrix  *SimilarityMatrix
	entries []Entry
}

// New builds a catalog from raw rows and a similarity matrix. Missing ratings
// are imputed with the mean of the present ones and missing vote counts get
// MissingPopularity.
func New(rows []Row, matrix *SimilarityMatrix) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: catalog has no rows", ErrMalformedArtifact)
	}
	if matrix == nil {
		return nil, fmt.Errorf("%w: similarity matrix is missing", ErrMalformedArtifact)
	}
	if matrix.Dim() != len(rows) {
		return nil, fmt.Errorf("%w: %d rows, %dx%d matrix",
			ErrIndexMismatch, len(rows), matrix.Dim(), matrix.Dim())
	}

	entries := make([]Entry, len(rows))
	ratings := make([]*float64, len(rows))
	var ratingSum float64
	var ratingCount int

	for i := range rows {
		row := &rows[i]

		rating, err := parseOptionalFloat(row.Rating)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d rating: %w", ErrMalformedArtifact, i, err)
		}
		votes, err := parseOptionalFloat(row.VoteCount)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d vote_count: %w", ErrMalformedArtifact, i, err)
		}

		if rating != nil {
			ratingSum += *rating
			ratingCount++
		}
		ratings[i] = rating

		popularity := float64(MissingPopularity)
		if votes != nil {
			popularity = *votes
		}

		normalized := textnorm.Normalize(row.Title)
		entries[i] = Entry{
			Index:           i,
			Title:           row.Title,
			NormalizedTitle: normalized,
			TitleTokens:     textnorm.Tokens(normalized),
			Popularity:      popularity,
			Genres:          row.Genres,
			PosterURL:       row.PosterURL,
			Overview:        row.Overview,
			Keywords:        row.Keywords,
			Cast:            row.Cast,
			Director:        row.Director,
		}
	}

	var meanRating float64
	if ratingCount > 0 {
		meanRating = ratingSum / float64(ratingCount)
	}
	for i, r := range ratings {
		if r != nil {
			entries[i].Rating = *r
		} else {
			entries[i].Rating = meanRating
		}
	}

	return &Catalog{entries: entries, matrix: matrix}, nil
}

var errNotANumber = errors.New("not a number")

// parseOptionalFloat returns nil for blank and NaN cells, the way pandas
// reads them.
func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, errNotANumber)
	}
	return &v, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entry table in catalog order. The slice is shared and
// must not be modified.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Entry returns the entry at index i.
func (c *Catalog) Entry(i int) (*Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return nil, false
	}
	return &c.entries[i], true
}

// Matrix returns the similarity matrix.
func (c *Catalog) Matrix() *SimilarityMatrix {
	return c.matrix
}
