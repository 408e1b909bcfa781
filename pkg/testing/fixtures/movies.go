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

package fixtures

import (
	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/textnorm"
)

// Indices of the entries returned by MovieRows.
const (
	IdxMatrix = iota
	IdxMatrixReloaded
	IdxInception
	IdxKGF1
	IdxKGF2
	IdxAmelie
	IdxSpiderMan
	IdxToyStory
	IdxCSI
)

// MovieRows returns a small catalog covering every resolver tier.
func MovieRows() []catalog.Row {
	return []catalog.Row{
		{
			Title: "The Matrix", Genres: "Action Science Fiction", Rating: "8.2", VoteCount: "25000",
			PosterURL: "https://img.example.org/matrix.jpg", Director: "Lana Wachowski",
		},
		{
			Title: "The Matrix Reloaded", Genres: "Action Science Fiction", Rating: "7.0", VoteCount: "11000",
			PosterURL: "https://img.example.org/matrix-reloaded.jpg", Director: "Lana Wachowski",
		},
		{
			Title: "Inception", Genres: "Action Science Fiction Adventure", Rating: "8.4", VoteCount: "36000",
			PosterURL: "https://img.example.org/inception.jpg", Director: "Christopher Nolan",
		},
		{
			Title: "K.G.F: Chapter 1", Genres: "Action Crime Drama", Rating: "7.4", VoteCount: "900",
			PosterURL: "https://img.example.org/kgf1.jpg", Director: "Prashanth Neel",
		},
		{
			Title: "K.G.F: Chapter 2", Genres: "Action Crime Drama", Rating: "7.6", VoteCount: "1400",
			PosterURL: "https://img.example.org/kgf2.jpg", Director: "Prashanth Neel",
		},
		{
			Title: "Amélie", Genres: "Comedy Romance", Rating: "7.9", VoteCount: "11500",
			PosterURL: "https://img.example.org/amelie.jpg", Director: "Jean-Pierre Jeunet",
		},
		{
			Title: "Spider-Man: No Way Home", Genres: "Action Adventure Science Fiction", Rating: "8.0",
			VoteCount: "19000", PosterURL: "https://img.example.org/nwh.jpg", Director: "Jon Watts",
		},
		{
			Title: "Toy Story", Genres: "Animation Adventure Family Comedy", Rating: "8.0", VoteCount: "18000",
			PosterURL: "https://img.example.org/toy-story.jpg", Director: "John Lasseter",
		},
		{
			Title: "C.S.I.", Genres: "Crime Drama Mystery", Rating: "6.1", VoteCount: "300",
			PosterURL: "https://img.example.org/csi.jpg", Director: "Danny Cannon",
		},
	}
}

// GenreMatrix builds a symmetric similarity matrix from the Jaccard overlap of
// the rows' genre words, with 1 on the diagonal. It produces plenty of ties,
// which is what ranking tests need.
func GenreMatrix(rows []catalog.Row) *catalog.SimilarityMatrix {
	genres := make([]textnorm.TokenSet, len(rows))
	for i := range rows {
		genres[i] = textnorm.Tokens(rows[i].Genres)
	}
	return MatrixFromFunc(len(rows), func(i, j int) float64 {
		if i == j {
			return 1
		}
		union := genres[i].Union(genres[j])
		if len(union) == 0 {
			return 0
		}
		shared := 0
		for g := range genres[i] {
			if genres[j].Has(g) {
				shared++
			}
		}
		return float64(shared) / float64(len(union))
	})
}

// MatrixFromFunc builds an n×n matrix with values from fn.
func MatrixFromFunc(n int, fn func(i, j int) float64) *catalog.SimilarityMatrix {
	data := make([]float64, n*n)
	for i := range n {
		for j := range n {
			data[i*n+j] = fn(i, j)
		}
	}
	m, err := catalog.NewSimilarityMatrix(n, data)
	if err != nil {
		panic(err)
	}
	return m
}

// NewCatalog builds a catalog and panics on error. Test use only.
func NewCatalog(rows []catalog.Row, matrix *catalog.SimilarityMatrix) *catalog.Catalog {
	cat, err := catalog.New(rows, matrix)
	if err != nil {
		panic(err)
	}
	return cat
}

// MovieCatalog returns MovieRows with its GenreMatrix.
func MovieCatalog() *catalog.Catalog {
	rows := MovieRows()
	return NewCatalog(rows, GenreMatrix(rows))
}

// TitlesCatalog builds a catalog of bare titles with equal popularity and a
// genre-free matrix where every off-diagonal similarity is 0.5.
func TitlesCatalog(titles ...string) *catalog.Catalog {
	rows := make([]catalog.Row, len(titles))
	for i, t := range titles {
		rows[i] = catalog.Row{Title: t, Rating: "5", VoteCount: "100"}
	}
	return NewCatalog(rows, MatrixFromFunc(len(rows), func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0.5
	}))
}
