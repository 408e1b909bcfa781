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

package catalog_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/reelmatch/reelmatch-core/pkg/catalog"
	"github.com/reelmatch/reelmatch-core/pkg/testing/fixtures"
	testhelpers "github.com/reelmatch/reelmatch-core/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixData(m *catalog.SimilarityMatrix) []float64 {
	n := m.Dim()
	data := make([]float64, 0, n*n)
	for i := range n {
		data = append(data, m.Row(i)...)
	}
	return data
}

func writeArtifacts(t *testing.T, h *testhelpers.FSHelper, dir string, rows []catalog.Row) {
	t.Helper()
	m := fixtures.GenreMatrix(rows)
	require.NoError(t, h.WriteCatalog(dir+"/"+catalog.CatalogFile, rows))
	require.NoError(t, h.WriteMatrix(dir+"/"+catalog.MatrixFile, m.Dim(), matrixData(m)))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	rows := fixtures.MovieRows()
	writeArtifacts(t, h, "/artifacts", rows)

	cat, err := catalog.NewLoader(h.Fs).Load("/artifacts/"+catalog.CatalogFile, "/artifacts/"+catalog.MatrixFile)
	require.NoError(t, err)
	require.Equal(t, len(rows), cat.Len())
	assert.Equal(t, len(rows), cat.Matrix().Dim())

	e, ok := cat.Entry(fixtures.IdxAmelie)
	require.True(t, ok)
	assert.Equal(t, "Amélie", e.Title)
	assert.Equal(t, "amelie", e.NormalizedTitle)
	assert.InDelta(t, 7.9, e.Rating, 1e-9)
	assert.InDelta(t, 11500.0, e.Popularity, 1e-9)
	assert.Equal(t, "https://img.example.org/amelie.jpg", e.PosterURL)

	want := fixtures.GenreMatrix(rows)
	assert.InDelta(t, want.At(fixtures.IdxKGF1, fixtures.IdxCSI), cat.Matrix().At(fixtures.IdxKGF1, fixtures.IdxCSI), 1e-12)
	assert.InDelta(t, 1.0, cat.Matrix().At(fixtures.IdxKGF1, fixtures.IdxKGF2), 1e-12)
}

func TestLoader_MissingColumns(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	require.NoError(t, h.WriteFile("/movies.csv", []byte("title,genres,rating\nHeat,Crime,8.3\n")))

	_, err := catalog.NewLoader(h.Fs).ReadRows("/movies.csv")
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)
	assert.Contains(t, err.Error(), "vote_count")
	assert.Contains(t, err.Error(), "poster_url")
}

func TestLoader_EmptyCatalog(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	require.NoError(t, h.WriteFile("/movies.csv", nil))

	_, err := catalog.NewLoader(h.Fs).ReadRows("/movies.csv")
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)
}

func TestLoader_MissingFiles(t *testing.T) {
	t.Parallel()

	loader := catalog.NewLoader(testhelpers.NewMemoryFS().Fs)

	_, err := loader.ReadRows("/nope.csv")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.ReadMatrix("/nope.npy")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_IndexMismatch(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	rows := fixtures.MovieRows()
	require.NoError(t, h.WriteCatalog("/movies.csv", rows[:3]))
	require.NoError(t, h.WriteMatrix("/sim.npy", 2, []float64{1, 0.5, 0.5, 1}))

	_, err := catalog.NewLoader(h.Fs).Load("/movies.csv", "/sim.npy")
	require.ErrorIs(t, err, catalog.ErrIndexMismatch)
	assert.False(t, errors.Is(err, catalog.ErrMalformedArtifact))
}

func TestLoader_BadMatrix(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	require.NoError(t, h.WriteFile("/garbage.npy", []byte("not a numpy file")))

	_, err := catalog.NewLoader(h.Fs).ReadMatrix("/garbage.npy")
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)
}

func TestLoader_FindLatest(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	require.NoError(t, h.WriteFile("/artifacts/2024-01-01/movies.csv", []byte("old")))
	require.NoError(t, h.WriteFile("/artifacts/2024-02-01/movies.csv", []byte("new")))
	require.NoError(t, h.WriteFile("/artifacts/2024-03-01/other.csv", []byte("x")))

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, h.Fs.Chtimes("/artifacts/2024-01-01/movies.csv", old, old))
	newer := old.Add(24 * time.Hour)
	require.NoError(t, h.Fs.Chtimes("/artifacts/2024-02-01/movies.csv", newer, newer))

	loader := catalog.NewLoader(h.Fs)
	got, err := loader.FindLatest("/artifacts", catalog.CatalogFile)
	require.NoError(t, err)
	assert.Equal(t, "/artifacts/2024-02-01/movies.csv", got)

	_, err = loader.FindLatest("/artifacts", catalog.MatrixFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_ImputesMissingValues(t *testing.T) {
	t.Parallel()

	rows := []catalog.Row{
		{Title: "A", Rating: "6", VoteCount: "10"},
		{Title: "B", Rating: "", VoteCount: "nan"},
		{Title: "C", Rating: "NaN", VoteCount: " 3 "},
		{Title: "D", Rating: "8", VoteCount: ""},
	}
	cat := fixtures.NewCatalog(rows, fixtures.MatrixFromFunc(4, func(i, j int) float64 { return 0 }))

	entries := cat.Entries()
	assert.InDelta(t, 6.0, entries[0].Rating, 1e-9)
	assert.InDelta(t, 7.0, entries[1].Rating, 1e-9)
	assert.InDelta(t, 7.0, entries[2].Rating, 1e-9)
	assert.InDelta(t, 8.0, entries[3].Rating, 1e-9)

	assert.InDelta(t, 10.0, entries[0].Popularity, 1e-9)
	assert.InDelta(t, float64(catalog.MissingPopularity), entries[1].Popularity, 1e-9)
	assert.InDelta(t, 3.0, entries[2].Popularity, 1e-9)
	assert.InDelta(t, float64(catalog.MissingPopularity), entries[3].Popularity, 1e-9)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	m := fixtures.MatrixFromFunc(1, func(i, j int) float64 { return 1 })

	_, err := catalog.New(nil, m)
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)

	_, err = catalog.New([]catalog.Row{{Title: "A"}}, nil)
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)

	_, err = catalog.New([]catalog.Row{{Title: "A", Rating: "great"}}, m)
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)

	_, err = catalog.New([]catalog.Row{{Title: "A"}, {Title: "B"}}, m)
	require.ErrorIs(t, err, catalog.ErrIndexMismatch)
}

func TestNewSimilarityMatrix_Errors(t *testing.T) {
	t.Parallel()

	_, err := catalog.NewSimilarityMatrix(2, []float64{1, 0, 0})
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)

	_, err = catalog.NewSimilarityMatrix(-1, nil)
	require.ErrorIs(t, err, catalog.ErrMalformedArtifact)
}

func TestEntry(t *testing.T) {
	t.Parallel()

	cat := fixtures.MovieCatalog()
	e, ok := cat.Entry(fixtures.IdxInception)
	require.True(t, ok)
	assert.Equal(t, "Inception", e.Title)
	assert.Equal(t, fixtures.IdxInception, e.Index)

	_, ok = cat.Entry(cat.Len())
	assert.False(t, ok)
	_, ok = cat.Entry(-1)
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	cat := fixtures.MovieCatalog()

	got := cat.Search("matrix", catalog.SearchLimit)
	require.Len(t, got, 2)
	assert.Equal(t, "The Matrix", got[0].Title)
	assert.Equal(t, "https://img.example.org/matrix.jpg", got[0].PosterURL)
	assert.Equal(t, "The Matrix Reloaded", got[1].Title)

	assert.Len(t, cat.Search("the", 1), 1)
	assert.Empty(t, cat.Search("", catalog.SearchLimit))
	assert.NotNil(t, cat.Search("zzz", catalog.SearchLimit))
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	cat := fixtures.MovieCatalog()

	assert.Equal(t, []string{"Amélie"}, cat.Suggest("AMELIE", catalog.SuggestLimit))
	assert.Equal(t, []string{"K.G.F: Chapter 1", "K.G.F: Chapter 2"}, cat.Suggest("k g f", catalog.SuggestLimit))
	assert.Empty(t, cat.Suggest(" - ", catalog.SuggestLimit))
	assert.Empty(t, cat.Suggest("matrix", 0))
}
