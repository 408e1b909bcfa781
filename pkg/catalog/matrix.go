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
	"fmt"
	"math"
)

// SimilarityMatrix is a dense, square, row-major matrix of pairwise
// similarities. It is read-only once constructed.
type SimilarityMatrix struct {
	data []float64
	n    int
}

// NewSimilarityMatrix wraps data as an n×n matrix. The slice is owned by the
// matrix afterwards and must not be modified by the caller.
func NewSimilarityMatrix(n int, data []float64) (*SimilarityMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative matrix dimension %d", ErrMalformedArtifact, n)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: matrix has %d values, want %d for %dx%d",
			ErrMalformedArtifact, len(data), n*n, n, n)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite similarity at row %d, column %d",
				ErrMalformedArtifact, i/n, i%n)
		}
	}
	return &SimilarityMatrix{n: n, data: data}, nil
}

// Dim returns the number of rows (and columns).
func (m *SimilarityMatrix) Dim() int {
	return m.n
}

// Row returns row i as a view into the matrix. Callers must not modify it.
func (m *SimilarityMatrix) Row(i int) []float64 {
	start := i * m.n
	end := start + m.n
	return m.data[start:end:end]
}

// At returns the similarity between entries i and j.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}
