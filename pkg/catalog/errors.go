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

import "errors"

// Load-time failures. Both are fatal: a process that gets one of these must
// not serve queries against a partial catalog.
var (
	// ErrIndexMismatch means the catalog row count differs from the similarity
	// matrix dimension.
	ErrIndexMismatch = errors.New("catalog rows do not match similarity matrix dimension")

	// ErrMalformedArtifact means an input artifact could not be understood:
	// missing CSV columns, unparseable numbers, a bad .npy header or
	// non-finite similarity values.
	ErrMalformedArtifact = errors.New("malformed artifact")
)
