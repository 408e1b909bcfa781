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

package config

import "path/filepath"

const DefaultArtifactsDir = "artifacts"

// Artifacts locates the catalog CSV and similarity matrix. When Catalog or
// Matrix is empty the newest matching file under Dir is used.
type Artifacts struct {
	Dir     string `toml:"dir"`
	Catalog string `toml:"catalog,omitempty"`
	Matrix  string `toml:"matrix,omitempty"`
}

// ArtifactsDir returns the artifact search directory. A relative path is
// resolved against the config file's directory.
func (c *Instance) ArtifactsDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolvePathLocked(c.vals.Artifacts.Dir, DefaultArtifactsDir)
}

// CatalogPath returns the explicit catalog CSV path, or "" to search.
func (c *Instance) CatalogPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolvePathLocked(c.vals.Artifacts.Catalog, "")
}

// MatrixPath returns the explicit similarity matrix path, or "" to search.
func (c *Instance) MatrixPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolvePathLocked(c.vals.Artifacts.Matrix, "")
}

func (c *Instance) SetArtifactsDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Artifacts.Dir = dir
}

// resolvePathLocked returns p, or def when p is empty, made absolute against
// the config directory. Caller must hold mu (read or write).
func (c *Instance) resolvePathLocked(p, def string) string {
	if p == "" {
		p = def
	}
	if p == "" || filepath.IsAbs(p) || c.cfgPath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.cfgPath), p)
}
