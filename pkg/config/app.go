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

import "os"

var AppVersion = "DEVELOPMENT"

const (
	AppName        = "reelmatch"
	AppEnv         = "REELMATCH_APP"
	UserDir        = "user"
	LogFile        = "reelmatch.log"
	CfgFile        = "reelmatch.toml"

	// ServiceName is reported by the health endpoint.
	ServiceName = "movie-recommendation"
	// DeploymentEnv names the deployment, e.g. "staging".
	DeploymentEnv      = "ENV"
	DefaultEnvironment = "local"
)

// Environment returns the deployment name from ENV, or "local".
func Environment() string {
	if env := os.Getenv(DeploymentEnv); env != "" {
		return env
	}
	return DefaultEnvironment
}
