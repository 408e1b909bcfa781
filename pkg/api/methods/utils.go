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

package methods

import (
	"github.com/reelmatch/reelmatch-core/pkg/api/models"
	"github.com/reelmatch/reelmatch-core/pkg/api/models/requests"
	"github.com/reelmatch/reelmatch-core/pkg/config"
)

func HandleHealth(_ requests.RequestEnv) (any, error) { //nolint:gocritic // single-use parameter in API handler
	return models.HealthResponse{
		Status:      "ok",
		Service:     config.ServiceName,
		Environment: config.Environment(),
	}, nil
}
