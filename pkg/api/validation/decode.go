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

package validation

import (
	"fmt"
	"net/url"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeAndValidate decodes loosely typed arguments, such as MCP tool
// arguments, into dest using its json tags and validates the result. JSON
// numbers arrive as float64, so weak typing is enabled. Unknown keys are
// rejected.
func DecodeAndValidate[T any](args map[string]any, dest *T) error {
	return decode(args, dest, true)
}

// DecodeQuery decodes URL query parameters into dest the same way. Only the
// first value of a repeated key is used and unknown keys are ignored.
func DecodeQuery[T any](values url.Values, dest *T) error {
	args := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) > 0 {
			args[k] = v[0]
		}
	}
	return decode(args, dest, false)
}

func decode[T any](args map[string]any, dest *T, strict bool) error {
	if args == nil {
		args = map[string]any{}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return DefaultValidator.Validate(dest)
}
