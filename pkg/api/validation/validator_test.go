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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOneof(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Format string `validate:"oneof=text json"`
	}

	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{name: "text", value: "text", wantError: false},
		{name: "json", value: "json", wantError: false},
		{name: "unknown", value: "yaml", wantError: true},
		{name: "wrong case", value: "JSON", wantError: true},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(&testStruct{Format: tt.value})
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be one of")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Title string `validate:"title"`
	}

	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{name: "plain title", value: "The Matrix", wantError: false},
		{name: "acronym", value: "K.G.F", wantError: false},
		{name: "empty is left to required", value: "", wantError: false},
		{name: "whitespace only", value: "   ", wantError: true},
		{name: "separators only", value: ".:-_", wantError: true},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(&testStruct{Title: tt.value})
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must contain at least one letter or digit")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateListen(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Listen string `validate:"listen"`
	}

	tests := []struct {
		name      string
		value     string
		wantError bool
	}{
		{name: "port only", value: ":5000", wantError: false},
		{name: "host and port", value: "127.0.0.1:8080", wantError: false},
		{name: "ipv6", value: "[::1]:5000", wantError: false},
		{name: "empty", value: "", wantError: false},
		{name: "missing port", value: "localhost", wantError: true},
		{name: "port out of range", value: ":70000", wantError: true},
		{name: "port not a number", value: ":http", wantError: true},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(&testStruct{Listen: tt.value})
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be a host:port address")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDuration(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Timeout string `validate:"duration"`
	}

	v := NewValidator()
	require.NoError(t, v.Validate(&testStruct{Timeout: "30s"}))
	require.NoError(t, v.Validate(&testStruct{Timeout: ""}))

	err := v.Validate(&testStruct{Timeout: "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid duration")
}

type recommendParams struct {
	Title string `json:"title" validate:"required,title"`
	TopN  int    `json:"top_n" validate:"gte=0,lte=50"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	var p recommendParams
	err := DecodeAndValidate(map[string]any{"title": "Toy Story", "top_n": float64(3)}, &p)
	require.NoError(t, err)
	assert.Equal(t, "Toy Story", p.Title)
	assert.Equal(t, 3, p.TopN)

	var missing recommendParams
	err = DecodeAndValidate(nil, &missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	var unknown recommendParams
	err = DecodeAndValidate(map[string]any{"title": "Toy Story", "colour": "red"}, &unknown)
	require.ErrorIs(t, err, ErrInvalidParams)

	var bad recommendParams
	err = DecodeAndValidate(map[string]any{"title": "Toy Story", "top_n": "many"}, &bad)
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestErrorIsInvalidParams(t *testing.T) {
	t.Parallel()

	err := DefaultValidator.Validate(&recommendParams{})
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestDecodeQuery(t *testing.T) {
	t.Parallel()

	var p recommendParams
	err := DecodeQuery(url.Values{
		"title": {"Toy Story", "Inception"},
		"top_n": {"4"},
		"_":     {"1712"},
	}, &p)
	require.NoError(t, err)
	assert.Equal(t, "Toy Story", p.Title)
	assert.Equal(t, 4, p.TopN)

	var blank recommendParams
	err = DecodeQuery(url.Values{"title": {"Toy Story"}, "top_n": {""}}, &blank)
	require.NoError(t, err)
	assert.Zero(t, blank.TopN)

	var bad recommendParams
	err = DecodeQuery(url.Values{"title": {"Toy Story"}, "top_n": {"ten"}}, &bad)
	require.ErrorIs(t, err, ErrInvalidParams)

	var punct recommendParams
	err = DecodeQuery(url.Values{"title": {" .-: "}}, &punct)
	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "Title", valErr.Fields[0].Field)
}

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Title  string `validate:"required"`
		Format string `validate:"required,oneof=text json"`
	}

	v := NewValidator()
	s := testStruct{Title: "", Format: ""}
	err := v.Validate(&s)

	require.Error(t, err)

	// Error should contain both field errors
	errStr := err.Error()
	assert.Contains(t, errStr, "title is required")
	assert.Contains(t, errStr, "format is required")

	// Should be a validation.Error type
	var valErr *Error
	require.ErrorAs(t, err, &valErr)
	assert.Len(t, valErr.Fields, 2)
}

func TestErrorFormattingAllCases(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	tests := []struct {
		name       string
		structDef  any
		wantSubstr string
	}{
		{
			name: "lt validation",
			structDef: &struct {
				Value int `validate:"lt=10"`
			}{Value: 15},
			wantSubstr: "must be less than 10",
		},
		{
			name: "lte validation",
			structDef: &struct {
				Value int `validate:"lte=10"`
			}{Value: 15},
			wantSubstr: "must be less than or equal to 10",
		},
		{
			name: "gte validation",
			structDef: &struct {
				Value int `validate:"gte=10"`
			}{Value: 5},
			wantSubstr: "must be greater than or equal to 10",
		},
		{
			name: "max validation",
			structDef: &struct {
				Value string `validate:"max=5"`
			}{Value: "toolong"},
			wantSubstr: "must be at most 5",
		},
		{
			name: "url validation",
			structDef: &struct {
				DSN string `validate:"url"`
			}{DSN: "not a url"},
			wantSubstr: "dsn must be a valid URL",
		},
		{
			name: "unknown tag falls back to default",
			structDef: &struct {
				Value string `validate:"alphanum"`
			}{Value: "test!@#"},
			wantSubstr: "failed alphanum validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.structDef)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSubstr)
		})
	}
}

func TestErrorEmptyFields(t *testing.T) {
	t.Parallel()

	// Test Error.Error() with empty fields
	err := &Error{Fields: []FieldError{}}
	assert.Equal(t, "validation failed", err.Error())
}
