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

// Package textnorm canonicalizes title strings so that queries and catalog
// titles can be compared directly.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes s (NFKD) and strips the combining marks left behind,
// so "Amélie" becomes "Amelie" and "ﬁ" becomes "fi".
// A new transformer is built per call because transform.Chain keeps state.
func foldAccents(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
	)
	if folded, _, err := transform.String(t, s); err == nil {
		return folded
	}
	return s
}

// isSeparator reports the punctuation that is folded into a word break.
func isSeparator(r rune) bool {
	switch r {
	case '.', '-', '_', ':':
		return true
	default:
		return false
	}
}

// Normalize returns the comparable form of a title: accent-folded, lowercased,
// with '.', '-', '_' and ':' turned into spaces and whitespace collapsed.
//
// Normalize never fails and is idempotent:
//
//	Normalize("K.G.F: Chapter 1")  → "k g f chapter 1"
//	Normalize("  Amélie  ")        → "amelie"
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := foldAccents(text)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// Acronym interleaves every rune of s with a single space: "kgf" → "k g f".
// Spaces already in s are interleaved like any other rune, so multi-word
// queries produce runs of spaces and will not prefix-match normalized titles.
func Acronym(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for i, r := range rs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
