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

package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

func resolveTitleTool() mcp.Tool {
	return mcp.Tool{
		Name:        ToolResolveTitle,
		Description: "Match a free-text movie title, typo or acronym to a catalog entry",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Movie title as typed by a user, e.g. \"kgf\" or \"the matrx\"",
				},
			},
			Required: []string{"title"},
		},
	}
}

func recommendTool() mcp.Tool {
	return mcp.Tool{
		Name:        ToolRecommend,
		Description: "Recommend movies similar to the one a title resolves to",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Movie title to base recommendations on",
				},
				"top_n": map[string]any{
					"type":        "integer",
					"description": "Number of recommendations, 0 for the default",
					"default":     0,
					"minimum":     0,
				},
			},
			Required: []string{"title"},
		},
	}
}

func searchTitlesTool() mcp.Tool {
	return mcp.Tool{
		Name:        ToolSearchTitles,
		Description: "List catalog titles containing a search string",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Text to look for in titles, case and accent insensitive",
				},
			},
			Required: []string{"query"},
		},
	}
}
