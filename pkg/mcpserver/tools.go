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

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/reelmatch/reelmatch-core/pkg/api/validation"
	"github.com/reelmatch/reelmatch-core/pkg/engine"
	"github.com/rs/zerolog/log"
)

type resolveTitleParams struct {
	Title string `json:"title" validate:"required,title"`
}

type recommendParams struct {
	Title string `json:"title" validate:"required,title"`
	TopN  int    `json:"top_n" validate:"gte=0"`
}

type searchTitlesParams struct {
	Query string `json:"query" validate:"required"`
}

type resolvedTitle struct {
	Title    string  `json:"title"`
	Strategy string  `json:"strategy"`
	Index    int     `json:"index"`
	Score    float64 `json:"score"`
}

// decodeArgs fills dest from the call's arguments. A returned result is a
// tool-level error to hand back to the client as is.
func decodeArgs[T any](request mcp.CallToolRequest, dest *T) *mcp.CallToolResult {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok && request.Params.Arguments != nil {
		return mcp.NewToolResultError("arguments must be an object")
	}
	if err := validation.DecodeAndValidate(args, dest); err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// notFoundResult explains a miss and offers the closest titles.
func (s *Server) notFoundResult(title string) *mcp.CallToolResult {
	msg := fmt.Sprintf("no movie matches %q", title)
	suggestions := s.eng.DidYouMean(title)
	if len(suggestions) > 0 {
		titles := make([]string, len(suggestions))
		for i := range suggestions {
			titles[i] = suggestions[i].Title
		}
		msg += "; did you mean: " + strings.Join(titles, ", ")
	}
	return mcp.NewToolResultError(msg)
}

func (s *Server) handleResolveTitle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params resolveTitleParams
	if res := decodeArgs(request, &params); res != nil {
		return res, nil
	}

	m, err := s.eng.Resolve(params.Title)
	if errors.Is(err, engine.ErrNotFound) {
		return s.notFoundResult(params.Title), nil
	} else if err != nil {
		return nil, err
	}

	log.Debug().Str("title", params.Title).Str("match", m.Entry.Title).Msg("mcp resolve")
	return jsonResult(resolvedTitle{
		Title:    m.Entry.Title,
		Index:    m.Entry.Index,
		Strategy: m.Strategy,
		Score:    m.Score,
	})
}

func (s *Server) handleRecommend(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params recommendParams
	if res := decodeArgs(request, &params); res != nil {
		return res, nil
	}

	recs, err := s.eng.Recommend(params.Title, params.TopN)
	if errors.Is(err, engine.ErrNotFound) {
		return s.notFoundResult(params.Title), nil
	} else if err != nil {
		return nil, err
	}

	return jsonResult(recs)
}

func (s *Server) handleSearchTitles(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params searchTitlesParams
	if res := decodeArgs(request, &params); res != nil {
		return res, nil
	}
	return jsonResult(s.eng.Search(params.Query))
}
