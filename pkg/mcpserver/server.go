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

// Package mcpserver exposes the recommendation engine as Model Context
// Protocol tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"github.com/reelmatch/reelmatch-core/pkg/config"
	"github.com/reelmatch/reelmatch-core/pkg/engine"
	"github.com/rs/zerolog/log"
)

const ServerName = "reelmatch"

const (
	ToolResolveTitle = "resolve_title"
	ToolRecommend    = "recommend"
	ToolSearchTitles = "search_titles"
)

// Server wraps an MCP server bound to one engine.
type Server struct {
	mcp *server.MCPServer
	eng *engine.Engine
}

// New creates a server with every tool registered.
func New(eng *engine.Engine) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			ServerName,
			config.AppVersion,
			server.WithToolCapabilities(false),
		),
		eng: eng,
	}

	s.mcp.AddTool(resolveTitleTool(), s.handleResolveTitle)
	s.mcp.AddTool(recommendTool(), s.handleRecommend)
	s.mcp.AddTool(searchTitlesTool(), s.handleSearchTitles)

	return s
}

// Serve speaks MCP over in and out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log.Info().Msg("mcp server listening on stdio")
	if err := server.NewStdioServer(s.mcp).Listen(ctx, in, out); err != nil {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}
