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

// Package api serves the recommendation engine over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reelmatch/reelmatch-core/pkg/api/methods"
	"github.com/reelmatch/reelmatch-core/pkg/api/middleware"
	"github.com/reelmatch/reelmatch-core/pkg/api/models"
	"github.com/reelmatch/reelmatch-core/pkg/api/models/requests"
	"github.com/reelmatch/reelmatch-core/pkg/api/validation"
	"github.com/reelmatch/reelmatch-core/pkg/config"
	"github.com/reelmatch/reelmatch-core/pkg/engine"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var defaultAllowedOrigins = []string{"https://*", "http://*"}

var methodMap = map[string]func(requests.RequestEnv) (any, error){
	models.MethodHealth:    methods.HandleHealth,
	models.MethodRecommend: methods.HandleRecommend,
	models.MethodSearch:    methods.HandleSearch,
	models.MethodSuggest:   methods.HandleSuggest,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("error marshalling response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Debug().Err(err).Msg("error writing response")
	}
}

// writeError maps a method error to a status code. Unknown titles are 404
// with suggestions, bad parameters are 400 and anything else is a 500.
func writeError(w http.ResponseWriter, env *requests.RequestEnv, method string, err error) {
	resp := models.ErrorResponse{
		Error:     err.Error(),
		RequestID: env.ID.String(),
	}
	status := http.StatusInternalServerError

	var notFound *methods.NotFoundError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		resp.Suggestions = notFound.Suggestions
	case errors.Is(err, validation.ErrInvalidParams):
		status = http.StatusBadRequest
	default:
		log.Error().Err(err).
			Str("method", method).
			Str("request_id", resp.RequestID).
			Msg("request failed")
		resp.Error = "internal error"
	}

	writeJSON(w, status, resp)
}

func handle(cfg *config.Instance, eng *engine.Engine, method string) http.HandlerFunc {
	fn, ok := methodMap[method]
	if !ok {
		panic("unknown api method: " + method)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		env := requests.RequestEnv{
			Context: r.Context(),
			Engine:  eng,
			Config:  cfg,
			Query:   r.URL.Query(),
			ID:      middleware.GetRequestID(r.Context()),
		}

		result, err := fn(env)
		if err != nil {
			writeError(w, &env, method, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewRouter builds the HTTP routes. /health and /metrics are never rate
// limited.
func NewRouter(cfg *config.Instance, eng *engine.Engine, limiter *middleware.IPRateLimiter) http.Handler {
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", handle(cfg, eng, models.MethodHealth))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.HTTPRateLimitMiddleware(limiter))
		r.Get("/recommend", handle(cfg, eng, models.MethodRecommend))
		r.Get("/search", handle(cfg, eng, models.MethodSearch))
		r.Get("/suggest", handle(cfg, eng, models.MethodSuggest))
	})

	return r
}

// Server is a running HTTP API.
type Server struct {
	srv      *http.Server
	listener net.Listener
	err      error
	done     chan struct{}
	cancel   context.CancelFunc
}

// Start listens on the configured address and serves in the background. The
// listener is bound before Start returns, so connections made afterwards
// are accepted.
func Start(cfg *config.Instance, eng *engine.Engine, clock clockwork.Clock) (*Server, error) {
	ln, err := net.Listen("tcp", cfg.APIListen())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.APIListen(), err)
	}
	return Serve(ln, cfg, eng, clock), nil
}

// Serve serves the API on ln in the background.
func Serve(ln net.Listener, cfg *config.Instance, eng *engine.Engine, clock clockwork.Clock) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	perSecond, burst := cfg.RateLimit()
	limiter := middleware.NewIPRateLimiter(perSecond, burst, clock)
	limiter.StartCleanup(ctx)

	s := &Server{
		srv: &http.Server{
			Handler:           NewRouter(cfg, eng, limiter),
			ReadHeaderTimeout: readHeaderTimeout,
			BaseContext:       func(net.Listener) context.Context { return ctx },
		},
		listener: ln,
		done:     make(chan struct{}),
		cancel:   cancel,
	}

	go func() {
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.err = err
		close(s.done)
	}()

	log.Info().
		Str("address", ln.Addr().String()).
		Float64("rate_limit", perSecond).
		Int("burst", burst).
		Msg("api server started")

	return s
}

// Addr returns the bound listen address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Done is closed once the server stops serving.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Err returns why the server stopped. It is nil after a clean Stop and only
// meaningful once Done is closed.
func (s *Server) Err() error {
	return s.err
}

// Stop shuts the server down gracefully, waiting for in-flight requests up
// to a timeout.
func (s *Server) Stop() error {
	defer s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down api server: %w", err)
	}
	<-s.done
	if s.err != nil {
		return fmt.Errorf("api server stopped with error: %w", s.err)
	}

	log.Info().Msg("api server stopped")
	return nil
}
