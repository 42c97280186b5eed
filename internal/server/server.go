// Package server provides the HTTP server for the reporting API.
package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/internal/pipeline"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	store  *dataset.Store
	loader *dataset.Loader
	runner *pipeline.Runner
	logger *zerolog.Logger
	config Config
	http   *http.Server
}

// New creates a new server instance with the given configuration.
func New(store *dataset.Store, loader *dataset.Loader, runner *pipeline.Runner, logger *zerolog.Logger, cfg Config) *Server {
	s := &Server{
		store:  store,
		loader: loader,
		runner: runner,
		logger: logger,
		config: cfg,
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.setupRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe serves until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.config.Addr).Msg("HTTP server listening")
	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
