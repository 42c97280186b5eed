// Package handlers provides the HTTP request handlers for the reporting API.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/internal/pipeline"
)

// Handlers provides access to all HTTP handlers. Every reporting handler
// reads one snapshot from the store at the top and serves entirely from it,
// so a concurrent refresh cannot mix tables within a response.
type Handlers struct {
	store  *dataset.Store
	loader *dataset.Loader
	runner *pipeline.Runner
	logger *zerolog.Logger
}

// New creates a new Handlers instance.
func New(store *dataset.Store, loader *dataset.Loader, runner *pipeline.Runner, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		store:  store,
		loader: loader,
		runner: runner,
		logger: logger,
	}
}
