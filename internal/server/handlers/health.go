package handlers

import (
	"net/http"

	"github.com/cedepro/oferta/internal/server/response"
)

// HandleHealth handles GET /health (liveness probe). Row counts ride along
// so a bare curl shows whether the source files actually loaded.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Current()
	response.OK(w, map[string]any{
		"status":    "healthy",
		"service":   "oferta-api",
		"loaded_at": snap.LoadedAt,
		"tables": map[string]any{
			"oferta":       len(snap.Offerings),
			"matriculados": len(snap.Enrollment),
			"titulados":    len(snap.Graduates),
		},
	})
}

// HandleReady handles GET /ready: readiness including snapshot row counts,
// so an operator can see at a glance whether the source files loaded.
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Current()
	response.OK(w, map[string]any{
		"status":    "ready",
		"loaded_at": snap.LoadedAt,
		"tables": map[string]any{
			"oferta":       len(snap.Offerings),
			"matriculados": len(snap.Enrollment),
			"titulados":    len(snap.Graduates),
		},
	})
}
