package handlers

import (
	"net/http"

	"github.com/cedepro/oferta/internal/report"
	"github.com/cedepro/oferta/internal/server/response"
)

// HandleOfferingsByProgramType handles GET /api/oferta_tipo_programa:
// offering counts per (province, institution, program type).
func (h *Handlers) HandleOfferingsByProgramType(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, report.OfferingsByProgramType(h.store.Current()))
}

// HandleOfferingsByField handles GET /api/oferta_campo?provincia=: offering
// counts per detailed field, national when no province is given.
func (h *Handlers) HandleOfferingsByField(w http.ResponseWriter, r *http.Request) {
	provincia := r.URL.Query().Get("provincia")
	response.OK(w, report.OfferingsByField(h.store.Current(), provincia))
}
