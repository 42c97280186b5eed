package handlers

import (
	"net/http"

	"github.com/cedepro/oferta/internal/report"
	"github.com/cedepro/oferta/internal/server/response"
)

// HandleProvinces handles GET /api/provincias_list. The choices come from
// the historical enrollment file, which covers more provinces than the
// current offering file.
func (h *Handlers) HandleProvinces(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, report.Provinces(h.store.Current()))
}

// HandleYears handles GET /api/matriculas_years, newest year first.
func (h *Handlers) HandleYears(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, report.Years(h.store.Current()))
}

// HandleLevels handles GET /api/matriculas_levels.
func (h *Handlers) HandleLevels(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, report.Levels(h.store.Current()))
}
