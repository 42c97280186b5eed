package handlers

import (
	"net/http"

	"github.com/cedepro/oferta/internal/report"
	"github.com/cedepro/oferta/internal/server/response"
)

// HandleTotalOfferings handles GET /api/total_oferta_provincia: the count of
// distinct detailed fields currently offered, optionally per province.
func (h *Handlers) HandleTotalOfferings(w http.ResponseWriter, r *http.Request) {
	provincia := r.URL.Query().Get("provincia")
	response.OK(w, map[string]any{
		"total_oferta": report.TotalOfferedFields(h.store.Current(), provincia),
	})
}

// HandleTotalEnrolled handles GET /api/total_matriculados_provincia.
func (h *Handlers) HandleTotalEnrolled(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	total := report.TotalEnrolled(h.store.Current(), q.Get("provincia"), q.Get("anio"), q.Get("nivel"))
	response.OK(w, map[string]any{"total_matriculados": total})
}

// HandleTotalGraduates handles GET /api/total_titulados_provincia. The anio
// parameter is the enrollment cohort; graduates are counted at cohort+4.
// Without a numeric cohort the total is zero and anio_titulacion is null.
func (h *Handlers) HandleTotalGraduates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	total, gradYear := report.TotalGraduates(h.store.Current(), q.Get("provincia"), q.Get("anio"))
	response.OK(w, map[string]any{
		"total_titulados": total,
		"anio_titulacion": gradYear,
	})
}

// HandleTotalPrograms handles GET /api/total_carreras_provincia: every
// offered program counts, not just distinct fields.
func (h *Handlers) HandleTotalPrograms(w http.ResponseWriter, r *http.Request) {
	provincia := r.URL.Query().Get("provincia")
	response.OK(w, map[string]any{
		"total_carreras": report.TotalPrograms(h.store.Current(), provincia),
	})
}
