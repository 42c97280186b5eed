package handlers

import (
	"net/http"

	"github.com/cedepro/oferta/internal/report"
	"github.com/cedepro/oferta/internal/server/response"
)

// HandleEnrollmentNational handles GET /api/matriculas_campo_base_nacional:
// enrollment per base field across all provinces, filtered by anio and nivel.
func (h *Handlers) HandleEnrollmentNational(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	response.OK(w, report.EnrollmentByFieldBase(h.store.Current(), "", q.Get("anio"), q.Get("nivel")))
}

// HandleEnrollmentByProvince handles GET /api/matriculas_campo_base_provincia.
// A missing provincia returns an empty list rather than an error.
func (h *Handlers) HandleEnrollmentByProvince(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	provincia := q.Get("provincia")
	if provincia == "" {
		response.OK(w, []report.EnrollmentRow{})
		return
	}
	response.OK(w, report.EnrollmentByFieldBase(h.store.Current(), provincia, q.Get("anio"), q.Get("nivel")))
}

// HandleEnrollmentByToken handles GET /api/matriculas_campo_full_provincia:
// enrollment per full field_province token within one province.
func (h *Handlers) HandleEnrollmentByToken(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	provincia := q.Get("provincia")
	if provincia == "" {
		response.OK(w, []report.TokenRow{})
		return
	}
	response.OK(w, report.EnrollmentByToken(h.store.Current(), provincia, q.Get("anio"), q.Get("nivel")))
}
