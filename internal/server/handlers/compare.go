package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/cedepro/oferta/internal/report"
	"github.com/cedepro/oferta/internal/server/response"
)

// HandleCompare handles GET /api/compare?provincia=&anio=&nivel=: the
// offering/enrollment/graduate merge, one row per canonical field.
func (h *Handlers) HandleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	merged := report.Compare(h.store.Current(), q.Get("provincia"), q.Get("anio"), q.Get("nivel"))
	response.OK(w, map[string]any{"merged": merged})
}

// HandleExportCompareCSV handles GET /api/export_compare_csv: the same merge
// as a CSV download. The header has five columns when graduate figures are
// present and three otherwise.
func (h *Handlers) HandleExportCompareCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	provincia := q.Get("provincia")
	merged := report.Compare(h.store.Current(), provincia, q.Get("anio"), q.Get("nivel"))

	var buf bytes.Buffer
	if err := report.WriteComparisonCSV(&buf, merged); err != nil {
		h.logger.Error().Err(err).Msg("CSV export failed")
		response.JSON(w, http.StatusInternalServerError, map[string]any{"error": "csv export failed"})
		return
	}

	filename := report.ComparisonFilename(provincia, time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}
