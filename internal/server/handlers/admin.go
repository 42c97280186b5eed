package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/cedepro/oferta/internal/server/response"
	"github.com/cedepro/oferta/pkg/errors"
)

// HandleRefresh handles GET /api/actualizar_oferta: runs the external
// refresh pipeline and, on success, reloads the snapshot. This is the only
// endpoint that surfaces failures as HTTP errors; reporting endpoints serve
// whatever data is loaded.
func (h *Handlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	stdout, err := h.runner.Run(r.Context())
	if err != nil {
		if stderrors.Is(err, errors.ErrNoPipeline) {
			response.JSON(w, http.StatusBadRequest, map[string]any{
				"ok":    false,
				"error": "no refresh pipeline configured",
			})
			return
		}

		var perr *errors.PipelineError
		if stderrors.As(err, &perr) {
			response.JSON(w, http.StatusInternalServerError, map[string]any{
				"ok":     false,
				"stderr": perr.Stderr,
				"stdout": perr.Stdout,
			})
			return
		}

		response.JSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	snap := h.loader.Snapshot(r.Context())
	h.store.Swap(snap)
	h.logger.Info().
		Int("offerings", len(snap.Offerings)).
		Int("enrollment", len(snap.Enrollment)).
		Int("graduates", len(snap.Graduates)).
		Msg("Snapshot reloaded after pipeline run")

	response.OK(w, map[string]any{"ok": true, "stdout": stdout})
}
