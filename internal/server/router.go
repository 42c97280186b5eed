package server

import (
	"net/http"

	"github.com/cedepro/oferta/internal/server/handlers"
	"github.com/cedepro/oferta/internal/server/middleware"
	"github.com/cedepro/oferta/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.store, s.loader, s.runner, s.logger)
	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes. The /api paths mirror the
// dashboard the service was built for, so the route names stay in Spanish.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc("/ready", h.HandleReady)

	// Filter choice lists
	mux.HandleFunc("/api/provincias_list", get(h.HandleProvinces))
	mux.HandleFunc("/api/matriculas_years", get(h.HandleYears))
	mux.HandleFunc("/api/matriculas_levels", get(h.HandleLevels))

	// Current offering
	mux.HandleFunc("/api/oferta_tipo_programa", get(h.HandleOfferingsByProgramType))
	mux.HandleFunc("/api/oferta_campo", get(h.HandleOfferingsByField))

	// Historical enrollment
	mux.HandleFunc("/api/matriculas_campo_base_nacional", get(h.HandleEnrollmentNational))
	mux.HandleFunc("/api/matriculas_campo_base_provincia", get(h.HandleEnrollmentByProvince))
	mux.HandleFunc("/api/matriculas_campo_full_provincia", get(h.HandleEnrollmentByToken))

	// Comparison
	mux.HandleFunc("/api/compare", get(h.HandleCompare))
	mux.HandleFunc("/api/export_compare_csv", get(h.HandleExportCompareCSV))

	// Badge totals
	mux.HandleFunc("/api/total_oferta_provincia", get(h.HandleTotalOfferings))
	mux.HandleFunc("/api/total_matriculados_provincia", get(h.HandleTotalEnrolled))
	mux.HandleFunc("/api/total_titulados_provincia", get(h.HandleTotalGraduates))
	mux.HandleFunc("/api/total_carreras_provincia", get(h.HandleTotalPrograms))

	// Admin
	mux.HandleFunc("/api/actualizar_oferta", get(h.HandleRefresh))
}

// applyMiddleware wraps handler with the middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	if s.config.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(s.config.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = s.config.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// get restricts a handler to the GET method.
func get(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h(w, r)
	}
}
