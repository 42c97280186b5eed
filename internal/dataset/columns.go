package dataset

import (
	"github.com/cedepro/oferta/pkg/normalize"
)

// Candidate header lists per semantic column, most-preferred first. These
// encode the header variants observed across source file releases; exact
// matching runs first so a file that distinguishes casing keeps its intent,
// with canonical-key matching as the fallback for accent and casing drift.
var (
	ofertaProvinciaCols = []string{"PROVINCIA", "Provincia"}
	ofertaCampoCols     = []string{"CAMPO DETALLADO", "CAMPO_DETALLADO", "CAMPO_DETALLADO_P", "CAMPO DETALLADO P"}
	ofertaIESCols       = []string{"Universidad", "INSTITUCIÓN DE EDUCACIÓN SUPERIOR", "INSTITUCION DE EDUCACION SUPERIOR", "IES"}
	ofertaTipoProgCols  = []string{"TIPO DE PROGRAMA", "TIPO_PROGRAMA", "TIPO PROGRAMA", "NIVEL"}

	matAnioCols  = []string{"AÑO DE MATRICULACIÓN", "AÑO_MATRICULACIÓN", "AÑO", "ANIO", "AÑO DE MATRICULACION", "ANIO DE MATRICULACION"}
	matNivelCols = []string{"TIPO DE PROGRAMA", "NIVEL_FORMACION", "NIVEL FORMACION", "NIVEL DE FORMACIÓN", "NIVEL DE FORMACION"}
	matCampoCols = []string{"CAMPO_DETALLADO_P", "CAMPO DETALLADO P", "CAMPO DETALLADO", "CAMPO_DETALLADO"}
	matProvCols  = []string{"PROVINCIA", "Provincia"}
	matTotalCols = []string{"TOTAL_MATRICULADOS", "MATRICULADOS", "TOTAL DE MATRICULADOS", "TOTAL MATRICULADOS"}

	titCampoCols = []string{"TITULADOS_P", "TITULADOS P"}
	titAnioCols  = []string{"AÑO_DE_TITULADOS", "ANIO_DE_TITULADOS", "AÑO TITULADOS", "ANIO TITULADOS"}
	titTotalCols = []string{"TITULADOS_TOTALES", "TOTAL_TITULADOS", "TOTAL DE TITULADOS", "TITULADOS TOTALES"}
)

// findColumn resolves a semantic column against the actual header row.
// Phase one tries exact matches in candidate order; phase two compares
// canonical keys in candidate order. Returns the header index of the first
// hit, or -1 and false.
func findColumn(headers []string, candidates []string) (int, bool) {
	for _, cand := range candidates {
		for i, h := range headers {
			if h == cand {
				return i, true
			}
		}
	}
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = normalize.Key(h)
	}
	for _, cand := range candidates {
		candKey := normalize.Key(cand)
		for i, k := range keys {
			if k == candKey {
				return i, true
			}
		}
	}
	return -1, false
}
