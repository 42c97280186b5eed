// Package report computes the served views over a dataset snapshot:
// filter-driven aggregations per table, the offering/enrollment/graduate
// comparison merge, and its CSV export.
package report

import (
	"strconv"
	"strings"

	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/pkg/normalize"
)

// yearArg interprets the anio query parameter. Empty, "ALL" (any casing) and
// non-numeric values all mean "no year filter"; the original UI sends "ALL"
// explicitly for the historical view.
func yearArg(anio string) (int, bool) {
	anio = strings.TrimSpace(anio)
	if anio == "" || strings.EqualFold(anio, "ALL") {
		return 0, false
	}
	year, err := strconv.Atoi(anio)
	if err != nil {
		return 0, false
	}
	return year, true
}

// yearRequested reports whether the anio parameter names a specific period,
// numeric or not. The comparison sort policy keys off this, while the
// graduate lookup additionally needs the value to be numeric.
func yearRequested(anio string) bool {
	anio = strings.TrimSpace(anio)
	return anio != "" && !strings.EqualFold(anio, "ALL")
}

// filterEnrollment narrows the enrollment table by province key, enrollment
// year and formation level. Unset parameters do not filter; a non-numeric
// year is ignored rather than rejected.
func filterEnrollment(snap *dataset.Snapshot, provincia, anio, nivel string) []dataset.Enrollment {
	provKey := ""
	if provincia != "" {
		provKey = normalize.Key(provincia)
	}
	year, hasYear := yearArg(anio)
	level := normalize.Clean(nivel)

	var out []dataset.Enrollment
	for _, e := range snap.Enrollment {
		if provKey != "" && e.ProvinceKey != provKey {
			continue
		}
		if hasYear && e.Year != year {
			continue
		}
		if level != "" && e.Level != level {
			continue
		}
		out = append(out, e)
	}
	return out
}

// filterGraduates narrows the graduate table by province key and exact
// graduation year. Year zero means no year filter.
func filterGraduates(snap *dataset.Snapshot, provincia string, year int) []dataset.Graduate {
	provKey := ""
	if provincia != "" {
		provKey = normalize.Key(provincia)
	}

	var out []dataset.Graduate
	for _, g := range snap.Graduates {
		if provKey != "" && g.ProvinceKey != provKey {
			continue
		}
		if year != 0 && g.Year != year {
			continue
		}
		out = append(out, g)
	}
	return out
}
