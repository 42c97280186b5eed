package report

import (
	"sort"

	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/pkg/normalize"
)

// GraduationOffset is the assumed years-to-degree: a cohort enrolling in
// year Y is compared against graduates of year Y+4.
const GraduationOffset = 4

// MergedRow is one field of the offering/enrollment/graduate comparison.
// Graduate figures appear only when a specific numeric cohort year was
// requested; otherwise both pointer fields stay nil and are omitted.
type MergedRow struct {
	Field          string `json:"campo"`
	Offerings      int    `json:"oferta"`
	Enrolled       int    `json:"matriculados"`
	Graduates      *int   `json:"titulados,omitempty"`
	GraduationYear *int   `json:"anio_titulacion,omitempty"`
}

// Compare merges the three tables into one row per canonical field key:
// current offering counts, enrollment totals under the filters, and, when a
// numeric cohort year is given, graduates of cohort+4. The union keeps
// every key that appears in any source; missing sides contribute zero.
//
// Sort policy follows the requested period: with a specific year the view is
// offering-first (oferta, matriculados, titulados descending); the
// historical view is enrollment-first (matriculados, oferta descending).
func Compare(snap *dataset.Snapshot, provincia, anio, nivel string) []MergedRow {
	ofTotals := map[string]int{}
	ofLabels := map[string]string{}
	for _, r := range OfferingsByField(snap, provincia) {
		k := normalize.Key(r.Field)
		ofTotals[k] += r.Programs
		if _, ok := ofLabels[k]; !ok {
			ofLabels[k] = r.Field
		}
	}

	maTotals := map[string]int{}
	maLabels := map[string]string{}
	for _, r := range EnrollmentByFieldBase(snap, provincia, anio, nivel) {
		k := normalize.Key(r.FieldBase)
		maTotals[k] += r.Total
		if _, ok := maLabels[k]; !ok {
			maLabels[k] = r.FieldBase
		}
	}

	tiTotals := map[string]int{}
	var gradYear *int
	if cohort, ok := yearArg(anio); ok {
		y := cohort + GraduationOffset
		gradYear = &y
		tiTotals = graduatesByCohort(snap, provincia, anio)
	}

	keySet := map[string]bool{}
	for k := range ofTotals {
		keySet[k] = true
	}
	for k := range maTotals {
		keySet[k] = true
	}
	for k := range tiTotals {
		keySet[k] = true
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := make([]MergedRow, 0, len(keys))
	for _, k := range keys {
		label := ofLabels[k]
		if label == "" {
			label = maLabels[k]
		}
		if label == "" {
			label = k
		}
		row := MergedRow{Field: label, Offerings: ofTotals[k], Enrolled: maTotals[k]}
		if gradYear != nil {
			t := tiTotals[k]
			row.Graduates = &t
			y := *gradYear
			row.GraduationYear = &y
		}
		merged = append(merged, row)
	}

	if yearRequested(anio) {
		sort.SliceStable(merged, func(i, j int) bool {
			a, b := merged[i], merged[j]
			if a.Offerings != b.Offerings {
				return a.Offerings > b.Offerings
			}
			if a.Enrolled != b.Enrolled {
				return a.Enrolled > b.Enrolled
			}
			return gradCount(a) > gradCount(b)
		})
		return merged
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Enrolled != b.Enrolled {
			return a.Enrolled > b.Enrolled
		}
		return a.Offerings > b.Offerings
	})
	return merged
}

func gradCount(r MergedRow) int {
	if r.Graduates == nil {
		return 0
	}
	return *r.Graduates
}
