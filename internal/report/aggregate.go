package report

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cedepro/oferta/internal/dataset"
	"github.com/cedepro/oferta/pkg/normalize"
)

// Provinces lists the distinct province names seen in the enrollment table,
// sorted ascending. The historical file drives the filter choices, not the
// current offering file.
func Provinces(snap *dataset.Snapshot) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range snap.Enrollment {
		if e.Province == "" || seen[e.Province] {
			continue
		}
		seen[e.Province] = true
		out = append(out, e.Province)
	}
	sort.Strings(out)
	return out
}

// Years lists the distinct enrollment years, newest first. Rows whose year
// could not be parsed carry year zero and are skipped.
func Years(snap *dataset.Snapshot) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, e := range snap.Enrollment {
		if e.Year == 0 || seen[e.Year] {
			continue
		}
		seen[e.Year] = true
		out = append(out, e.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Levels lists the distinct non-empty formation levels, sorted ascending.
func Levels(snap *dataset.Snapshot) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range snap.Enrollment {
		if e.Level == "" || seen[e.Level] {
			continue
		}
		seen[e.Level] = true
		out = append(out, e.Level)
	}
	sort.Strings(out)
	return out
}

// ProgramTypeRow is one (province, institution, program type) offering count.
// The JSON field names carry spaces and accents, which struct tags cannot
// express, so marshaling is explicit.
type ProgramTypeRow struct {
	Province    string
	Institution string
	ProgramType string
	Programs    int
}

func (r ProgramTypeRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range []struct {
		key string
		val any
	}{
		{"PROVINCIA", r.Province},
		{"INSTITUCIÓN DE EDUCACIÓN SUPERIOR", r.Institution},
		{"TIPO DE PROGRAMA", r.ProgramType},
		{"NUM_PROGRAMAS", r.Programs},
	} {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv.val)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OfferingsByProgramType counts current offerings per (province, institution,
// program type), sorted by the three labels ascending and count descending.
func OfferingsByProgramType(snap *dataset.Snapshot) []ProgramTypeRow {
	type key struct{ prov, ies, tipo string }
	counts := map[key]int{}
	for _, o := range snap.Offerings {
		counts[key{o.Province, o.Institution, o.ProgramType}]++
	}

	rows := make([]ProgramTypeRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, ProgramTypeRow{Province: k.prov, Institution: k.ies, ProgramType: k.tipo, Programs: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Province != b.Province {
			return a.Province < b.Province
		}
		if a.Institution != b.Institution {
			return a.Institution < b.Institution
		}
		if a.ProgramType != b.ProgramType {
			return a.ProgramType < b.ProgramType
		}
		return a.Programs > b.Programs
	})
	return rows
}

// FieldCountRow is one detailed-field offering count.
type FieldCountRow struct {
	Field    string `json:"CAMPO_DETALLADO"`
	Programs int    `json:"NUM_PROGRAMAS"`
}

// OfferingsByField counts current offerings per detailed field display name,
// optionally restricted to one province, sorted by count descending with
// ties in field order.
func OfferingsByField(snap *dataset.Snapshot, provincia string) []FieldCountRow {
	provKey := ""
	if provincia != "" {
		provKey = normalize.Key(provincia)
	}

	counts := map[string]int{}
	for _, o := range snap.Offerings {
		if provKey != "" && o.ProvinceKey != provKey {
			continue
		}
		counts[o.Field]++
	}

	fields := sortedKeys(counts)
	rows := make([]FieldCountRow, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, FieldCountRow{Field: f, Programs: counts[f]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Programs > rows[j].Programs })
	return rows
}

// EnrollmentRow is one base-field enrollment total.
type EnrollmentRow struct {
	FieldBase string `json:"CAMPO_BASE"`
	Total     int    `json:"TOTAL_MATRICULADOS"`
}

// EnrollmentByFieldBase sums enrollment per base field under the given
// filters, sorted by total descending with ties in field order. An empty
// provincia aggregates nationally.
func EnrollmentByFieldBase(snap *dataset.Snapshot, provincia, anio, nivel string) []EnrollmentRow {
	totals := map[string]int{}
	for _, e := range filterEnrollment(snap, provincia, anio, nivel) {
		totals[e.FieldBase] += e.Total
	}

	bases := sortedKeys(totals)
	rows := make([]EnrollmentRow, 0, len(bases))
	for _, b := range bases {
		rows = append(rows, EnrollmentRow{FieldBase: b, Total: totals[b]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// TokenRow is one combined field_province enrollment total.
type TokenRow struct {
	Token string `json:"CAMPO_DETALLADO_P"`
	Total int    `json:"TOTAL_MATRICULADOS"`
}

// EnrollmentByToken sums enrollment per full field_province token for one
// province, sorted by total descending with ties in token order.
func EnrollmentByToken(snap *dataset.Snapshot, provincia, anio, nivel string) []TokenRow {
	if provincia == "" {
		return []TokenRow{}
	}

	totals := map[string]int{}
	for _, e := range filterEnrollment(snap, provincia, anio, nivel) {
		totals[e.FieldProvince] += e.Total
	}

	tokens := sortedKeys(totals)
	rows := make([]TokenRow, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, TokenRow{Token: t, Total: totals[t]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// graduatesByCohort sums graduates per field key for the cohort's graduation
// year (cohort + 4). A missing or non-numeric cohort yields an empty map.
func graduatesByCohort(snap *dataset.Snapshot, provincia, cohort string) map[string]int {
	year, ok := yearArg(cohort)
	if !ok {
		return map[string]int{}
	}

	totals := map[string]int{}
	for _, g := range filterGraduates(snap, provincia, year+GraduationOffset) {
		totals[g.FieldKey] += g.Total
	}
	return totals
}

// TotalOfferedFields counts the distinct detailed fields currently offered,
// optionally within one province.
func TotalOfferedFields(snap *dataset.Snapshot, provincia string) int {
	provKey := ""
	if provincia != "" {
		provKey = normalize.Key(provincia)
	}
	seen := map[string]bool{}
	for _, o := range snap.Offerings {
		if provKey != "" && o.ProvinceKey != provKey {
			continue
		}
		seen[o.Field] = true
	}
	return len(seen)
}

// TotalPrograms counts offering rows, optionally within one province.
// Unlike TotalOfferedFields this counts every program, not distinct fields.
func TotalPrograms(snap *dataset.Snapshot, provincia string) int {
	provKey := ""
	if provincia != "" {
		provKey = normalize.Key(provincia)
	}
	n := 0
	for _, o := range snap.Offerings {
		if provKey != "" && o.ProvinceKey != provKey {
			continue
		}
		n++
	}
	return n
}

// TotalEnrolled sums enrollment under the given filters.
func TotalEnrolled(snap *dataset.Snapshot, provincia, anio, nivel string) int {
	total := 0
	for _, e := range filterEnrollment(snap, provincia, anio, nivel) {
		total += e.Total
	}
	return total
}

// TotalGraduates sums graduates for the cohort's graduation year. The second
// return is the graduation year, or nil when no numeric cohort was given.
func TotalGraduates(snap *dataset.Snapshot, provincia, anio string) (int, *int) {
	cohort, ok := yearArg(anio)
	if !ok {
		return 0, nil
	}
	year := cohort + GraduationOffset
	total := 0
	for _, g := range filterGraduates(snap, provincia, year) {
		total += g.Total
	}
	return total, &year
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
