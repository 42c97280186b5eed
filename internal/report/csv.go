package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// WriteComparisonCSV renders a comparison as CSV. The graduate columns are
// present only when the rows carry graduate figures, matching the JSON view:
// five columns with a cohort year, three without.
func WriteComparisonCSV(w io.Writer, rows []MergedRow) error {
	cw := csv.NewWriter(w)

	hasGraduates := false
	for _, r := range rows {
		if r.Graduates != nil {
			hasGraduates = true
			break
		}
	}

	if hasGraduates {
		if err := cw.Write([]string{"CAMPO_BASE", "OFERTA_NUM_PROGRAMAS", "TOTAL_MATRICULADOS", "TOTAL_TITULADOS", "ANIO_TITULACION"}); err != nil {
			return err
		}
		for _, r := range rows {
			grads, gradYear := "0", ""
			if r.Graduates != nil {
				grads = strconv.Itoa(*r.Graduates)
			}
			if r.GraduationYear != nil {
				gradYear = strconv.Itoa(*r.GraduationYear)
			}
			record := []string{
				r.Field,
				strconv.Itoa(r.Offerings),
				strconv.Itoa(r.Enrolled),
				grads,
				gradYear,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	} else {
		if err := cw.Write([]string{"CAMPO_BASE", "OFERTA_NUM_PROGRAMAS", "TOTAL_MATRICULADOS"}); err != nil {
			return err
		}
		for _, r := range rows {
			record := []string{r.Field, strconv.Itoa(r.Offerings), strconv.Itoa(r.Enrolled)}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ComparisonFilename names a CSV download: comparacion_{NACIONAL|prov}_{YYYYMMDD}.csv.
func ComparisonFilename(provincia string, now time.Time) string {
	scope := provincia
	if scope == "" {
		scope = "NACIONAL"
	}
	return fmt.Sprintf("comparacion_%s_%s.csv", scope, now.Format("20060102"))
}
