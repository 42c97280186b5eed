package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/cedepro/oferta/internal/config"
	"github.com/cedepro/oferta/pkg/errors"
	"github.com/cedepro/oferta/pkg/normalize"
	"github.com/cedepro/oferta/pkg/provinces"
)

// Filename keyword hints used when the configured file is missing and the
// data directory has to be searched for a renamed export.
var (
	ofertaKeywords = []string{"vigente", "f_1_vigente", "f1_vigente", "oferta"}
	f1Keywords     = []string{"matriculados", "f_1_matriculados", "f1_matriculados", "f1"}
)

// Loader resolves and reads the source spreadsheets into a Snapshot.
// Every failure mode degrades to an empty table: the loader logs and keeps
// going so the service always has a servable (possibly empty) snapshot.
type Loader struct {
	cfg    *config.Config
	logger *zerolog.Logger
	client *http.Client
}

// NewLoader creates a loader for the given configuration.
func NewLoader(cfg *config.Config, logger *zerolog.Logger) *Loader {
	return &Loader{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Snapshot runs a full ingestion and returns the resulting snapshot.
// It never returns an error: tables that cannot be located or read are
// empty in the result.
func (l *Loader) Snapshot(ctx context.Context) *Snapshot {
	snap := &Snapshot{LoadedAt: utc.Now()}

	snap.OfertaPath = l.locate(ctx, l.cfg.OfertaPath, l.cfg.OfertaURL, config.DefaultOfertaFilename, ofertaKeywords)
	headers, rows, err := readSheet(snap.OfertaPath)
	if err != nil {
		l.logger.Error().Err(errors.NewLoadError("oferta", snap.OfertaPath, err)).
			Msg("Oferta vigente unavailable; serving empty table")
	} else {
		snap.Offerings = loadOfferings(headers, rows)
		l.logger.Info().Int("rows", len(snap.Offerings)).Str("path", snap.OfertaPath).
			Msg("Oferta vigente loaded")
	}

	snap.F1Path = l.locate(ctx, l.cfg.F1Path, l.cfg.F1URL, config.DefaultF1Filename, f1Keywords)
	headers, rows, err = readSheet(snap.F1Path)
	if err != nil {
		l.logger.Error().Err(errors.NewLoadError("matriculados", snap.F1Path, err)).
			Msg("F1 unavailable; serving empty enrollment and graduate tables")
		return snap
	}

	snap.Enrollment = loadEnrollment(headers, rows)
	l.logger.Info().Int("rows", len(snap.Enrollment)).Str("path", snap.F1Path).
		Msg("Matriculados loaded")

	graduates, ok := loadGraduates(headers, rows)
	if !ok {
		l.logger.Warn().Str("path", snap.F1Path).
			Msg("Titulados columns incomplete; serving empty graduate table")
	} else {
		snap.Graduates = graduates
		l.logger.Info().Int("rows", len(snap.Graduates)).Msg("Titulados loaded")
	}

	return snap
}

// locate resolves the physical file for one table: an existing configured
// path wins; otherwise a configured remote URL is fetched into the data dir;
// otherwise the data dir is searched for a spreadsheet whose name matches
// the keyword hints. An exact default-filename match wins outright; ties in
// keyword score keep the preferred path.
func (l *Loader) locate(ctx context.Context, preferred, url, defaultName string, keywords []string) string {
	if fileExists(preferred) {
		return preferred
	}

	if url != "" {
		if err := l.fetch(ctx, url, preferred); err != nil {
			l.logger.Warn().Err(err).Str("url", url).Msg("Remote fetch failed")
		} else {
			l.logger.Info().Str("url", url).Str("path", preferred).Msg("Fetched source file")
			return preferred
		}
	}

	entries, err := os.ReadDir(l.cfg.DataDir)
	if err != nil {
		return preferred
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return preferred
	}

	for _, name := range names {
		if strings.EqualFold(name, defaultName) {
			return filepath.Join(l.cfg.DataDir, name)
		}
	}

	best, bestScore := "", 0
	for _, name := range names {
		lower := strings.ToLower(name)
		score := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	if best != "" {
		return filepath.Join(l.cfg.DataDir, best)
	}
	return preferred
}

// fetch downloads url into path, creating the parent directory as needed.
func (l *Loader) fetch(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return err
	}
	return out.Close()
}

// readSheet reads the first sheet of an .xlsx file as a cleaned header row
// plus data rows padded to the header width.
func readSheet(path string) (headers []string, rows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, errors.New("sheet is empty")
	}

	headers = make([]string, len(all[0]))
	for i, h := range all[0] {
		headers[i] = normalize.Clean(h)
	}
	for _, raw := range all[1:] {
		row := make([]string, len(headers))
		for i := range headers {
			if i < len(raw) {
				row[i] = raw[i]
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// cell returns the trimmed value of column idx, or "" for undetected columns.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func loadOfferings(headers []string, rows [][]string) []Offering {
	provIdx, _ := findColumn(headers, ofertaProvinciaCols)
	campoIdx, _ := findColumn(headers, ofertaCampoCols)
	iesIdx, _ := findColumn(headers, ofertaIESCols)
	tipoIdx, _ := findColumn(headers, ofertaTipoProgCols)

	offerings := make([]Offering, 0, len(rows))
	for _, row := range rows {
		province := provinces.Resolve(cell(row, provIdx))
		field := normalize.Clean(cell(row, campoIdx))
		offerings = append(offerings, Offering{
			Province:    province,
			ProvinceKey: normalize.Key(province),
			Field:       field,
			FieldKey:    normalize.Key(field),
			Institution: normalize.Clean(cell(row, iesIdx)),
			ProgramType: normalize.Clean(cell(row, tipoIdx)),
		})
	}
	return offerings
}

func loadEnrollment(headers []string, rows [][]string) []Enrollment {
	anioIdx, _ := findColumn(headers, matAnioCols)
	nivelIdx, _ := findColumn(headers, matNivelCols)
	campoIdx, _ := findColumn(headers, matCampoCols)
	provIdx, _ := findColumn(headers, matProvCols)
	totalIdx, _ := findColumn(headers, matTotalCols)

	// The combined token column decides the province encoding for the whole
	// file: if any row already carries an underscore the tokens are trusted
	// uniformly; only a file with no underscores at all gets tokens
	// synthesized from the separate province column.
	tokens := make([]string, len(rows))
	hasUnderscore := false
	for i, row := range rows {
		tokens[i] = NormalizeFieldToken(cell(row, campoIdx))
		if strings.Contains(tokens[i], "_") {
			hasUnderscore = true
		}
	}
	if !hasUnderscore {
		for i, row := range rows {
			province := provinces.Resolve(cell(row, provIdx))
			tokens[i] = NormalizeFieldToken(tokens[i] + "_" + province)
		}
	}

	enrollment := make([]Enrollment, 0, len(rows))
	for i, row := range rows {
		base, province := SplitFieldProvince(tokens[i])
		year, _ := normalize.ParseYear(cell(row, anioIdx))
		enrollment = append(enrollment, Enrollment{
			Year:          year,
			Level:         normalize.Clean(cell(row, nivelIdx)),
			FieldProvince: tokens[i],
			FieldBase:     base,
			Province:      province,
			ProvinceKey:   normalize.Key(province),
			FieldKey:      normalize.Key(base),
			Total:         normalize.SafeInt(cell(row, totalIdx)),
		})
	}
	return enrollment
}

// loadGraduates derives the graduate table from the extra titulados columns
// of the F1 file. All three columns must be present; otherwise the table is
// reported as unavailable. Rows without a resolvable field are dropped;
// they cannot contribute to any aggregate.
func loadGraduates(headers []string, rows [][]string) ([]Graduate, bool) {
	campoIdx, campoOK := findColumn(headers, titCampoCols)
	anioIdx, anioOK := findColumn(headers, titAnioCols)
	totalIdx, totalOK := findColumn(headers, titTotalCols)
	if !campoOK || !anioOK || !totalOK {
		return nil, false
	}

	graduates := make([]Graduate, 0, len(rows))
	for _, row := range rows {
		token := NormalizeFieldToken(cell(row, campoIdx))
		base, province := SplitFieldProvince(token)
		fieldKey := normalize.Key(base)
		if fieldKey == "" {
			continue
		}
		year, _ := normalize.ParseYear(cell(row, anioIdx))
		graduates = append(graduates, Graduate{
			FieldProvince: token,
			FieldBase:     base,
			Province:      province,
			ProvinceKey:   normalize.Key(province),
			FieldKey:      fieldKey,
			Year:          year,
			Total:         normalize.SafeInt(cell(row, totalIdx)),
		})
	}
	return graduates, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
