// Package dataset ingests the three source spreadsheets (current offerings,
// historical enrollment, graduates) into canonical in-memory tables keyed
// by diacritic-free field and province keys. A loaded Snapshot is immutable;
// reloads build a complete replacement and publish it through Store in a
// single atomic swap.
package dataset

import (
	"github.com/agentstation/utc"
)

// Offering is one currently-active degree program.
type Offering struct {
	Province    string // display
	ProvinceKey string
	Field       string // CAMPO DETALLADO display
	FieldKey    string
	Institution string
	ProgramType string
}

// Enrollment is one (program, enrollment-year) observation from the F1 file.
type Enrollment struct {
	Year          int // 0 when the source year is missing or unparseable
	Level         string
	FieldProvince string // combined "field_province" token
	FieldBase     string
	Province      string
	ProvinceKey   string
	FieldKey      string
	Total         int
}

// Graduate is one (program, graduation-year) observation derived from the
// extra titulados columns of the same F1 file. Rows whose field key would be
// empty are dropped at load time.
type Graduate struct {
	FieldProvince string
	FieldBase     string
	Province      string
	ProvinceKey   string
	FieldKey      string
	Year          int
	Total         int
}

// Snapshot is one immutable view over the three canonical tables. All
// reporting reads go against a single Snapshot; none of its slices are
// mutated after construction.
type Snapshot struct {
	Offerings  []Offering
	Enrollment []Enrollment
	Graduates  []Graduate

	OfertaPath string
	F1Path     string
	LoadedAt   utc.Time
}

// Empty returns a snapshot with zero rows in every table, used when no data
// could be loaded so the service keeps serving empty results.
func Empty() *Snapshot {
	return &Snapshot{LoadedAt: utc.Now()}
}
