package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims edges", input: "  Quito  ", want: "Quito"},
		{name: "collapses interior runs", input: "EL \t ORO", want: "EL ORO"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "already clean", input: "SANTA ELENA", want: "SANTA ELENA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strips accents and uppercases", input: "Galápagos", want: "GALAPAGOS"},
		{name: "tilde n", input: "Cañar", want: "CANAR"},
		{name: "mixed whitespace", input: "  los  ríos ", want: "LOS RIOS"},
		{name: "accented field name", input: "Educación", want: "EDUCACION"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.input))
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{"Galápagos", "EL ORO", "  Educación  Técnica ", "ZAMORA CHINCHIPE", "salud"}
	for _, in := range inputs {
		once := Key(in)
		assert.Equal(t, once, Key(once), "Key must be idempotent for %q", in)
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain integer", input: "42", want: 42},
		{name: "whitespace", input: " 42 ", want: 42},
		{name: "float truncates", input: "42.9", want: 42},
		{name: "negative float truncates toward zero", input: "-3.7", want: -3},
		{name: "thousands separator", input: "1,234", want: 1234},
		{name: "digits embedded in text", input: "abc12xyz", want: 12},
		{name: "negative", input: "-15", want: -15},
		{name: "empty", input: "", want: 0},
		{name: "no digits", input: "N/A", want: 0},
		{name: "lone minus", input: "-", want: 0},
		{name: "ambiguous multiple minus", input: "1-2-3", want: 0},
		{name: "interior minus", input: "12-3", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeInt(tt.input))
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "plain year", input: "2021", want: 2021, wantOK: true},
		{name: "float year", input: "2021.0", want: 2021, wantOK: true},
		{name: "year embedded in text", input: "Periodo 2019-II", want: 2019, wantOK: true},
		{name: "nineteen hundreds", input: "1999", want: 1999, wantOK: true},
		{name: "out of range numeric", input: "3050", wantOK: false},
		{name: "too small", input: "42", wantOK: false},
		{name: "no year", input: "sin dato", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseYear(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
