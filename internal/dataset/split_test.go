package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFieldProvince(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantBase     string
		wantProvince string
	}{
		{name: "simple token", input: "EDUCACION_GUAYAS", wantBase: "EDUCACION", wantProvince: "GUAYAS"},
		{name: "province code after underscore", input: "SALUD_SE", wantBase: "SALUD", wantProvince: "SANTA ELENA"},
		{name: "dirty province after underscore", input: "SALUD_ELORO", wantBase: "SALUD", wantProvince: "EL ORO"},
		{
			name:  "only first underscore splits",
			input: "TECNOLOGIAS_DE_LA_INFORMACION",
			// The remainder is handed to the resolver as-is, underscores and
			// all; an unknown remainder comes back canonicalized.
			wantBase:     "TECNOLOGIAS",
			wantProvince: "DE LA INFORMACION",
		},
		{name: "remainder resolves as province", input: "AGRO_LOS_RIOS", wantBase: "AGRO", wantProvince: "LOS RÍOS"},
		{name: "no underscore", input: "EDUCACION", wantBase: "EDUCACION", wantProvince: ""},
		{name: "dash separator variant collapses", input: "SALUD - BIENESTAR_AZUAY", wantBase: "SALUD BIENESTAR", wantProvince: "AZUAY"},
		{name: "empty", input: "", wantBase: "", wantProvince: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, province := SplitFieldProvince(tt.input)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantProvince, province)
		})
	}
}

func TestNormalizeFieldToken(t *testing.T) {
	assert.Equal(t, "SALUD BIENESTAR_GUAYAS", NormalizeFieldToken("  SALUD - BIENESTAR_GUAYAS "))
	assert.Equal(t, "A B", NormalizeFieldToken("A   -   B"))
}
