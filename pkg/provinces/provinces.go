// Package provinces resolves raw province tokens from the source spreadsheets
// to one canonical display name per province. Input arrives in three shapes:
// short codes ("SE"), known-dirty free text ("ELORO"), or text that is already
// usable. Resolution is total: unknown tokens pass through as their canonical
// form rather than being guessed at.
package provinces

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cedepro/oferta/pkg/normalize"
)

// codes maps canonical short codes to the official display name.
// Fixed at build time; sourced from the SENESCYT provincial code list.
var codes = map[string]string{
	"AZ": "AZUAY",
	"BO": "BOLÍVAR",
	"CN": "CAÑAR",
	"CR": "CARCHI",
	"CH": "CHIMBORAZO",
	"CO": "COTOPAXI",
	"EO": "EL ORO",
	"ES": "ESMERALDAS",
	"GA": "GALÁPAGOS",
	"GU": "GUAYAS",
	"IM": "IMBABURA",
	"LO": "LOJA",
	"LR": "LOS RÍOS",
	"MA": "MANABÍ",
	"MS": "MORONA SANTIAGO",
	"NA": "NAPO",
	"OR": "ORELLANA",
	"PA": "PASTAZA",
	"PI": "PICHINCHA",
	"SE": "SANTA ELENA",
	"SD": "SANTO DOMINGO DE LOS TSÁCHILAS",
	"SU": "SUCUMBÍOS",
	"TU": "TUNGURAHUA",
	"ZC": "ZAMORA CHINCHIPE",
}

// aliases maps canonical forms of known-dirty tokens (concatenations,
// missing accents on names whose display carries one) to the display name.
var aliases = map[string]string{
	"ELORO":            "EL ORO",
	"GALAPAGOS":        "GALÁPAGOS",
	"LOSRIOS":          "LOS RÍOS",
	"SANTAELENA":       "SANTA ELENA",
	"MORONASANTIAGO":   "MORONA SANTIAGO",
	"ZAMORACHINCHIPE":  "ZAMORA CHINCHIPE",
	"STO DOMINGO":      "SANTO DOMINGO DE LOS TSÁCHILAS",
	"SANTO DOMINGO":    "SANTO DOMINGO DE LOS TSÁCHILAS",
	"SANTODOMINGO":     "SANTO DOMINGO DE LOS TSÁCHILAS",
	"BOLIVAR":          "BOLÍVAR",
	"CANAR":            "CAÑAR",
	"LOS RIOS":         "LOS RÍOS",
	"MANABI":           "MANABÍ",
	"SUCUMBIOS":        "SUCUMBÍOS",
}

// Resolve maps a raw province token to its display name. Steps, each
// short-circuiting on a hit: underscore separators become spaces, the token
// is canonicalized, then looked up as a code and as a dirty alias. Unknown
// tokens return their canonical form unchanged; empty input returns "".
func Resolve(raw string) string {
	key := normalize.Key(strings.ReplaceAll(raw, "_", " "))
	if key == "" {
		return ""
	}
	if display, ok := codes[key]; ok {
		return display
	}
	if display, ok := aliases[key]; ok {
		return display
	}
	return key
}

// LoadAliases merges extra dirty-text aliases from a YAML file
// (raw token -> display name) into the built-in alias table. Keys are
// canonicalized on load. Built-in entries survive unless explicitly
// overridden. Call during startup, before any requests are served.
func LoadAliases(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read province aliases: %w", err)
	}
	extra := map[string]string{}
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("parse province aliases %s: %w", path, err)
	}
	for raw, display := range extra {
		key := normalize.Key(strings.ReplaceAll(raw, "_", " "))
		if key == "" {
			continue
		}
		aliases[key] = normalize.Clean(display)
	}
	return nil
}
