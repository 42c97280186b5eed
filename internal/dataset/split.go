package dataset

import (
	"strings"

	"github.com/cedepro/oferta/pkg/normalize"
	"github.com/cedepro/oferta/pkg/provinces"
)

// NormalizeFieldToken tidies a combined "field_province" token without
// touching letters or accents: whitespace is collapsed and the " - "
// separator variant becomes a plain space.
func NormalizeFieldToken(v string) string {
	v = normalize.Clean(v)
	v = strings.ReplaceAll(v, " - ", " ")
	return normalize.Clean(v)
}

// SplitFieldProvince parses a combined token into (base field, province
// display). Only the FIRST underscore splits, so everything after it, even
// if it contains more underscores, is handed to the province resolver
// ("FIELD_SUB_PROVINCE" keeps "SUB_PROVINCE" as the raw province input).
// Tokens without an underscore return the whole token and an empty province.
func SplitFieldProvince(v string) (base, province string) {
	s := NormalizeFieldToken(v)
	if i := strings.Index(s, "_"); i >= 0 {
		return strings.TrimSpace(s[:i]), provinces.Resolve(s[i+1:])
	}
	return s, ""
}
