// Package normalize provides the text canonicalization primitives shared by
// every dataset in the system. Display strings keep their accents; comparison
// keys produced by Key are diacritic-free, whitespace-collapsed and uppercase,
// so two spellings of the same field or province compare equal across files
// that never shared an identifier.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean trims the string and collapses internal whitespace runs to single
// spaces. The empty string maps to itself.
func Clean(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// Key derives the canonical comparison key for a display string: cleaned,
// diacritics stripped, uppercased. Key is total and idempotent:
// Key(Key(s)) == Key(s) for every input.
func Key(s string) string {
	s = Clean(s)
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	return Clean(strings.ToUpper(stripped))
}

// SafeInt coerces dirty numeric text to an integer, never failing.
// Plain numerics (including float renderings like "123.0") truncate toward
// zero. Otherwise every rune that is not a digit or '-' is stripped before
// parsing: "12,345" parses as 12345. Anything still ambiguous after
// stripping (empty, a bare "-", more than one '-', or a '-' that is not
// leading, e.g. "1-2-3") is treated as unparseable and yields 0.
func SafeInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" || digits == "-" {
		return 0
	}
	if strings.Count(digits, "-") > 1 || strings.LastIndex(digits, "-") > 0 {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

var yearRE = regexp.MustCompile(`(19\d{2}|20\d{2})`)

// ParseYear extracts a plausible calendar year from free text. Numeric input
// must fall in [1900, 2100]; otherwise the first 19xx/20xx run in the string
// wins. The second return value reports whether a year was found.
func ParseYear(s string) (int, bool) {
	s = Clean(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		y := int(f)
		if y >= 1900 && y <= 2100 {
			return y, true
		}
		return 0, false
	}
	if m := yearRE.FindString(s); m != "" {
		y, _ := strconv.Atoi(m)
		return y, true
	}
	return 0, false
}
