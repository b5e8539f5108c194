// Package dateutil formats the free-form job dates found in résumé files.
//
// Dates in the source JSON are usually ISO-like ("2021-03", "2021-03-15",
// "2021") but may be arbitrary text ("Present", "Q3 2019"); anything that does
// not parse is passed through untouched.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when a template asks for a date without a format.
const DefaultDateFormat = "MMM YYYY"

// Precision is how much of a calendar date a source value actually carries.
type Precision int

const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
)

// tokens maps user-facing tokens to Go layout fragments, longest first so the
// scan is greedy. precision is the finest unit the token prints.
var tokens = [...]struct {
	token, layout string
	precision     Precision
}{
	{"YYYY", "2006", PrecisionYear},
	{"MMMM", "January", PrecisionMonth},
	{"MMM", "Jan", PrecisionMonth},
	{"YY", "06", PrecisionYear},
	{"MM", "01", PrecisionMonth},
	{"DD", "02", PrecisionDay},
	{"M", "1", PrecisionMonth},
	{"D", "2", PrecisionDay},
}

// Presets are named shortcuts accepted wherever a format is.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"month":    "YYYY-MM",
	"short":    "MMM YYYY",
	"long":     "MMMM YYYY",
	"year":     "YYYY",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
}

// sourceLayouts are the layouts tried, in order, when reading a source date.
var sourceLayouts = []struct {
	layout    string
	precision Precision
}{
	{"2006-01-02", PrecisionDay},
	{"2006-01", PrecisionMonth},
	{"2006/01/02", PrecisionDay},
	{"2006/01", PrecisionMonth},
	{"2006", PrecisionYear},
	{time.RFC3339, PrecisionDay},
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D)
// to a Go time layout. Text in [brackets] is kept literally, other characters
// are copied as-is.
func ParseDateFormat(format string) (string, error) {
	layout, _, err := parseFormat(format)
	return layout, err
}

// parseFormat also reports the finest precision the format prints.
func parseFormat(format string) (string, Precision, error) {
	if format == "" {
		return "", 0, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", 0, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}

	var b strings.Builder
	b.Grow(len(format) + 8)
	needs := PrecisionYear

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest[1:], ']')
			if end == -1 {
				return "", 0, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1 : 1+end])
			rest = rest[end+2:]
			continue
		}

		n := 1
		lit := rest[:1]
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				n, lit = len(t.token), t.layout
				needs = max(needs, t.precision)
				break
			}
		}
		b.WriteString(lit)
		rest = rest[n:]
	}

	return b.String(), needs, nil
}

// ParseSourceDate reads a date as written in a résumé file and reports how
// precise the written value was. Returns false when value matches none of the
// accepted layouts.
func ParseSourceDate(value string) (time.Time, Precision, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, 0, false
	}
	for _, src := range sourceLayouts {
		if t, err := time.Parse(src.layout, value); err == nil {
			return t, src.precision, true
		}
	}
	return time.Time{}, 0, false
}

// FormatDate renders value with format. Values that are not dates are
// returned unchanged, and so are dates coarser than the format ("2021" under
// "MMM YYYY") since printing them would invent a month or day.
// An empty format means DefaultDateFormat.
// Returns ErrInvalidDateFormat only for a malformed format.
func FormatDate(value, format string) (string, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	layout, needs, err := parseFormat(format)
	if err != nil {
		return "", err
	}
	t, precision, ok := ParseSourceDate(value)
	if !ok {
		return value, nil
	}
	if precision < needs {
		return strings.TrimSpace(value), nil
	}
	return t.Format(layout), nil
}
