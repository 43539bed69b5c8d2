// Package format resolves the caller's display-token format configuration
// into the single composite format string used by the parser, the
// serializer and the shell, and translates display tokens into Go
// reference layouts.
package format

import "strings"

// Spec is the format configuration surface. If DateTimeFormat is set it
// fully overrides the date+divider+time composition.
type Spec struct {
	DateFormat     string
	TimeFormat     string // "12" or "24"
	Divider        string
	DateTimeFormat string
}

// timeTokenTable maps the time-representation flag to its fixed time token
// string.
var timeTokenTable = map[string]string{
	"24": "HH:mm",
	"12": "hh:mm A",
}

// TimeTokens returns the token string for a time-representation flag,
// falling back to 24-hour tokens for unrecognized flags.
func TimeTokens(timeFormat string) string {
	if t, ok := timeTokenTable[timeFormat]; ok {
		return t
	}
	return timeTokenTable["24"]
}

// Resolve computes the effective composite format. Pure; callers recompute
// it whenever any part of the spec changes.
func (s Spec) Resolve() string {
	if s.DateTimeFormat != "" {
		return s.DateTimeFormat
	}
	return s.DateFormat + s.Divider + TimeTokens(s.TimeFormat)
}

// token maps one display token to its Go reference-layout fragment.
// Ordered longest-first so the scanner is greedy (MMMM before MM, etc.).
var tokens = []struct {
	display string
	layout  string
	field   FieldMask
}{
	{"YYYY", "2006", MaskYear},
	{"MMMM", "January", MaskMonth},
	{"MMM", "Jan", MaskMonth},
	{"YY", "06", MaskYear},
	{"MM", "01", MaskMonth},
	{"DD", "02", MaskDay},
	{"HH", "15", MaskHour},
	{"hh", "03", MaskHour},
	{"mm", "04", MaskMinute},
	{"M", "1", MaskMonth},
	{"D", "2", MaskDay},
	{"H", "15", MaskHour},
	{"h", "3", MaskHour},
	{"m", "4", MaskMinute},
	{"A", "PM", 0},
	{"a", "pm", 0},
}

// FieldMask records which value fields a format string carries.
type FieldMask uint8

const (
	MaskYear FieldMask = 1 << iota
	MaskMonth
	MaskDay
	MaskHour
	MaskMinute
)

// Has reports whether every bit of m is present.
func (f FieldMask) Has(m FieldMask) bool { return f&m == m }

// Layout translates a display-token format string into a Go reference
// layout and reports which fields the format carries. Characters outside
// the token grammar pass through as literals.
func Layout(displayFormat string) (string, FieldMask) {
	var b strings.Builder
	var mask FieldMask
	rest := displayFormat
	for len(rest) > 0 {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(rest, tok.display) {
				b.WriteString(tok.layout)
				mask |= tok.field
				rest = rest[len(tok.display):]
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(rest[0])
			rest = rest[1:]
		}
	}
	return b.String(), mask
}
