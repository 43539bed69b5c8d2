// Package parse converts between textual values and canonical DateValues
// under a display format and locale. Every entry point is total: failures
// yield the absent value, never an error or panic.
package parse

import (
	"strings"
	"time"

	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
)

// Parse resolves a raw caller value into at most one canonical value.
// ok is false when the input is absent or does not match the format
// exactly; extra or missing characters are a rejection, not a partial
// accept.
func Parse(raw models.RawValue, displayFormat string, loc format.Locale) (models.DateValue, bool) {
	switch raw.Kind {
	case models.RawEmpty:
		return models.DateValue{}, false
	case models.RawSingleText:
		return parseText(raw.Text, displayFormat, loc)
	case models.RawTextList:
		// Single-value context: first element that parses wins.
		for _, s := range raw.List {
			if v, ok := parseText(s, displayFormat, loc); ok {
				return v, ok
			}
		}
		return models.DateValue{}, false
	case models.RawStructured:
		// Already canonical; passed through field by field, no reformat.
		return raw.Value, !raw.Value.IsZero()
	}
	return models.DateValue{}, false
}

// ParseAll resolves a raw value into the set of all successfully parsed
// values. Elements that fail to parse are dropped silently.
func ParseAll(raw models.RawValue, displayFormat string, loc format.Locale) []models.DateValue {
	switch raw.Kind {
	case models.RawEmpty:
		return nil
	case models.RawSingleText:
		if v, ok := parseText(raw.Text, displayFormat, loc); ok {
			return []models.DateValue{v}
		}
		return nil
	case models.RawTextList:
		var out []models.DateValue
		for _, s := range raw.List {
			if v, ok := parseText(s, displayFormat, loc); ok {
				out = append(out, v)
			}
		}
		return out
	case models.RawStructured:
		if raw.Value.IsZero() {
			return nil
		}
		return []models.DateValue{raw.Value}
	}
	return nil
}

func parseText(s, displayFormat string, loc format.Locale) (models.DateValue, bool) {
	s = strings.TrimSpace(s)
	if s == "" || displayFormat == "" {
		return models.DateValue{}, false
	}
	layout, mask := format.Layout(displayFormat)
	t, err := time.Parse(layout, delocalize(s, layout, loc))
	if err != nil {
		return models.DateValue{}, false
	}

	// Only fields the format actually carries end up set; a date-only
	// format leaves hour/minute absent rather than zero.
	full := models.FromTime(t)
	var v models.DateValue
	if mask.Has(format.MaskYear) {
		v.Year = full.Year
	}
	if mask.Has(format.MaskMonth) {
		v.Month = full.Month
	}
	if mask.Has(format.MaskDay) {
		v.Day = full.Day
	}
	if mask.Has(format.MaskHour) {
		v.Hour = full.Hour
	}
	if mask.Has(format.MaskMinute) {
		v.Minute = full.Minute
	}
	return v, true
}

// delocalize rewrites localized month names to the English names the Go
// layout grammar understands. The rewrite follows the layout's own month
// token: only the matching name table applies, since some locales reuse a
// full name as its abbreviation (fr "mars", "mai") and a blind full-name
// pass would turn an abbreviated value into text the short token rejects.
func delocalize(s, layout string, loc format.Locale) string {
	if loc.ID == "en" {
		return s
	}
	eng := format.LocaleFor("en")
	switch {
	case strings.Contains(layout, "January"):
		for i, name := range loc.Months {
			s = strings.ReplaceAll(s, name, eng.Months[i])
		}
	case strings.Contains(layout, "Jan"):
		for i, name := range loc.MonthAbbrevs {
			s = strings.ReplaceAll(s, name, eng.MonthAbbrevs[i])
		}
	}
	return s
}

// localize is the inverse rewrite applied after formatting.
func localize(s, layout string, loc format.Locale) string {
	if loc.ID == "en" {
		return s
	}
	eng := format.LocaleFor("en")
	switch {
	case strings.Contains(layout, "January"):
		for i, name := range eng.Months {
			s = strings.ReplaceAll(s, name, loc.Months[i])
		}
	case strings.Contains(layout, "Jan"):
		for i, name := range eng.MonthAbbrevs {
			s = strings.ReplaceAll(s, name, loc.MonthAbbrevs[i])
		}
	}
	return s
}
