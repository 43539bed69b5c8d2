package parse

import (
	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
)

// Format serializes a canonical value into the caller's textual
// representation. The result is the empty string when the value is absent,
// out of range, or missing a field the format carries, so Format and
// Parse round-trip for any value fully specified at the format's
// granularity.
func Format(v models.DateValue, displayFormat string, loc format.Locale) string {
	if v.IsZero() || displayFormat == "" || !fieldsInRange(v) {
		return ""
	}
	layout, mask := format.Layout(displayFormat)
	if mask.Has(format.MaskYear) && v.Year == nil ||
		mask.Has(format.MaskMonth) && v.Month == nil ||
		mask.Has(format.MaskDay) && v.Day == nil ||
		mask.Has(format.MaskHour) && v.Hour == nil ||
		mask.Has(format.MaskMinute) && v.Minute == nil {
		return ""
	}
	t, ok := v.Time()
	if !ok {
		// Year is absent but the format does not carry one; anchor on a
		// neutral leap year so day formatting stays well defined.
		anchored := v
		anchored.Year = new(int)
		*anchored.Year = 2000
		if t, ok = anchored.Time(); !ok {
			return ""
		}
	}
	return localize(t.Format(layout), layout, loc)
}

// fieldsInRange rejects values whose present fields cannot denote a real
// calendar position (month 13, minute 75, Feb 30, ...).
func fieldsInRange(v models.DateValue) bool {
	if v.Month != nil && (*v.Month < 0 || *v.Month > 11) {
		return false
	}
	if v.Day != nil {
		if *v.Day < 1 || *v.Day > 31 {
			return false
		}
		if v.Year != nil && v.Month != nil && *v.Day > models.DaysInMonth(*v.Year, *v.Month) {
			return false
		}
	}
	if v.Hour != nil && (*v.Hour < 0 || *v.Hour > 23) {
		return false
	}
	if v.Minute != nil && (*v.Minute < 0 || *v.Minute > 59) {
		return false
	}
	return true
}
