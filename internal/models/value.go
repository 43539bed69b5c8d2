package models

import "time"

// DateValue is the canonical in-memory representation of a date/time
// selection. Every field is optional; a value with all fields absent means
// "no value". Month is 0-based (January = 0) to match the selection grids.
//
// Values are snapshots: mutating operations return a new DateValue instead
// of modifying the receiver.
type DateValue struct {
	Year   *int `json:"year,omitempty"`
	Month  *int `json:"month,omitempty"`
	Day    *int `json:"day,omitempty"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`
}

func intp(v int) *int { return &v }

// NewDate builds a date-only value. Month is 0-based.
func NewDate(year, month, day int) DateValue {
	return DateValue{Year: intp(year), Month: intp(month), Day: intp(day)}
}

// NewDateTime builds a fully specified value. Month is 0-based.
func NewDateTime(year, month, day, hour, minute int) DateValue {
	v := NewDate(year, month, day)
	v.Hour = intp(hour)
	v.Minute = intp(minute)
	return v
}

// FromTime converts a time.Time into a fully specified DateValue.
func FromTime(t time.Time) DateValue {
	return NewDateTime(t.Year(), int(t.Month())-1, t.Day(), t.Hour(), t.Minute())
}

// IsZero reports whether no field is set.
func (v DateValue) IsZero() bool {
	return v.Year == nil && v.Month == nil && v.Day == nil && v.Hour == nil && v.Minute == nil
}

// HasDate reports whether year, month and day are all present.
func (v DateValue) HasDate() bool {
	return v.Year != nil && v.Month != nil && v.Day != nil
}

// HasTime reports whether hour and minute are both present.
func (v DateValue) HasTime() bool {
	return v.Hour != nil && v.Minute != nil
}

// Time converts v to a time.Time. Absent fields default to the earliest
// in-range unit (January, day 1, midnight); ok is false when the year is
// absent, since no meaningful instant exists without one.
func (v DateValue) Time() (time.Time, bool) {
	if v.Year == nil {
		return time.Time{}, false
	}
	month, day, hour, minute := 0, 1, 0, 0
	if v.Month != nil {
		month = *v.Month
	}
	if v.Day != nil {
		day = *v.Day
	}
	if v.Hour != nil {
		hour = *v.Hour
	}
	if v.Minute != nil {
		minute = *v.Minute
	}
	return time.Date(*v.Year, time.Month(month+1), day, hour, minute, 0, 0, time.UTC), true
}

// WithField returns a copy of v with one field replaced. Setting the month
// clamps an already-chosen day into the new month's length.
func (v DateValue) WithField(f Field, value int) DateValue {
	out := v
	switch f {
	case FieldYear:
		out.Year = intp(value)
	case FieldMonth:
		out.Month = intp(value)
	case FieldDay:
		out.Day = intp(value)
	case FieldHour:
		out.Hour = intp(value)
	case FieldMinute:
		out.Minute = intp(value)
	}
	if out.Year != nil && out.Month != nil && out.Day != nil {
		out.Day = intp(ClampDay(*out.Year, *out.Month, *out.Day))
	}
	return out
}

// Field identifies one settable component of a DateValue.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
)

// Merge overlays the present fields of over onto base, field by field.
func Merge(base, over DateValue) DateValue {
	out := base
	if over.Year != nil {
		out.Year = over.Year
	}
	if over.Month != nil {
		out.Month = over.Month
	}
	if over.Day != nil {
		out.Day = over.Day
	}
	if over.Hour != nil {
		out.Hour = over.Hour
	}
	if over.Minute != nil {
		out.Minute = over.Minute
	}
	return out
}

// Compare orders two values by calendar position, most significant field
// first. A field absent on either side compares equal at that position, so
// comparison is granularity-aware: a month-level value sits "inside" any
// bound that only constrains finer fields.
func Compare(a, b DateValue) int {
	for _, pair := range [][2]*int{
		{a.Year, b.Year},
		{a.Month, b.Month},
		{a.Day, b.Day},
		{a.Hour, b.Hour},
		{a.Minute, b.Minute},
	} {
		if pair[0] == nil || pair[1] == nil {
			continue
		}
		if *pair[0] < *pair[1] {
			return -1
		}
		if *pair[0] > *pair[1] {
			return 1
		}
	}
	return 0
}

// Equal reports whether both values have the same fields present with the
// same contents. Unlike Compare, an absent field is not a wildcard here.
func Equal(a, b DateValue) bool {
	eq := func(x, y *int) bool {
		if x == nil || y == nil {
			return x == nil && y == nil
		}
		return *x == *y
	}
	return eq(a.Year, b.Year) && eq(a.Month, b.Month) && eq(a.Day, b.Day) &&
		eq(a.Hour, b.Hour) && eq(a.Minute, b.Minute)
}

// DaysInMonth returns the number of days of a 0-based month.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay forces day into the valid range for the given year/month.
func ClampDay(year, month, day int) int {
	if day < 1 {
		return 1
	}
	if max := DaysInMonth(year, month); day > max {
		return max
	}
	return day
}
