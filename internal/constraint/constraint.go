// Package constraint normalizes the caller's disabled/marked configuration
// and evaluates selectability of candidate values against bounds and the
// disabled set.
package constraint

import (
	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
)

// Bounds limits selectable values on either side. A zero Min or Max means
// unbounded on that side.
type Bounds struct {
	Min models.DateValue
	Max models.DateValue
}

// Valid reports whether Min <= Max when both are present.
func (b Bounds) Valid() bool {
	if b.Min.IsZero() || b.Max.IsZero() {
		return true
	}
	return models.Compare(b.Min, b.Max) <= 0
}

// Contains reports whether v lies inside the bounds. Comparison is
// granularity-aware, so a month candidate is in bounds as long as the
// month overlaps the bounded window.
func (b Bounds) Contains(v models.DateValue) bool {
	if !b.Min.IsZero() && models.Compare(v, b.Min) < 0 {
		return false
	}
	if !b.Max.IsZero() && models.Compare(v, b.Max) > 0 {
		return false
	}
	return true
}

// Normalize turns a raw disabled/marked input (one value or many) into a
// canonical set. Unparseable entries are dropped, consistent with the
// parser's leniency policy. Normalizing an already-normalized set is a
// no-op.
func Normalize(raw models.RawValue, displayFormat string, loc format.Locale) []models.DateValue {
	return parse.ParseAll(raw, displayFormat, loc)
}

// NormalizeMarked is Normalize plus the rendering-hint color carried by
// marked values.
func NormalizeMarked(raw models.RawValue, color, displayFormat string, loc format.Locale) []models.MarkedValue {
	values := parse.ParseAll(raw, displayFormat, loc)
	out := make([]models.MarkedValue, 0, len(values))
	for _, v := range values {
		out = append(out, models.MarkedValue{Value: v, Color: color})
	}
	return out
}

// covers reports whether a disabled entry applies to a candidate: every
// field the entry specifies must be present and equal on the candidate.
// A coarser entry (a whole month) covers all finer candidates within it; a
// finer entry (a single day) never blocks its enclosing month.
func covers(entry, candidate models.DateValue) bool {
	match := func(e, c *int) bool {
		if e == nil {
			return true
		}
		return c != nil && *e == *c
	}
	return match(entry.Year, candidate.Year) &&
		match(entry.Month, candidate.Month) &&
		match(entry.Day, candidate.Day) &&
		match(entry.Hour, candidate.Hour) &&
		match(entry.Minute, candidate.Minute)
}

// Evaluator answers selectability questions for one resolved configuration.
type Evaluator struct {
	Bounds   Bounds
	Disabled []models.DateValue
}

// Selectable reports whether a candidate may be confirmed: inside bounds
// and not covered by any disabled entry.
func (e Evaluator) Selectable(candidate models.DateValue) bool {
	if !e.Bounds.Contains(candidate) {
		return false
	}
	for _, entry := range e.Disabled {
		if covers(entry, candidate) {
			return false
		}
	}
	return true
}

// YearMonth identifies one month of one year (0-based month).
type YearMonth struct {
	Year  int
	Month int
}

// MonthsFullyDisabled derives the months in which no day remains
// selectable, for graying out cells in the month picker. Only months the
// disabled set touches are candidates; months excluded purely by bounds
// are the bounds check's concern. Widening the bounds can only shrink this
// set; adding disabled entries can only grow it.
func (e Evaluator) MonthsFullyDisabled() []YearMonth {
	seen := make(map[YearMonth]bool)
	var order []YearMonth
	for _, entry := range e.Disabled {
		if entry.Year == nil || entry.Month == nil {
			continue
		}
		ym := YearMonth{Year: *entry.Year, Month: *entry.Month}
		if !seen[ym] {
			seen[ym] = true
			order = append(order, ym)
		}
	}

	var out []YearMonth
	for _, ym := range order {
		if e.monthExhausted(ym.Year, ym.Month) {
			out = append(out, ym)
		}
	}
	return out
}

// YearsFullyDisabled is the same derivation one level up: a year is fully
// disabled when every month the calendar offers for it is exhausted.
func (e Evaluator) YearsFullyDisabled() []int {
	seen := make(map[int]bool)
	var order []int
	for _, entry := range e.Disabled {
		if entry.Year == nil {
			continue
		}
		if !seen[*entry.Year] {
			seen[*entry.Year] = true
			order = append(order, *entry.Year)
		}
	}

	var out []int
	for _, year := range order {
		exhausted := true
		for month := 0; month < 12; month++ {
			if !e.monthExhausted(year, month) {
				exhausted = false
				break
			}
		}
		if exhausted {
			out = append(out, year)
		}
	}
	return out
}

// monthExhausted reports whether no day of the month is selectable once
// bounds and the disabled set are combined.
func (e Evaluator) monthExhausted(year, month int) bool {
	for day := 1; day <= models.DaysInMonth(year, month); day++ {
		if e.Selectable(models.NewDate(year, month, day)) {
			return false
		}
	}
	return true
}
