package tui

import (
	"fmt"
	"time"

	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/picker"
	"github.com/julianstephens/datepick/internal/tui/components/grid"
)

const yearPageSize = 12

// buildCells computes the grid contents for the active mode from the
// session's render data. pageOffset shifts the visible window for the
// year grid.
func buildCells(req picker.RenderRequest, loc format.Locale, pageOffset int) (cells []grid.Cell, headers []string, columns int) {
	v := req.Value
	year, month, day, hour, minute := centerFields(v)

	switch req.Mode {
	case picker.ModeYear:
		columns = 4
		yearsOut := fullyDisabledYears(req)
		start := year - yearPageSize/2 + pageOffset*yearPageSize
		for y := start; y < start+yearPageSize; y++ {
			candidate := models.DateValue{Year: intp(y)}
			color := markedAt(req, candidate, picker.ModeYear)
			cells = append(cells, grid.Cell{
				Label:     fmt.Sprintf("%d", y),
				Value:     y,
				Disabled:  !req.Eval.Selectable(candidate) || yearsOut[y],
				Marked:    color != "",
				MarkColor: color,
				Current:   y == year,
			})
		}

	case picker.ModeMonth:
		columns = 3
		monthsOut := fullyDisabledMonths(req)
		for m := 0; m < 12; m++ {
			candidate := models.DateValue{Year: intp(year), Month: intp(m)}
			color := markedAt(req, candidate, picker.ModeMonth)
			cells = append(cells, grid.Cell{
				Label:     loc.MonthAbbrevs[m],
				Value:     m,
				Disabled:  !req.Eval.Selectable(candidate) || monthsOut[[2]int{year, m}],
				Marked:    color != "",
				MarkColor: color,
				Current:   m == month,
			})
		}

	case picker.ModeDay:
		columns = 7
		headers = loc.WeekdayAbbrev[:]
		first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < int(first.Weekday()); i++ {
			cells = append(cells, grid.Cell{Label: "  ", Blank: true})
		}
		for d := 1; d <= models.DaysInMonth(year, month); d++ {
			candidate := models.NewDate(year, month, d)
			color := markedAt(req, candidate, picker.ModeDay)
			cells = append(cells, grid.Cell{
				Label:     fmt.Sprintf("%2d", d),
				Value:     d,
				Disabled:  !req.Eval.Selectable(candidate),
				Marked:    color != "",
				MarkColor: color,
				Current:   d == day,
			})
		}

	case picker.ModeHour:
		columns = 6
		for h := 0; h < 24; h++ {
			candidate := models.DateValue{
				Year: intp(year), Month: intp(month), Day: intp(day), Hour: intp(h),
			}
			cells = append(cells, grid.Cell{
				Label:    fmt.Sprintf("%02d", h),
				Value:    h,
				Disabled: !req.Eval.Selectable(candidate),
				Current:  h == hour,
			})
		}

	case picker.ModeMinute:
		columns = 10
		for min := 0; min < 60; min++ {
			candidate := models.DateValue{
				Year: intp(year), Month: intp(month), Day: intp(day),
				Hour: intp(hour), Minute: intp(min),
			}
			cells = append(cells, grid.Cell{
				Label:    fmt.Sprintf("%02d", min),
				Value:    min,
				Disabled: !req.Eval.Selectable(candidate),
				Current:  min == minute,
			})
		}
	}
	return cells, headers, columns
}

func intp(v int) *int { return &v }

// centerFields extracts the fields the grids center on, defaulting absent
// ones to the current date.
func centerFields(v models.DateValue) (year, month, day, hour, minute int) {
	now := time.Now()
	year, month, day, hour, minute = now.Year(), int(now.Month())-1, now.Day(), now.Hour(), now.Minute()
	if v.Year != nil {
		year = *v.Year
	}
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
	return
}

// markedAt returns the mark color applying to a candidate at the given
// granularity, or "" when unmarked. A mark matches a coarser cell when it
// falls inside it (a marked day highlights its month and year).
func markedAt(req picker.RenderRequest, candidate models.DateValue, mode picker.Mode) string {
	for _, mk := range req.Marked {
		if fieldMatch(mk.Value.Year, candidate.Year) &&
			(mode == picker.ModeYear ||
				fieldMatch(mk.Value.Month, candidate.Month) &&
					(mode == picker.ModeMonth || fieldMatch(mk.Value.Day, candidate.Day))) {
			return mk.Color
		}
	}
	return ""
}

func fieldMatch(a, b *int) bool {
	return a != nil && b != nil && *a == *b
}

func fullyDisabledMonths(req picker.RenderRequest) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for _, ym := range req.Eval.MonthsFullyDisabled() {
		out[[2]int{ym.Year, ym.Month}] = true
	}
	return out
}

func fullyDisabledYears(req picker.RenderRequest) map[int]bool {
	out := make(map[int]bool)
	for _, y := range req.Eval.YearsFullyDisabled() {
		out[y] = true
	}
	return out
}
