package tui

import (
	"testing"

	"github.com/julianstephens/datepick/internal/constraint"
	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/picker"
)

var en = format.LocaleFor("en")

func dayRequest(value models.DateValue, eval constraint.Evaluator) picker.RenderRequest {
	return picker.RenderRequest{Mode: picker.ModeDay, Value: value, Eval: eval}
}

func TestBuildCells_DayGridShape(t *testing.T) {
	// March 2024 starts on a Friday.
	req := dayRequest(models.NewDate(2024, 2, 5), constraint.Evaluator{})
	cells, headers, columns := buildCells(req, en, 0)

	if columns != 7 {
		t.Errorf("columns = %d, want 7", columns)
	}
	if len(headers) != 7 || headers[0] != "Sun" {
		t.Errorf("headers = %v", headers)
	}

	blanks := 0
	for _, c := range cells {
		if c.Blank {
			blanks++
		} else {
			break
		}
	}
	if blanks != 5 {
		t.Errorf("leading blanks = %d, want 5 (March 2024 starts Friday)", blanks)
	}
	if len(cells) != blanks+31 {
		t.Errorf("cells = %d, want %d", len(cells), blanks+31)
	}

	// The selected day carries the cursor hint.
	for _, c := range cells {
		if !c.Blank && c.Value == 5 && !c.Current {
			t.Error("day 5 not marked current")
		}
	}
}

func TestBuildCells_DisabledDays(t *testing.T) {
	eval := constraint.Evaluator{
		Disabled: []models.DateValue{models.NewDate(2024, 2, 5)},
	}
	req := dayRequest(models.NewDate(2024, 2, 1), eval)
	cells, _, _ := buildCells(req, en, 0)

	for _, c := range cells {
		if c.Blank {
			continue
		}
		if c.Value == 5 && !c.Disabled {
			t.Error("disabled day rendered selectable")
		}
		if c.Value == 6 && c.Disabled {
			t.Error("sibling day rendered disabled")
		}
	}
}

func TestBuildCells_MonthGridFullyDisabled(t *testing.T) {
	var disabled []models.DateValue
	for d := 1; d <= models.DaysInMonth(2024, 1); d++ {
		disabled = append(disabled, models.NewDate(2024, 1, d))
	}
	req := picker.RenderRequest{
		Mode:  picker.ModeMonth,
		Value: models.NewDate(2024, 1, 1),
		Eval:  constraint.Evaluator{Disabled: disabled},
	}

	cells, _, columns := buildCells(req, en, 0)
	if columns != 3 {
		t.Errorf("columns = %d, want 3", columns)
	}
	if len(cells) != 12 {
		t.Fatalf("cells = %d, want 12", len(cells))
	}
	if !cells[1].Disabled {
		t.Error("fully exhausted February not grayed out")
	}
	if cells[2].Disabled {
		t.Error("untouched March grayed out")
	}
	if cells[1].Label != "Feb" {
		t.Errorf("month label = %q, want Feb", cells[1].Label)
	}
}

func TestBuildCells_YearPageOffset(t *testing.T) {
	req := picker.RenderRequest{
		Mode:  picker.ModeYear,
		Value: models.DateValue{Year: intp(2024)},
		Eval:  constraint.Evaluator{},
	}

	page0, _, _ := buildCells(req, en, 0)
	page1, _, _ := buildCells(req, en, 1)

	if len(page0) != yearPageSize || len(page1) != yearPageSize {
		t.Fatalf("page sizes = %d, %d", len(page0), len(page1))
	}
	if page1[0].Value != page0[0].Value+yearPageSize {
		t.Errorf("page 1 starts at %d, want %d", page1[0].Value, page0[0].Value+yearPageSize)
	}
}

func TestBuildCells_MarkedDayHighlightsCoarserCells(t *testing.T) {
	marked := []models.MarkedValue{
		{Value: models.NewDate(2024, 2, 10), Color: "170"},
	}

	dayReq := picker.RenderRequest{
		Mode:   picker.ModeDay,
		Value:  models.NewDate(2024, 2, 1),
		Marked: marked,
	}
	cells, _, _ := buildCells(dayReq, en, 0)
	found := false
	for _, c := range cells {
		if !c.Blank && c.Value == 10 && c.Marked && c.MarkColor == "170" {
			found = true
		}
	}
	if !found {
		t.Error("marked day not highlighted in day grid")
	}

	monthReq := picker.RenderRequest{
		Mode:   picker.ModeMonth,
		Value:  models.NewDate(2024, 2, 1),
		Marked: marked,
	}
	cells, _, _ = buildCells(monthReq, en, 0)
	if !cells[2].Marked {
		t.Error("month containing a marked day not highlighted")
	}
	if cells[3].Marked {
		t.Error("unrelated month highlighted")
	}
}
