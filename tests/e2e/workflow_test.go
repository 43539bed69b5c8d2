package e2e

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
	"github.com/julianstephens/datepick/internal/picker"
	"github.com/julianstephens/datepick/internal/storage"
)

// TestSelectionWorkflow drives a complete selection the way a host shell
// would: open, descend through every granularity, commit, and observe the
// serialized output.
func TestSelectionWorkflow(t *testing.T) {
	var outputs []picker.OutputChanged
	closed := false

	session, err := picker.NewSession(picker.Options{
		DateFormat: "DD-MM-YYYY",
		TimeFormat: "24",
		Divider:    " ",
		StartMode:  "year",
		Closable:   true,
		MinDate:    models.TextRaw("01-01-2024"),
		MaxDate:    models.TextRaw("31-12-2024"),
		Disable:    models.ListRaw([]string{"01-03-2024"}),
		Extra:      map[string]any{"placeholder": "pick"},
	}, picker.Callbacks{
		OnOutputChanged: func(out picker.OutputChanged) { outputs = append(outputs, out) },
		OnClose:         func() { closed = true },
	})
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	session.FocusEnter()
	if session.Mode() != picker.ModeYear {
		t.Fatalf("start mode = %s, want year", session.Mode())
	}

	// One confirm per granularity; each transition lands on the next flush.
	steps := []struct {
		fields   models.DateValue
		nextMode picker.Mode
	}{
		{models.DateValue{Year: intp(2024)}, picker.ModeMonth},
		{models.DateValue{Month: intp(2)}, picker.ModeDay},
		{models.DateValue{Day: intp(5)}, picker.ModeHour},
		{models.DateValue{Hour: intp(14)}, picker.ModeMinute},
	}
	for _, step := range steps {
		if !session.Confirm(step.fields) {
			t.Fatalf("confirm %+v refused in mode %s", step.fields, session.Mode())
		}
		session.Flush()
		if session.Mode() != step.nextMode {
			t.Fatalf("mode = %s, want %s", session.Mode(), step.nextMode)
		}
	}

	// The disabled day is refused at any granularity.
	if session.Confirm(models.DateValue{Day: intp(1), Minute: intp(0)}) {
		t.Error("selection overlapping the disabled day confirmed")
	}

	if !session.Confirm(models.DateValue{Minute: intp(30)}) {
		t.Fatal("minute confirm refused")
	}
	if len(outputs) != 0 {
		t.Fatal("output emitted before flush")
	}
	session.Flush()

	if len(outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(outputs))
	}
	out := outputs[0]
	if out.Value != "05-03-2024 14:30" {
		t.Errorf("committed value = %q, want 05-03-2024 14:30", out.Value)
	}
	if out.Props["value"] != "05-03-2024 14:30" || out.Props["placeholder"] != "pick" {
		t.Errorf("props = %+v", out.Props)
	}
	if !closed {
		t.Error("closable picker did not close on commit")
	}
	if session.Mode() != picker.ModeYear {
		t.Errorf("mode after commit = %s, want year", session.Mode())
	}

	// Round trip: the emitted text parses back to the canonical value.
	back, ok := parse.Parse(models.TextRaw(out.Value), session.Resolved().Format, session.Resolved().Locale)
	if !ok || !models.Equal(back, out.Canonical) {
		t.Errorf("round trip = %+v (ok=%v), want %+v", back, ok, out.Canonical)
	}
}

// TestPresetWorkflow saves a configuration preset, reloads it from disk and
// builds a working session from it.
func TestPresetWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datepick.json")

	store := storage.Provider(storage.NewJSONStore(path))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := store.SavePreset(models.Preset{
		ID:         "p1",
		Name:       "march-window",
		DateFormat: "DD-MM-YYYY",
		TimeFormat: "24",
		Divider:    " ",
		StartMode:  "day",
		MinDate:    "01-03-2024",
		MaxDate:    "31-03-2024",
		Disable:    []string{"05-03-2024"},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}); err != nil {
		t.Fatalf("SavePreset() error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := storage.Provider(storage.NewJSONStore(path))
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	preset, err := reopened.GetPreset("march-window")
	if err != nil {
		t.Fatalf("GetPreset() error: %v", err)
	}

	session, err := picker.NewSession(picker.OptionsFromPreset(preset), picker.Callbacks{})
	if err != nil {
		t.Fatalf("NewSession() from preset error: %v", err)
	}

	if session.Confirm(models.NewDate(2024, 2, 5)) {
		t.Error("preset-disabled day confirmed")
	}
	if session.Confirm(models.NewDate(2024, 3, 1)) {
		t.Error("day outside the preset bounds confirmed")
	}
	if !session.Confirm(models.NewDate(2024, 2, 6)) {
		t.Error("valid day refused")
	}
}

func intp(v int) *int { return &v }
