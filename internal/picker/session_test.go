package picker

import (
	"testing"
	"time"

	"github.com/julianstephens/datepick/internal/models"
)

// recorder captures session callbacks for assertions.
type recorder struct {
	renders []RenderRequest
	outputs []OutputChanged
	closes  int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnRender:        func(req RenderRequest) { r.renders = append(r.renders, req) },
		OnOutputChanged: func(out OutputChanged) { r.outputs = append(r.outputs, out) },
		OnClose:         func() { r.closes++ },
	}
}

func newTestSession(t *testing.T, opts Options, rec *recorder) *Session {
	t.Helper()
	s, err := NewSession(opts, rec.callbacks())
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	s.now = func() time.Time {
		return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestSession_ConfirmDefersModeAdvance(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{StartMode: "day"}, &rec)

	if !s.Confirm(models.NewDate(2024, 2, 5)) {
		t.Fatal("confirm refused")
	}

	// The transition is queued, not applied: the mode must not change
	// within the same event.
	if s.Mode() != ModeDay {
		t.Fatalf("mode advanced synchronously to %s", s.Mode())
	}
	if !s.Pending() {
		t.Fatal("no deferred work queued")
	}

	s.Flush()
	if s.Mode() != ModeHour {
		t.Errorf("mode after flush = %s, want hour", s.Mode())
	}
}

func TestSession_FullDescentAndCommit(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{StartMode: "day", Closable: true}, &rec)

	if !s.Confirm(models.NewDate(2024, 2, 5)) {
		t.Fatal("day confirm refused")
	}
	s.Flush()
	if s.Mode() != ModeHour {
		t.Fatalf("mode = %s, want hour", s.Mode())
	}

	if !s.Confirm(models.DateValue{Hour: intPtr(14)}) {
		t.Fatal("hour confirm refused")
	}
	s.Flush()
	if s.Mode() != ModeMinute {
		t.Fatalf("mode = %s, want minute", s.Mode())
	}

	if !s.Confirm(models.DateValue{Minute: intPtr(30)}) {
		t.Fatal("minute confirm refused")
	}

	// Output and close are deferred too.
	if len(rec.outputs) != 0 || rec.closes != 0 {
		t.Fatal("commit side effects ran synchronously")
	}

	s.Flush()

	if len(rec.outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(rec.outputs))
	}
	out := rec.outputs[0]
	if out.Value != "05-03-2024 14:30" {
		t.Errorf("committed value = %q, want 05-03-2024 14:30", out.Value)
	}
	if out.Props["value"] != "05-03-2024 14:30" {
		t.Errorf("props value = %v", out.Props["value"])
	}
	if out.Props["dateFormat"] != "DD-MM-YYYY" {
		t.Errorf("props dateFormat = %v", out.Props["dateFormat"])
	}
	if rec.closes != 1 {
		t.Errorf("closes = %d, want 1", rec.closes)
	}
	// The cycle continues past minute into year.
	if s.Mode() != ModeYear {
		t.Errorf("mode after commit = %s, want year", s.Mode())
	}
	if s.Serialized() != "05-03-2024 14:30" {
		t.Errorf("Serialized() = %q", s.Serialized())
	}
}

func TestSession_CommitWithoutClosable(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{StartMode: "day"}, &rec)

	s.Confirm(models.NewDate(2024, 2, 5))
	s.Flush()
	s.Confirm(models.DateValue{Hour: intPtr(14)})
	s.Flush()
	s.Confirm(models.DateValue{Minute: intPtr(30)})
	s.Flush()

	if rec.closes != 0 {
		t.Errorf("closes = %d, want 0 when not closable", rec.closes)
	}
	if len(rec.outputs) != 1 {
		t.Errorf("outputs = %d, want 1", len(rec.outputs))
	}
}

func TestSession_ConfirmRefusesDisabled(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{
		StartMode: "day",
		Disable:   models.ListRaw([]string{"05-03-2024"}),
	}, &rec)

	if s.Confirm(models.NewDate(2024, 2, 5)) {
		t.Fatal("disabled day confirmed")
	}
	if s.Pending() {
		t.Error("refused confirm queued deferred work")
	}
	if s.Mode() != ModeDay {
		t.Errorf("mode = %s, want day", s.Mode())
	}

	// A sibling day still goes through.
	if !s.Confirm(models.NewDate(2024, 2, 6)) {
		t.Error("selectable sibling refused")
	}
}

func TestSession_ConfirmRefusesOutOfBounds(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{
		StartMode: "day",
		MinDate:   models.TextRaw("01-03-2024"),
		MaxDate:   models.TextRaw("10-03-2024"),
	}, &rec)

	if s.Confirm(models.NewDate(2024, 2, 15)) {
		t.Error("out-of-bounds day confirmed")
	}
	if !s.Confirm(models.NewDate(2024, 2, 5)) {
		t.Error("in-bounds day refused")
	}
}

func TestSession_RetreatWraps(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{StartMode: "year"}, &rec)

	s.Retreat()
	if s.Mode() != ModeYear {
		t.Fatal("retreat applied synchronously")
	}
	s.Flush()
	if s.Mode() != ModeMinute {
		t.Errorf("mode = %s, want minute (wrap below year)", s.Mode())
	}
}

func TestSession_FocusEnterResetsMode(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{StartMode: "day"}, &rec)

	s.Confirm(models.NewDate(2024, 2, 5))
	s.Flush()
	if s.Mode() != ModeHour {
		t.Fatalf("mode = %s, want hour", s.Mode())
	}

	s.FocusLeave()
	s.FocusEnter()

	if s.Mode() != ModeDay {
		t.Errorf("mode after focus re-enter = %s, want day", s.Mode())
	}
}

func TestSession_FocusEnterPreservesModeWhenAsked(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{StartMode: "day", PreserveViewMode: true}, &rec)

	s.Confirm(models.NewDate(2024, 2, 5))
	s.Flush()

	s.FocusLeave()
	s.FocusEnter()

	if s.Mode() != ModeHour {
		t.Errorf("mode after focus re-enter = %s, want hour (preserved)", s.Mode())
	}
}

func TestSession_TextEditedSetsValue(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{}, &rec)

	s.TextEdited("05-03-2024 14:30")
	s.Flush()

	if len(rec.outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(rec.outputs))
	}
	if rec.outputs[0].Value != "05-03-2024 14:30" {
		t.Errorf("value = %q", rec.outputs[0].Value)
	}
	want := models.NewDateTime(2024, 2, 5, 14, 30)
	if !models.Equal(rec.outputs[0].Canonical, want) {
		t.Errorf("canonical = %+v, want %+v", rec.outputs[0].Canonical, want)
	}
}

func TestSession_TextEditedIgnoresGarbage(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{}, &rec)

	s.TextEdited("not a date")
	s.Flush()

	if len(rec.outputs) != 0 {
		t.Errorf("garbage edit produced %d outputs", len(rec.outputs))
	}
}

func TestSession_TextEditedEmptyClears(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{}, &rec)

	s.TextEdited("05-03-2024 14:30")
	s.Flush()
	s.TextEdited("")
	s.Flush()

	if len(rec.outputs) != 2 {
		t.Fatalf("outputs = %d, want 2", len(rec.outputs))
	}
	if rec.outputs[1].Value != "" {
		t.Errorf("cleared value = %q, want empty", rec.outputs[1].Value)
	}
	if !rec.outputs[1].Canonical.IsZero() {
		t.Errorf("cleared canonical = %+v, want zero", rec.outputs[1].Canonical)
	}
}

func TestSession_TextEditedRejectsUnselectable(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{
		Disable: models.ListRaw([]string{"05-03-2024"}),
	}, &rec)

	s.TextEdited("05-03-2024 14:30")
	s.Flush()

	if len(rec.outputs) != 0 {
		t.Error("edit to a disabled day produced output")
	}
}

func TestSession_PassThroughPropsRideAlong(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{
		Extra: map[string]any{"placeholder": "pick a date"},
	}, &rec)

	s.TextEdited("05-03-2024 14:30")
	s.Flush()

	if len(rec.outputs) != 1 {
		t.Fatalf("outputs = %d, want 1", len(rec.outputs))
	}
	if rec.outputs[0].Props["placeholder"] != "pick a date" {
		t.Errorf("pass-through prop missing: %+v", rec.outputs[0].Props)
	}
}

func TestSession_ValueMergesInitialAndPartial(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{
		InitialDate: models.TextRaw("01-03-2024 09:00"),
	}, &rec)

	s.Confirm(models.NewDate(2024, 2, 5))
	s.Flush()

	v := s.Value()
	if *v.Day != 5 {
		t.Errorf("day = %d, want 5 (partial wins)", *v.Day)
	}
	if *v.Hour != 9 {
		t.Errorf("hour = %d, want 9 (initial fills the gap)", *v.Hour)
	}
}

func TestSession_ExplicitValueWinsOverPartial(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{
		Value: models.TextRaw("10-03-2024 08:15"),
	}, &rec)

	v := s.Value()
	want := models.NewDateTime(2024, 2, 10, 8, 15)
	if !models.Equal(v, want) {
		t.Errorf("Value() = %+v, want %+v", v, want)
	}
}

func TestSession_ConfigureReResolves(t *testing.T) {
	var rec recorder
	s := newTestSession(t, Options{}, &rec)

	if err := s.Configure(Options{
		Disable: models.ListRaw([]string{"05-03-2024"}),
	}); err != nil {
		t.Fatalf("Configure() error: %v", err)
	}

	if s.Confirm(models.NewDate(2024, 2, 5)) {
		t.Error("day disabled by reconfiguration still confirmable")
	}

	if err := s.Configure(Options{
		MinDate: models.TextRaw("10-03-2024"),
		MaxDate: models.TextRaw("01-03-2024"),
	}); err == nil {
		t.Error("Configure() accepted inverted bounds")
	}
}

func intPtr(v int) *int { return &v }
