package picker

import (
	"strings"
	"testing"

	"github.com/julianstephens/datepick/internal/models"
)

func TestResolve_Defaults(t *testing.T) {
	res, err := Resolve(Options{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if res.Format != "DD-MM-YYYY HH:mm" {
		t.Errorf("format = %q, want DD-MM-YYYY HH:mm", res.Format)
	}
	if res.StartMode != ModeDay {
		t.Errorf("start mode = %s, want day", res.StartMode)
	}
	if res.Locale.ID != "en" {
		t.Errorf("locale = %q, want en", res.Locale.ID)
	}
}

func TestResolve_InvertedBoundsIsError(t *testing.T) {
	_, err := Resolve(Options{
		MinDate: models.TextRaw("10-03-2024"),
		MaxDate: models.TextRaw("01-03-2024"),
	})
	if err == nil {
		t.Fatal("expected an error for inverted bounds")
	}
	if !strings.Contains(err.Error(), "minDate is after maxDate") {
		t.Errorf("error = %v", err)
	}
}

func TestResolve_StartModeValidation(t *testing.T) {
	if _, err := Resolve(Options{StartMode: "decade"}); err == nil {
		t.Error("expected an error for an unknown start mode")
	}
	// Time granularities are legal modes but not legal start modes.
	if _, err := Resolve(Options{StartMode: "minute"}); err == nil {
		t.Error("expected an error for a time-granularity start mode")
	}
	if _, err := Resolve(Options{StartMode: "year"}); err != nil {
		t.Errorf("year start mode rejected: %v", err)
	}
}

func TestResolve_BoundsAcceptDateOnlyText(t *testing.T) {
	res, err := Resolve(Options{
		MinDate: models.TextRaw("01-03-2024"),
		MaxDate: models.TextRaw("10-03-2024"),
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if !res.Eval.Selectable(models.NewDate(2024, 2, 5)) {
		t.Error("in-bounds day rejected")
	}
	if res.Eval.Selectable(models.NewDate(2024, 2, 15)) {
		t.Error("out-of-bounds day accepted")
	}
}

func TestResolve_PassThroughFiltersCoreProps(t *testing.T) {
	res, err := Resolve(Options{
		Extra: map[string]any{
			"placeholder": "pick a date",
			"value":       "smuggled",
			"dateFormat":  "smuggled",
		},
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if res.PassThrough["placeholder"] != "pick a date" {
		t.Error("caller prop dropped from pass-through")
	}
	if _, ok := res.PassThrough["value"]; ok {
		t.Error("core-owned prop leaked into pass-through")
	}
	if _, ok := res.PassThrough["dateFormat"]; ok {
		t.Error("core-owned prop leaked into pass-through")
	}
}

func TestResolve_DisabledSetNormalized(t *testing.T) {
	res, err := Resolve(Options{
		Disable: models.ListRaw([]string{"05-03-2024", "junk", "06-03-2024"}),
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if len(res.Eval.Disabled) != 2 {
		t.Errorf("disabled set size = %d, want 2", len(res.Eval.Disabled))
	}
	if res.Eval.Selectable(models.NewDate(2024, 2, 5)) {
		t.Error("disabled day still selectable")
	}
}

func TestOptionsFromPreset(t *testing.T) {
	p := models.Preset{
		Name:       "meeting",
		DateFormat: "MM/DD/YYYY",
		TimeFormat: "12",
		Divider:    " ",
		StartMode:  "month",
		Closable:   true,
		Disable:    []string{"12/25/2024"},
	}

	opts := OptionsFromPreset(p)
	if opts.DateFormat != "MM/DD/YYYY" || opts.StartMode != "month" || !opts.Closable {
		t.Errorf("OptionsFromPreset() = %+v", opts)
	}

	res, err := Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if res.Format != "MM/DD/YYYY hh:mm A" {
		t.Errorf("format = %q", res.Format)
	}
	if res.Eval.Selectable(models.NewDate(2024, 11, 25)) {
		t.Error("preset disabled day still selectable")
	}
}
