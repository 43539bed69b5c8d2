package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/picker"
)

func TestValidateOptions_CleanConfig(t *testing.T) {
	v := New()
	result := v.ValidateOptions(picker.Options{
		DateFormat: "DD-MM-YYYY",
		TimeFormat: "24",
		StartMode:  "day",
		MinDate:    models.TextRaw("01-03-2024"),
		MaxDate:    models.TextRaw("31-03-2024"),
	})

	if len(result.Conflicts) != 0 {
		t.Errorf("clean config produced conflicts: %s", result.FormatReport())
	}
	if result.HasFatal() {
		t.Error("clean config reported fatal")
	}
}

func TestValidateOptions_InvertedBoundsIsFatal(t *testing.T) {
	v := New()
	result := v.ValidateOptions(picker.Options{
		DateFormat: "DD-MM-YYYY",
		MinDate:    models.TextRaw("10-03-2024"),
		MaxDate:    models.TextRaw("01-03-2024"),
	})

	if !result.HasFatal() {
		t.Fatal("inverted bounds not reported fatal")
	}
	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictInvertedBounds {
			found = true
		}
	}
	if !found {
		t.Errorf("missing inverted-bounds conflict: %s", result.FormatReport())
	}
}

func TestValidateOptions_BadStartModeIsFatal(t *testing.T) {
	v := New()
	result := v.ValidateOptions(picker.Options{StartMode: "decade"})

	if !result.HasFatal() {
		t.Error("bad start mode not reported fatal")
	}
}

func TestValidateOptions_Warnings(t *testing.T) {
	v := New()
	result := v.ValidateOptions(picker.Options{
		TimeFormat:   "48",
		Localization: "xx",
		Disable:      models.ListRaw([]string{"05-03-2024", "junk"}),
	})

	if result.HasFatal() {
		t.Fatal("warnings alone reported fatal")
	}

	types := map[ConflictType]bool{}
	for _, c := range result.Conflicts {
		types[c.Type] = true
	}
	for _, want := range []ConflictType{
		ConflictBadTimeFormat, ConflictUnknownLocale,
		ConflictUnparsedEntries, ConflictEmptyFormat,
	} {
		if !types[want] {
			t.Errorf("missing conflict %s in %s", want, result.FormatReport())
		}
	}
}

func TestFormatReport(t *testing.T) {
	empty := Result{}
	if got := empty.FormatReport(); got != "No conflicts detected." {
		t.Errorf("empty report = %q", got)
	}

	r := Result{Conflicts: []Conflict{
		{Type: ConflictInvertedBounds, Description: "minDate is after maxDate", Fatal: true},
		{Type: ConflictUnknownLocale, Description: "locale unknown"},
	}}
	report := r.FormatReport()
	if !strings.Contains(report, "[error] minDate is after maxDate") {
		t.Errorf("report missing error line: %q", report)
	}
	if !strings.Contains(report, "[warning] locale unknown") {
		t.Errorf("report missing warning line: %q", report)
	}
}
