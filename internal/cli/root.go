package cli

import (
	"fmt"

	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/picker"
	"github.com/julianstephens/datepick/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// PickerFlags is the configuration surface shared by every command that
// builds a picker session. A --preset loads a stored configuration; any
// flag set explicitly on top of it overrides the preset value.
type PickerFlags struct {
	Preset string `help:"Load a stored preset by name."`

	Format           string   `help:"Date format tokens." default:"DD-MM-YYYY"`
	TimeFormat       string   `help:"Time representation." default:"24" enum:"12,24"`
	Divider          string   `help:"Divider between date and time." default:" "`
	DateTimeFormat   string   `help:"Full composite format override."`
	StartMode        string   `help:"Initial calendar mode." default:"day" enum:"year,month,day"`
	PreserveViewMode bool     `help:"Keep the last active mode across focus cycles."`
	Closable         bool     `help:"Close the picker when a minute selection commits."`
	Min              string   `help:"Minimum selectable date."`
	Max              string   `help:"Maximum selectable date."`
	Disable          []string `help:"Dates the user may not select."`
	Marked           []string `help:"Dates to highlight."`
	MarkColor        string   `help:"Color hint for marked dates."`
	Locale           string   `help:"Locale for month and weekday names." default:"en"`
	Initial          string   `help:"Date the picker centers on when no value is set."`
	Value            string   `help:"Current value in the configured format."`
}

// Options resolves the flags (and optional preset) into session options.
func (f PickerFlags) Options(ctx *Context) (picker.Options, error) {
	if f.Preset == "" {
		return f.options(), nil
	}

	if err := ctx.Store.Load(); err != nil {
		return picker.Options{}, err
	}
	p, err := ctx.Store.GetPreset(f.Preset)
	if err != nil {
		return picker.Options{}, fmt.Errorf("loading preset: %w", err)
	}
	opts := picker.OptionsFromPreset(p)
	// Flag values set away from their defaults override the preset.
	if f.Value != "" {
		opts.Value = models.TextRaw(f.Value)
	}
	if f.Initial != "" {
		opts.InitialDate = models.TextRaw(f.Initial)
	}
	return opts, nil
}

func (f PickerFlags) options() picker.Options {
	return picker.Options{
		DateFormat:       f.Format,
		TimeFormat:       f.TimeFormat,
		Divider:          f.Divider,
		DateTimeFormat:   f.DateTimeFormat,
		StartMode:        f.StartMode,
		PreserveViewMode: f.PreserveViewMode,
		Closable:         f.Closable,
		MinDate:          models.TextRaw(f.Min),
		MaxDate:          models.TextRaw(f.Max),
		Disable:          models.ListRaw(f.Disable),
		Marked:           models.ListRaw(f.Marked),
		MarkColor:        f.MarkColor,
		Localization:     f.Locale,
		InitialDate:      models.TextRaw(f.Initial),
		Value:            models.TextRaw(f.Value),
	}
}

// Preset converts the flags into a storable preset.
func (f PickerFlags) preset(name, id string) models.Preset {
	return models.Preset{
		ID:               id,
		Name:             name,
		DateFormat:       f.Format,
		TimeFormat:       f.TimeFormat,
		Divider:          f.Divider,
		DateTimeFormat:   f.DateTimeFormat,
		StartMode:        f.StartMode,
		PreserveViewMode: f.PreserveViewMode,
		Closable:         f.Closable,
		MinDate:          f.Min,
		MaxDate:          f.Max,
		Disable:          f.Disable,
		Marked:           f.Marked,
		MarkColor:        f.MarkColor,
		Localization:     f.Locale,
		InitialDate:      f.Initial,
	}
}
