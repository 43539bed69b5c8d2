package picker

import "github.com/julianstephens/datepick/internal/models"

// OptionsFromPreset expands a stored preset into session options.
func OptionsFromPreset(p models.Preset) Options {
	return Options{
		DateFormat:       p.DateFormat,
		TimeFormat:       p.TimeFormat,
		Divider:          p.Divider,
		DateTimeFormat:   p.DateTimeFormat,
		StartMode:        p.StartMode,
		PreserveViewMode: p.PreserveViewMode,
		Closable:         p.Closable,
		MinDate:          models.TextRaw(p.MinDate),
		MaxDate:          models.TextRaw(p.MaxDate),
		Disable:          models.ListRaw(p.Disable),
		Marked:           models.ListRaw(p.Marked),
		MarkColor:        p.MarkColor,
		Localization:     p.Localization,
		InitialDate:      models.TextRaw(p.InitialDate),
	}
}
