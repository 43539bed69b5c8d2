package picker

import (
	"fmt"

	"github.com/julianstephens/datepick/internal/constants"
	"github.com/julianstephens/datepick/internal/constraint"
	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
)

// Options is the recognized configuration surface of a picker session.
// Raw-valued fields accept whatever the caller has: a string in the
// configured format, a list of strings, or an already structured value.
type Options struct {
	DateFormat       string
	TimeFormat       string // "12" or "24"
	Divider          string
	DateTimeFormat   string // full composite override
	StartMode        string // "year", "month" or "day"
	PreserveViewMode bool
	Closable         bool
	MinDate          models.RawValue
	MaxDate          models.RawValue
	Disable          models.RawValue
	Marked           models.RawValue
	MarkColor        string
	Localization     string
	InitialDate      models.RawValue
	Value            models.RawValue

	// Extra holds caller props the core does not own; they are forwarded
	// untouched on every output-changed notification.
	Extra map[string]any
}

// coreOwnedProps is the deny-list applied to Extra: keys the core owns are
// never forwarded as pass-through, whatever the caller stuffed in.
var coreOwnedProps = map[string]bool{
	"dateFormat":       true,
	"timeFormat":       true,
	"divider":          true,
	"dateTimeFormat":   true,
	"startMode":        true,
	"preserveViewMode": true,
	"closable":         true,
	"minDate":          true,
	"maxDate":          true,
	"disable":          true,
	"marked":           true,
	"markColor":        true,
	"localization":     true,
	"initialDate":      true,
	"value":            true,
}

func (o Options) withDefaults() Options {
	if o.DateFormat == "" {
		o.DateFormat = constants.DefaultDateFormat
	}
	if o.TimeFormat == "" {
		o.TimeFormat = constants.DefaultTimeFormat
	}
	if o.Divider == "" {
		o.Divider = constants.DefaultDivider
	}
	if o.StartMode == "" {
		o.StartMode = ModeDay.String()
	}
	if o.MarkColor == "" {
		o.MarkColor = constants.DefaultMarkColor
	}
	if o.Localization == "" {
		o.Localization = constants.DefaultLocale
	}
	return o
}

// Resolved is everything derivable from Options, computed once per
// configuration change and consumed read-only afterwards.
type Resolved struct {
	Format      string // effective composite format
	Locale      format.Locale
	StartMode   Mode
	Eval        constraint.Evaluator
	Marked      []models.MarkedValue
	PassThrough map[string]any
}

// Resolve derives the effective configuration. An inverted bounds window
// (minDate after maxDate) is a caller contract violation and is reported
// as an error instead of silently producing an empty selectable range.
func Resolve(o Options) (Resolved, error) {
	o = o.withDefaults()

	spec := format.Spec{
		DateFormat:     o.DateFormat,
		TimeFormat:     o.TimeFormat,
		Divider:        o.Divider,
		DateTimeFormat: o.DateTimeFormat,
	}
	composite := spec.Resolve()
	loc := format.LocaleFor(o.Localization)

	startMode, ok := ParseMode(o.StartMode)
	if !ok {
		return Resolved{}, fmt.Errorf("invalid configuration: unknown start mode %q", o.StartMode)
	}
	switch startMode {
	case ModeYear, ModeMonth, ModeDay:
	default:
		return Resolved{}, fmt.Errorf("invalid configuration: start mode %q is not a date granularity", o.StartMode)
	}

	// Bounds accept either the date-only or the composite representation.
	bounds := constraint.Bounds{
		Min: parseEither(o.MinDate, o.DateFormat, composite, loc),
		Max: parseEither(o.MaxDate, o.DateFormat, composite, loc),
	}
	if !bounds.Valid() {
		return Resolved{}, fmt.Errorf("invalid configuration: minDate is after maxDate")
	}

	passThrough := make(map[string]any, len(o.Extra))
	for k, v := range o.Extra {
		if !coreOwnedProps[k] {
			passThrough[k] = v
		}
	}

	return Resolved{
		Format:    composite,
		Locale:    loc,
		StartMode: startMode,
		Eval: constraint.Evaluator{
			Bounds:   bounds,
			Disabled: mergedDisabled(o.Disable, o.DateFormat, composite, loc),
		},
		Marked:      constraint.NormalizeMarked(o.Marked, o.MarkColor, o.DateFormat, loc),
		PassThrough: passThrough,
	}, nil
}

func parseEither(raw models.RawValue, dateFormat, composite string, loc format.Locale) models.DateValue {
	if v, ok := parse.Parse(raw, dateFormat, loc); ok {
		return v
	}
	v, _ := parse.Parse(raw, composite, loc)
	return v
}

func mergedDisabled(raw models.RawValue, dateFormat, composite string, loc format.Locale) []models.DateValue {
	out := constraint.Normalize(raw, dateFormat, loc)
	if len(out) > 0 || raw.Kind == models.RawEmpty {
		return out
	}
	return constraint.Normalize(raw, composite, loc)
}
