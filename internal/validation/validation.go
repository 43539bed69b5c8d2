// Package validation audits a picker configuration before a session is
// built, reporting contract violations and suspicious inputs as conflicts
// rather than panics.
package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/datepick/internal/constants"
	"github.com/julianstephens/datepick/internal/constraint"
	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
	"github.com/julianstephens/datepick/internal/picker"
)

// ConflictType represents the type of configuration conflict.
type ConflictType string

const (
	ConflictInvertedBounds  ConflictType = "inverted_bounds"
	ConflictBadStartMode    ConflictType = "bad_start_mode"
	ConflictBadTimeFormat   ConflictType = "bad_time_format"
	ConflictUnknownLocale   ConflictType = "unknown_locale"
	ConflictUnparsedEntries ConflictType = "unparsed_entries"
	ConflictEmptyFormat     ConflictType = "empty_format"
)

// Conflict is one detected configuration problem. Fatal conflicts prevent
// a session from being created; the rest are warnings the engine tolerates
// by dropping the offending input.
type Conflict struct {
	Type        ConflictType
	Description string
	Fatal       bool
	Items       []string
}

// Result collects every conflict of one audit.
type Result struct {
	Conflicts []Conflict
}

// HasFatal reports whether any conflict prevents session creation.
func (r *Result) HasFatal() bool {
	for _, c := range r.Conflicts {
		if c.Fatal {
			return true
		}
	}
	return false
}

// FormatReport renders a human-readable summary.
func (r *Result) FormatReport() string {
	if len(r.Conflicts) == 0 {
		return "No conflicts detected."
	}
	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range r.Conflicts {
		level := "warning"
		if c.Fatal {
			level = "error"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", level, c.Description)
	}
	return b.String()
}

// Validator audits picker configurations.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateOptions checks a configuration for contract violations.
func (v *Validator) ValidateOptions(opts picker.Options) Result {
	var result Result

	if opts.DateFormat == "" && opts.DateTimeFormat == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyFormat,
			Description: "neither dateFormat nor dateTimeFormat is configured; the built-in default applies",
		})
	}

	if opts.TimeFormat != "" && opts.TimeFormat != "12" && opts.TimeFormat != "24" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictBadTimeFormat,
			Description: fmt.Sprintf("timeFormat %q is neither \"12\" nor \"24\"; 24-hour tokens apply", opts.TimeFormat),
		})
	}

	if opts.StartMode != "" {
		switch opts.StartMode {
		case "year", "month", "day":
		default:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBadStartMode,
				Description: fmt.Sprintf("startMode %q is not one of year, month, day", opts.StartMode),
				Fatal:       true,
			})
		}
	}

	if opts.Localization != "" {
		known := false
		for _, id := range format.SupportedLocales() {
			if id == opts.Localization {
				known = true
				break
			}
		}
		if !known {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownLocale,
				Description: fmt.Sprintf("localization %q is not bundled; English names apply", opts.Localization),
			})
		}
	}

	v.checkBounds(opts, &result)
	v.checkSets(opts, &result)
	return result
}

func (v *Validator) checkBounds(opts picker.Options, result *Result) {
	loc := format.LocaleFor(opts.Localization)
	dateFormat := opts.DateFormat
	if dateFormat == "" {
		dateFormat = constants.DefaultDateFormat
	}

	min, minOK := parse.Parse(opts.MinDate, dateFormat, loc)
	if opts.MinDate.Kind != models.RawEmpty && !minOK {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictUnparsedEntries,
			Description: "minDate does not parse under the configured date format",
		})
	}
	max, maxOK := parse.Parse(opts.MaxDate, dateFormat, loc)
	if opts.MaxDate.Kind != models.RawEmpty && !maxOK {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictUnparsedEntries,
			Description: "maxDate does not parse under the configured date format",
		})
	}

	if minOK && maxOK {
		b := constraint.Bounds{Min: min, Max: max}
		if !b.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvertedBounds,
				Description: "minDate is after maxDate",
				Fatal:       true,
			})
		}
	}
}

func (v *Validator) checkSets(opts picker.Options, result *Result) {
	loc := format.LocaleFor(opts.Localization)
	dateFormat := opts.DateFormat
	if dateFormat == "" {
		dateFormat = constants.DefaultDateFormat
	}

	for _, set := range []struct {
		name string
		raw  models.RawValue
	}{
		{"disable", opts.Disable},
		{"marked", opts.Marked},
	} {
		if set.raw.Kind != models.RawTextList {
			continue
		}
		parsed := parse.ParseAll(set.raw, dateFormat, loc)
		if dropped := len(set.raw.List) - len(parsed); dropped > 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnparsedEntries,
				Description: fmt.Sprintf("%d %s entrie(s) do not parse and will be dropped", dropped, set.name),
				Items:       set.raw.List,
			})
		}
	}
}
