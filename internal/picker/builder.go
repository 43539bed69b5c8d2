package picker

import (
	"time"

	"github.com/julianstephens/datepick/internal/format"
	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
)

// Build resolves the value handed to the active picker. An explicit value
// that parses wins outright; otherwise the in-progress partial selection
// overrides the fallback initial value field by field, supporting the
// stepwise descent where coarser fields are already fixed.
func Build(explicit models.RawValue, initial, partial models.DateValue, displayFormat string, loc format.Locale) models.DateValue {
	if v, ok := parse.Parse(explicit, displayFormat, loc); ok {
		return v
	}
	return models.Merge(initial, partial)
}

// PickInitialDate resolves the value a freshly opened picker centers on:
// the explicit value, then the caller's initial-date hint, then the
// current date. Each candidate is checked for validity before acceptance.
func PickInitialDate(explicit, hint models.RawValue, displayFormat string, loc format.Locale, now func() time.Time) models.DateValue {
	if v, ok := parse.Parse(explicit, displayFormat, loc); ok {
		return v
	}
	if v, ok := parse.Parse(hint, displayFormat, loc); ok {
		return v
	}
	if now == nil {
		now = time.Now
	}
	return models.FromTime(now())
}
