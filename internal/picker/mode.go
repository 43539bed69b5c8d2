package picker

import "github.com/julianstephens/datepick/internal/models"

// Mode is the active calendar granularity being selected. The machine is
// cyclic in both directions; there is no structural terminal state.
type Mode int

const (
	ModeYear Mode = iota
	ModeMonth
	ModeDay
	ModeHour
	ModeMinute
)

func (m Mode) String() string {
	switch m {
	case ModeYear:
		return "year"
	case ModeMonth:
		return "month"
	case ModeDay:
		return "day"
	case ModeHour:
		return "hour"
	case ModeMinute:
		return "minute"
	default:
		return "unknown"
	}
}

// ParseMode resolves a configuration string into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "year":
		return ModeYear, true
	case "month":
		return ModeMonth, true
	case "day":
		return ModeDay, true
	case "hour":
		return ModeHour, true
	case "minute":
		return ModeMinute, true
	default:
		return ModeDay, false
	}
}

// Next advances one step along the forward cycle
// year→month→day→hour→minute→year.
func (m Mode) Next() Mode {
	switch m {
	case ModeYear:
		return ModeMonth
	case ModeMonth:
		return ModeDay
	case ModeDay:
		return ModeHour
	case ModeHour:
		return ModeMinute
	case ModeMinute:
		return ModeYear
	default:
		return ModeDay
	}
}

// Prev moves one step along the backward cycle, the exact reverse of Next.
func (m Mode) Prev() Mode {
	switch m {
	case ModeYear:
		return ModeMinute
	case ModeMonth:
		return ModeYear
	case ModeDay:
		return ModeMonth
	case ModeHour:
		return ModeDay
	case ModeMinute:
		return ModeHour
	default:
		return ModeDay
	}
}

// Field maps the mode to the value field it selects.
func (m Mode) Field() models.Field {
	switch m {
	case ModeYear:
		return models.FieldYear
	case ModeMonth:
		return models.FieldMonth
	case ModeDay:
		return models.FieldDay
	case ModeHour:
		return models.FieldHour
	default:
		return models.FieldMinute
	}
}
