package models

import "time"

// Preset is a named, persisted picker configuration: formats, bounds,
// disabled/marked sets and behavior flags. Presets never store a
// selection, only the configuration a session starts from.
type Preset struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DateFormat       string    `json:"date_format"`
	TimeFormat       string    `json:"time_format"`
	Divider          string    `json:"divider"`
	DateTimeFormat   string    `json:"date_time_format,omitempty"`
	StartMode        string    `json:"start_mode"`
	PreserveViewMode bool      `json:"preserve_view_mode"`
	Closable         bool      `json:"closable"`
	MinDate          string    `json:"min_date,omitempty"`
	MaxDate          string    `json:"max_date,omitempty"`
	Disable          []string  `json:"disable,omitempty"`
	Marked           []string  `json:"marked,omitempty"`
	MarkColor        string    `json:"mark_color,omitempty"`
	Localization     string    `json:"localization,omitempty"`
	InitialDate      string    `json:"initial_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
